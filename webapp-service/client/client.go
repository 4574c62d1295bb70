// Package client is the web UI's HTTP client for the prediction service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
)

// APIError is a non-2xx answer from the prediction service, kept verbatim
// so the UI can show the raw payload for diagnosis. Distinct from transport
// errors, which surface as plain errors.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls the prediction service through a circuit breaker, so a dead
// backend fails fast instead of stacking timeouts.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "prediction-api",
			Timeout: 15 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Health fetches /health from the prediction service.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	out := &models.HealthResponse{}
	if err := c.getJSON(ctx, "/health", out); err != nil {
		return nil, err
	}
	return out, nil
}

// Predict posts one record to /predict. A non-200 answer is returned as
// *APIError; transport failures as plain errors.
func (c *Client) Predict(ctx context.Context, rec models.FeatureRecord) (*models.PredictResponse, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		out := &models.PredictResponse{}
		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("decode prediction response: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.PredictResponse), nil
}

// WaitReady probes /health with exponential backoff until the backend
// answers or the retry budget runs out.
func (c *Client) WaitReady(ctx context.Context) error {
	probe := func() error {
		_, err := c.Health(ctx)
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	return backoff.Retry(probe, policy)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		}
		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("decode %s response: %w", path, err)
		}
		return nil, nil
	})
	return err
}
