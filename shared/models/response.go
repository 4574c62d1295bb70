package models

// Response envelopes for the prediction API. Shapes follow the original
// service contract, so field names stay snake_case.

const (
	StatusSuccess   = "success"
	StatusError     = "error"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

type HomeResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Message     string `json:"message"`
}

type FeaturesResponse struct {
	Status   string            `json:"status"`
	Features map[string]string `json:"features"`
	Example  FeatureRecord     `json:"example"`
}

type PredictResponse struct {
	Status     string  `json:"status"`
	Prediction float64 `json:"prediction"`
	Unit       string  `json:"unit"`
	Message    string  `json:"message"`
	InputData  any     `json:"input_data"`
}

// BatchItem is one element of a batch response, index-aligned with the
// request. Exactly one of Prediction or Error is set.
type BatchItem struct {
	Index      int      `json:"index"`
	Prediction *float64 `json:"prediction,omitempty"`
	Input      any      `json:"input,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type BatchResponse struct {
	Status      string      `json:"status"`
	Count       int         `json:"count"`
	Predictions []BatchItem `json:"predictions"`
}

// ErrorResponse is returned on 4xx/5xx.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}
