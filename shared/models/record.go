package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/constants"
)

// FeatureRecord is one avocado sales observation, the nine-field input of
// every prediction. JSON keys match the training dataset column names,
// spaces included.
type FeatureRecord struct {
	Quality1   float64 `json:"Quality1"`
	Quality2   float64 `json:"Quality2"`
	Quality3   float64 `json:"Quality3"`
	SmallBags  float64 `json:"Small Bags"`
	LargeBags  float64 `json:"Large Bags"`
	XLargeBags float64 `json:"XLarge Bags"`
	Year       int     `json:"year"`
	Type       string  `json:"type"`
	Region     string  `json:"region"`
}

// FieldError describes a single field that was present but could not be
// coerced to its expected type.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is the tagged failure result of ParseRecord: either keys
// are missing outright, or present keys failed coercion. Never both empty.
type ValidationError struct {
	MissingFields []string     `json:"missing_fields,omitempty"`
	FieldErrors   []FieldError `json:"field_errors,omitempty"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.MissingFields) > 0 {
		parts = append(parts, fmt.Sprintf("missing required fields: [%s]", strings.Join(e.MissingFields, ", ")))
	}
	for _, fe := range e.FieldErrors {
		parts = append(parts, fmt.Sprintf("invalid value for %q: %s", fe.Field, fe.Reason))
	}
	return strings.Join(parts, "; ")
}

// ParseRecord validates a raw JSON object against the nine required fields
// and coerces values to their expected types. Numeric fields accept JSON
// numbers or numeric strings; year is truncated to an integer the way the
// original pipeline did.
func ParseRecord(raw map[string]any) (*FeatureRecord, *ValidationError) {
	verr := &ValidationError{}
	for _, f := range constants.RequiredFields {
		if _, ok := raw[f]; !ok {
			verr.MissingFields = append(verr.MissingFields, f)
		}
	}
	if len(verr.MissingFields) > 0 {
		return nil, verr
	}

	rec := &FeatureRecord{}
	rec.Quality1 = coerceFloat(raw, constants.FieldQuality1, verr)
	rec.Quality2 = coerceFloat(raw, constants.FieldQuality2, verr)
	rec.Quality3 = coerceFloat(raw, constants.FieldQuality3, verr)
	rec.SmallBags = coerceFloat(raw, constants.FieldSmallBags, verr)
	rec.LargeBags = coerceFloat(raw, constants.FieldLargeBags, verr)
	rec.XLargeBags = coerceFloat(raw, constants.FieldXLargeBags, verr)
	rec.Year = coerceInt(raw, constants.FieldYear, verr)
	rec.Type = coerceString(raw, constants.FieldType)
	rec.Region = coerceString(raw, constants.FieldRegion)

	if len(verr.FieldErrors) > 0 {
		return nil, verr
	}
	return rec, nil
}

func coerceFloat(raw map[string]any, key string, verr *ValidationError) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			verr.FieldErrors = append(verr.FieldErrors, FieldError{Field: key, Reason: fmt.Sprintf("cannot convert %q to float", v)})
			return 0
		}
		return f
	default:
		verr.FieldErrors = append(verr.FieldErrors, FieldError{Field: key, Reason: fmt.Sprintf("expected number, got %T", raw[key])})
		return 0
	}
}

func coerceInt(raw map[string]any, key string, verr *ValidationError) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			verr.FieldErrors = append(verr.FieldErrors, FieldError{Field: key, Reason: fmt.Sprintf("cannot convert %q to int", v)})
			return 0
		}
		return n
	default:
		verr.FieldErrors = append(verr.FieldErrors, FieldError{Field: key, Reason: fmt.Sprintf("expected integer, got %T", raw[key])})
		return 0
	}
}

func coerceString(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return fmt.Sprint(raw[key])
}

// ExampleRecord backs the /features endpoint and the web form defaults.
func ExampleRecord() FeatureRecord {
	return FeatureRecord{
		Quality1:   5000,
		Quality2:   10000,
		Quality3:   2000,
		SmallBags:  3000,
		LargeBags:  500,
		XLargeBags: 100,
		Year:       2023,
		Type:       string(constants.TypeOrganic),
		Region:     "LosAngeles",
	}
}
