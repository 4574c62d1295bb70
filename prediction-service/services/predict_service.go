package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/pipeline"
	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/storage"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
)

// ErrModelNotLoaded is returned while the service runs in the unloaded
// state (no artifact found at startup).
var ErrModelNotLoaded = errors.New("model is not loaded, run the trainer to produce an artifact")

type PredictService interface {
	ModelLoaded() bool
	// Predict returns the price for one record, rounded to 2 decimals.
	Predict(ctx context.Context, rec models.FeatureRecord) (float64, error)
}

type predictService struct {
	predictor *pipeline.Predictor // nil in the unloaded state, never mutated
	history   *storage.HistoryStore
	logger    *zap.Logger
}

// NewPredictService wraps the loaded predictor. predictor and history may
// both be nil; the service then degrades instead of failing.
func NewPredictService(predictor *pipeline.Predictor, history *storage.HistoryStore, logger *zap.Logger) PredictService {
	return &predictService{
		predictor: predictor,
		history:   history,
		logger:    logger,
	}
}

func (s *predictService) ModelLoaded() bool { return s.predictor != nil }

func (s *predictService) Predict(ctx context.Context, rec models.FeatureRecord) (float64, error) {
	if s.predictor == nil {
		return 0, ErrModelNotLoaded
	}
	raw, err := s.predictor.Predict(rec)
	if err != nil {
		return 0, err
	}
	price := RoundPrice(raw)

	if s.history != nil {
		// best effort, a logging failure never fails the prediction
		if err := s.history.Record(ctx, rec, price); err != nil {
			s.logger.Warn("failed to record prediction history", zap.Error(err))
		}
	}
	return price, nil
}

// RoundPrice rounds to exactly 2 decimal places, half away from zero.
func RoundPrice(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
