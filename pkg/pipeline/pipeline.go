// Package pipeline assembles preprocessing and regression into the single
// fitted artifact the prediction service loads at startup.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/dataprep"
	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/model"
	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/stats"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
)

// ColumnTransformer standardizes the seven numeric features and one-hot
// encodes type and region. The encoded row layout is numeric block first,
// then the type block, then the region block.
type ColumnTransformer struct {
	Scaler        *stats.StandardScaler
	TypeEncoder   *dataprep.OneHotEncoder
	RegionEncoder *dataprep.OneHotEncoder
}

func numericRow(rec models.FeatureRecord) []float64 {
	return []float64{
		rec.Quality1, rec.Quality2, rec.Quality3,
		rec.SmallBags, rec.LargeBags, rec.XLargeBags,
		float64(rec.Year),
	}
}

// Fit learns scaling statistics and category vocabularies from the
// training records.
func (t *ColumnTransformer) Fit(records []models.FeatureRecord) error {
	if len(records) == 0 {
		return errors.New("transformer: no records to fit")
	}
	numeric := make([][]float64, len(records))
	types := make([]string, len(records))
	regions := make([]string, len(records))
	for i, rec := range records {
		numeric[i] = numericRow(rec)
		types[i] = rec.Type
		regions[i] = rec.Region
	}

	t.Scaler = stats.NewStandardScaler()
	if err := t.Scaler.Fit(numeric); err != nil {
		return err
	}
	t.TypeEncoder = dataprep.FitOneHot(types)
	t.RegionEncoder = dataprep.FitOneHot(regions)
	return nil
}

// TransformRow encodes a single record into a feature vector.
func (t *ColumnTransformer) TransformRow(rec models.FeatureRecord) []float64 {
	out := t.Scaler.TransformRow(numericRow(rec))
	out = append(out, t.TypeEncoder.Encode(rec.Type)...)
	out = append(out, t.RegionEncoder.Encode(rec.Region)...)
	return out
}

// Transform encodes a batch of records.
func (t *ColumnTransformer) Transform(records []models.FeatureRecord) [][]float64 {
	out := make([][]float64, len(records))
	for i, rec := range records {
		out[i] = t.TransformRow(rec)
	}
	return out
}

// Width is the encoded feature vector length.
func (t *ColumnTransformer) Width() int {
	return 7 + t.TypeEncoder.Width() + t.RegionEncoder.Width()
}

// Config carries the regressor hyperparameters exposed as trainer flags.
type Config struct {
	Estimators   int
	MaxDepth     int
	LearningRate float64
}

// DefaultConfig mirrors the reference model settings.
func DefaultConfig() Config {
	return Config{Estimators: 100, MaxDepth: 6, LearningRate: 0.1}
}

// Predictor is the fitted transform+regression artifact. Once fitted it is
// immutable: concurrent Predict calls share it without coordination.
type Predictor struct {
	Transformer *ColumnTransformer
	Regressor   *model.GradientBoosting
	TrainedAt   time.Time
}

// NewPredictor builds an unfitted predictor for the given config.
func NewPredictor(cfg Config) *Predictor {
	reg := model.NewGradientBoosting()
	reg.NEstimators = cfg.Estimators
	reg.MaxDepth = cfg.MaxDepth
	reg.LearningRate = cfg.LearningRate
	return &Predictor{
		Transformer: &ColumnTransformer{},
		Regressor:   reg,
	}
}

// Fit trains transformer and regressor on the training records only.
func (p *Predictor) Fit(records []models.FeatureRecord, prices []float64) error {
	if len(records) != len(prices) {
		return errors.New("pipeline: records and prices length mismatch")
	}
	if err := p.Transformer.Fit(records); err != nil {
		return fmt.Errorf("fit transformer: %w", err)
	}
	if err := p.Regressor.Fit(p.Transformer.Transform(records), prices); err != nil {
		return fmt.Errorf("fit regressor: %w", err)
	}
	p.TrainedAt = time.Now().UTC()
	return nil
}

// Predict maps one record to a raw (unrounded) price.
func (p *Predictor) Predict(rec models.FeatureRecord) (float64, error) {
	if p.Regressor == nil || !p.Regressor.Fitted() {
		return 0, errors.New("pipeline: predictor is not fitted")
	}
	return p.Regressor.PredictRow(p.Transformer.TransformRow(rec)), nil
}

// PredictAll maps a batch of records to raw prices.
func (p *Predictor) PredictAll(records []models.FeatureRecord) ([]float64, error) {
	out := make([]float64, len(records))
	for i, rec := range records {
		v, err := p.Predict(rec)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
