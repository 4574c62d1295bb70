package model

import (
	"math"
	"testing"
)

func boostingFixture() ([][]float64, []float64) {
	X := make([][]float64, 0, 40)
	y := make([]float64, 0, 40)
	for i := 0; i < 40; i++ {
		v := float64(i) / 4
		X = append(X, []float64{v})
		y = append(y, 0.5+0.3*v)
	}
	return X, y
}

func TestGradientBoostingFitsLinearTrend(t *testing.T) {
	X, y := boostingFixture()
	g := NewGradientBoosting()
	g.NEstimators = 50
	g.MaxDepth = 3
	if err := g.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if !g.Fitted() {
		t.Fatal("ensemble should report fitted")
	}

	pred := g.Predict(X)
	if rmse := RMSE(y, pred); rmse > 0.1 {
		t.Errorf("training RMSE %v too high for a learnable trend", rmse)
	}
	// base score is the target mean
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))
	if math.Abs(g.BaseScore-mean) > 1e-12 {
		t.Errorf("BaseScore = %v, want mean %v", g.BaseScore, mean)
	}
}

func TestGradientBoostingDeterministic(t *testing.T) {
	X, y := boostingFixture()

	a := NewGradientBoosting()
	b := NewGradientBoosting()
	a.NEstimators, b.NEstimators = 25, 25
	a.MaxDepth, b.MaxDepth = 3, 3
	if err := a.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	for i, row := range X {
		if a.PredictRow(row) != b.PredictRow(row) {
			t.Fatalf("two identical fits disagree on row %d", i)
		}
	}
}

func TestGradientBoostingConfigErrors(t *testing.T) {
	X, y := boostingFixture()

	g := NewGradientBoosting()
	if err := g.Fit(nil, nil); err == nil {
		t.Error("expected error for empty X")
	}

	g = NewGradientBoosting()
	g.NEstimators = 0
	if err := g.Fit(X, y); err == nil {
		t.Error("expected error for zero estimators")
	}

	g = NewGradientBoosting()
	g.LearningRate = 0
	if err := g.Fit(X, y); err == nil {
		t.Error("expected error for zero learning rate")
	}
}
