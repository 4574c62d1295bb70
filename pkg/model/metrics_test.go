package model

import (
	"math"
	"testing"
)

func TestMetricsPerfectPrediction(t *testing.T) {
	y := []float64{1.1, 2.2, 3.3}
	if got := RMSE(y, y); got != 0 {
		t.Errorf("RMSE of perfect prediction = %v, want 0", got)
	}
	if got := R2(y, y); got != 1 {
		t.Errorf("R2 of perfect prediction = %v, want 1", got)
	}
}

func TestRMSEKnownValue(t *testing.T) {
	yTrue := []float64{0, 0, 0, 0}
	yPred := []float64{2, 2, 2, 2}
	if got := RMSE(yTrue, yPred); got != 2 {
		t.Errorf("RMSE = %v, want 2", got)
	}
}

func TestR2MeanPredictionIsZero(t *testing.T) {
	yTrue := []float64{1, 2, 3}
	yPred := []float64{2, 2, 2} // predicting the mean explains nothing
	if got := R2(yTrue, yPred); math.Abs(got) > 1e-12 {
		t.Errorf("R2 of mean prediction = %v, want 0", got)
	}
}

func TestR2ConstantTarget(t *testing.T) {
	yTrue := []float64{5, 5, 5}
	if got := R2(yTrue, []float64{5, 5, 5}); got != 0 {
		t.Errorf("R2 with zero target variance = %v, want 0", got)
	}
}
