package stats

import (
	"math"
	"testing"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := [][]float64{
		{1, 10},
		{2, 10},
		{3, 10},
	}
	s := NewStandardScaler()
	if err := s.Fit(X); err != nil {
		t.Fatal(err)
	}
	if !s.Fitted() {
		t.Fatal("scaler should report fitted")
	}
	if s.Mean[0] != 2 {
		t.Errorf("mean[0] = %v, want 2", s.Mean[0])
	}
	// constant column keeps std 1 so transform stays finite
	if s.Std[1] != 1 {
		t.Errorf("std of constant column = %v, want 1", s.Std[1])
	}

	out := s.Transform(X)
	if out[1][0] != 0 {
		t.Errorf("centered middle value = %v, want 0", out[1][0])
	}
	if out[0][1] != 0 || out[2][1] != 0 {
		t.Errorf("constant column should center to 0, got %v and %v", out[0][1], out[2][1])
	}
	if math.Abs(out[0][0]+out[2][0]) > 1e-12 {
		t.Errorf("standardized column not symmetric: %v vs %v", out[0][0], out[2][0])
	}
}

func TestStandardScalerTransformRowMatchesBatch(t *testing.T) {
	X := [][]float64{{1, 5}, {4, 9}, {7, 13}, {2, 6}}
	s := NewStandardScaler()
	if err := s.Fit(X); err != nil {
		t.Fatal(err)
	}
	batch := s.Transform(X)
	for i, row := range X {
		single := s.TransformRow(row)
		for j := range single {
			if single[j] != batch[i][j] {
				t.Fatalf("row %d col %d: %v != %v", i, j, single[j], batch[i][j])
			}
		}
	}
}

func TestStandardScalerEmptyMatrix(t *testing.T) {
	if err := NewStandardScaler().Fit(nil); err == nil {
		t.Fatal("expected error for empty matrix")
	}
}
