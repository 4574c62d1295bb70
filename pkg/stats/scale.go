// Package stats provides the numeric preprocessing used by the price model.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler rescales each column to zero mean and unit variance using
// statistics captured at fit time. Fields are exported so the fitted state
// survives gob serialization.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fitted reports whether Fit has been called.
func (s *StandardScaler) Fitted() bool { return len(s.Mean) > 0 }

// Fit captures per-column mean and standard deviation. Zero-variance
// columns get std 1 so Transform leaves them centered instead of dividing
// by zero.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("scaler: empty matrix")
	}
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)

	col := make([]float64, len(X))
	for j := 0; j < cols; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		s.Mean[j] = mean
		s.Std[j] = std
	}
	return nil
}

// Transform standardizes every row of X into a new matrix.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = s.TransformRow(row)
	}
	return out
}

// TransformRow standardizes a single row.
func (s *StandardScaler) TransformRow(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out
}
