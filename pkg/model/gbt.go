package model

import "errors"

// GradientBoosting is a gradient-boosted ensemble of regression trees for
// squared loss: each stage fits a shallow tree to the residuals of the
// running prediction and is added with shrinkage. Fitting is sequential and
// free of randomness, so a fitted ensemble is fully reproducible.
type GradientBoosting struct {
	NEstimators  int
	MaxDepth     int
	LearningRate float64

	BaseScore float64
	Trees     []*RegressionTree
}

// NewGradientBoosting returns an ensemble with the reference
// hyperparameters (100 trees, depth 6, learning rate 0.1).
func NewGradientBoosting() *GradientBoosting {
	return &GradientBoosting{
		NEstimators:  100,
		MaxDepth:     6,
		LearningRate: 0.1,
	}
}

// Fitted reports whether Fit has completed.
func (g *GradientBoosting) Fitted() bool { return len(g.Trees) > 0 }

// Fit trains the ensemble.
func (g *GradientBoosting) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("gbt: empty X")
	}
	if len(y) != len(X) {
		return errors.New("gbt: X and y length mismatch")
	}
	if g.NEstimators <= 0 {
		return errors.New("gbt: NEstimators must be positive")
	}
	if g.LearningRate <= 0 {
		return errors.New("gbt: LearningRate must be positive")
	}

	sum := 0.0
	for _, v := range y {
		sum += v
	}
	g.BaseScore = sum / float64(len(y))

	pred := make([]float64, len(y))
	for i := range pred {
		pred[i] = g.BaseScore
	}

	residual := make([]float64, len(y))
	g.Trees = make([]*RegressionTree, 0, g.NEstimators)
	for m := 0; m < g.NEstimators; m++ {
		for i := range y {
			residual[i] = y[i] - pred[i]
		}
		tree := NewRegressionTree(g.MaxDepth)
		if err := tree.Fit(X, residual); err != nil {
			return err
		}
		for i := range pred {
			pred[i] += g.LearningRate * tree.PredictRow(X[i])
		}
		g.Trees = append(g.Trees, tree)
	}
	return nil
}

// PredictRow scores a single sample.
func (g *GradientBoosting) PredictRow(x []float64) float64 {
	out := g.BaseScore
	for _, tree := range g.Trees {
		out += g.LearningRate * tree.PredictRow(x)
	}
	return out
}

// Predict scores every row of X.
func (g *GradientBoosting) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = g.PredictRow(X[i])
	}
	return out
}
