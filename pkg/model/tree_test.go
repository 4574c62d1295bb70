package model

import "testing"

func TestRegressionTreeLearnsStepFunction(t *testing.T) {
	// y = 1 for x < 5, y = 3 for x >= 5; a depth-1 tree nails this
	X := [][]float64{{1}, {2}, {3}, {4}, {6}, {7}, {8}, {9}}
	y := []float64{1, 1, 1, 1, 3, 3, 3, 3}

	tree := NewRegressionTree(1)
	if err := tree.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if got := tree.PredictRow([]float64{0}); got != 1 {
		t.Errorf("predict(0) = %v, want 1", got)
	}
	if got := tree.PredictRow([]float64{10}); got != 3 {
		t.Errorf("predict(10) = %v, want 3", got)
	}
}

func TestRegressionTreePureLeaf(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}}
	y := []float64{5, 5, 5}

	tree := NewRegressionTree(3)
	if err := tree.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if !tree.Root.Leaf {
		t.Error("constant target should produce a single leaf")
	}
	if got := tree.PredictRow([]float64{2}); got != 5 {
		t.Errorf("predict = %v, want 5", got)
	}
}

func TestRegressionTreeDeterministic(t *testing.T) {
	X := [][]float64{{3, 1}, {1, 4}, {4, 1}, {5, 9}, {2, 6}, {5, 3}, {8, 9}, {7, 9}}
	y := []float64{1.2, 0.8, 1.4, 2.1, 1.0, 1.9, 2.8, 2.5}

	a := NewRegressionTree(3)
	b := NewRegressionTree(3)
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

func TestRegressionTreeInputErrors(t *testing.T) {
	tree := NewRegressionTree(2)
	if err := tree.Fit(nil, nil); err == nil {
		t.Error("expected error for empty X")
	}
	if err := tree.Fit([][]float64{{1}}, []float64{1, 2}); err == nil {
		t.Error("expected error for length mismatch")
	}
	if err := tree.Fit([][]float64{{1, 2}, {1}}, []float64{1, 2}); err == nil {
		t.Error("expected error for ragged rows")
	}
}
