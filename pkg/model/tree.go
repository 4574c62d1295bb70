// Package model implements the regression models behind the price predictor.
package model

import (
	"errors"
	"sort"
)

// RegressionTree is a CART-style tree fit on a squared-error criterion.
type RegressionTree struct {
	MaxDepth        int // 0 means no depth limit
	MinSamplesSplit int
	MinSamplesLeaf  int

	Root *TreeNode
}

// TreeNode is one node of a fitted tree. Exported fields so fitted trees
// round-trip through gob.
type TreeNode struct {
	Leaf      bool
	Feature   int
	Threshold float64 // x[Feature] <= Threshold goes left
	Value     float64 // leaf prediction
	Left      *TreeNode
	Right     *TreeNode
}

func NewRegressionTree(maxDepth int) *RegressionTree {
	return &RegressionTree{
		MaxDepth:        maxDepth,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
	}
}

// Fit grows the tree on X, y. Deterministic: features are scanned in order
// and a split is only replaced on a strictly better score.
func (t *RegressionTree) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("tree: empty X")
	}
	if len(y) != len(X) {
		return errors.New("tree: X and y length mismatch")
	}
	p := len(X[0])
	for i := range X {
		if len(X[i]) != p {
			return errors.New("tree: inconsistent number of features in X rows")
		}
	}

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	t.Root = t.buildNode(X, y, idx, 0)
	return nil
}

// PredictRow walks a single sample down the tree.
func (t *RegressionTree) PredictRow(x []float64) float64 {
	node := t.Root
	for !node.Leaf {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

// Predict returns predictions for every row of X.
func (t *RegressionTree) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = t.PredictRow(X[i])
	}
	return out
}

type treeSplit struct {
	feature   int
	threshold float64
	score     float64 // summed SSE of the two children, lower is better
	leftIdx   []int
	rightIdx  []int
}

func (t *RegressionTree) buildNode(X [][]float64, y []float64, idx []int, depth int) *TreeNode {
	sum, sumSq := 0.0, 0.0
	for _, i := range idx {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	n := float64(len(idx))
	mean := sum / n
	sse := sumSq - sum*sum/n

	leaf := &TreeNode{Leaf: true, Value: mean}
	if len(idx) < t.MinSamplesSplit || sse <= 0 {
		return leaf
	}
	if t.MaxDepth > 0 && depth >= t.MaxDepth {
		return leaf
	}

	best := treeSplit{feature: -1, score: sse}
	p := len(X[0])
	for f := 0; f < p; f++ {
		if s, ok := t.bestSplitForFeature(X, y, idx, f); ok && s.score < best.score {
			best = s
		}
	}
	if best.feature == -1 {
		return leaf
	}

	return &TreeNode{
		Feature:   best.feature,
		Threshold: best.threshold,
		Left:      t.buildNode(X, y, best.leftIdx, depth+1),
		Right:     t.buildNode(X, y, best.rightIdx, depth+1),
	}
}

// bestSplitForFeature sorts the samples by one feature and scans candidate
// thresholds with running sums, so each feature costs O(n log n).
func (t *RegressionTree) bestSplitForFeature(X [][]float64, y []float64, idx []int, f int) (treeSplit, bool) {
	ord := make([]int, len(idx))
	copy(ord, idx)
	sort.Slice(ord, func(a, b int) bool { return X[ord[a]][f] < X[ord[b]][f] })

	total, totalSq := 0.0, 0.0
	for _, i := range ord {
		total += y[i]
		totalSq += y[i] * y[i]
	}
	n := len(ord)

	best := treeSplit{feature: -1}
	found := false
	leftSum, leftSq := 0.0, 0.0
	for s := 1; s < n; s++ {
		i := ord[s-1]
		leftSum += y[i]
		leftSq += y[i] * y[i]
		if X[ord[s]][f] == X[i][f] {
			continue
		}
		if s < t.MinSamplesLeaf || n-s < t.MinSamplesLeaf {
			continue
		}
		nl, nr := float64(s), float64(n-s)
		rightSum := total - leftSum
		rightSq := totalSq - leftSq
		score := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
		if !found || score < best.score {
			best = treeSplit{
				feature:   f,
				threshold: (X[i][f] + X[ord[s]][f]) / 2,
				score:     score,
			}
			best.leftIdx = ord[:s]
			found = true
		}
	}
	if !found {
		return best, false
	}

	// materialize child index sets for the winning threshold
	left := make([]int, 0, n)
	right := make([]int, 0, n)
	for _, i := range ord {
		if X[i][f] <= best.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	best.leftIdx, best.rightIdx = left, right
	return best, true
}
