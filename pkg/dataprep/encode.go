// Package dataprep provides categorical feature encoding.
package dataprep

import "sort"

// OneHotEncoder maps a categorical value to a binary indicator vector over
// the vocabulary observed at fit time. Unknown categories encode to the
// all-zero vector, matching the ignore-unknown behavior the service relies
// on for free-text type/region values.
type OneHotEncoder struct {
	// Categories is the sorted vocabulary. Sorted order keeps the encoding
	// stable across training runs.
	Categories []string
}

// FitOneHot builds an encoder over the unique values in the column.
func FitOneHot(values []string) *OneHotEncoder {
	seen := map[string]struct{}{}
	cats := make([]string, 0)
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			cats = append(cats, v)
		}
	}
	sort.Strings(cats)
	return &OneHotEncoder{Categories: cats}
}

// Width is the length of encoded vectors.
func (e *OneHotEncoder) Width() int { return len(e.Categories) }

// Encode returns the indicator vector for v.
func (e *OneHotEncoder) Encode(v string) []float64 {
	out := make([]float64, len(e.Categories))
	i := sort.SearchStrings(e.Categories, v)
	if i < len(e.Categories) && e.Categories[i] == v {
		out[i] = 1
	}
	return out
}

// Contains reports whether v is in the vocabulary.
func (e *OneHotEncoder) Contains(v string) bool {
	i := sort.SearchStrings(e.Categories, v)
	return i < len(e.Categories) && e.Categories[i] == v
}
