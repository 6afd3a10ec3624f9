// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package artifact

import (
	"fmt"
	"math"
)

// Pipeline holds the fitted preprocessing parameters exported by the offline
// trainer: median imputation and standard scaling for numeric features, and
// one-hot encoding for categorical features.
//
// The encoded feature row layout is all numeric features (scaled), followed by
// the one-hot block of each categorical feature, in the fitted order.
type Pipeline struct {
	numericFeatures []string
	medians         []float64
	means           []float64
	scales          []float64

	categoricalFeatures []string
	categories          [][]string
	// categoryIndex[i][cat] is the position of cat within feature i's one-hot block.
	categoryIndex []map[string]int

	width int
}

// newPipeline builds a Pipeline from the parsed model file blocks.
func newPipeline(num numericBlock, cat categoricalBlock) (*Pipeline, error) {
	n := len(num.Features)
	if n == 0 {
		return nil, fmt.Errorf("pipeline: no numeric features")
	}
	if len(num.Medians) != n || len(num.Means) != n || len(num.Scales) != n {
		return nil, fmt.Errorf("pipeline: numeric parameter lengths disagree (features=%d medians=%d means=%d scales=%d)",
			n, len(num.Medians), len(num.Means), len(num.Scales))
	}
	for i, s := range num.Scales {
		if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("pipeline: scale for feature %q is %v", num.Features[i], s)
		}
	}
	if len(cat.Features) != len(cat.Categories) {
		return nil, fmt.Errorf("pipeline: categorical feature/category lengths disagree (%d vs %d)",
			len(cat.Features), len(cat.Categories))
	}

	p := &Pipeline{
		numericFeatures:     num.Features,
		medians:             num.Medians,
		means:               num.Means,
		scales:              num.Scales,
		categoricalFeatures: cat.Features,
		categories:          cat.Categories,
		width:               n,
	}

	p.categoryIndex = make([]map[string]int, len(cat.Features))
	for i, cats := range cat.Categories {
		if len(cats) == 0 {
			return nil, fmt.Errorf("pipeline: categorical feature %q has no categories", cat.Features[i])
		}
		idx := make(map[string]int, len(cats))
		for j, c := range cats {
			if _, dup := idx[c]; dup {
				return nil, fmt.Errorf("pipeline: categorical feature %q has duplicate category %q", cat.Features[i], c)
			}
			idx[c] = j
		}
		p.categoryIndex[i] = idx
		p.width += len(cats)
	}

	return p, nil
}

// Width returns the length of the encoded feature row.
func (p *Pipeline) Width() int {
	return p.width
}

// NumericFeatures returns the numeric feature names in fitted order.
func (p *Pipeline) NumericFeatures() []string {
	return p.numericFeatures
}

// CategoricalFeatures returns the categorical feature names in fitted order.
func (p *Pipeline) CategoricalFeatures() []string {
	return p.categoricalFeatures
}

// Categories returns the fitted category list for the named feature,
// or nil if the feature is unknown.
func (p *Pipeline) Categories(feature string) []string {
	for i, f := range p.categoricalFeatures {
		if f == feature {
			return p.categories[i]
		}
	}
	return nil
}

// FeatureRow encodes one observation into the model's input vector.
//
// Numeric values that are NaN are imputed with the fitted median before
// scaling. Categorical values outside the fitted vocabulary encode to an
// all-zero block, mirroring the encoder's ignore-unknown behavior; callers
// that want to reject unknown values must check membership beforehand.
func (p *Pipeline) FeatureRow(numeric map[string]float64, categorical map[string]string) ([]float64, error) {
	row := make([]float64, p.width)

	for i, name := range p.numericFeatures {
		v, ok := numeric[name]
		if !ok {
			return nil, fmt.Errorf("pipeline: missing numeric feature %q", name)
		}
		if math.IsNaN(v) {
			v = p.medians[i]
		}
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("pipeline: numeric feature %q is infinite", name)
		}
		row[i] = (v - p.means[i]) / p.scales[i]
	}

	offset := len(p.numericFeatures)
	for i, name := range p.categoricalFeatures {
		v, ok := categorical[name]
		if !ok {
			return nil, fmt.Errorf("pipeline: missing categorical feature %q", name)
		}
		if j, known := p.categoryIndex[i][v]; known {
			row[offset+j] = 1
		}
		offset += len(p.categories[i])
	}

	return row, nil
}
