// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package artifact

import (
	"fmt"
)

// Tree is one regression tree in flattened-array form. Node i is a leaf when
// ChildrenLeft[i] == -1; interior nodes route left when
// row[Feature[i]] <= Threshold[i].
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// predict walks the tree from the root and returns the leaf value.
func (t *Tree) predict(row []float64) float64 {
	i := 0
	for t.ChildrenLeft[i] != -1 {
		if row[t.Feature[i]] <= t.Threshold[i] {
			i = t.ChildrenLeft[i]
		} else {
			i = t.ChildrenRight[i]
		}
	}
	return t.Value[i]
}

// validate checks the tree's arrays for consistent lengths and in-range
// child and feature indices so prediction can never index out of bounds.
func (t *Tree) validate(treeIdx, nFeatures int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("forest: tree %d has no nodes", treeIdx)
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("forest: tree %d node array lengths disagree", treeIdx)
	}
	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left == -1 {
			continue
		}
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("forest: tree %d node %d has out-of-range children (%d, %d)", treeIdx, i, left, right)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= nFeatures {
			return fmt.Errorf("forest: tree %d node %d references feature %d of %d", treeIdx, i, t.Feature[i], nFeatures)
		}
	}
	return nil
}

// Forest is a random forest regressor: the prediction is the mean of the
// per-tree leaf values.
type Forest struct {
	nFeatures int
	trees     []Tree
}

// newForest builds and validates a Forest from the parsed model file block.
func newForest(fb forestBlock) (*Forest, error) {
	if fb.NFeatures <= 0 {
		return nil, fmt.Errorf("forest: n_features must be positive, got %d", fb.NFeatures)
	}
	if len(fb.Trees) == 0 {
		return nil, fmt.Errorf("forest: no trees")
	}
	for i := range fb.Trees {
		if err := fb.Trees[i].validate(i, fb.NFeatures); err != nil {
			return nil, err
		}
	}
	return &Forest{nFeatures: fb.NFeatures, trees: fb.Trees}, nil
}

// NumTrees returns the number of trees in the ensemble.
func (f *Forest) NumTrees() int {
	return len(f.trees)
}

// NumFeatures returns the expected feature row length.
func (f *Forest) NumFeatures() int {
	return f.nFeatures
}

// Predict returns the ensemble prediction for one encoded feature row.
func (f *Forest) Predict(row []float64) (float64, error) {
	if len(row) != f.nFeatures {
		return 0, fmt.Errorf("forest: feature row has %d values, model expects %d", len(row), f.nFeatures)
	}
	sum := 0.0
	for i := range f.trees {
		sum += f.trees[i].predict(row)
	}
	return sum / float64(len(f.trees)), nil
}
