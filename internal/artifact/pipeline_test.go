// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package artifact

import (
	"math"
	"strings"
	"testing"
)

func testNumericBlock() numericBlock {
	return numericBlock{
		Features: []string{"avg_temp", "rainfall_mm"},
		Medians:  []float64{20, 1000},
		Means:    []float64{20, 1000},
		Scales:   []float64{5, 500},
	}
}

func testCategoricalBlock() categoricalBlock {
	return categoricalBlock{
		Features:   []string{"country", "crop"},
		Categories: [][]string{{"India", "Brazil"}, {"Wheat", "Rice"}},
	}
}

func TestNewPipeline_Width(t *testing.T) {
	p, err := newPipeline(testNumericBlock(), testCategoricalBlock())
	if err != nil {
		t.Fatalf("newPipeline() error = %v", err)
	}
	// 2 numeric + 2 countries + 2 crops
	if p.Width() != 6 {
		t.Errorf("Width() = %d, want 6", p.Width())
	}
}

func TestNewPipeline_LengthMismatch(t *testing.T) {
	num := testNumericBlock()
	num.Scales = num.Scales[:1]

	if _, err := newPipeline(num, testCategoricalBlock()); err == nil {
		t.Error("expected error for mismatched numeric parameter lengths")
	}
}

func TestNewPipeline_ZeroScale(t *testing.T) {
	num := testNumericBlock()
	num.Scales[0] = 0

	if _, err := newPipeline(num, testCategoricalBlock()); err == nil {
		t.Error("expected error for zero scale")
	}
}

func TestFeatureRow_Encoding(t *testing.T) {
	p, err := newPipeline(testNumericBlock(), testCategoricalBlock())
	if err != nil {
		t.Fatal(err)
	}

	row, err := p.FeatureRow(
		map[string]float64{"avg_temp": 25, "rainfall_mm": 1500},
		map[string]string{"country": "Brazil", "crop": "Wheat"},
	)
	if err != nil {
		t.Fatalf("FeatureRow() error = %v", err)
	}

	want := []float64{1, 1, 0, 1, 1, 0} // (25-20)/5, (1500-1000)/500, country=Brazil, crop=Wheat
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %g, want %g", i, row[i], want[i])
		}
	}
}

func TestFeatureRow_NaNImputed(t *testing.T) {
	p, err := newPipeline(testNumericBlock(), testCategoricalBlock())
	if err != nil {
		t.Fatal(err)
	}

	row, err := p.FeatureRow(
		map[string]float64{"avg_temp": math.NaN(), "rainfall_mm": 1000},
		map[string]string{"country": "India", "crop": "Rice"},
	)
	if err != nil {
		t.Fatalf("FeatureRow() error = %v", err)
	}
	// NaN imputed with the median 20, then scaled to 0
	if row[0] != 0 {
		t.Errorf("imputed avg_temp = %g, want 0", row[0])
	}
}

func TestFeatureRow_UnknownCategoryEncodesToZeros(t *testing.T) {
	p, err := newPipeline(testNumericBlock(), testCategoricalBlock())
	if err != nil {
		t.Fatal(err)
	}

	row, err := p.FeatureRow(
		map[string]float64{"avg_temp": 20, "rainfall_mm": 1000},
		map[string]string{"country": "Atlantis", "crop": "Wheat"},
	)
	if err != nil {
		t.Fatalf("FeatureRow() error = %v", err)
	}
	if row[2] != 0 || row[3] != 0 {
		t.Errorf("unknown country block = [%g, %g], want all zeros", row[2], row[3])
	}
}

func TestFeatureRow_MissingFeature(t *testing.T) {
	p, err := newPipeline(testNumericBlock(), testCategoricalBlock())
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.FeatureRow(
		map[string]float64{"avg_temp": 20},
		map[string]string{"country": "India", "crop": "Wheat"},
	)
	if err == nil || !strings.Contains(err.Error(), "rainfall_mm") {
		t.Errorf("expected missing-feature error naming rainfall_mm, got %v", err)
	}
}

func TestForest_Predict(t *testing.T) {
	f, err := newForest(forestBlock{
		NFeatures: 2,
		Trees: []Tree{
			{
				ChildrenLeft:  []int{1, -1, -1},
				ChildrenRight: []int{2, -1, -1},
				Feature:       []int{0, -2, -2},
				Threshold:     []float64{0.5, 0, 0},
				Value:         []float64{0, 10, 30},
			},
			{
				ChildrenLeft:  []int{-1},
				ChildrenRight: []int{-1},
				Feature:       []int{-2},
				Threshold:     []float64{0},
				Value:         []float64{20},
			},
		},
	})
	if err != nil {
		t.Fatalf("newForest() error = %v", err)
	}

	tests := []struct {
		name string
		row  []float64
		want float64
	}{
		{"left branch", []float64{0, 0}, 15}, // (10+20)/2
		{"right branch", []float64{1, 0}, 25}, // (30+20)/2
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Predict(tt.row)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Predict(%v) = %g, want %g", tt.row, got, tt.want)
			}
		})
	}
}

func TestForest_RowWidthMismatch(t *testing.T) {
	f, err := newForest(forestBlock{
		NFeatures: 3,
		Trees: []Tree{{
			ChildrenLeft:  []int{-1},
			ChildrenRight: []int{-1},
			Feature:       []int{-2},
			Threshold:     []float64{0},
			Value:         []float64{1},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Predict([]float64{1, 2}); err == nil {
		t.Error("expected error for short feature row")
	}
}

func TestForest_InvalidTrees(t *testing.T) {
	tests := []struct {
		name string
		fb   forestBlock
	}{
		{
			name: "no trees",
			fb:   forestBlock{NFeatures: 2},
		},
		{
			name: "child index out of range",
			fb: forestBlock{
				NFeatures: 2,
				Trees: []Tree{{
					ChildrenLeft:  []int{5},
					ChildrenRight: []int{6},
					Feature:       []int{0},
					Threshold:     []float64{0},
					Value:         []float64{0},
				}},
			},
		},
		{
			name: "feature index out of range",
			fb: forestBlock{
				NFeatures: 2,
				Trees: []Tree{{
					ChildrenLeft:  []int{1, -1, -1},
					ChildrenRight: []int{2, -1, -1},
					Feature:       []int{7, -2, -2},
					Threshold:     []float64{0, 0, 0},
					Value:         []float64{0, 1, 2},
				}},
			},
		},
		{
			name: "array length mismatch",
			fb: forestBlock{
				NFeatures: 2,
				Trees: []Tree{{
					ChildrenLeft:  []int{-1},
					ChildrenRight: []int{-1},
					Feature:       []int{-2},
					Threshold:     []float64{0},
					Value:         []float64{0, 1},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newForest(tt.fb); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
