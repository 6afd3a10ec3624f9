// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

// Package testinfra provides shared test fixtures, primarily a small
// deterministic model artifact whose predictions are known in closed form.
//
// The stub forest has two trees. Tree one is a single leaf worth 100 hg/ha.
// Tree two splits only on the crop one-hot block: Wheat scores 60000, Rice
// 40000, anything else 20000. The ensemble mean therefore gives:
//
//	Wheat -> 30050, Rice -> 20050, Maize -> 10050
//
// independent of the numeric inputs, which makes ranking assertions exact.
package testinfra

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/cropcast/cropcast/internal/artifact"
)

// Stub vocabulary and the exact yields the stub forest produces per crop.
var (
	StubCrops     = []string{"Wheat", "Rice", "Maize"}
	StubCountries = []string{"India", "Brazil"}

	StubYields = map[string]float64{
		"Wheat": 30050,
		"Rice":  20050,
		"Maize": 10050,
	}
)

// StubModelName is the model_name in the stub metadata.
const StubModelName = "crop_yield_rf_stub"

// TiedStubYield is the identical yield the tied stub produces for every crop
// except Maize.
const TiedStubYield = 25000.0

// stubModelJSON builds the model.json document for the stub artifact.
//
// Feature row layout: 3 scaled numerics, then country one-hot (2), then crop
// one-hot (3), so indices 5..7 are Wheat, Rice, Maize.
func stubModelJSON() map[string]interface{} {
	return map[string]interface{}{
		"schema_version": 1,
		"numeric": map[string]interface{}{
			"features": []string{"rainfall_mm", "pesticides_tonnes", "avg_temp"},
			"medians":  []float64{1000, 100, 20},
			"means":    []float64{1000, 100, 20},
			"scales":   []float64{500, 50, 5},
		},
		"categorical": map[string]interface{}{
			"features": []string{"country", "crop"},
			"categories": [][]string{
				StubCountries,
				StubCrops,
			},
		},
		"forest": map[string]interface{}{
			"n_features": 8,
			"trees": []map[string]interface{}{
				{
					"children_left":  []int{-1},
					"children_right": []int{-1},
					"feature":        []int{-2},
					"threshold":      []float64{0},
					"value":          []float64{100},
				},
				{
					"children_left":  []int{1, 3, -1, -1, -1},
					"children_right": []int{2, 4, -1, -1, -1},
					"feature":        []int{5, 6, -2, -2, -2},
					"threshold":      []float64{0.5, 0.5, 0, 0, 0},
					"value":          []float64{0, 0, 60000, 20000, 40000},
				},
			},
		},
	}
}

// stubTiedModelJSON builds a model.json variant whose single tree only
// penalizes Maize (crop one-hot index 7), so Wheat and Rice score the same
// TiedStubYield and Maize scores below it.
func stubTiedModelJSON() map[string]interface{} {
	doc := stubModelJSON()
	doc["forest"] = map[string]interface{}{
		"n_features": 8,
		"trees": []map[string]interface{}{
			{
				"children_left":  []int{1, -1, -1},
				"children_right": []int{2, -1, -1},
				"feature":        []int{7, -2, -2},
				"threshold":      []float64{0.5, 0, 0},
				"value":          []float64{0, TiedStubYield, 10000},
			},
		},
	}
	return doc
}

// stubMetadataJSON builds the metadata.json document for the stub artifact.
func stubMetadataJSON() map[string]interface{} {
	return map[string]interface{}{
		"model_name":           StubModelName,
		"supported_crops":      StubCrops,
		"supported_countries":  StubCountries,
		"numeric_features":     []string{"rainfall_mm", "pesticides_tonnes", "avg_temp"},
		"categorical_features": []string{"country", "crop"},
	}
}

// WriteStubModelFiles writes the stub model and metadata files into a temp
// directory and returns their paths.
func WriteStubModelFiles(t *testing.T) (modelPath, metadataPath string) {
	t.Helper()

	dir := t.TempDir()
	modelPath = filepath.Join(dir, "model.json")
	metadataPath = filepath.Join(dir, "metadata.json")

	writeJSON(t, modelPath, stubModelJSON())
	writeJSON(t, metadataPath, stubMetadataJSON())
	return modelPath, metadataPath
}

// LoadStubArtifact writes the stub files and loads them through the real
// artifact loader, so fixtures exercise the same code path as production.
func LoadStubArtifact(t *testing.T) *artifact.Artifact {
	t.Helper()

	modelPath, metadataPath := WriteStubModelFiles(t)
	a, err := artifact.Load(modelPath, metadataPath)
	if err != nil {
		t.Fatalf("loading stub artifact: %v", err)
	}
	return a
}

// LoadTiedStubArtifact loads a stub variant where Wheat and Rice predict the
// exact same yield, for ranking tie-break assertions.
func LoadTiedStubArtifact(t *testing.T) *artifact.Artifact {
	t.Helper()

	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	metadataPath := filepath.Join(dir, "metadata.json")
	writeJSON(t, modelPath, stubTiedModelJSON())
	writeJSON(t, metadataPath, stubMetadataJSON())

	a, err := artifact.Load(modelPath, metadataPath)
	if err != nil {
		t.Fatalf("loading tied stub artifact: %v", err)
	}
	return a
}

// WriteCorruptModelFiles writes a metadata file and a model file that fails
// to parse, for loader failure tests.
func WriteCorruptModelFiles(t *testing.T) (modelPath, metadataPath string) {
	t.Helper()

	dir := t.TempDir()
	modelPath = filepath.Join(dir, "model.json")
	metadataPath = filepath.Join(dir, "metadata.json")

	if err := os.WriteFile(modelPath, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing corrupt model file: %v", err)
	}
	writeJSON(t, metadataPath, stubMetadataJSON())
	return modelPath, metadataPath
}

func writeJSON(t *testing.T, path string, doc interface{}) {
	t.Helper()

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling fixture %s: %v", path, err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}
