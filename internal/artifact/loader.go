// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package artifact

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// SchemaVersion is the model file schema this build understands.
const SchemaVersion = 1

// Feature names the vocabulary cross-checks key on. The trainer exports the
// crop and country one-hot encoders under these names.
const (
	cropFeature    = "crop"
	countryFeature = "country"
)

// modelFile mirrors the on-disk model.json layout.
type modelFile struct {
	SchemaVersion int              `json:"schema_version"`
	Numeric       numericBlock     `json:"numeric"`
	Categorical   categoricalBlock `json:"categorical"`
	Forest        forestBlock      `json:"forest"`
}

type numericBlock struct {
	Features []string  `json:"features"`
	Medians  []float64 `json:"medians"`
	Means    []float64 `json:"means"`
	Scales   []float64 `json:"scales"`
}

type categoricalBlock struct {
	Features   []string   `json:"features"`
	Categories [][]string `json:"categories"`
}

type forestBlock struct {
	NFeatures int    `json:"n_features"`
	Trees     []Tree `json:"trees"`
}

// Artifact is a fully loaded, immutable model: fitted preprocessing pipeline,
// forest, and metadata. An Artifact is never mutated after Load returns, so it
// is safe for unlimited concurrent use; replacement happens by swapping whole
// handles through a Store.
type Artifact struct {
	meta     *Metadata
	pipeline *Pipeline
	forest   *Forest
	loadedAt time.Time

	crops     map[string]struct{}
	countries map[string]struct{}
}

// Load reads and validates the model and metadata files, returning an
// immutable Artifact. Any structural problem in either file, or disagreement
// between them, is an error; callers at startup treat that as fatal.
func Load(modelPath, metadataPath string) (*Artifact, error) {
	meta, err := loadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	var mf modelFile
	if err := json.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", modelPath, err)
	}
	if mf.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("model file %s has schema_version %d, this build supports %d",
			modelPath, mf.SchemaVersion, SchemaVersion)
	}

	pipeline, err := newPipeline(mf.Numeric, mf.Categorical)
	if err != nil {
		return nil, err
	}
	forest, err := newForest(mf.Forest)
	if err != nil {
		return nil, err
	}
	if pipeline.Width() != forest.NumFeatures() {
		return nil, fmt.Errorf("encoded feature row width %d does not match forest n_features %d",
			pipeline.Width(), forest.NumFeatures())
	}

	if err := crossCheck(meta, pipeline); err != nil {
		return nil, err
	}

	a := &Artifact{
		meta:      meta,
		pipeline:  pipeline,
		forest:    forest,
		loadedAt:  time.Now().UTC(),
		crops:     toSet(meta.SupportedCrops),
		countries: toSet(meta.SupportedCountries),
	}
	return a, nil
}

// loadMetadata reads and validates the metadata file.
func loadMetadata(path string) (*Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return &meta, nil
}

// crossCheck verifies the model and metadata files describe the same model:
// the fitted encoder vocabularies for crop and country must match the
// metadata's supported lists, and the feature name lists must agree.
func crossCheck(meta *Metadata, p *Pipeline) error {
	if !sameStrings(meta.NumericFeatures, p.NumericFeatures()) {
		return fmt.Errorf("metadata numeric_features %v do not match model numeric features %v",
			meta.NumericFeatures, p.NumericFeatures())
	}
	if !sameStrings(meta.CategoricalFeatures, p.CategoricalFeatures()) {
		return fmt.Errorf("metadata categorical_features %v do not match model categorical features %v",
			meta.CategoricalFeatures, p.CategoricalFeatures())
	}

	if cats := p.Categories(cropFeature); cats != nil {
		if !sameSet(cats, meta.SupportedCrops) {
			return fmt.Errorf("model crop vocabulary (%d entries) does not match metadata supported_crops (%d entries)",
				len(cats), len(meta.SupportedCrops))
		}
	}
	if cats := p.Categories(countryFeature); cats != nil {
		if !sameSet(cats, meta.SupportedCountries) {
			return fmt.Errorf("model country vocabulary (%d entries) does not match metadata supported_countries (%d entries)",
				len(cats), len(meta.SupportedCountries))
		}
	}
	return nil
}

// Metadata returns the artifact's metadata record.
func (a *Artifact) Metadata() *Metadata {
	return a.meta
}

// Name returns the model name from the metadata record.
func (a *Artifact) Name() string {
	return a.meta.ModelName
}

// LoadedAt returns when this artifact handle was loaded.
func (a *Artifact) LoadedAt() time.Time {
	return a.loadedAt
}

// NumTrees returns the number of trees in the loaded forest.
func (a *Artifact) NumTrees() int {
	return a.forest.NumTrees()
}

// SupportsCrop reports whether the crop is in the model vocabulary.
func (a *Artifact) SupportsCrop(crop string) bool {
	_, ok := a.crops[crop]
	return ok
}

// SupportsCountry reports whether the country is in the model vocabulary.
func (a *Artifact) SupportsCountry(country string) bool {
	_, ok := a.countries[country]
	return ok
}

// Predict encodes one observation and returns the forest's yield prediction
// in hg/ha. Callers validate vocabulary membership first; unknown categorical
// values silently encode to all-zero blocks.
func (a *Artifact) Predict(numeric map[string]float64, categorical map[string]string) (float64, error) {
	row, err := a.pipeline.FeatureRow(numeric, categorical)
	if err != nil {
		return 0, err
	}
	return a.forest.Predict(row)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := toSet(a)
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
