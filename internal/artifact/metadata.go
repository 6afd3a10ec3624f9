// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package artifact

import (
	"fmt"
	"time"
)

// Metadata is the sibling record shipped alongside the model file. It names
// the model and pins the vocabulary the service validates requests against:
// the crop and country lists here are the single source of truth for what the
// loaded model supports.
type Metadata struct {
	ModelName           string             `json:"model_name"`
	SupportedCrops      []string           `json:"supported_crops"`
	SupportedCountries  []string           `json:"supported_countries"`
	NumericFeatures     []string           `json:"numeric_features"`
	CategoricalFeatures []string           `json:"categorical_features"`
	TrainedAt           *time.Time         `json:"trained_at,omitempty"`
	Metrics             map[string]float64 `json:"metrics,omitempty"`
}

// validate checks the metadata record for internal consistency.
func (m *Metadata) validate() error {
	if m.ModelName == "" {
		return fmt.Errorf("metadata: model_name is required")
	}
	if len(m.SupportedCrops) == 0 {
		return fmt.Errorf("metadata: supported_crops is empty")
	}
	if len(m.SupportedCountries) == 0 {
		return fmt.Errorf("metadata: supported_countries is empty")
	}
	if len(m.NumericFeatures) == 0 {
		return fmt.Errorf("metadata: numeric_features is empty")
	}
	if len(m.CategoricalFeatures) == 0 {
		return fmt.Errorf("metadata: categorical_features is empty")
	}
	if err := checkDuplicates("supported_crops", m.SupportedCrops); err != nil {
		return err
	}
	return checkDuplicates("supported_countries", m.SupportedCountries)
}

func checkDuplicates(field string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("metadata: %s contains an empty entry", field)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("metadata: %s contains duplicate entry %q", field, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
