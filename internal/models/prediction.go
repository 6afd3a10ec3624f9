// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package models

import (
	"time"
)

// YieldUnit is the unit of all predicted yields: hectograms per hectare.
// This matches the unit of the FAO yield data the model is trained on.
const YieldUnit = "hg/ha"

// Observation is a single set of environmental conditions for one growing
// season in one country. It is the model input shared by the predict and
// recommend operations.
type Observation struct {
	Country          string  `json:"country"`
	RainfallMM       float64 `json:"rainfall_mm"`
	PesticidesTonnes float64 `json:"pesticides_tonnes"`
	AvgTempC         float64 `json:"avg_temp"`
}

// Prediction is the result of a single-crop yield prediction.
//
// Example:
//
//	{
//	  "crop": "Wheat",
//	  "country": "India",
//	  "predicted_yield": 30543.21,
//	  "yield_unit": "hg/ha",
//	  "model_version": "crop_yield_rf_v3"
//	}
type Prediction struct {
	Crop           string  `json:"crop"`
	Country        string  `json:"country"`
	PredictedYield float64 `json:"predicted_yield"`
	YieldUnit      string  `json:"yield_unit"`
	ModelVersion   string  `json:"model_version"`
}

// Recommendation is one entry in a ranked crop recommendation.
// Rank is 1-based; rank 1 is the crop with the highest predicted yield.
type Recommendation struct {
	Rank           int     `json:"rank"`
	Crop           string  `json:"crop"`
	PredictedYield float64 `json:"predicted_yield"`
	YieldUnit      string  `json:"yield_unit"`
}

// RecommendationResult is the full response payload of a recommendation
// request. Context echoes the observation the ranking was computed for.
type RecommendationResult struct {
	Context         Observation      `json:"context"`
	Recommendations []Recommendation `json:"recommendations"`
	ModelVersion    string           `json:"model_version"`
}

// ModelInfoResponse describes the currently loaded model artifact.
// The supported-country list is truncated to keep the payload small; the
// TotalCountries field always reflects the full vocabulary size.
type ModelInfoResponse struct {
	ModelName           string   `json:"model_name"`
	SchemaVersion       string   `json:"schema_version"`
	SupportedCrops      []string `json:"supported_crops"`
	SupportedCountries  []string `json:"supported_countries"`
	TotalCountries      int      `json:"total_countries"`
	NumericFeatures     []string `json:"numeric_features"`
	CategoricalFeatures []string `json:"categorical_features"`
	LoadedAt            time.Time `json:"loaded_at"`
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	ModelLoaded bool    `json:"model_loaded"`
	ModelName   string  `json:"model_name,omitempty"`
	Uptime      float64 `json:"uptime_seconds"`
}
