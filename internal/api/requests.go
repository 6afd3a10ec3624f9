// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

// Request body structs with go-playground/validator v10 tags. Struct-tag
// validation catches shape errors (missing fields, absurd values) at the API
// boundary; the inference service re-checks vocabulary membership and the
// configured numeric bounds independently.
package api

// PredictRequest is the request body for POST /api/v1/predict.
//
// Fields:
//   - Crop: crop to score, must be in the loaded model's vocabulary
//   - Country: country name, must be in the loaded model's vocabulary
//   - RainfallMM: average annual rainfall in millimeters
//   - PesticidesTonnes: pesticide use in tonnes
//   - AvgTempC: average temperature in degrees Celsius
type PredictRequest struct {
	Crop             string  `json:"crop" validate:"required"`
	Country          string  `json:"country" validate:"required"`
	RainfallMM       float64 `json:"rainfall_mm" validate:"gte=0"`
	PesticidesTonnes float64 `json:"pesticides_tonnes" validate:"gte=0"`
	AvgTempC         float64 `json:"avg_temp" validate:"gte=-90,lte=90"`
}

// RecommendRequest is the request body for POST /api/v1/recommend.
// TopN is optional; zero means "use the configured default". The upper bound
// is enforced against configuration by the inference service, so the tag only
// rejects negatives here.
type RecommendRequest struct {
	Country          string  `json:"country" validate:"required"`
	RainfallMM       float64 `json:"rainfall_mm" validate:"gte=0"`
	PesticidesTonnes float64 `json:"pesticides_tonnes" validate:"gte=0"`
	AvgTempC         float64 `json:"avg_temp" validate:"gte=-90,lte=90"`
	TopN             int     `json:"top_n" validate:"omitempty,gte=1"`
}
