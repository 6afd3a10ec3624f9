// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"net/http"
	"time"

	"github.com/cropcast/cropcast/internal/inference"
	"github.com/cropcast/cropcast/internal/models"
)

// Predict handles single-crop yield prediction requests.
//
// @Summary Predict crop yield
// @Description Predicts the yield of one crop for a country and set of environmental conditions using the loaded model artifact. Yields are in hectograms per hectare, rounded to two decimals.
// @Tags Inference
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Observation and crop to score"
// @Success 200 {object} models.APIResponse{data=models.Prediction} "Prediction computed successfully"
// @Failure 400 {object} models.APIResponse "Validation error or unsupported crop/country"
// @Failure 503 {object} models.APIResponse "Model artifact not loaded"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	obs := inference.Observation{
		Country:          req.Country,
		RainfallMM:       req.RainfallMM,
		PesticidesTonnes: req.PesticidesTonnes,
		AvgTempC:         req.AvgTempC,
	}

	start := time.Now()
	result, err := h.service.Predict(r.Context(), req.Crop, obs)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, models.Prediction{
		Crop:           result.Crop,
		Country:        req.Country,
		PredictedYield: roundYield(result.PredictedYield),
		YieldUnit:      models.YieldUnit,
		ModelVersion:   result.ModelVersion,
	}, time.Since(start))
}
