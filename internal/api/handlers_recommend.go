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

// Recommend handles ranked crop recommendation requests.
//
// @Summary Recommend crops by predicted yield
// @Description Scores every crop the loaded model supports for the given conditions and returns the top crops ranked by predicted yield. top_n defaults to the configured value when omitted. The operation is all-or-nothing: no partial rankings are returned.
// @Tags Inference
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Observation to rank crops for"
// @Success 200 {object} models.APIResponse{data=models.RecommendationResult} "Recommendation computed successfully"
// @Failure 400 {object} models.APIResponse "Validation error or unsupported country"
// @Failure 503 {object} models.APIResponse "Model artifact not loaded"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
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
	result, err := h.service.Recommend(r.Context(), req.TopN, obs)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	recommendations := make([]models.Recommendation, len(result.Crops))
	for i, rc := range result.Crops {
		recommendations[i] = models.Recommendation{
			Rank:           rc.Rank,
			Crop:           rc.Crop,
			PredictedYield: roundYield(rc.PredictedYield),
			YieldUnit:      models.YieldUnit,
		}
	}

	respondSuccess(w, http.StatusOK, models.RecommendationResult{
		Context: models.Observation{
			Country:          req.Country,
			RainfallMM:       req.RainfallMM,
			PesticidesTonnes: req.PesticidesTonnes,
			AvgTempC:         req.AvgTempC,
		},
		Recommendations: recommendations,
		ModelVersion:    result.ModelVersion,
	}, time.Since(start))
}
