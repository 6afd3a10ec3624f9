// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"net/http"
	"strconv"

	"github.com/cropcast/cropcast/internal/artifact"
	"github.com/cropcast/cropcast/internal/models"
)

// ModelInfo describes the currently loaded model artifact.
//
// @Summary Get loaded model information
// @Description Returns the loaded model's name, vocabulary (supported crops and countries), and feature names. The country list is capped; total_countries always reflects the full vocabulary size.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ModelInfoResponse} "Model information retrieved successfully"
// @Failure 503 {object} models.APIResponse "Model artifact not loaded"
// @Router /model [get]
func (h *Handler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	a, ok := h.store.Get()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, ErrCodeModelNotLoaded,
			"model artifact is not loaded, retry later", nil)
		return
	}

	meta := a.Metadata()

	countries := meta.SupportedCountries
	if limit := h.config.API.MaxCountriesInInfo; limit > 0 && len(countries) > limit {
		countries = countries[:limit]
	}

	respondSuccess(w, http.StatusOK, models.ModelInfoResponse{
		ModelName:           meta.ModelName,
		SchemaVersion:       strconv.Itoa(artifact.SchemaVersion),
		SupportedCrops:      meta.SupportedCrops,
		SupportedCountries:  countries,
		TotalCountries:      len(meta.SupportedCountries),
		NumericFeatures:     meta.NumericFeatures,
		CategoricalFeatures: meta.CategoricalFeatures,
		LoadedAt:            a.LoadedAt(),
	}, 0)
}
