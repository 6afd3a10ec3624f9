// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/cropcast/cropcast/internal/inference"
	"github.com/cropcast/cropcast/internal/logging"
	"github.com/cropcast/cropcast/internal/models"
	"github.com/cropcast/cropcast/internal/validation"
)

// Error codes returned in the response envelope.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeUnsupportedCrop    = "UNSUPPORTED_CROP"
	ErrCodeUnsupportedCountry = "UNSUPPORTED_COUNTRY"
	ErrCodeModelNotLoaded     = "MODEL_NOT_LOADED"
	ErrCodeAuthentication     = "AUTHENTICATION_ERROR"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// sanitizeLogValue removes control characters from strings to prevent log
// injection. Newlines and other control characters in attacker-supplied
// values could otherwise forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess sends a success envelope with the given payload.
func respondSuccess(w http.ResponseWriter, status int, data interface{}, inferenceTime time.Duration) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:       time.Now(),
			InferenceTimeMS: inferenceTime.Milliseconds(),
		},
	})
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondServiceError maps inference errors to envelope codes and HTTP status.
// Validation-class errors become 400, a missing artifact 503, anything else
// 500 with the cause logged but not leaked to the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var unsupported *inference.UnsupportedValueError
	var outOfRange *inference.OutOfRangeError

	switch {
	case errors.Is(err, inference.ErrModelNotLoaded):
		respondError(w, http.StatusServiceUnavailable, ErrCodeModelNotLoaded,
			"model artifact is not loaded, retry later", nil)
	case errors.As(err, &unsupported):
		code := ErrCodeUnsupportedCountry
		if unsupported.Field == "crop" {
			code = ErrCodeUnsupportedCrop
		}
		respondError(w, http.StatusBadRequest, code, err.Error(), map[string]interface{}{
			unsupported.Field: unsupported.Value,
		})
	case errors.As(err, &outOfRange):
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), map[string]interface{}{
			"field": outOfRange.Field,
			"value": outOfRange.Value,
			"min":   outOfRange.Min,
			"max":   outOfRange.Max,
		})
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Inference failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal,
			"an internal error occurred", nil)
	}
}

// decodeAndValidate decodes a JSON request body into v and runs struct-tag
// validation. On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"request body is not valid JSON: "+err.Error(), nil)
		return false
	}

	if validationErr := validation.ValidateStruct(v); validationErr != nil {
		apiErr := validationErr.ToAPIError()
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// roundYield rounds a predicted yield to two decimal places for display.
// Clamping to non-negative already happened in the inference service.
func roundYield(v float64) float64 {
	return math.Round(v*100) / 100
}
