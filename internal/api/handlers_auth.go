// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/cropcast/cropcast/internal/auth"
	"github.com/cropcast/cropcast/internal/logging"
	"github.com/cropcast/cropcast/internal/metrics"
	"github.com/cropcast/cropcast/internal/models"
	"github.com/cropcast/cropcast/internal/validation"
)

// loginRequestValidation is the validated request body for /auth/login.
type loginRequestValidation struct {
	Username string `validate:"required,min=1"`
	Password string `validate:"required,min=1"`
}

// Login handles JWT authentication requests.
// Only available when auth_mode is "jwt"; other modes never mount this route.
//
// @Summary Authenticate and obtain a JWT token
// @Description Verifies the admin credentials and returns a signed JWT token for use as an Authorization Bearer header. Only available when auth_mode is jwt.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "Token issued successfully"
// @Failure 400 {object} models.APIResponse "Malformed request body"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.jwtManager == nil || h.basicAuthManager == nil {
		respondError(w, http.StatusNotFound, ErrCodeAuthentication,
			"login is not available in this authentication mode", nil)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"request body is not valid JSON: "+err.Error(), nil)
		return
	}

	if validationErr := validation.ValidateStruct(&loginRequestValidation{
		Username: req.Username,
		Password: req.Password,
	}); validationErr != nil {
		apiErr := validationErr.ToAPIError()
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	if !h.basicAuthManager.ValidatePassword(req.Username, req.Password) {
		metrics.RecordAuthAttempt(auth.ModeJWT, false)
		logging.Ctx(r.Context()).Warn().
			Str("username", sanitizeLogValue(req.Username)).
			Msg("Login failed")
		respondError(w, http.StatusUnauthorized, ErrCodeAuthentication,
			"invalid username or password", nil)
		return
	}

	token, expiresAt, err := h.jwtManager.GenerateToken(req.Username)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Token generation failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal,
			"failed to generate token", nil)
		return
	}

	metrics.RecordAuthAttempt(auth.ModeJWT, true)
	respondSuccess(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  req.Username,
	}, 0)
}
