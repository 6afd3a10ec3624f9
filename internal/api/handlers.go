// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"time"

	"github.com/cropcast/cropcast/internal/artifact"
	"github.com/cropcast/cropcast/internal/auth"
	"github.com/cropcast/cropcast/internal/config"
	"github.com/cropcast/cropcast/internal/inference"
)

// Handler contains dependencies for the API handlers.
type Handler struct {
	service          *inference.Service
	store            *artifact.Store
	config           *config.Config
	jwtManager       *auth.JWTManager
	basicAuthManager *auth.BasicAuthManager
	version          string
	startTime        time.Time
}

// NewHandler creates an API handler.
//
// Dependencies:
//   - service: inference service scoring observations against the store
//   - store: artifact store, read directly by health and model-info endpoints
//   - cfg: application configuration
//   - jwtManager: token manager, nil unless auth_mode is "jwt"
//   - basicAuthManager: credential checker, nil unless auth_mode is "basic"
//     or "jwt" (the login endpoint verifies passwords through it)
func NewHandler(service *inference.Service, store *artifact.Store, cfg *config.Config, jwtManager *auth.JWTManager, basicAuthManager *auth.BasicAuthManager, version string) *Handler {
	return &Handler{
		service:          service,
		store:            store,
		config:           cfg,
		jwtManager:       jwtManager,
		basicAuthManager: basicAuthManager,
		version:          version,
		startTime:        time.Now(),
	}
}
