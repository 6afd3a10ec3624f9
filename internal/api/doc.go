// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

// Package api provides the HTTP layer of Cropcast: chi routing, request
// validation, and handlers for the prediction, recommendation, health, and
// model-metadata endpoints.
//
// Handler methods are split across files by concern:
//   - handlers.go: Handler struct and constructor
//   - handlers_helpers.go: response envelope and error mapping helpers
//   - handlers_predict.go: POST /api/v1/predict
//   - handlers_recommend.go: POST /api/v1/recommend
//   - handlers_health.go: health and probe endpoints
//   - handlers_model.go: GET /api/v1/model
//   - handlers_auth.go: POST /api/v1/auth/login (jwt mode only)
//
// All responses use the envelope {status, data, metadata, error} defined in
// internal/models, with machine-readable error codes.
package api
