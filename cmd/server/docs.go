// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

// Package main provides the Cropcast HTTP server
//
// Cropcast API serves crop yield predictions and ranked crop recommendations
// from an offline-trained random forest artifact.
//
// @title Cropcast API
// @version 1.0
// @description Crop yield prediction and recommendation service backed by an offline-trained random forest artifact.
// @description
// @description ## Features
// @description
// @description - **Yield Prediction**: Predict hg/ha yield for a crop under given environmental conditions
// @description - **Crop Recommendation**: Rank all supported crops by predicted yield for a location
// @description - **Model Introspection**: Inspect the loaded artifact's vocabulary and features
// @description - **Hot Reload**: Optional background reload when the artifact changes on disk
// @description
// @description ## Authentication
// @description
// @description Authentication mode is configurable (none, basic, jwt).
// @description In jwt mode, use `/api/v1/auth/login` to obtain a bearer token.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-01T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/cropcast/cropcast
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token obtained from /api/v1/auth/login. Format: "Bearer {token}"
package main
