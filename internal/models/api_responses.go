// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"crop": "Wheat", "predicted_yield": 30543.21, "yield_unit": "hg/ha"},
//	  "metadata": {
//	    "timestamp": "2026-08-25T12:00:00Z",
//	    "inference_time_ms": 2
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "UNSUPPORTED_CROP",
//	    "message": "crop \"Unicorn Fruit\" is not supported by the loaded model",
//	    "details": {"crop": "Unicorn Fruit"}
//	  },
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - InferenceTimeMS: Model inference time in milliseconds (omitted for non-inference endpoints)
type Metadata struct {
	Timestamp       time.Time `json:"timestamp"`
	InferenceTimeMS int64     `json:"inference_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters (HTTP 400)
//   - UNSUPPORTED_CROP: Crop not in the loaded model vocabulary (HTTP 400)
//   - UNSUPPORTED_COUNTRY: Country not in the loaded model vocabulary (HTTP 400)
//   - MODEL_NOT_LOADED: No model artifact available (HTTP 503)
//   - AUTHENTICATION_ERROR: Invalid/missing credentials (HTTP 401)
//   - RATE_LIMIT_EXCEEDED: Too many requests (HTTP 429)
//   - INTERNAL_ERROR: Unexpected server failure (HTTP 500)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// LoginRequest represents a login request for JWT authentication.
//
// Security:
//   - Password is transmitted in plaintext (HTTPS required)
//   - Credentials are compared against the bcrypt-hashed admin password
//   - Rate limited to 5 attempts per minute per IP
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response with a signed JWT token.
//
// Token usage:
//   - Sent as Authorization: Bearer <token> header
//   - Validated on every protected endpoint
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}
