// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/cropcast/cropcast/internal/logging"
	"github.com/cropcast/cropcast/internal/metrics"
)

type contextKey string

// ClaimsContextKey is the context key under which authenticated claims are stored.
const ClaimsContextKey contextKey = "claims"

// Mode constants for security.auth_mode.
const (
	ModeNone  = "none"
	ModeBasic = "basic"
	ModeJWT   = "jwt"
)

// Middleware enforces the configured authentication mode on protected routes.
// Rate limiting and CORS are handled by the router's chi middleware, not here.
type Middleware struct {
	jwtManager       *JWTManager
	basicAuthManager *BasicAuthManager
	authMode         string
}

// NewMiddleware creates authentication middleware. The managers may be nil
// for modes that do not use them.
func NewMiddleware(jwtManager *JWTManager, basicAuthManager *BasicAuthManager, authMode string) *Middleware {
	return &Middleware{
		jwtManager:       jwtManager,
		basicAuthManager: basicAuthManager,
		authMode:         authMode,
	}
}

// Authenticate is chi-compatible middleware that enforces authentication.
// In "none" mode every request passes through untouched.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == ModeNone {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")

		if m.authMode == ModeBasic {
			m.handleBasicAuth(w, r, next, authHeader)
			return
		}

		m.handleJWTAuth(w, r, next, authHeader)
	})
}

// handleBasicAuth processes Basic Authentication requests.
func (m *Middleware) handleBasicAuth(w http.ResponseWriter, r *http.Request, next http.Handler, authHeader string) {
	if authHeader == "" {
		m.sendBasicAuthChallenge(w, "Unauthorized: authentication required")
		return
	}

	username, err := m.basicAuthManager.ValidateCredentials(authHeader)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("basic auth validation failed")
		metrics.RecordAuthAttempt(ModeBasic, false)
		m.sendBasicAuthChallenge(w, "Unauthorized: invalid credentials")
		return
	}

	metrics.RecordAuthAttempt(ModeBasic, true)
	ctx := context.WithValue(r.Context(), ClaimsContextKey, &Claims{Username: username})
	next.ServeHTTP(w, r.WithContext(ctx))
}

// sendBasicAuthChallenge sends a WWW-Authenticate challenge with the 401.
func (m *Middleware) sendBasicAuthChallenge(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", m.basicAuthManager.GetWWWAuthenticateHeader())
	http.Error(w, message, http.StatusUnauthorized)
}

// handleJWTAuth processes JWT bearer token requests.
func (m *Middleware) handleJWTAuth(w http.ResponseWriter, r *http.Request, next http.Handler, authHeader string) {
	token, ok := extractBearerToken(authHeader)
	if !ok {
		http.Error(w, "Unauthorized: missing or malformed bearer token", http.StatusUnauthorized)
		return
	}

	claims, err := m.jwtManager.ValidateToken(token)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("token validation failed")
		metrics.RecordAuthAttempt(ModeJWT, false)
		http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
		return
	}

	metrics.RecordAuthAttempt(ModeJWT, true)
	ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
	next.ServeHTTP(w, r.WithContext(ctx))
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x" header.
func extractBearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}
