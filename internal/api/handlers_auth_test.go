// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/cropcast/cropcast/internal/artifact"
	"github.com/cropcast/cropcast/internal/auth"
	"github.com/cropcast/cropcast/internal/inference"
	"github.com/cropcast/cropcast/internal/models"
	"github.com/cropcast/cropcast/internal/testinfra"
)

// newJWTTestRouter builds a route tree in jwt mode with known admin
// credentials.
func newJWTTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := testConfig()
	cfg.Security.AuthMode = auth.ModeJWT
	cfg.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.Security.SessionTimeout = time.Hour
	cfg.Security.AdminUsername = "admin"
	cfg.Security.AdminPassword = "correct-horse"

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	basicManager, err := auth.NewBasicAuthManager(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
	if err != nil {
		t.Fatalf("NewBasicAuthManager() error = %v", err)
	}

	store := artifact.NewStore(testinfra.LoadStubArtifact(t))
	service := inference.NewService(store, cfg)
	handler := NewHandler(service, store, cfg, jwtManager, basicManager, "test")
	authMW := auth.NewMiddleware(jwtManager, nil, auth.ModeJWT)

	return NewRouter(handler, authMW, NewChiMiddleware(nil)).SetupChi()
}

func TestLogin_IssuesToken(t *testing.T) {
	router := newJWTTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "correct-horse",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var login models.LoginResponse
	decodeData(t, env, &login)

	if login.Token == "" {
		t.Fatal("token is empty")
	}
	if login.Username != "admin" {
		t.Errorf("username = %q, want admin", login.Username)
	}
	if time.Until(login.ExpiresAt) <= 0 {
		t.Error("token should expire in the future")
	}

	// The issued token must open the protected inference routes.
	req := newRawRequest(t, http.MethodGet, "/api/v1/model", "")
	req.Header.Set("Authorization", "Bearer "+login.Token)
	if got := serve(router, req); got.Code != http.StatusOK {
		t.Errorf("authenticated /model status = %d, want 200", got.Code)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newJWTTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeAuthentication {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeAuthentication)
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	router := newJWTTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidation {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeValidation)
	}
}

func TestLogin_NotMountedWithoutJWT(t *testing.T) {
	router := newTestRouter(t, true)

	req := newRawRequest(t, http.MethodPost, "/api/v1/auth/login", `{"username":"a","password":"b"}`)
	if rec := serve(router, req); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when auth_mode is none", rec.Code)
	}
}

func TestProtectedRoutes_RejectMissingToken(t *testing.T) {
	router := newJWTTestRouter(t)

	req := newRawRequest(t, http.MethodPost, "/api/v1/predict", `{}`)
	if rec := serve(router, req); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without a token", rec.Code)
	}
}

func TestModelInfo_CountryListCapped(t *testing.T) {
	cfg := testConfig()
	cfg.API.MaxCountriesInInfo = 1

	store := artifact.NewStore(testinfra.LoadStubArtifact(t))
	service := inference.NewService(store, cfg)
	handler := NewHandler(service, store, cfg, nil, nil, "test")
	router := NewRouter(handler, nil, NewChiMiddleware(nil)).SetupChi()

	_, env := doJSON(t, router, http.MethodGet, "/api/v1/model", nil)

	var info models.ModelInfoResponse
	decodeData(t, env, &info)

	if len(info.SupportedCountries) != 1 {
		t.Errorf("supported_countries has %d entries, want 1", len(info.SupportedCountries))
	}
	if info.TotalCountries != len(testinfra.StubCountries) {
		t.Errorf("total_countries = %d, want %d", info.TotalCountries, len(testinfra.StubCountries))
	}
}
