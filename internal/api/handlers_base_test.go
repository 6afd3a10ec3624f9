// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/cropcast/cropcast/internal/artifact"
	"github.com/cropcast/cropcast/internal/auth"
	"github.com/cropcast/cropcast/internal/config"
	"github.com/cropcast/cropcast/internal/inference"
	"github.com/cropcast/cropcast/internal/models"
	"github.com/cropcast/cropcast/internal/testinfra"
)

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DefaultTopN:        5,
			MaxTopN:            20,
			MaxCountriesInInfo: 50,
		},
		Limits: config.LimitsConfig{
			RainfallMinMM:  0,
			RainfallMaxMM:  20000,
			PesticidesMinT: 0,
			PesticidesMaxT: 1_000_000,
			AvgTempMinC:    -50,
			AvgTempMaxC:    60,
		},
		Security: config.SecurityConfig{
			AuthMode:        auth.ModeNone,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
	}
}

// newTestRouter builds a full route tree backed by the stub artifact.
// When loaded is false the store starts empty, exercising the 503 paths.
func newTestRouter(t *testing.T, loaded bool) http.Handler {
	t.Helper()

	var store *artifact.Store
	if loaded {
		store = artifact.NewStore(testinfra.LoadStubArtifact(t))
	} else {
		store = artifact.NewStore(nil)
	}

	cfg := testConfig()
	service := inference.NewService(store, cfg)
	handler := NewHandler(service, store, cfg, nil, nil, "test")

	return NewRouter(handler, nil, NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
	})).SetupChi()
}

// envelope mirrors models.APIResponse with a raw data payload for per-test
// decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

// doJSON performs a request with an optional JSON body and decodes the
// response envelope.
func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response envelope from %q: %v", rec.Body.String(), err)
	}
	return rec, &env
}

// decodeData decodes the envelope's data payload into v.
func decodeData(t *testing.T, env *envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decoding data payload: %v", err)
	}
}

// newRawRequest builds a request with a raw string body, for malformed-JSON
// cases.
func newRawRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func validPredictBody() map[string]interface{} {
	return map[string]interface{}{
		"crop":              "Wheat",
		"country":           "India",
		"rainfall_mm":       1100.0,
		"pesticides_tonnes": 120.0,
		"avg_temp":          24.5,
	}
}

func validRecommendBody() map[string]interface{} {
	return map[string]interface{}{
		"country":           "India",
		"rainfall_mm":       1100.0,
		"pesticides_tonnes": 120.0,
		"avg_temp":          24.5,
	}
}
