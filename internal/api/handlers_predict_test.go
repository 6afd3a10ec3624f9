// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"net/http"
	"testing"

	"github.com/cropcast/cropcast/internal/models"
	"github.com/cropcast/cropcast/internal/testinfra"
)

func TestPredict_Success(t *testing.T) {
	router := newTestRouter(t, true)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/predict", validPredictBody())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}

	var pred models.Prediction
	decodeData(t, env, &pred)

	if pred.Crop != "Wheat" || pred.Country != "India" {
		t.Errorf("echoed fields wrong: %+v", pred)
	}
	if want := testinfra.StubYields["Wheat"]; pred.PredictedYield != want {
		t.Errorf("predicted_yield = %v, want %v", pred.PredictedYield, want)
	}
	if pred.YieldUnit != models.YieldUnit {
		t.Errorf("yield_unit = %q, want %q", pred.YieldUnit, models.YieldUnit)
	}
	if pred.ModelVersion != testinfra.StubModelName {
		t.Errorf("model_version = %q, want %q", pred.ModelVersion, testinfra.StubModelName)
	}
}

// The request body is exactly crop plus the observation fields; nothing else
// is required.
func TestPredict_ObservationFieldSet(t *testing.T) {
	router := newTestRouter(t, true)

	body := `{"crop":"Wheat","country":"India","rainfall_mm":1000,"pesticides_tonnes":5000,"avg_temp":20}`
	req := newRawRequest(t, http.MethodPost, "/api/v1/predict", body)
	rec := serve(router, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestPredict_UnsupportedCrop(t *testing.T) {
	router := newTestRouter(t, true)

	body := validPredictBody()
	body["crop"] = "Unicorn Fruit"
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/predict", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeUnsupportedCrop {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeUnsupportedCrop)
	}
}

func TestPredict_UnsupportedCountry(t *testing.T) {
	router := newTestRouter(t, true)

	body := validPredictBody()
	body["country"] = "Atlantis"
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/predict", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeUnsupportedCountry {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeUnsupportedCountry)
	}
}

func TestPredict_MissingFields(t *testing.T) {
	router := newTestRouter(t, true)

	body := validPredictBody()
	delete(body, "crop")
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/predict", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidation {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeValidation)
	}
}

func TestPredict_NegativeRainfallRejected(t *testing.T) {
	router := newTestRouter(t, true)

	body := validPredictBody()
	body["rainfall_mm"] = -1.0
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/predict", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidation {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeValidation)
	}
}

func TestPredict_MalformedJSON(t *testing.T) {
	router := newTestRouter(t, true)

	req := newRawRequest(t, http.MethodPost, "/api/v1/predict", "{not json")
	rec := serve(router, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPredict_ModelNotLoaded(t *testing.T) {
	router := newTestRouter(t, false)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/predict", validPredictBody())

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeModelNotLoaded {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeModelNotLoaded)
	}
}
