// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package inference_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cropcast/cropcast/internal/artifact"
	"github.com/cropcast/cropcast/internal/config"
	"github.com/cropcast/cropcast/internal/inference"
	"github.com/cropcast/cropcast/internal/testinfra"
)

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DefaultTopN: 5,
			MaxTopN:     20,
		},
		Limits: config.LimitsConfig{
			RainfallMinMM:  0,
			RainfallMaxMM:  20000,
			PesticidesMinT: 0,
			PesticidesMaxT: 1_000_000,
			AvgTempMinC:    -50,
			AvgTempMaxC:    60,
		},
	}
}

func newTestService(t *testing.T) *inference.Service {
	t.Helper()
	store := artifact.NewStore(testinfra.LoadStubArtifact(t))
	return inference.NewService(store, testConfig())
}

func validObservation() inference.Observation {
	return inference.Observation{
		Country:          "India",
		RainfallMM:       1100,
		PesticidesTonnes: 120,
		AvgTempC:         24.5,
	}
}

func TestPredict_WheatIndia(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Predict(context.Background(), "Wheat", validObservation())
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	if result.Crop != "Wheat" {
		t.Errorf("Crop = %q, want Wheat", result.Crop)
	}
	if result.PredictedYield != testinfra.StubYields["Wheat"] {
		t.Errorf("PredictedYield = %g, want %g", result.PredictedYield, testinfra.StubYields["Wheat"])
	}
	if result.ModelVersion != testinfra.StubModelName {
		t.Errorf("ModelVersion = %q, want %q", result.ModelVersion, testinfra.StubModelName)
	}
	if math.IsNaN(result.PredictedYield) || math.IsInf(result.PredictedYield, 0) || result.PredictedYield < 0 {
		t.Errorf("PredictedYield = %g, want finite non-negative", result.PredictedYield)
	}
}

func TestPredict_UnsupportedCrop(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Predict(context.Background(), "Unicorn Fruit", validObservation())
	if err == nil {
		t.Fatal("expected error for unsupported crop")
	}

	var unsupported *inference.UnsupportedValueError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error type = %T, want *UnsupportedValueError", err)
	}
	if unsupported.Field != "crop" || unsupported.Value != "Unicorn Fruit" {
		t.Errorf("error = %+v, want crop/Unicorn Fruit", unsupported)
	}
	if !inference.IsValidationError(err) {
		t.Error("IsValidationError should be true for unsupported crop")
	}
}

func TestPredict_UnsupportedCountry(t *testing.T) {
	svc := newTestService(t)

	obs := validObservation()
	obs.Country = "Atlantis"

	_, err := svc.Predict(context.Background(), "Wheat", obs)
	var unsupported *inference.UnsupportedValueError
	if !errors.As(err, &unsupported) || unsupported.Field != "country" {
		t.Fatalf("error = %v, want UnsupportedValueError for country", err)
	}
}

func TestPredict_NumericBounds(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*inference.Observation)
		wantField string
	}{
		{"negative rainfall", func(o *inference.Observation) { o.RainfallMM = -1 }, "rainfall_mm"},
		{"negative pesticides", func(o *inference.Observation) { o.PesticidesTonnes = -0.5 }, "pesticides_tonnes"},
		{"temperature too low", func(o *inference.Observation) { o.AvgTempC = -60 }, "avg_temp"},
		{"temperature too high", func(o *inference.Observation) { o.AvgTempC = 75 }, "avg_temp"},
	}

	svc := newTestService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := validObservation()
			tt.mutate(&obs)

			_, err := svc.Predict(context.Background(), "Wheat", obs)
			var outOfRange *inference.OutOfRangeError
			if !errors.As(err, &outOfRange) {
				t.Fatalf("error = %v, want *OutOfRangeError", err)
			}
			if outOfRange.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", outOfRange.Field, tt.wantField)
			}
			if !inference.IsValidationError(err) {
				t.Error("IsValidationError should be true for out-of-range value")
			}
		})
	}
}

func TestPredict_ModelNotLoaded(t *testing.T) {
	svc := inference.NewService(artifact.NewStore(nil), testConfig())

	_, err := svc.Predict(context.Background(), "Wheat", validObservation())
	if !errors.Is(err, inference.ErrModelNotLoaded) {
		t.Errorf("error = %v, want ErrModelNotLoaded", err)
	}
	if inference.IsValidationError(err) {
		t.Error("ErrModelNotLoaded is not a validation error")
	}
}

func TestRecommend_RankedDescending(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend(context.Background(), 0, validObservation())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// default top_n (5) exceeds the 3 stub crops
	if len(result.Crops) != 3 {
		t.Fatalf("len(Crops) = %d, want 3", len(result.Crops))
	}

	wantOrder := []string{"Wheat", "Rice", "Maize"}
	for i, entry := range result.Crops {
		if entry.Crop != wantOrder[i] {
			t.Errorf("Crops[%d].Crop = %q, want %q", i, entry.Crop, wantOrder[i])
		}
		if entry.Rank != i+1 {
			t.Errorf("Crops[%d].Rank = %d, want %d", i, entry.Rank, i+1)
		}
		if i > 0 && entry.PredictedYield > result.Crops[i-1].PredictedYield {
			t.Errorf("yields not non-increasing at index %d", i)
		}
	}
}

func TestRecommend_TiesKeepMetadataOrder(t *testing.T) {
	store := artifact.NewStore(testinfra.LoadTiedStubArtifact(t))
	svc := inference.NewService(store, testConfig())

	result, err := svc.Recommend(context.Background(), 0, validObservation())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(result.Crops) != 3 {
		t.Fatalf("len(Crops) = %d, want 3", len(result.Crops))
	}

	// Wheat and Rice tie exactly; the metadata crop order decides their ranks.
	if result.Crops[0].PredictedYield != testinfra.TiedStubYield ||
		result.Crops[1].PredictedYield != testinfra.TiedStubYield {
		t.Fatalf("top yields = %g, %g; want both %g",
			result.Crops[0].PredictedYield, result.Crops[1].PredictedYield, testinfra.TiedStubYield)
	}
	if result.Crops[0].Crop != "Wheat" || result.Crops[1].Crop != "Rice" {
		t.Errorf("tied crops ordered %q, %q; want Wheat, Rice", result.Crops[0].Crop, result.Crops[1].Crop)
	}
	if result.Crops[2].Crop != "Maize" {
		t.Errorf("Crops[2].Crop = %q, want Maize", result.Crops[2].Crop)
	}
}

func TestRecommend_Truncation(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend(context.Background(), 2, validObservation())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(result.Crops) != 2 {
		t.Fatalf("len(Crops) = %d, want 2", len(result.Crops))
	}
	if result.Crops[0].Crop != "Wheat" || result.Crops[1].Crop != "Rice" {
		t.Errorf("top 2 = %q, %q; want Wheat, Rice", result.Crops[0].Crop, result.Crops[1].Crop)
	}
}

func TestRecommend_MatchesPerCropPredictions(t *testing.T) {
	svc := newTestService(t)
	obs := validObservation()

	result, err := svc.Recommend(context.Background(), 20, obs)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// The full-length recommendation is the sorted permutation of the
	// per-crop point predictions.
	fromRecommend := make(map[string]float64, len(result.Crops))
	for _, entry := range result.Crops {
		fromRecommend[entry.Crop] = entry.PredictedYield
	}

	for _, crop := range testinfra.StubCrops {
		point, err := svc.Predict(context.Background(), crop, obs)
		if err != nil {
			t.Fatalf("Predict(%s) error = %v", crop, err)
		}
		if got, ok := fromRecommend[crop]; !ok || got != point.PredictedYield {
			t.Errorf("recommendation yield for %s = %g, point prediction = %g", crop, got, point.PredictedYield)
		}
	}
}

func TestRecommend_TopNOutOfRange(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend(context.Background(), 21, validObservation())
	var outOfRange *inference.OutOfRangeError
	if !errors.As(err, &outOfRange) || outOfRange.Field != "top_n" {
		t.Fatalf("error = %v, want OutOfRangeError for top_n", err)
	}
}

func TestRecommend_InvalidObservationNoPartialResults(t *testing.T) {
	svc := newTestService(t)

	obs := validObservation()
	obs.RainfallMM = -10

	result, err := svc.Recommend(context.Background(), 0, obs)
	if err == nil {
		t.Fatal("expected error for invalid observation")
	}
	if result != nil {
		t.Error("failed recommendation must not return partial results")
	}
}

func TestRecommend_ModelNotLoaded(t *testing.T) {
	svc := inference.NewService(artifact.NewStore(nil), testConfig())

	_, err := svc.Recommend(context.Background(), 0, validObservation())
	if !errors.Is(err, inference.ErrModelNotLoaded) {
		t.Errorf("error = %v, want ErrModelNotLoaded", err)
	}
}

func TestReady(t *testing.T) {
	store := artifact.NewStore(nil)
	svc := inference.NewService(store, testConfig())

	if svc.Ready() {
		t.Error("service without artifact should not be ready")
	}

	store.Swap(testinfra.LoadStubArtifact(t))
	if !svc.Ready() {
		t.Error("service with artifact should be ready")
	}
}
