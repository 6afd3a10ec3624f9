// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package validation

import (
	"strings"
	"testing"
)

type predictShape struct {
	Crop        string  `validate:"required"`
	Country     string  `validate:"required"`
	RainfallMM  float64 `validate:"gte=0"`
	PesticidesT float64 `validate:"gte=0"`
	AvgTempC    float64 `validate:"gte=-50,lte=60"`
}

type recommendShape struct {
	TopN int `validate:"omitempty,min=1,max=20"`
}

func validPredictShape() predictShape {
	return predictShape{
		Crop:        "Wheat",
		Country:     "India",
		RainfallMM:  1100,
		PesticidesT: 120,
		AvgTempC:    24.5,
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	req := validPredictShape()
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStruct_SingleFieldError(t *testing.T) {
	req := validPredictShape()
	req.RainfallMM = -1

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error for negative rainfall")
	}

	if len(err.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(err.Errors()))
	}

	fe := err.Errors()[0]
	if fe.Field() != "RainfallMM" {
		t.Errorf("Field() = %q, want RainfallMM", fe.Field())
	}
	if fe.Tag() != "gte" {
		t.Errorf("Tag() = %q, want gte", fe.Tag())
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "greater than or equal to 0") {
		t.Errorf("Message = %q, want bound mention", apiErr.Message)
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	req := predictShape{
		RainfallMM: -5,
		AvgTempC:   100,
	}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) < 3 {
		t.Fatalf("expected at least 3 errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"]
	if !ok {
		t.Fatal("expected fields detail for multi-error response")
	}
	if _, ok := fields.([]map[string]interface{}); !ok {
		t.Fatalf("fields detail has type %T, want []map[string]interface{}", fields)
	}
}

func TestValidateStruct_RequiredMessage(t *testing.T) {
	req := validPredictShape()
	req.Crop = ""

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error for missing crop")
	}
	if got := err.Errors()[0].Error(); got != "Crop is required" {
		t.Errorf("message = %q, want %q", got, "Crop is required")
	}
}

func TestValidateStruct_TopNBounds(t *testing.T) {
	tests := []struct {
		name    string
		topN    int
		wantErr bool
	}{
		{"zero is omitempty", 0, false},
		{"lower bound", 1, false},
		{"upper bound", 20, false},
		{"too large", 21, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := recommendShape{TopN: tt.topN}
			err := ValidateStruct(&req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct(top_n=%d) error = %v, wantErr %v", tt.topN, err, tt.wantErr)
			}
		})
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}
