// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package inference

import (
	"errors"
	"fmt"
)

// ErrModelNotLoaded is returned when no model artifact is available. All
// inference short-circuits on it; callers may retry after the artifact loads.
var ErrModelNotLoaded = errors.New("model artifact is not loaded")

// UnsupportedValueError reports a crop or country outside the loaded model's
// vocabulary. The request never reaches the model.
type UnsupportedValueError struct {
	Field string // "crop" or "country"
	Value string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("%s %q is not supported by the loaded model", e.Field, e.Value)
}

// OutOfRangeError reports a numeric observation value outside the configured
// bounds.
type OutOfRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %g is outside the accepted range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// IsValidationError reports whether err is a request-level precondition
// failure (unsupported value or out-of-range numeric) rather than a server
// fault. The HTTP layer maps these to 400 responses.
func IsValidationError(err error) bool {
	var unsupported *UnsupportedValueError
	var outOfRange *OutOfRangeError
	return errors.As(err, &unsupported) || errors.As(err, &outOfRange)
}
