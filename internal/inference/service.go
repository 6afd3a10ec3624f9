// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

// Package inference implements the two model operations: point prediction for
// one crop and ranked recommendation across all supported crops.
//
// The service performs its own precondition checks (vocabulary membership,
// numeric bounds) and returns tagged error variants, independent of the
// struct-tag validation the API layer applies to request shapes. A request
// that fails a precondition never touches the model.
package inference

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cropcast/cropcast/internal/artifact"
	"github.com/cropcast/cropcast/internal/config"
	"github.com/cropcast/cropcast/internal/logging"
	"github.com/cropcast/cropcast/internal/metrics"
)

// Observation is one set of environmental conditions to score.
type Observation struct {
	Country          string
	RainfallMM       float64
	PesticidesTonnes float64
	AvgTempC         float64
}

// PredictResult is the outcome of a single-crop prediction. PredictedYield is
// clamped to be non-negative; rounding for display happens at the API boundary.
type PredictResult struct {
	Crop           string
	PredictedYield float64
	ModelVersion   string
}

// RankedCrop is one entry in a recommendation, rank 1 being the highest
// predicted yield.
type RankedCrop struct {
	Rank           int
	Crop           string
	PredictedYield float64
}

// RecommendResult is the outcome of a recommendation across supported crops.
type RecommendResult struct {
	Crops        []RankedCrop
	ModelVersion string
}

// Service scores observations against the currently loaded artifact.
type Service struct {
	store       *artifact.Store
	limits      config.LimitsConfig
	defaultTopN int
	maxTopN     int
}

// NewService returns a Service reading artifacts from store. Numeric bounds
// and top_n limits come from configuration.
func NewService(store *artifact.Store, cfg *config.Config) *Service {
	return &Service{
		store:       store,
		limits:      cfg.Limits,
		defaultTopN: cfg.API.DefaultTopN,
		maxTopN:     cfg.API.MaxTopN,
	}
}

// Predict validates the observation and crop, then scores a single crop.
func (s *Service) Predict(ctx context.Context, crop string, obs Observation) (*PredictResult, error) {
	start := time.Now()

	a, ok := s.store.Get()
	if !ok {
		metrics.RecordPredictionError("model_unavailable")
		return nil, ErrModelNotLoaded
	}

	if err := s.validateObservation(a, obs); err != nil {
		return nil, err
	}
	if !a.SupportsCrop(crop) {
		metrics.RecordPredictionError("unsupported_crop")
		return nil, &UnsupportedValueError{Field: "crop", Value: crop}
	}

	yield, err := s.score(a, crop, obs)
	if err != nil {
		metrics.RecordPredictionError("internal")
		logging.Ctx(ctx).Error().Err(err).Str("crop", crop).Msg("inference failed")
		return nil, err
	}

	metrics.RecordPrediction(crop, yield, time.Since(start))
	return &PredictResult{
		Crop:           crop,
		PredictedYield: yield,
		ModelVersion:   a.Name(),
	}, nil
}

// Recommend validates the observation once, scores every supported crop
// concurrently, and returns the top crops by predicted yield.
//
// The operation is all-or-nothing: if any crop fails to score, the whole
// recommendation fails with no partial results. Ties in predicted yield keep
// the metadata crop-list order (stable sort).
func (s *Service) Recommend(ctx context.Context, topN int, obs Observation) (*RecommendResult, error) {
	start := time.Now()

	a, ok := s.store.Get()
	if !ok {
		metrics.RecordPredictionError("model_unavailable")
		return nil, ErrModelNotLoaded
	}

	if err := s.validateObservation(a, obs); err != nil {
		return nil, err
	}

	if topN == 0 {
		topN = s.defaultTopN
	}
	if topN < 1 || topN > s.maxTopN {
		metrics.RecordPredictionError("out_of_bounds")
		return nil, &OutOfRangeError{Field: "top_n", Value: float64(topN), Min: 1, Max: float64(s.maxTopN)}
	}

	crops := a.Metadata().SupportedCrops
	yields := make([]float64, len(crops))

	g, ctx := errgroup.WithContext(ctx)
	for i, crop := range crops {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			yield, err := s.score(a, crop, obs)
			if err != nil {
				return err
			}
			yields[i] = yield
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.RecordPredictionError("internal")
		logging.Ctx(ctx).Error().Err(err).Str("country", obs.Country).Msg("recommendation failed")
		return nil, err
	}

	ranked := make([]RankedCrop, len(crops))
	for i, crop := range crops {
		ranked[i] = RankedCrop{Crop: crop, PredictedYield: yields[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PredictedYield > ranked[j].PredictedYield
	})
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	metrics.RecordRecommendation(len(ranked), time.Since(start))
	return &RecommendResult{
		Crops:        ranked,
		ModelVersion: a.Name(),
	}, nil
}

// Ready reports whether an artifact is loaded and inference can serve.
func (s *Service) Ready() bool {
	return s.store.Ready()
}

// validateObservation checks country membership and the configured numeric
// bounds. The first violation wins.
func (s *Service) validateObservation(a *artifact.Artifact, obs Observation) error {
	if !a.SupportsCountry(obs.Country) {
		metrics.RecordPredictionError("unsupported_country")
		return &UnsupportedValueError{Field: "country", Value: obs.Country}
	}
	if obs.RainfallMM < s.limits.RainfallMinMM || obs.RainfallMM > s.limits.RainfallMaxMM {
		metrics.RecordPredictionError("out_of_bounds")
		return &OutOfRangeError{Field: "rainfall_mm", Value: obs.RainfallMM, Min: s.limits.RainfallMinMM, Max: s.limits.RainfallMaxMM}
	}
	if obs.PesticidesTonnes < s.limits.PesticidesMinT || obs.PesticidesTonnes > s.limits.PesticidesMaxT {
		metrics.RecordPredictionError("out_of_bounds")
		return &OutOfRangeError{Field: "pesticides_tonnes", Value: obs.PesticidesTonnes, Min: s.limits.PesticidesMinT, Max: s.limits.PesticidesMaxT}
	}
	if obs.AvgTempC < s.limits.AvgTempMinC || obs.AvgTempC > s.limits.AvgTempMaxC {
		metrics.RecordPredictionError("out_of_bounds")
		return &OutOfRangeError{Field: "avg_temp", Value: obs.AvgTempC, Min: s.limits.AvgTempMinC, Max: s.limits.AvgTempMaxC}
	}
	return nil
}

// score encodes the observation for one crop and clamps the forest output so
// a prediction is never negative.
func (s *Service) score(a *artifact.Artifact, crop string, obs Observation) (float64, error) {
	numeric := map[string]float64{
		"rainfall_mm":       obs.RainfallMM,
		"pesticides_tonnes": obs.PesticidesTonnes,
		"avg_temp":          obs.AvgTempC,
	}
	categorical := map[string]string{
		"country": obs.Country,
		"crop":    crop,
	}

	yield, err := a.Predict(numeric, categorical)
	if err != nil {
		return 0, err
	}
	return math.Max(0, yield), nil
}
