// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// startTime anchors the uptime gauge; the process start is close enough.
var startTime = time.Now()

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - API endpoint latency and throughput
// - Model inference performance
// - Artifact load and reload lifecycle
// - Recommendation ranking behavior

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Inference Metrics
	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inference_duration_seconds",
			Help:    "Duration of single-crop inference in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
		[]string{"operation"}, // "predict", "recommend"
	)

	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of yield predictions served",
		},
		[]string{"crop"},
	)

	PredictionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_errors_total",
			Help: "Total number of rejected or failed inference requests",
		},
		[]string{"reason"}, // "unsupported_crop", "unsupported_country", "out_of_bounds", "model_unavailable", "internal"
	)

	PredictedYield = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "predicted_yield_hg_per_ha",
			Help:    "Distribution of predicted yields in hectograms per hectare",
			Buckets: []float64{1000, 5000, 10000, 25000, 50000, 100000, 250000, 500000},
		},
		[]string{"crop"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests served",
		},
	)

	RecommendationSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_size",
			Help:    "Number of ranked crops returned per recommendation request",
			Buckets: []float64{1, 2, 3, 5, 10, 15, 20},
		},
	)

	// Model Artifact Metrics
	ModelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_loaded",
			Help: "Whether a model artifact is currently loaded (1) or not (0)",
		},
	)

	ModelInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "model_info",
			Help: "Loaded model artifact information",
		},
		[]string{"model_name", "schema_version"},
	)

	ModelLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "model_load_duration_seconds",
			Help:    "Duration of model artifact loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ModelLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "model_load_errors_total",
			Help: "Total number of failed model artifact loads",
		},
	)

	ModelReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "model_reloads_total",
			Help: "Total number of successful hot reloads of the model artifact",
		},
	)

	ModelLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_loaded_timestamp",
			Help: "Unix timestamp of the last successful artifact load",
		},
	)

	// Auth Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"mode", "result"}, // result: "success", "failure"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
		func() float64 { return time.Since(startTime).Seconds() },
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordPrediction records a served yield prediction
func RecordPrediction(crop string, yieldHgHa float64, duration time.Duration) {
	PredictionsTotal.WithLabelValues(crop).Inc()
	PredictedYield.WithLabelValues(crop).Observe(yieldHgHa)
	InferenceDuration.WithLabelValues("predict").Observe(duration.Seconds())
}

// RecordPredictionError records a rejected or failed inference request
func RecordPredictionError(reason string) {
	PredictionErrors.WithLabelValues(reason).Inc()
}

// RecordRecommendation records a served recommendation and its result size
func RecordRecommendation(resultSize int, duration time.Duration) {
	RecommendationsTotal.Inc()
	RecommendationSize.Observe(float64(resultSize))
	InferenceDuration.WithLabelValues("recommend").Observe(duration.Seconds())
}

// RecordModelLoad records a model artifact load attempt
func RecordModelLoad(modelName, schemaVersion string, duration time.Duration, err error) {
	ModelLoadDuration.Observe(duration.Seconds())
	if err != nil {
		ModelLoadErrors.Inc()
		return
	}
	ModelLoaded.Set(1)
	ModelInfo.WithLabelValues(modelName, schemaVersion).Set(1)
	ModelLoadedTimestamp.Set(float64(time.Now().Unix()))
}

// RecordModelReload records a successful hot reload
func RecordModelReload() {
	ModelReloads.Inc()
}

// RecordAuthAttempt records an authentication attempt
func RecordAuthAttempt(mode string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	AuthAttempts.WithLabelValues(mode, result).Inc()
}

// SetAppInfo publishes the application version series. Called once at startup.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
