// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the service using the Prometheus client library,
exposing metrics for monitoring inference performance, errors, and artifact
lifecycle.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Inference Metrics:
  - inference_duration_seconds: Time to score one request (histogram)
    Labels: operation ("predict" or "recommend")
  - predictions_total: Served predictions by crop (counter)
  - prediction_errors_total: Rejected requests by reason (counter)
  - predicted_yield_hg_per_ha: Distribution of predicted yields (histogram)
  - recommendation_result_size: Ranked crops returned per request (histogram)

Model Artifact Metrics:
  - model_loaded: Artifact availability flag (gauge)
  - model_info: Loaded model name and schema version (gauge)
  - model_load_duration_seconds: Artifact load time (histogram)
  - model_load_errors_total: Failed loads (counter)
  - model_reloads_total: Successful hot reloads (counter)

All metrics are registered via promauto at package init, so importing this
package is sufficient to expose them on the default registry.
*/
package metrics
