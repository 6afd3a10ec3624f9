// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/cropcast/cropcast/internal/auth"
	"github.com/cropcast/cropcast/internal/middleware"
)

// Router wires handlers and middleware into the chi route tree.
type Router struct {
	handler        *Handler
	authMiddleware *auth.Middleware
	chiMiddleware  *ChiMiddleware
}

// NewRouter creates a router for the given handler and middleware.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, chiMiddleware *ChiMiddleware) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(nil)
	}
	return &Router{
		handler:        handler,
		authMiddleware: authMiddleware,
		chiMiddleware:  chiMiddleware,
	}
}

// SetupChi configures all HTTP routes using the chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Health endpoints: permissive rate limiting so monitoring probes are
	// never throttled, and no authentication.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Login: strictest rate limiting against brute force. Only mounted in
	// jwt mode; other modes have no token issuance.
	if router.handler.jwtManager != nil {
		r.Route("/api/v1/auth", func(r chi.Router) {
			r.Use(APISecurityHeaders())
			r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
		})
	}

	// Inference and model endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		if router.authMiddleware != nil {
			r.Use(router.authMiddleware.Authenticate)
		}

		r.Post("/predict", router.handler.Predict)
		r.Post("/recommend", router.handler.Recommend)
		r.Get("/model", router.handler.ModelInfo)
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
