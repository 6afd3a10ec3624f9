// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

// Package main is the entry point for the Cropcast server application.
//
// Cropcast serves crop yield predictions from a random forest model trained
// offline and exported as a JSON artifact. It exposes a small REST API for
// single-crop predictions, ranked crop recommendations, model metadata, and
// health probes.
//
// # Application Architecture
//
// The server runs under a Suture v4 supervisor tree:
//
//	RootSupervisor ("cropcast")
//	├── ModelSupervisor ("model-layer")
//	│   └── Reload Service (optional artifact hot reload)
//	└── APISupervisor ("api-layer")
//	    └── HTTP Server (Chi router)
//
// Component initialization order:
//
//  1. Configuration: Koanf v2 with environment variables and config files
//  2. Logging: zerolog with JSON/console output modes
//  3. Authentication: JWT, Basic Auth, or no-auth mode
//  4. Model artifact: JSON export loaded and validated at startup (fail fast)
//  5. Inference service: preprocessing pipeline + random forest evaluation
//  6. Supervisor Tree: Suture v4 process supervision
//  7. HTTP Server: Chi router with middleware stack
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (MODEL_PATH, HTTP_PORT, AUTH_MODE, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// For JWT authentication:
//   - JWT_SECRET: 32+ character secret for token signing
//   - ADMIN_USERNAME: Admin username
//   - ADMIN_PASSWORD: Admin password (8+ characters)
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Stops the reload service if enabled
//
// # Example Usage
//
// Development with authentication disabled:
//
//	export MODEL_PATH=./exports/model.json
//	export MODEL_METADATA_PATH=./exports/metadata.json
//	export AUTH_MODE=none
//	./cropcast
//
// Production with JWT:
//
//	export MODEL_PATH=/data/model.json
//	export MODEL_METADATA_PATH=/data/metadata.json
//	export JWT_SECRET=$(openssl rand -base64 32)
//	export ADMIN_USERNAME=admin
//	export ADMIN_PASSWORD=secure-password
//	./cropcast
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/cropcast/cropcast/docs" // Import generated swagger docs
	"github.com/cropcast/cropcast/internal/api"
	"github.com/cropcast/cropcast/internal/artifact"
	"github.com/cropcast/cropcast/internal/auth"
	"github.com/cropcast/cropcast/internal/config"
	"github.com/cropcast/cropcast/internal/inference"
	"github.com/cropcast/cropcast/internal/logging"
	"github.com/cropcast/cropcast/internal/metrics"
	"github.com/cropcast/cropcast/internal/supervisor"
	"github.com/cropcast/cropcast/internal/supervisor/services"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", version).Msg("Starting Cropcast with supervisor tree")
	metrics.SetAppInfo(version)

	logging.Info().
		Str("model_path", cfg.Model.Path).
		Str("auth_mode", cfg.Security.AuthMode).
		Bool("reload_enabled", cfg.Model.ReloadEnabled).
		Msg("Configuration loaded")

	var jwtManager *auth.JWTManager
	var basicAuthManager *auth.BasicAuthManager

	switch cfg.Security.AuthMode {
	case auth.ModeJWT:
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		// Basic auth manager holds the bcrypt admin hash used by the login endpoint
		basicAuthManager, err = auth.NewBasicAuthManager(
			cfg.Security.AdminUsername,
			cfg.Security.AdminPassword,
		)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize login credential store")
		}
		logging.Info().Msg("JWT authentication enabled")
	case auth.ModeBasic:
		basicAuthManager, err = auth.NewBasicAuthManager(
			cfg.Security.AdminUsername,
			cfg.Security.AdminPassword,
		)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize Basic Auth manager")
		}
		logging.Info().Msg("Basic authentication enabled")
		logging.Warn().Msg("Basic Auth transmits credentials with each request. Use HTTPS in production!")
	case auth.ModeNone:
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  All endpoints are publicly accessible without authentication!")
		logging.Warn().Msg("  This mode should ONLY be used for:")
		logging.Warn().Msg("    - Local development")
		logging.Warn().Msg("    - Completely isolated private networks")
		logging.Warn().Msg("    - CI/CD testing environments")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  NEVER use AUTH_MODE=none in production or on public networks!")
		logging.Warn().Msg("============================================================")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for load testing!")
	}

	// Warn about wildcard CORS when authentication is enabled
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: CORS is configured with wildcard origin (CORS_ORIGINS=*)")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  This allows ANY website to make cross-origin requests to your API.")
		logging.Warn().Msg("  With authentication enabled, this creates a security vulnerability:")
		logging.Warn().Msg("  attackers can steal credentials via malicious websites.")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  RECOMMENDED: Set specific origins in production:")
		logging.Warn().Msg("    CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com")
		logging.Warn().Msg("============================================================")
	}

	// Load the model artifact before serving. A server without a model is
	// useless, so a broken export is fatal at startup; hot reload failures
	// later keep the previous artifact instead.
	loadStart := time.Now()
	a, err := artifact.Load(cfg.Model.Path, cfg.Model.MetadataPath)
	metrics.RecordModelLoad(artifactName(a), strconv.Itoa(artifact.SchemaVersion), time.Since(loadStart), err)
	if err != nil {
		logging.Fatal().
			Err(err).
			Str("model_path", cfg.Model.Path).
			Str("metadata_path", cfg.Model.MetadataPath).
			Msg("Failed to load model artifact")
	}
	store := artifact.NewStore(a)
	logging.Info().
		Str("model", a.Name()).
		Int("trees", a.NumTrees()).
		Int("crops", len(a.Metadata().SupportedCrops)).
		Int("countries", len(a.Metadata().SupportedCountries)).
		Dur("load_time", time.Since(loadStart)).
		Msg("Model artifact loaded")

	service := inference.NewService(store, cfg)

	handler := api.NewHandler(service, store, cfg, jwtManager, basicAuthManager, version)
	authMiddleware := auth.NewMiddleware(jwtManager, basicAuthManager, cfg.Security.AuthMode)
	chiMiddleware := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})
	router := api.NewRouter(handler, authMiddleware, chiMiddleware)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Model layer services
	if cfg.Model.ReloadEnabled {
		tree.AddModelService(services.NewReloadService(
			store,
			cfg.Model.Path,
			cfg.Model.MetadataPath,
			cfg.Model.ReloadInterval,
		))
		logging.Info().
			Dur("interval", cfg.Model.ReloadInterval).
			Msg("Model reload service added to supervisor tree")
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// artifactName tolerates a nil artifact so load metrics can be recorded for
// failed startup loads too.
func artifactName(a *artifact.Artifact) string {
	if a == nil {
		return ""
	}
	return a.Name()
}
