// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

// Package services contains suture-compatible service wrappers for the
// long-running components of Cropcast.
package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cropcast/cropcast/internal/logging"
)

// HTTPServer is the interface an HTTP server must implement to be supervised.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService wraps an HTTP server as a suture.Service with graceful
// shutdown.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
}

// NewHTTPServerService creates a supervised HTTP server service.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// Serve runs the HTTP server until the context is canceled, then shuts it
// down gracefully. http.ErrServerClosed is the expected result of a graceful
// shutdown and is not reported as a failure.
func (s *HTTPServerService) Serve(ctx context.Context) error {
	logger := logging.WithComponent("supervisor").With().Str("service", s.name).Logger()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("HTTP server failed")
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info().Msg("Shutting down HTTP server")

		// The parent context is already canceled, so use a fresh one for
		// the shutdown deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("HTTP server shutdown failed")
			return err
		}

		<-errCh
		logger.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer for suture log output.
func (s *HTTPServerService) String() string {
	return s.name
}
