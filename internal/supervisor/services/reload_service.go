// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package services

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/cropcast/cropcast/internal/artifact"
	"github.com/cropcast/cropcast/internal/logging"
	"github.com/cropcast/cropcast/internal/metrics"
)

// ReloadService polls the model artifact files and swaps a freshly loaded
// artifact into the store when either file changes on disk. A failed reload
// is logged and the previous artifact stays live, so a broken export never
// interrupts serving.
type ReloadService struct {
	store        *artifact.Store
	modelPath    string
	metadataPath string
	interval     time.Duration
	name         string

	lastModelMod time.Time
	lastMetaMod  time.Time
}

// NewReloadService creates a reload service watching the given paths.
func NewReloadService(store *artifact.Store, modelPath, metadataPath string, interval time.Duration) *ReloadService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ReloadService{
		store:        store,
		modelPath:    modelPath,
		metadataPath: metadataPath,
		interval:     interval,
		name:         "model-reload",
	}
}

// Serve polls for artifact changes until the context is canceled.
func (s *ReloadService) Serve(ctx context.Context) error {
	logger := logging.WithComponent("supervisor").With().Str("service", s.name).Logger()

	// Seed mtimes so the artifact loaded at startup is not reloaded
	// immediately on the first tick.
	s.lastModelMod, s.lastMetaMod = s.currentModTimes()

	logger.Info().
		Str("model_path", s.modelPath).
		Dur("interval", s.interval).
		Msg("Model reload watcher started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Model reload watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			s.checkAndReload(ctx)
		}
	}
}

// checkAndReload reloads the artifact if either file's mtime advanced.
func (s *ReloadService) checkAndReload(ctx context.Context) {
	logger := logging.Ctx(ctx).With().Str("component", s.name).Logger()

	modelMod, metaMod := s.currentModTimes()
	if !modelMod.After(s.lastModelMod) && !metaMod.After(s.lastMetaMod) {
		return
	}

	start := time.Now()
	a, err := artifact.Load(s.modelPath, s.metadataPath)
	if err != nil {
		// Remember the mtimes anyway so a bad export is not retried
		// every tick until it changes again.
		s.lastModelMod, s.lastMetaMod = modelMod, metaMod
		metrics.RecordModelLoad("", "", time.Since(start), err)
		logger.Error().Err(err).Msg("Model reload failed, keeping previous artifact")
		return
	}

	s.lastModelMod, s.lastMetaMod = modelMod, metaMod
	s.store.Swap(a)
	metrics.RecordModelLoad(a.Name(), strconv.Itoa(artifact.SchemaVersion), time.Since(start), nil)
	metrics.RecordModelReload()

	logger.Info().
		Str("model_name", a.Name()).
		Int("trees", a.NumTrees()).
		Dur("load_time", time.Since(start)).
		Msg("Model artifact reloaded")
}

// currentModTimes returns the mtimes of both artifact files. Missing files
// report a zero time, which never triggers a reload.
func (s *ReloadService) currentModTimes() (time.Time, time.Time) {
	var modelMod, metaMod time.Time
	if info, err := os.Stat(s.modelPath); err == nil {
		modelMod = info.ModTime()
	}
	if info, err := os.Stat(s.metadataPath); err == nil {
		metaMod = info.ModTime()
	}
	return modelMod, metaMod
}

// String implements fmt.Stringer for suture log output.
func (s *ReloadService) String() string {
	return s.name
}
