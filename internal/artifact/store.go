// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

package artifact

import (
	"sync/atomic"
)

// Store holds the current Artifact behind an atomic pointer. Readers get an
// immutable handle; hot reload replaces the whole handle, so an in-flight
// request keeps scoring against the artifact it started with.
//
// A zero-value Store is empty (no artifact loaded) and usable.
type Store struct {
	current atomic.Pointer[Artifact]
}

// NewStore returns a Store holding the given artifact, which may be nil.
func NewStore(a *Artifact) *Store {
	s := &Store{}
	if a != nil {
		s.current.Store(a)
	}
	return s
}

// Get returns the current artifact and whether one is loaded.
func (s *Store) Get() (*Artifact, bool) {
	a := s.current.Load()
	return a, a != nil
}

// Ready reports whether an artifact is loaded.
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}

// Swap atomically replaces the current artifact and returns the previous one.
func (s *Store) Swap(a *Artifact) *Artifact {
	return s.current.Swap(a)
}
