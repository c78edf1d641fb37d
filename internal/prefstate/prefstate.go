// Package prefstate is the client-side appearance state for the dashboard
// shell. It is loaded once per session, served from memory afterwards, and
// written through on every change.
package prefstate

import (
	"context"
	"sync"

	"cornerstone_backend/internal/services"
	"cornerstone_backend/internal/services/dto"
)

// Backend is the narrow store contract. The preference service satisfies it
// directly.
type Backend interface {
	Get(userID string) (*dto.PreferenceResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error)
}

var _ Backend = (services.PreferenceService)(nil)

// State holds one user's theme and density. Zero value is unusable; build
// with NewState and call Load before reading.
type State struct {
	mu      sync.Mutex
	backend Backend
	userID  string

	theme   string
	density string
	loaded  bool
}

func NewState(backend Backend, userID string) *State {
	return &State{
		backend: backend,
		userID:  userID,
		theme:   string(services.DefaultTheme),
		density: string(services.DefaultDensity),
	}
}

// Load pulls the stored values. On failure the defaults stay in place and
// the error is returned for display; the state remains usable.
func (s *State) Load(ctx context.Context) error {
	pref, err := s.backend.Get(s.userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		return err
	}
	s.theme = pref.Theme
	s.density = pref.Density
	s.loaded = true
	return nil
}

func (s *State) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *State) Density() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.density
}

// Loaded reports whether a server round-trip has succeeded yet.
func (s *State) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// SetTheme applies the value locally and writes it through. A write failure
// rolls the local value back so the UI never drifts from the store.
func (s *State) SetTheme(ctx context.Context, theme string) error {
	return s.set(ctx, &dto.UpdatePreferenceRequest{Theme: theme})
}

func (s *State) SetDensity(ctx context.Context, density string) error {
	return s.set(ctx, &dto.UpdatePreferenceRequest{Density: density})
}

func (s *State) set(ctx context.Context, req *dto.UpdatePreferenceRequest) error {
	s.mu.Lock()
	prevTheme, prevDensity := s.theme, s.density
	if req.Theme != "" {
		s.theme = req.Theme
	}
	if req.Density != "" {
		s.density = req.Density
	}
	s.mu.Unlock()

	updated, err := s.backend.Update(ctx, s.userID, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.theme, s.density = prevTheme, prevDensity
		return err
	}

	// The server merges, so its answer wins over the optimistic value.
	s.theme = updated.Theme
	s.density = updated.Density
	s.loaded = true
	return nil
}
