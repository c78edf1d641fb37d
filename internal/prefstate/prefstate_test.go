package prefstate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cornerstone_backend/internal/services/dto"
)

type fakeBackend struct {
	theme   string
	density string

	getErr    error
	updateErr error
	updates   int
}

func (f *fakeBackend) Get(userID string) (*dto.PreferenceResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dto.PreferenceResponse{Theme: f.theme, Density: f.density}, nil
}

func (f *fakeBackend) Update(ctx context.Context, userID string, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updates++
	if req.Theme != "" {
		f.theme = req.Theme
	}
	if req.Density != "" {
		f.density = req.Density
	}
	return &dto.PreferenceResponse{Theme: f.theme, Density: f.density}, nil
}

func TestStateDefaultsBeforeLoad(t *testing.T) {
	state := NewState(&fakeBackend{}, "u-1")

	assert.Equal(t, "system", state.Theme())
	assert.Equal(t, "comfortable", state.Density())
	assert.False(t, state.Loaded())
}

func TestStateLoad(t *testing.T) {
	backend := &fakeBackend{theme: "dark", density: "compact"}
	state := NewState(backend, "u-1")

	require.NoError(t, state.Load(context.Background()))
	assert.Equal(t, "dark", state.Theme())
	assert.Equal(t, "compact", state.Density())
	assert.True(t, state.Loaded())
}

func TestStateLoadFailureKeepsDefaults(t *testing.T) {
	backend := &fakeBackend{getErr: errors.New("store down")}
	state := NewState(backend, "u-1")

	err := state.Load(context.Background())
	require.Error(t, err)
	// Usable anyway, on defaults.
	assert.Equal(t, "system", state.Theme())
	assert.Equal(t, "comfortable", state.Density())
	assert.False(t, state.Loaded())
}

func TestStateSetThemeWritesThrough(t *testing.T) {
	backend := &fakeBackend{theme: "system", density: "comfortable"}
	state := NewState(backend, "u-1")
	require.NoError(t, state.Load(context.Background()))

	require.NoError(t, state.SetTheme(context.Background(), "dark"))

	assert.Equal(t, "dark", state.Theme())
	assert.Equal(t, "dark", backend.theme)
	assert.Equal(t, 1, backend.updates)

	// Each change is its own write.
	require.NoError(t, state.SetDensity(context.Background(), "compact"))
	assert.Equal(t, 2, backend.updates)
	assert.Equal(t, "dark", state.Theme())
	assert.Equal(t, "compact", state.Density())
}

func TestStateSetRollsBackOnWriteFailure(t *testing.T) {
	backend := &fakeBackend{theme: "system", density: "comfortable"}
	state := NewState(backend, "u-1")
	require.NoError(t, state.Load(context.Background()))

	backend.updateErr = errors.New("write refused")
	err := state.SetTheme(context.Background(), "dark")
	require.Error(t, err)

	assert.Equal(t, "system", state.Theme())
	assert.Equal(t, "system", backend.theme)
}
