package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cornerstone_backend/internal/models"
	"cornerstone_backend/internal/repositories"
	"cornerstone_backend/internal/services/dto"
)

type fakePreferenceRepo struct {
	mu   sync.Mutex
	rows map[string]*models.UserPreference
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{rows: make(map[string]*models.UserPreference)}
}

func (f *fakePreferenceRepo) FindByUser(userID string) (*models.UserPreference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pref, ok := f.rows[userID]
	if !ok {
		return nil, repositories.ErrPreferenceNotFound
	}
	cp := *pref
	return &cp, nil
}

func (f *fakePreferenceRepo) Upsert(pref *models.UserPreference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *pref
	f.rows[pref.UserID] = &cp
	return nil
}

func newTestPreferenceService() (PreferenceService, *fakePreferenceRepo) {
	repo := newFakePreferenceRepo()
	svc := NewPreferenceService(repo, NewAuditService(&fakeAuditRepo{}))
	return svc, repo
}

func TestPreferenceGetDefaults(t *testing.T) {
	svc, _ := newTestPreferenceService()

	pref, err := svc.Get("u-1")
	require.NoError(t, err)
	assert.Equal(t, string(DefaultTheme), pref.Theme)
	assert.Equal(t, string(DefaultDensity), pref.Density)
}

func TestPreferenceGetRequiresPrincipal(t *testing.T) {
	svc, _ := newTestPreferenceService()

	_, err := svc.Get("")
	assert.Error(t, err)
}

func TestPreferenceUpdateCreatesRow(t *testing.T) {
	svc, repo := newTestPreferenceService()

	pref, err := svc.Update(context.Background(), "u-1", &dto.UpdatePreferenceRequest{Theme: "dark"})
	require.NoError(t, err)
	assert.Equal(t, "dark", pref.Theme)
	// Untouched field keeps the default.
	assert.Equal(t, string(DefaultDensity), pref.Density)

	stored, err := repo.FindByUser("u-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, stored.Theme)
}

func TestPreferenceUpdateMerges(t *testing.T) {
	svc, _ := newTestPreferenceService()

	_, err := svc.Update(context.Background(), "u-1", &dto.UpdatePreferenceRequest{Theme: "dark"})
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), "u-1", &dto.UpdatePreferenceRequest{Density: "compact"})
	require.NoError(t, err)

	pref, err := svc.Get("u-1")
	require.NoError(t, err)
	assert.Equal(t, "dark", pref.Theme)
	assert.Equal(t, "compact", pref.Density)
}
