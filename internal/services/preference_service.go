package services

import (
	"context"
	"errors"

	"cornerstone_backend/internal/models"
	"cornerstone_backend/internal/repositories"
	"cornerstone_backend/internal/services/dto"
)

// Defaults when no preference row exists yet.
const (
	DefaultTheme   = models.ThemeSystem
	DefaultDensity = models.DensityComfortable
)

type PreferenceService interface {
	// Get returns the stored preferences, or defaults when the user has
	// never saved any.
	Get(userID string) (*dto.PreferenceResponse, error)

	// Update merges the request over the current values and writes the row
	// back. Zero-value fields keep their current setting.
	Update(ctx context.Context, userID string, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error)
}

type preferenceService struct {
	preferenceRepo repositories.PreferenceRepository
	auditService   AuditService
}

func NewPreferenceService(preferenceRepo repositories.PreferenceRepository, auditService AuditService) PreferenceService {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
		auditService:   auditService,
	}
}

func (s *preferenceService) Get(userID string) (*dto.PreferenceResponse, error) {
	if userID == "" {
		return nil, ErrNotAuthorized
	}

	pref, err := s.preferenceRepo.FindByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPreferenceNotFound) {
			return &dto.PreferenceResponse{
				Theme:   string(DefaultTheme),
				Density: string(DefaultDensity),
			}, nil
		}
		return nil, err
	}

	return &dto.PreferenceResponse{
		Theme:   string(pref.Theme),
		Density: string(pref.Density),
	}, nil
}

func (s *preferenceService) Update(ctx context.Context, userID string, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error) {
	if userID == "" {
		return nil, ErrNotAuthorized
	}

	current, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != "" {
		current.Theme = req.Theme
	}
	if req.Density != "" {
		current.Density = req.Density
	}

	pref := &models.UserPreference{
		UserID:  userID,
		Theme:   models.Theme(current.Theme),
		Density: models.Density(current.Density),
	}

	if err := s.preferenceRepo.Upsert(pref); err != nil {
		return nil, err
	}

	s.auditService.RecordAsync(ctx, &userID, AuditActionPreferenceUpdated, "user_preference", userID, map[string]interface{}{
		"theme":   current.Theme,
		"density": current.Density,
	})

	return current, nil
}
