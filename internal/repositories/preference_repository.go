package repositories

import (
	"errors"

	"cornerstone_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPreferenceNotFound = errors.New("preference not found")

type PreferenceRepository interface {
	FindByUser(userID string) (*models.UserPreference, error)
	Upsert(pref *models.UserPreference) error
}

type PreferenceRepositoryImpl struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &PreferenceRepositoryImpl{db: db}
}

func (r *PreferenceRepositoryImpl) FindByUser(userID string) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.First(&pref, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}
	return &pref, nil
}

// Upsert writes the row back on every change, creating it on first write.
func (r *PreferenceRepositoryImpl) Upsert(pref *models.UserPreference) error {
	var existing models.UserPreference
	err := r.db.First(&existing, "user_id = ?", pref.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(pref).Error
		}
		return err
	}

	return r.db.Model(&existing).Updates(map[string]interface{}{
		"theme":   pref.Theme,
		"density": pref.Density,
	}).Error
}
