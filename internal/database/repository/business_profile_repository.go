package repository

import (
	"github.com/promoforge/promoforge-backend/internal/models"

	"gorm.io/gorm"
)

type BusinessProfileRepository struct {
	db *gorm.DB
}

func NewBusinessProfileRepository(db *gorm.DB) *BusinessProfileRepository {
	return &BusinessProfileRepository{db: db}
}

// GetByUserID retrieves the singleton business profile for a user
func (r *BusinessProfileRepository) GetByUserID(userID string) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile on first save and replaces it whole afterwards.
// Last write wins; there are no partial updates.
func (r *BusinessProfileRepository) Upsert(profile *models.BusinessProfile) error {
	var existing models.BusinessProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}
