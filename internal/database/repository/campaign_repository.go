package repository

import (
	"time"

	"github.com/promoforge/promoforge-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByUserID retrieves all campaigns for a specific user
func (r *CampaignRepository) GetByUserID(userID string) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

// GetByUserIDAndID retrieves a campaign by user ID and campaign ID
func (r *CampaignRepository) GetByUserIDAndID(userID, campaignID string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Where("user_id = ? AND id = ?", userID, campaignID).First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetScheduledInRange retrieves scheduled campaigns within a calendar window
func (r *CampaignRepository) GetScheduledInRange(userID string, from, to time.Time) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("user_id = ? AND status = ? AND date >= ? AND date < ?",
		userID, models.CampaignStatusScheduled, from, to).
		Order("date ASC").Find(&campaigns).Error
	return campaigns, err
}

// UpdateStatus updates only the status of a campaign
func (r *CampaignRepository) UpdateStatus(userID, campaignID, status string) error {
	return r.db.Model(&models.Campaign{}).
		Where("user_id = ? AND id = ?", userID, campaignID).
		Update("status", status).Error
}

// DeleteByUserIDAndID deletes a campaign by user ID and campaign ID
func (r *CampaignRepository) DeleteByUserIDAndID(userID, campaignID string) error {
	return r.db.Where("user_id = ? AND id = ?", userID, campaignID).Delete(&models.Campaign{}).Error
}
