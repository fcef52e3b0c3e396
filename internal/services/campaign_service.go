package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/promoforge/promoforge-backend/internal/database/repository"
	"github.com/promoforge/promoforge-backend/internal/models"
)

type CampaignService struct {
	campaignRepo *repository.CampaignRepository
	userRepo     *repository.UserRepository
}

func NewCampaignService(campaignRepo *repository.CampaignRepository, userRepo *repository.UserRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
	}
}

// CreateCampaign saves a generated content variation as a campaign. This is
// the only way campaigns come into existence.
func (s *CampaignService) CreateCampaign(userID string, req *models.CreateCampaignRequest) (*models.CampaignResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, errors.New("user not found")
	}

	status := req.Status
	if status == "" {
		status = models.CampaignStatusDraft
	}
	if status != models.CampaignStatusDraft && status != models.CampaignStatusScheduled && status != models.CampaignStatusPosted {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}

	campaignType := req.CampaignType
	if campaignType == "" {
		campaignType = models.CampaignTypeGeneral
	}
	if campaignType != models.CampaignTypePersonalized && campaignType != models.CampaignTypeGeneral {
		return nil, fmt.Errorf("invalid campaign type %q", req.CampaignType)
	}

	campaign := &models.Campaign{
		UserID:         userID,
		Name:           req.Name,
		Title:          req.Title,
		Content:        req.Content,
		Platform:       req.Platform,
		CampaignType:   campaignType,
		TargetAudience: req.TargetAudience,
		CTA:            req.CTA,
		Status:         status,
		Date:           req.Date,
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return s.toResponse(campaign), nil
}

// GetCampaignsByUser retrieves all campaigns for a specific user
func (s *CampaignService) GetCampaignsByUser(userID string) ([]*models.CampaignResponse, error) {
	campaigns, err := s.campaignRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}

	responses := make([]*models.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		responses[i] = s.toResponse(campaign)
	}
	return responses, nil
}

// GetCampaignByID retrieves a campaign by ID (user must own it)
func (s *CampaignService) GetCampaignByID(userID, campaignID string) (*models.CampaignResponse, error) {
	campaign, err := s.campaignRepo.GetByUserIDAndID(userID, campaignID)
	if err != nil {
		return nil, errors.New("campaign not found")
	}
	return s.toResponse(campaign), nil
}

// GetCalendar retrieves scheduled campaigns in a month window
func (s *CampaignService) GetCalendar(userID string, year int, month time.Month) ([]*models.CampaignResponse, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	campaigns, err := s.campaignRepo.GetScheduledInRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}

	responses := make([]*models.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		responses[i] = s.toResponse(campaign)
	}
	return responses, nil
}

// UpdateStatus moves a campaign between draft, scheduled, and posted
func (s *CampaignService) UpdateStatus(userID, campaignID, status string) (*models.CampaignResponse, error) {
	if status != models.CampaignStatusDraft && status != models.CampaignStatusScheduled && status != models.CampaignStatusPosted {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	if _, err := s.campaignRepo.GetByUserIDAndID(userID, campaignID); err != nil {
		return nil, errors.New("campaign not found")
	}

	if err := s.campaignRepo.UpdateStatus(userID, campaignID, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	campaign, err := s.campaignRepo.GetByUserIDAndID(userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload campaign: %w", err)
	}
	return s.toResponse(campaign), nil
}

// DeleteCampaign deletes a campaign (user must own it)
func (s *CampaignService) DeleteCampaign(userID, campaignID string) error {
	if _, err := s.campaignRepo.GetByUserIDAndID(userID, campaignID); err != nil {
		return errors.New("campaign not found")
	}
	if err := s.campaignRepo.DeleteByUserIDAndID(userID, campaignID); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

// toResponse converts Campaign model to response DTO
func (s *CampaignService) toResponse(campaign *models.Campaign) *models.CampaignResponse {
	return &models.CampaignResponse{
		ID:             campaign.ID,
		UserID:         campaign.UserID,
		Name:           campaign.Name,
		Title:          campaign.Title,
		Content:        campaign.Content,
		Platform:       campaign.Platform,
		CampaignType:   campaign.CampaignType,
		TargetAudience: campaign.TargetAudience,
		CTA:            campaign.CTA,
		Status:         campaign.Status,
		Date:           campaign.Date,
		CreatedAt:      campaign.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      campaign.UpdatedAt.Format(time.RFC3339),
	}
}
