package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/promoforge/promoforge-backend/internal/database/repository"
	"github.com/promoforge/promoforge-backend/internal/models"

	"gorm.io/gorm"
)

type BusinessProfileService struct {
	profileRepo *repository.BusinessProfileRepository
}

func NewBusinessProfileService(profileRepo *repository.BusinessProfileRepository) *BusinessProfileService {
	return &BusinessProfileService{profileRepo: profileRepo}
}

// GetProfile retrieves the user's business profile
func (s *BusinessProfileService) GetProfile(userID string) (*models.BusinessProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("profile not found")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return s.toResponse(profile), nil
}

// SaveProfile creates the profile on first save and replaces it whole on
// later saves. The category is lower-cased for matching against the
// suggestion catalog and products price mining.
func (s *BusinessProfileService) SaveProfile(userID string, req *models.SaveBusinessProfileRequest) (*models.BusinessProfileResponse, error) {
	voice := req.BrandVoice
	if voice == "" {
		voice = models.VoiceFriendly
	}
	if !models.IsValidBrandVoice(voice) {
		return nil, fmt.Errorf("invalid brand voice %q", req.BrandVoice)
	}

	profile := &models.BusinessProfile{
		UserID:     userID,
		Name:       req.Name,
		Category:   strings.ToLower(strings.TrimSpace(req.Category)),
		Location:   req.Location,
		BrandVoice: voice,
		Bio:        req.Bio,
		Products:   req.Products,
		Materials:  req.Materials,
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return s.toResponse(profile), nil
}

func (s *BusinessProfileService) toResponse(profile *models.BusinessProfile) *models.BusinessProfileResponse {
	return &models.BusinessProfileResponse{
		ID:         profile.ID,
		Name:       profile.Name,
		Category:   profile.Category,
		Location:   profile.Location,
		BrandVoice: profile.BrandVoice,
		Bio:        profile.Bio,
		Products:   profile.Products,
		Materials:  profile.Materials,
		CreatedAt:  profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  profile.UpdatedAt.Format(time.RFC3339),
	}
}
