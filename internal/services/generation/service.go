package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/promoforge/promoforge-backend/internal/cache"
	"github.com/promoforge/promoforge-backend/internal/database/repository"
	"github.com/promoforge/promoforge-backend/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventPublisher receives completion events for the audit queue. May be nil
// when the broker is unavailable.
type EventPublisher interface {
	PublishGenerationCompleted(userID string, campaignType string, variations int) error
}

// Service runs the full generation pipeline: load profile and roster, guard
// against overlapping requests, assemble the prompt, call the model, and
// parse the reply into exactly three content variations.
type Service struct {
	customerRepo *repository.CustomerRepository
	profileRepo  *repository.BusinessProfileRepository
	store        *cache.Store
	newGenerator GeneratorFactory
	events       EventPublisher
}

// NewService creates a generation service. The factory builds a model client
// per request from the user's stored credential.
func NewService(
	customerRepo *repository.CustomerRepository,
	profileRepo *repository.BusinessProfileRepository,
	store *cache.Store,
	newGenerator GeneratorFactory,
	events EventPublisher,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		store:        store,
		newGenerator: newGenerator,
		events:       events,
	}
}

// Generate handles one generation attempt for a user. A second call while a
// prior one is outstanding fails with ErrInProgress; there is no queueing
// and no automatic retry on any failure.
func (s *Service) Generate(ctx context.Context, userID string, req *models.GenerateContentRequest) (*models.GenerateContentResponse, error) {
	acquired, err := s.store.AcquireGenerationLock(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check in-flight guard: %w", err)
	}
	if !acquired {
		return nil, ErrInProgress
	}
	defer s.store.ReleaseGenerationLock(ctx, userID)

	apiKey, err := s.store.GetCredential(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load business profile: %w", err)
	}

	customers, err := s.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer roster: %w", err)
	}

	roster := make([]models.Customer, len(customers))
	for i, c := range customers {
		roster[i] = *c
	}

	reach := ReachEstimate(req, roster)
	prompt := BuildPrompt(profile, req, roster)

	generator, err := s.newGenerator(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	defer generator.Close()

	logrus.Infof("Generating content for user %s: type=%s platform=%s roster=%d reach=%d",
		userID, req.CampaignType, req.Platform, len(roster), reach)

	raw, err := generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	variations, err := ParseVariations(raw)
	if err != nil {
		logrus.Warnf("Generation for user %s produced an unparseable reply: %v", userID, err)
		return nil, err
	}

	if s.events != nil {
		if err := s.events.PublishGenerationCompleted(userID, req.CampaignType, len(variations)); err != nil {
			logrus.Warnf("Failed to publish generation event: %v", err)
		}
	}

	return &models.GenerateContentResponse{
		Variations:        variations,
		PersonalizedCount: reach,
	}, nil
}
