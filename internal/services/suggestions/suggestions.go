package suggestions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/promoforge/promoforge-backend/internal/cache"
	"github.com/promoforge/promoforge-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// Number of suggestions surfaced per day.
const dailyCount = 3

// Linear congruential generator constants. The scalar derived from the
// day-of-year perturbs the curated catalog order without external
// randomness, so the same date and category always produce the same pick.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Service selects the daily content suggestions for a business category,
// caching the day's pick in the key-value store.
type Service struct {
	store *cache.Store
}

// NewService creates a suggestion service. The store may be nil; caching is
// then skipped.
func NewService(store *cache.Store) *Service {
	return &Service{store: store}
}

// GetDaily returns the three suggestions for the category on the given date.
func (s *Service) GetDaily(ctx context.Context, category string, date time.Time) (*models.DailySuggestionsResponse, error) {
	day := date.Format("2006-01-02")
	cacheKey := fmt.Sprintf("%s:%s", day, strings.ToLower(category))

	if s.store != nil {
		var cached models.DailySuggestionsResponse
		found, err := s.store.GetDailySuggestions(ctx, cacheKey, &cached)
		if err != nil {
			logrus.Warnf("Failed to read suggestion cache: %v", err)
		} else if found {
			return &cached, nil
		}
	}

	response := &models.DailySuggestionsResponse{
		Date:        day,
		Category:    strings.ToLower(category),
		Suggestions: PickDaily(category, date),
	}

	if s.store != nil {
		if err := s.store.SetDailySuggestions(ctx, cacheKey, response, 24*time.Hour); err != nil {
			logrus.Warnf("Failed to cache suggestions: %v", err)
		}
	}

	return response, nil
}

// PickDaily deterministically selects three suggestions for a date and
// category. The catalog is filtered to the category plus general entries,
// the LCG scalar for the day decides whether the curated order is kept or
// mildly perturbed, and the first three survive. The catalog order is
// curated to front-load strong ideas, so this is deliberately a weak
// shuffle rather than a full permutation.
func PickDaily(category string, date time.Time) []models.Suggestion {
	candidates := ForCategory(category)
	if len(candidates) == 0 {
		return []models.Suggestion{}
	}

	if dailyScalar(date) < 0 {
		candidates = swapAdjacent(candidates)
	}

	if len(candidates) > dailyCount {
		candidates = candidates[:dailyCount]
	}
	return candidates
}

// ForCategory filters the catalog to entries tagged with the business
// category or tagged "general".
func ForCategory(category string) []models.Suggestion {
	category = strings.ToLower(strings.TrimSpace(category))
	matched := make([]models.Suggestion, 0, len(Catalog))
	for _, s := range Catalog {
		if s.Category == "general" || s.Category == category {
			matched = append(matched, s)
		}
	}
	return matched
}

// dailyScalar computes the day's LCG value, normalized into [-0.5, 0.5).
func dailyScalar(date time.Time) float64 {
	seed := date.YearDay()
	value := (seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(value)/float64(lcgModulus) - 0.5
}

func swapAdjacent(items []models.Suggestion) []models.Suggestion {
	out := make([]models.Suggestion, len(items))
	copy(out, items)
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}
