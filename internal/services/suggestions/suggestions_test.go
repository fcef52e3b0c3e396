package suggestions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

func TestPickDailyIsDeterministic(t *testing.T) {
	date := day(t, "2026-03-15")
	first := PickDaily("coffee shop", date)
	second := PickDaily("coffee shop", date)
	assert.Equal(t, first, second)
}

func TestPickDailyReturnsThree(t *testing.T) {
	for _, category := range []string{"coffee shop", "restaurant", "retail", "salon", "general"} {
		assert.Len(t, PickDaily(category, day(t, "2026-06-01")), dailyCount, "category %s", category)
	}
}

func TestPickDailyUnknownCategoryFallsBackToGeneral(t *testing.T) {
	picks := PickDaily("plumbing", day(t, "2026-06-01"))
	require.Len(t, picks, dailyCount)
	for _, s := range picks {
		assert.Equal(t, "general", s.Category)
	}
}

func TestPickDailyRotatesAcrossDays(t *testing.T) {
	// Day-of-year 1 yields a negative scalar (adjacent pairs swapped);
	// day-of-year 10 yields a positive one (curated order kept).
	swapped := PickDaily("coffee shop", day(t, "2026-01-01"))
	curated := PickDaily("coffee shop", day(t, "2026-01-10"))

	require.Len(t, swapped, dailyCount)
	require.Len(t, curated, dailyCount)
	assert.NotEqual(t, curated, swapped)
	assert.Equal(t, curated[0], swapped[1])
	assert.Equal(t, curated[1], swapped[0])
}

func TestForCategoryIncludesGeneral(t *testing.T) {
	entries := ForCategory("salon")
	var salon, general int
	for _, s := range entries {
		switch s.Category {
		case "salon":
			salon++
		case "general":
			general++
		default:
			t.Fatalf("unexpected category %q", s.Category)
		}
	}
	assert.Equal(t, 3, salon)
	assert.Equal(t, 6, general)
}

func TestForCategoryNormalizesInput(t *testing.T) {
	assert.Equal(t, ForCategory("coffee shop"), ForCategory("  Coffee Shop  "))
}

func TestDailyScalarRange(t *testing.T) {
	for yday := 1; yday <= 366; yday++ {
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, yday-1)
		scalar := dailyScalar(date)
		assert.GreaterOrEqual(t, scalar, -0.5)
		assert.Less(t, scalar, 0.5)
	}
}

func TestGetDailyWithoutStore(t *testing.T) {
	service := NewService(nil)
	response, err := service.GetDaily(context.Background(), "Retail", day(t, "2026-02-02"))
	require.NoError(t, err)
	assert.Equal(t, "2026-02-02", response.Date)
	assert.Equal(t, "retail", response.Category)
	assert.Len(t, response.Suggestions, dailyCount)
}
