package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/promoforge/promoforge-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifySpendTiers(t *testing.T) {
	tests := []struct {
		name       string
		totalSpent float64
		history    string
		segment    models.Segment
		reasonHint string
	}{
		{"vip above threshold", 620, "", models.SegmentVIP, "$620.00"},
		{"boundary spend is not vip", 500, "", models.SegmentHighSpender, "$500.00"},
		{"high spender", 250, "", models.SegmentHighSpender, "$250.00"},
		{"returning spend", 75, "", models.SegmentReturning, "$75.00"},
		{"low positive spend", 20, "", models.SegmentNew, "$20.00"},
		{"no signals at all", 0, "", models.SegmentNew, "No spend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segment, reason := Classify(tt.totalSpent, tt.history)
			assert.Equal(t, tt.segment, segment)
			assert.Contains(t, reason, tt.reasonHint)
		})
	}
}

func TestClassifySpendBeatsHistory(t *testing.T) {
	// A known spend short-circuits the keyword scan entirely.
	segment, _ := Classify(620, "dissatisfied with last order")
	assert.Equal(t, models.SegmentVIP, segment)
}

func TestClassifyByHistoryKeywords(t *testing.T) {
	tests := []struct {
		name    string
		history string
		segment models.Segment
	}{
		{"frequency keyword", "Loyal regular, weekly visits", models.SegmentReturning},
		{"many purchase mentions", "order one, order two, order three, order four", models.SegmentReturning},
		{"loyalty keyword", "enrolled in our premium tier", models.SegmentVIP},
		{"churn keyword", "has not visited since spring", models.SegmentAtRisk},
		{"dissatisfied keyword", "filed a complaint about service", models.SegmentInactive},
		{"single purchase mention", "one purchase back in May", models.SegmentNew},
		{"no signals", "prefers window seating on Sundays", models.SegmentLowEngagement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segment, reason := Classify(0, tt.history)
			assert.Equal(t, tt.segment, segment)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	segment, _ := Classify(0, "WEEKLY REGULAR")
	assert.Equal(t, models.SegmentReturning, segment)
}

func TestRecentPurchaseDateWithinWindow(t *testing.T) {
	for i := 0; i < 20; i++ {
		raw := recentPurchaseDate()
		date, err := time.Parse("2006-01-02", raw)
		assert.NoError(t, err)

		age := time.Since(date)
		assert.True(t, age >= -24*time.Hour, "date %s is in the future", raw)
		assert.True(t, age <= 91*24*time.Hour, "date %s is older than 90 days", raw)
	}
}

func TestClassifyReasonEmbedsKeyword(t *testing.T) {
	_, reason := Classify(0, "Loyal regular customer")
	assert.True(t, strings.Contains(reason, "regular"), "reason should name the matched keyword, got %q", reason)
}
