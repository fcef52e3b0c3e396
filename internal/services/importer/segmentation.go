package importer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/promoforge/promoforge-backend/internal/models"
)

// Spend thresholds for the segmentation policy, in dollars.
const (
	vipSpendThreshold         = 500
	highSpenderSpendThreshold = 200
	returningSpendThreshold   = 50
)

var (
	frequencyKeywords    = []string{"frequent", "regular", "weekly"}
	purchaseKeywords     = []string{"purchase", "order", "visit", "buy"}
	loyaltyKeywords      = []string{"vip", "premium", "loyalty"}
	churnKeywords        = []string{"inactive", "not visited", "churned"}
	dissatisfiedKeywords = []string{"dissatisfied", "complaint", "issue"}
)

// Classify assigns a marketing segment from the spend amount and free-text
// purchase history. Rules are evaluated in a fixed priority order and the
// first match wins; every branch produces a human-readable reason embedding
// the value that triggered it.
func Classify(totalSpent float64, purchaseHistory string) (models.Segment, string) {
	switch {
	case totalSpent > vipSpendThreshold:
		return models.SegmentVIP, fmt.Sprintf("Total spend of $%.2f exceeds the $%d VIP threshold", totalSpent, vipSpendThreshold)
	case totalSpent > highSpenderSpendThreshold:
		return models.SegmentHighSpender, fmt.Sprintf("Total spend of $%.2f exceeds $%d", totalSpent, highSpenderSpendThreshold)
	case totalSpent > returningSpendThreshold:
		return models.SegmentReturning, fmt.Sprintf("Total spend of $%.2f indicates repeat purchases", totalSpent)
	case totalSpent > 0:
		return models.SegmentNew, fmt.Sprintf("Low recorded spend of $%.2f", totalSpent)
	}

	if strings.TrimSpace(purchaseHistory) != "" {
		return classifyByHistory(purchaseHistory)
	}

	return models.SegmentNew, "No spend or purchase history recorded yet"
}

func classifyByHistory(history string) (models.Segment, string) {
	lower := strings.ToLower(history)
	occurrences := countOccurrences(lower, purchaseKeywords)

	if keyword, ok := firstMatch(lower, frequencyKeywords); ok {
		return models.SegmentReturning, fmt.Sprintf("Purchase history mentions %q", keyword)
	}
	if occurrences > 3 {
		return models.SegmentReturning, fmt.Sprintf("Purchase history contains %d purchase mentions", occurrences)
	}
	if keyword, ok := firstMatch(lower, loyaltyKeywords); ok {
		return models.SegmentVIP, fmt.Sprintf("Purchase history mentions %q", keyword)
	}
	if keyword, ok := firstMatch(lower, churnKeywords); ok {
		return models.SegmentAtRisk, fmt.Sprintf("Purchase history mentions %q", keyword)
	}
	if keyword, ok := firstMatch(lower, dissatisfiedKeywords); ok {
		return models.SegmentInactive, fmt.Sprintf("Purchase history mentions %q", keyword)
	}
	if occurrences == 1 {
		return models.SegmentNew, "Single purchase mention in history"
	}
	return models.SegmentLowEngagement, "Purchase history has no strong engagement signals"
}

func firstMatch(text string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return keyword, true
		}
	}
	return "", false
}

func countOccurrences(text string, keywords []string) int {
	total := 0
	for _, keyword := range keywords {
		total += strings.Count(text, keyword)
	}
	return total
}

// recentPurchaseDate synthesizes a plausible purchase date within the last
// 90 days. Customers with a known spend always get some recent date rather
// than the "N/A" sentinel.
func recentPurchaseDate() string {
	daysAgo := rand.Intn(90)
	return time.Now().AddDate(0, 0, -daysAgo).Format("2006-01-02")
}
