package generation

import (
	"strings"
	"testing"

	"github.com/promoforge/promoforge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoster() []models.Customer {
	return []models.Customer{
		{Name: "Jane Doe", Email: "jane@x.com", Segment: models.SegmentReturning, PurchaseHistory: "Loyal regular, weekly visits", TotalSpent: 80},
		{Name: "Bob Smith", Email: models.FieldNotAvailable, Segment: models.SegmentVIP, TotalSpent: 620},
		{Name: "Carol Chen", Email: "carol@x.com", Segment: models.SegmentNew},
		{Name: "Dan Ortiz", Email: "dan@x.com", Segment: models.SegmentReturning, PurchaseHistory: "stops by for coffee most mornings"},
		{Name: "Eve Lund", Email: models.FieldNotAvailable, Segment: models.SegmentAtRisk},
	}
}

func TestReachEstimateDirectCountsEmails(t *testing.T) {
	req := &models.GenerateContentRequest{
		CampaignType: models.CampaignTypePersonalized,
		Platform:     models.PlatformDirect,
	}
	// Sentinel "N/A" emails must not count as deliverable.
	assert.Equal(t, 3, ReachEstimate(req, sampleRoster()))
}

func TestReachEstimateIndirectIs80Percent(t *testing.T) {
	req := &models.GenerateContentRequest{
		CampaignType: models.CampaignTypePersonalized,
		Platform:     models.PlatformInstagram,
	}
	// floor(0.8 * 5) = 4
	assert.Equal(t, 4, ReachEstimate(req, sampleRoster()))
}

func TestReachEstimateGeneralIsZero(t *testing.T) {
	req := &models.GenerateContentRequest{
		CampaignType: models.CampaignTypeGeneral,
		Platform:     models.PlatformDirect,
	}
	assert.Equal(t, 0, ReachEstimate(req, sampleRoster()))
}

func TestFilterTargetsByKeyword(t *testing.T) {
	req := &models.GenerateContentRequest{
		TargetingMode:  models.TargetingKeyword,
		TargetingValue: "COFFEE",
	}
	targets := FilterTargets(req, sampleRoster())
	require.Len(t, targets, 1)
	assert.Equal(t, "Dan Ortiz", targets[0].Name)
}

func TestFilterTargetsBySegment(t *testing.T) {
	req := &models.GenerateContentRequest{
		TargetingMode:  models.TargetingSegment,
		TargetingValue: string(models.SegmentReturning),
	}
	targets := FilterTargets(req, sampleRoster())
	assert.Len(t, targets, 2)
}

func TestFilterTargetsEmptyValueTargetsEveryone(t *testing.T) {
	req := &models.GenerateContentRequest{TargetingMode: models.TargetingKeyword}
	assert.Len(t, FilterTargets(req, sampleRoster()), len(sampleRoster()))
}

func TestSegmentBreakdownSumsToRoster(t *testing.T) {
	roster := sampleRoster()
	breakdown := SegmentBreakdown(roster)

	total := 0
	for _, count := range breakdown {
		total += count
	}
	assert.Equal(t, len(roster), total)
	assert.Equal(t, 2, breakdown[models.SegmentReturning])
	assert.Equal(t, 1, breakdown[models.SegmentVIP])
}

func TestBuildPromptSections(t *testing.T) {
	profile := &models.BusinessProfile{
		Name:       "Corner Brew",
		Category:   "coffee shop",
		BrandVoice: models.VoiceFriendly,
	}
	req := &models.GenerateContentRequest{
		CampaignType:   models.CampaignTypePersonalized,
		Platform:       models.PlatformInstagram,
		TargetingMode:  models.TargetingSegment,
		TargetingValue: string(models.SegmentVIP),
		Goal:           "drive weekend visits",
	}

	prompt := BuildPrompt(profile, req, sampleRoster())

	assert.Contains(t, prompt, "=== BUSINESS PROFILE ===")
	assert.Contains(t, prompt, "=== CAMPAIGN CONFIGURATION ===")
	assert.Contains(t, prompt, "=== CUSTOMER INSIGHTS ===")
	assert.Contains(t, prompt, "=== OUTPUT REQUIREMENTS ===")

	assert.Contains(t, prompt, "Corner Brew")
	// Unset profile fields surface as the sentinel, never as blanks.
	assert.Contains(t, prompt, "Location: N/A")
	assert.Contains(t, prompt, "About: N/A")
	// Enum codes expand to descriptive phrases.
	assert.Contains(t, prompt, "Instagram post")
	assert.Contains(t, prompt, "warm and friendly")
	assert.Contains(t, prompt, `customers in the "vip" segment`)

	assert.Contains(t, prompt, "Total customers on file: 5")
	assert.Contains(t, prompt, "Customers matched by targeting: 1")
	assert.Contains(t, prompt, "Bob Smith")

	// The output contract the parser depends on.
	assert.Contains(t, prompt, "exactly three")
	assert.Contains(t, prompt, `"variations"`)
}

func TestBuildPromptNilProfile(t *testing.T) {
	req := &models.GenerateContentRequest{
		CampaignType: models.CampaignTypeGeneral,
		Platform:     models.PlatformFacebook,
	}
	prompt := BuildPrompt(nil, req, nil)
	assert.Contains(t, prompt, "Business name: N/A")
	assert.Contains(t, prompt, "Total customers on file: 0")
}

func TestBuildPromptSampleCap(t *testing.T) {
	req := &models.GenerateContentRequest{
		CampaignType: models.CampaignTypeGeneral,
		Platform:     models.PlatformTwitter,
	}
	prompt := BuildPrompt(nil, req, sampleRoster())

	// At most three sample profiles are embedded.
	sampleSection := prompt[strings.Index(prompt, "Sample targeted customer profiles:"):]
	assert.NotContains(t, sampleSection, "Dan Ortiz")
	assert.NotContains(t, sampleSection, "Eve Lund")
	assert.Contains(t, sampleSection, "Jane Doe")
}
