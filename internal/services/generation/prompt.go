package generation

import (
	"fmt"
	"strings"

	"github.com/promoforge/promoforge-backend/internal/models"
)

// Number of sample customer profiles embedded into the prompt.
const maxSampleProfiles = 3

// Share of the roster assumed reachable for personalized campaigns on
// non-direct platforms.
const indirectReachRatio = 0.8

var platformDescriptions = map[string]string{
	models.PlatformInstagram: "an Instagram post (visual-first, hashtag friendly)",
	models.PlatformFacebook:  "a Facebook post (community tone, longer copy allowed)",
	models.PlatformTwitter:   "a short X/Twitter post (concise, punchy)",
	models.PlatformDirect:    "a direct email to individual customers",
}

var voiceDescriptions = map[models.BrandVoice]string{
	models.VoiceFriendly:      "warm and friendly, like a neighbor",
	models.VoiceProfessional:  "polished and professional",
	models.VoicePlayful:       "playful and lighthearted",
	models.VoiceSophisticated: "refined and sophisticated",
}

// ReachEstimate computes how many customers a personalized campaign is
// expected to be deliverable to. Direct campaigns count roster entries with
// a usable email address; other platforms assume 80% of the roster. General
// campaigns have no reach estimate.
func ReachEstimate(req *models.GenerateContentRequest, customers []models.Customer) int {
	if req.CampaignType != models.CampaignTypePersonalized {
		return 0
	}
	if req.Platform == models.PlatformDirect {
		count := 0
		for _, c := range customers {
			if strings.Contains(c.Email, "@") {
				count++
			}
		}
		return count
	}
	return int(indirectReachRatio * float64(len(customers)))
}

// FilterTargets applies the campaign's targeting mode to the roster. Keyword
// mode matches the purchase history case-insensitively; segment mode matches
// the assigned segment exactly. An empty targeting value targets everyone.
func FilterTargets(req *models.GenerateContentRequest, customers []models.Customer) []models.Customer {
	if req.TargetingValue == "" {
		return customers
	}
	filtered := make([]models.Customer, 0, len(customers))
	switch req.TargetingMode {
	case models.TargetingKeyword:
		keyword := strings.ToLower(req.TargetingValue)
		for _, c := range customers {
			if strings.Contains(strings.ToLower(c.PurchaseHistory), keyword) {
				filtered = append(filtered, c)
			}
		}
	case models.TargetingSegment:
		for _, c := range customers {
			if c.Segment == models.Segment(req.TargetingValue) {
				filtered = append(filtered, c)
			}
		}
	default:
		return customers
	}
	return filtered
}

// SegmentBreakdown maps each segment to its customer count. The counts
// always sum to the roster size.
func SegmentBreakdown(customers []models.Customer) map[models.Segment]int {
	breakdown := make(map[models.Segment]int)
	for _, c := range customers {
		breakdown[c.Segment]++
	}
	return breakdown
}

// BuildPrompt assembles the structured natural-language prompt for the
// generative model: business profile, campaign configuration, aggregate
// customer insights, and the output contract the response parser depends on.
// Missing profile fields appear as the literal "N/A" sentinel, never as an
// empty string.
func BuildPrompt(profile *models.BusinessProfile, req *models.GenerateContentRequest, customers []models.Customer) string {
	var b strings.Builder

	b.WriteString("You are an expert marketing copywriter for small businesses.\n\n")

	b.WriteString("=== BUSINESS PROFILE ===\n")
	if profile == nil {
		profile = &models.BusinessProfile{}
	}
	fmt.Fprintf(&b, "Business name: %s\n", orNA(profile.Name))
	fmt.Fprintf(&b, "Category: %s\n", orNA(strings.ToLower(profile.Category)))
	fmt.Fprintf(&b, "Location: %s\n", orNA(profile.Location))
	fmt.Fprintf(&b, "Brand voice: %s\n", orNA(expandVoice(profile.BrandVoice)))
	fmt.Fprintf(&b, "About: %s\n", orNA(profile.Bio))
	fmt.Fprintf(&b, "Products and services: %s\n", orNA(profile.Products))
	fmt.Fprintf(&b, "Visual style and materials: %s\n", orNA(profile.Materials))

	b.WriteString("\n=== CAMPAIGN CONFIGURATION ===\n")
	fmt.Fprintf(&b, "Campaign type: %s\n", expandCampaignType(req.CampaignType))
	fmt.Fprintf(&b, "Platform: %s\n", expandPlatform(req.Platform))
	fmt.Fprintf(&b, "Targeting: %s\n", expandTargeting(req))
	fmt.Fprintf(&b, "Call-to-action goal: %s\n", orNA(req.Goal))
	fmt.Fprintf(&b, "Seasonal theme: %s\n", orNA(req.SeasonalTheme))
	fmt.Fprintf(&b, "Focus keywords: %s\n", orNA(req.FocusKeywords))
	fmt.Fprintf(&b, "Additional instructions: %s\n", orNA(req.Instructions))

	b.WriteString("\n=== CUSTOMER INSIGHTS ===\n")
	targets := FilterTargets(req, customers)
	fmt.Fprintf(&b, "Total customers on file: %d\n", len(customers))
	fmt.Fprintf(&b, "Customers matched by targeting: %d\n", len(targets))
	b.WriteString("Segment breakdown:\n")
	breakdown := SegmentBreakdown(customers)
	for _, info := range models.AllSegments {
		if count := breakdown[info.Segment]; count > 0 {
			fmt.Fprintf(&b, "  - %s: %d\n", info.Label, count)
		}
	}
	b.WriteString("Sample targeted customer profiles:\n")
	samples := targets
	if len(samples) > maxSampleProfiles {
		samples = samples[:maxSampleProfiles]
	}
	if len(samples) == 0 {
		b.WriteString("  (none matched)\n")
	}
	for _, c := range samples {
		fmt.Fprintf(&b, "  - %s | segment: %s | total spent: $%.2f | history: %s\n",
			c.Name, c.Segment, c.TotalSpent, orNA(c.PurchaseHistory))
	}

	b.WriteString("\n=== OUTPUT REQUIREMENTS ===\n")
	b.WriteString("Write exactly three distinct, creatively varied pieces of marketing copy for this campaign.\n")
	b.WriteString("Respond with ONLY a JSON object in this exact shape, with no markdown fences and no other top-level keys:\n")
	b.WriteString(`{"variations": [{"title": "...", "content": "...", "cta": "..."}, {"title": "...", "content": "...", "cta": "..."}, {"title": "...", "content": "...", "cta": "..."}]}`)
	b.WriteString("\nEvery variation must have a non-empty title, content, and cta string.\n")

	return b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return models.FieldNotAvailable
	}
	return s
}

func expandPlatform(platform string) string {
	if desc, ok := platformDescriptions[platform]; ok {
		return desc
	}
	return orNA(platform)
}

func expandVoice(voice models.BrandVoice) string {
	if desc, ok := voiceDescriptions[voice]; ok {
		return desc
	}
	return string(voice)
}

func expandCampaignType(campaignType string) string {
	switch campaignType {
	case models.CampaignTypePersonalized:
		return "personalized (tailored to the targeted customers below)"
	case models.CampaignTypeGeneral:
		return "general (broad audience, no personalization)"
	}
	return orNA(campaignType)
}

func expandTargeting(req *models.GenerateContentRequest) string {
	switch req.TargetingMode {
	case models.TargetingKeyword:
		return fmt.Sprintf("customers whose purchase history mentions %q", req.TargetingValue)
	case models.TargetingSegment:
		return fmt.Sprintf("customers in the %q segment", req.TargetingValue)
	}
	return "entire customer roster"
}
