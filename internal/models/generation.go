package models

// Campaign platforms accepted by the generation endpoint.
const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformDirect    = "direct"
)

// Targeting modes for personalized campaigns.
const (
	TargetingKeyword = "keyword"
	TargetingSegment = "segment"
)

// GenerateContentRequest carries the campaign configuration for one
// generation attempt. The roster and business profile are loaded server side
// for the authenticated user.
type GenerateContentRequest struct {
	CampaignType   string `json:"campaign_type" binding:"required" example:"personalized"`
	Platform       string `json:"platform" binding:"required" example:"instagram"`
	TargetingMode  string `json:"targeting_mode,omitempty" example:"keyword"`
	TargetingValue string `json:"targeting_value,omitempty" example:"coffee"`
	Goal           string `json:"goal,omitempty" example:"drive weekend orders"`
	SeasonalTheme  string `json:"seasonal_theme,omitempty" example:"fall"`
	FocusKeywords  string `json:"focus_keywords,omitempty" example:"maple, cozy"`
	Instructions   string `json:"instructions,omitempty" example:"Mention the loyalty card"`
}

// ContentVariation is one of exactly three AI-generated copy drafts.
type ContentVariation struct {
	Title   string `json:"title" example:"Fall flavors are here"`
	Content string `json:"content" example:"Cozy up with our new maple latte..."`
	CTA     string `json:"cta" example:"Order ahead in the app"`
}

// GenerateContentResponse mirrors the client-side generation contract:
// exactly three variations plus the personalized reach estimate.
type GenerateContentResponse struct {
	Variations        []ContentVariation `json:"variations"`
	PersonalizedCount int                `json:"personalizedCount" example:"42"`
}
