package models

import (
	"time"
)

// Campaign is a saved, schedulable unit of generated marketing content.
// Campaigns are only created by an explicit save of a content variation;
// deletion is the only mutation after that.
type Campaign struct {
	ID             string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         string `json:"user_id" gorm:"not null;index;type:uuid"`
	Name           string `json:"name" gorm:"type:varchar(255);not null"`
	Title          string `json:"title" gorm:"type:varchar(500);not null"`
	Content        string `json:"content" gorm:"type:text;not null"`
	Platform       string `json:"platform" gorm:"type:varchar(50);index"`
	CampaignType   string `json:"campaign_type" gorm:"type:varchar(20);default:'general'"` // personalized, general
	TargetAudience string `json:"target_audience" gorm:"type:varchar(255)"`
	CTA            string `json:"cta" gorm:"type:varchar(500)"`

	// Scheduling
	Status string     `json:"status" gorm:"type:varchar(20);index;default:'draft'"` // scheduled, draft, posted
	Date   *time.Time `json:"date" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// Campaign status values
const (
	CampaignStatusScheduled = "scheduled"
	CampaignStatusDraft     = "draft"
	CampaignStatusPosted    = "posted"
)

// Campaign types
const (
	CampaignTypePersonalized = "personalized"
	CampaignTypeGeneral      = "general"
)

// CreateCampaignRequest saves one generated content variation as a campaign
type CreateCampaignRequest struct {
	Name           string     `json:"name" binding:"required" example:"September latte push"`
	Title          string     `json:"title" binding:"required" example:"Fall flavors are here"`
	Content        string     `json:"content" binding:"required" example:"Cozy up with our new maple latte..."`
	Platform       string     `json:"platform" binding:"required" example:"instagram"`
	CampaignType   string     `json:"campaign_type" example:"personalized"`
	TargetAudience string     `json:"target_audience" example:"returning customers"`
	CTA            string     `json:"cta" example:"Order ahead in the app"`
	Status         string     `json:"status" example:"scheduled"`
	Date           *time.Time `json:"date" example:"2025-09-14T00:00:00Z"`
}

// CampaignResponse represents the response for campaign operations
type CampaignResponse struct {
	ID             string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID         string     `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Name           string     `json:"name" example:"September latte push"`
	Title          string     `json:"title" example:"Fall flavors are here"`
	Content        string     `json:"content" example:"Cozy up with our new maple latte..."`
	Platform       string     `json:"platform" example:"instagram"`
	CampaignType   string     `json:"campaign_type" example:"personalized"`
	TargetAudience string     `json:"target_audience" example:"returning customers"`
	CTA            string     `json:"cta" example:"Order ahead in the app"`
	Status         string     `json:"status" example:"scheduled"`
	Date           *time.Time `json:"date" example:"2025-09-14T00:00:00Z"`
	CreatedAt      string     `json:"created_at" example:"2025-01-09T10:30:00Z"`
	UpdatedAt      string     `json:"updated_at" example:"2025-01-09T10:30:00Z"`
}
