package models

import (
	"time"
)

// BrandVoice is the tone the generated copy should be written in.
type BrandVoice string

const (
	VoiceFriendly      BrandVoice = "friendly"
	VoiceProfessional  BrandVoice = "professional"
	VoicePlayful       BrandVoice = "playful"
	VoiceSophisticated BrandVoice = "sophisticated"
)

// IsValidBrandVoice reports whether v is one of the supported voices.
func IsValidBrandVoice(v BrandVoice) bool {
	switch v {
	case VoiceFriendly, VoiceProfessional, VoicePlayful, VoiceSophisticated:
		return true
	}
	return false
}

// BusinessProfile is the singleton profile for a user's business.
// Created on first save, mutated in place afterwards.
type BusinessProfile struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string     `json:"user_id" gorm:"not null;uniqueIndex;type:uuid"`
	Name       string     `json:"name" gorm:"type:varchar(255);not null"`
	Category   string     `json:"category" gorm:"type:varchar(100)"`
	Location   string     `json:"location" gorm:"type:varchar(255)"`
	BrandVoice BrandVoice `json:"brand_voice" gorm:"type:varchar(20);default:'friendly'"`
	Bio        string     `json:"bio" gorm:"type:text"`
	Products   string     `json:"products" gorm:"type:text"`
	Materials  string     `json:"materials" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the BusinessProfile model
func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// SaveBusinessProfileRequest creates or replaces the user's business profile.
type SaveBusinessProfileRequest struct {
	Name       string     `json:"name" binding:"required" example:"Corner Bloom Coffee"`
	Category   string     `json:"category" example:"coffee shop"`
	Location   string     `json:"location" example:"Portland, OR"`
	BrandVoice BrandVoice `json:"brand_voice" example:"friendly"`
	Bio        string     `json:"bio" example:"Neighborhood cafe roasting in-house since 2019"`
	Products   string     `json:"products" example:"Espresso drinks from $4, pastries, catering boxes $45"`
	Materials  string     `json:"materials" example:"Warm photography, hand-drawn chalkboard style"`
}

// BusinessProfileResponse represents the response for profile operations
type BusinessProfileResponse struct {
	ID         string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name       string     `json:"name" example:"Corner Bloom Coffee"`
	Category   string     `json:"category" example:"coffee shop"`
	Location   string     `json:"location" example:"Portland, OR"`
	BrandVoice BrandVoice `json:"brand_voice" example:"friendly"`
	Bio        string     `json:"bio" example:"Neighborhood cafe roasting in-house since 2019"`
	Products   string     `json:"products" example:"Espresso drinks from $4, pastries, catering boxes $45"`
	Materials  string     `json:"materials" example:"Warm photography, hand-drawn chalkboard style"`
	CreatedAt  string     `json:"created_at" example:"2025-01-09T10:30:00Z"`
	UpdatedAt  string     `json:"updated_at" example:"2025-01-09T10:30:00Z"`
}
