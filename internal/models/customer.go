package models

import (
	"time"
)

// Sentinel used for optional customer fields that could not be derived.
// Consumers rely on the field always being present, never empty.
const FieldNotAvailable = "N/A"

// Segment is a closed-set marketing classification assigned to a customer.
type Segment string

const (
	SegmentNew           Segment = "new"
	SegmentReturning     Segment = "returning"
	SegmentVIP           Segment = "vip"
	SegmentInactive      Segment = "inactive"
	SegmentAtRisk        Segment = "at-risk"
	SegmentHighSpender   Segment = "high-spender"
	SegmentLowEngagement Segment = "low-engagement"
	SegmentUpsell        Segment = "upsell"
)

// SegmentInfo carries the UI label and description for a segment.
type SegmentInfo struct {
	Segment     Segment `json:"segment" example:"vip"`
	Label       string  `json:"label" example:"VIP"`
	Description string  `json:"description" example:"Top customers by total spend"`
}

// AllSegments lists every segment with its label and description, in a
// stable order used by the UI and by the prompt's segment breakdown.
var AllSegments = []SegmentInfo{
	{SegmentNew, "New", "Recently acquired customers with little purchase history"},
	{SegmentReturning, "Returning", "Customers who buy regularly"},
	{SegmentVIP, "VIP", "Top customers by total spend or loyalty status"},
	{SegmentInactive, "Inactive", "Customers with unresolved complaints or no recent activity"},
	{SegmentAtRisk, "At Risk", "Customers showing signs of churn"},
	{SegmentHighSpender, "High Spender", "Above-average spend but not yet VIP"},
	{SegmentLowEngagement, "Low Engagement", "Known customers with weak interaction signals"},
	{SegmentUpsell, "Upsell", "Customers likely to respond to premium offers"},
}

// IsValidSegment reports whether s is one of the closed segment set.
func IsValidSegment(s Segment) bool {
	for _, info := range AllSegments {
		if info.Segment == s {
			return true
		}
	}
	return false
}

// Customer represents one contact in a user's roster.
type Customer struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID           string    `json:"user_id" gorm:"not null;index;type:uuid"`
	Name             string    `json:"name" gorm:"type:varchar(255);not null"`
	Email            string    `json:"email" gorm:"type:varchar(255);default:'N/A'"`
	Phone            string    `json:"phone" gorm:"type:varchar(50);default:'N/A'"`
	PurchaseHistory  string    `json:"purchase_history" gorm:"type:text"`
	Segment          Segment   `json:"segment" gorm:"type:varchar(20);index;default:'new'"`
	SegmentReason    string    `json:"segment_reason" gorm:"type:text;not null"`
	TotalSpent       float64   `json:"total_spent" gorm:"default:0"`
	LastPurchaseDate string    `json:"last_purchase_date" gorm:"type:varchar(20);default:'N/A'"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CreateCustomerRequest represents the manual-entry request to add a customer.
// The segment is chosen by the user; the import heuristic is not applied.
type CreateCustomerRequest struct {
	Name            string  `json:"name" binding:"required" example:"Jane Doe"`
	Email           string  `json:"email,omitempty" example:"jane@example.com"`
	Phone           string  `json:"phone,omitempty" example:"555-111-2222"`
	PurchaseHistory string  `json:"purchase_history,omitempty" example:"Weekly latte, two catering orders"`
	Segment         Segment `json:"segment" binding:"required" example:"returning"`
	TotalSpent      float64 `json:"total_spent,omitempty" example:"250"`
}

// UpdateCustomerRequest represents the request to edit a customer.
// The stored segment reason is left untouched on edit.
type UpdateCustomerRequest struct {
	Name            string  `json:"name" binding:"required" example:"Jane Doe"`
	Email           string  `json:"email,omitempty" example:"jane@example.com"`
	Phone           string  `json:"phone,omitempty" example:"555-111-2222"`
	PurchaseHistory string  `json:"purchase_history,omitempty" example:"Weekly latte, two catering orders"`
	Segment         Segment `json:"segment" binding:"required" example:"vip"`
	TotalSpent      float64 `json:"total_spent,omitempty" example:"620"`
}

// CustomerResponse represents the response for customer operations
type CustomerResponse struct {
	ID               string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name             string  `json:"name" example:"Jane Doe"`
	Email            string  `json:"email" example:"jane@example.com"`
	Phone            string  `json:"phone" example:"555-111-2222"`
	PurchaseHistory  string  `json:"purchase_history" example:"Weekly latte, two catering orders"`
	Segment          Segment `json:"segment" example:"returning"`
	SegmentReason    string  `json:"segment_reason" example:"Frequent purchase pattern detected"`
	TotalSpent       float64 `json:"total_spent" example:"250"`
	LastPurchaseDate string  `json:"last_purchase_date" example:"2025-08-14"`
	CreatedAt        string  `json:"created_at" example:"2025-01-09T10:30:00Z"`
	UpdatedAt        string  `json:"updated_at" example:"2025-01-09T10:30:00Z"`
}

// ImportCustomersResponse represents the result of a roster upload
type ImportCustomersResponse struct {
	Imported  int                `json:"imported" example:"42"`
	Customers []CustomerResponse `json:"customers"`
}
