package models

// Suggestion is one entry of the static daily-idea catalog.
type Suggestion struct {
	Title       string `json:"title" example:"Behind the counter"`
	Description string `json:"description" example:"Show how your signature drink is made"`
	Category    string `json:"category" example:"coffee shop"`
}

// DailySuggestionsResponse returns the three suggestions picked for a date.
type DailySuggestionsResponse struct {
	Date        string       `json:"date" example:"2025-09-01"`
	Category    string       `json:"category" example:"coffee shop"`
	Suggestions []Suggestion `json:"suggestions"`
}
