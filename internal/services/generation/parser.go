package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promoforge/promoforge-backend/internal/models"
)

// Exact number of content variations a generation request must produce.
const expectedVariations = 3

type variationsEnvelope struct {
	Variations []models.ContentVariation `json:"variations"`
}

// ParseVariations extracts the variations object from a raw model reply.
// The model is free-form around the JSON, so the substring from the first
// '{' to the last '}' is taken and decoded into the strict expected shape:
// a `variations` array of exactly three objects, each with non-empty title,
// content, and cta. Anything else fails the whole generation attempt.
func ParseVariations(raw string) ([]models.ContentVariation, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found in response", ErrMalformedResponse)
	}

	var envelope variationsEnvelope
	if err := json.Unmarshal([]byte(raw[start:end+1]), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(envelope.Variations) != expectedVariations {
		return nil, fmt.Errorf("%w: expected %d variations, got %d", ErrMalformedResponse, expectedVariations, len(envelope.Variations))
	}

	for i, v := range envelope.Variations {
		if v.Title == "" || v.Content == "" || v.CTA == "" {
			return nil, fmt.Errorf("%w: variation %d has missing fields", ErrMalformedResponse, i+1)
		}
	}

	return envelope.Variations, nil
}
