package generation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `Here you go!
{"variations": [
  {"title": "One", "content": "First body", "cta": "Visit us"},
  {"title": "Two", "content": "Second body", "cta": "Order now"},
  {"title": "Three", "content": "Third body", "cta": "Book today"}
]}
Hope these work.`

func TestParseVariationsValid(t *testing.T) {
	variations, err := ParseVariations(validReply)
	require.NoError(t, err)
	require.Len(t, variations, 3)
	assert.Equal(t, "One", variations[0].Title)
	assert.Equal(t, "Order now", variations[1].CTA)
	assert.Equal(t, "Third body", variations[2].Content)
}

func TestParseVariationsStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + `{"variations": [{"title": "A", "content": "a", "cta": "x"}, {"title": "B", "content": "b", "cta": "y"}, {"title": "C", "content": "c", "cta": "z"}]}` + "\n```"
	variations, err := ParseVariations(fenced)
	require.NoError(t, err)
	assert.Len(t, variations, 3)
}

func TestParseVariationsNoBraces(t *testing.T) {
	_, err := ParseVariations("Sorry, I cannot help with that.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestParseVariationsInvalidJSON(t *testing.T) {
	_, err := ParseVariations(`{"variations": [{"title": "A"`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestParseVariationsWrongArity(t *testing.T) {
	two := `{"variations": [{"title": "A", "content": "a", "cta": "x"}, {"title": "B", "content": "b", "cta": "y"}]}`
	_, err := ParseVariations(two)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))

	four := `{"variations": [{"title": "A", "content": "a", "cta": "x"}, {"title": "B", "content": "b", "cta": "y"}, {"title": "C", "content": "c", "cta": "z"}, {"title": "D", "content": "d", "cta": "w"}]}`
	_, err = ParseVariations(four)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestParseVariationsMissingFields(t *testing.T) {
	blank := `{"variations": [{"title": "A", "content": "a", "cta": "x"}, {"title": "", "content": "b", "cta": "y"}, {"title": "C", "content": "c", "cta": "z"}]}`
	_, err := ParseVariations(blank)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestParseVariationsMissingArray(t *testing.T) {
	_, err := ParseVariations(`{"something_else": true}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestParseVariationsPassesContentThroughUnchanged(t *testing.T) {
	reply := `{"variations": [{"title": "50% OFF ☕", "content": "Line one\nLine two", "cta": "Tap the link"}, {"title": "B", "content": "b", "cta": "y"}, {"title": "C", "content": "c", "cta": "z"}]}`
	variations, err := ParseVariations(reply)
	require.NoError(t, err)
	assert.Equal(t, "50% OFF ☕", variations[0].Title)
	assert.Equal(t, "Line one\nLine two", variations[0].Content)
}
