package importer

import (
	"testing"

	"github.com/promoforge/promoforge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRosterEndToEnd(t *testing.T) {
	content := "Jane Doe,jane@x.com,555-111-2222,\"Loyal regular, weekly visits\"\n" +
		"Bob Smith,,,\"$620 total\"\n"

	customers := ParseRoster(content)
	require.Len(t, customers, 2)

	jane := customers[0]
	assert.Equal(t, "Jane Doe", jane.Name)
	assert.Equal(t, "jane@x.com", jane.Email)
	assert.Equal(t, "555-111-2222", jane.Phone)
	assert.Equal(t, "Loyal regular, weekly visits", jane.PurchaseHistory)
	assert.Equal(t, models.SegmentReturning, jane.Segment)

	bob := customers[1]
	assert.Equal(t, "Bob Smith", bob.Name)
	assert.Equal(t, models.FieldNotAvailable, bob.Email)
	assert.Equal(t, models.FieldNotAvailable, bob.Phone)
	assert.Equal(t, models.SegmentVIP, bob.Segment)
	assert.Equal(t, float64(620), bob.TotalSpent)
	assert.NotEqual(t, models.FieldNotAvailable, bob.LastPurchaseDate)
}

func TestParseRosterSkipsHeaderRow(t *testing.T) {
	content := "Name,Email,Phone\nAlice,alice@example.com,\n"
	customers := ParseRoster(content)
	require.Len(t, customers, 1)
	assert.Equal(t, "Alice", customers[0].Name)
}

func TestParseRosterKeepsDataLookingFirstLine(t *testing.T) {
	content := "Jane Doe,jane@x.com\nBob Smith,bob@x.com\n"
	customers := ParseRoster(content)
	assert.Len(t, customers, 2)
}

func TestParseRosterDropsEmptyNames(t *testing.T) {
	content := ",orphan@example.com\nCarol,carol@example.com\n"
	customers := ParseRoster(content)
	require.Len(t, customers, 1)
	assert.Equal(t, "Carol", customers[0].Name)
}

func TestParseRosterEmptyInput(t *testing.T) {
	assert.Empty(t, ParseRoster(""))
	assert.Empty(t, ParseRoster("\n\n  \n"))
}

func TestParseRosterIsDeterministic(t *testing.T) {
	content := "Jane Doe,jane@x.com,\"Loyal regular, weekly visits\"\n"
	first := ParseRoster(content)
	second := ParseRoster(content)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Segment, second[0].Segment)
	assert.Equal(t, first[0].SegmentReason, second[0].SegmentReason)
}

func TestSplitFieldsQuotedComma(t *testing.T) {
	fields := splitFields(`Jane Doe,jane@x.com,"Loyal regular, weekly visits"`)
	require.Len(t, fields, 3)
	assert.Equal(t, "Loyal regular, weekly visits", fields[2])
}

func TestSplitFieldsUnbalancedQuote(t *testing.T) {
	fields := splitFields(`Jane,"half quoted, tail`)
	require.Len(t, fields, 2)
	assert.Equal(t, "half quoted, tail", fields[1])
}

func TestClassifyFieldsByShape(t *testing.T) {
	// Columns deliberately out of the usual order: shape decides, not position.
	customer, ok := classifyFields([]string{"Dana", "$75 lifetime", "dana@example.com", "+1 (555) 222-3333"})
	require.True(t, ok)
	assert.Equal(t, "dana@example.com", customer.Email)
	assert.Equal(t, "+1 (555) 222-3333", customer.Phone)
	assert.Equal(t, float64(75), customer.TotalSpent)
	assert.Equal(t, models.SegmentReturning, customer.Segment)
}

func TestClassifyFieldsFirstEmailWins(t *testing.T) {
	customer, ok := classifyFields([]string{"Dana", "first@example.com", "second@example.com"})
	require.True(t, ok)
	assert.Equal(t, "first@example.com", customer.Email)
}

func TestClassifyFieldsHistoryRequiresLength(t *testing.T) {
	customer, ok := classifyFields([]string{"Dana", "short note"})
	require.True(t, ok)
	assert.Empty(t, customer.PurchaseHistory)

	customer, ok = classifyFields([]string{"Dana", "a considerably longer free-text purchase note"})
	require.True(t, ok)
	assert.Equal(t, "a considerably longer free-text purchase note", customer.PurchaseHistory)
}

func TestClassifyFieldsMalformedCurrencyIgnored(t *testing.T) {
	customer, ok := classifyFields([]string{"Dana", "$"})
	require.True(t, ok)
	assert.Zero(t, customer.TotalSpent)
	assert.Equal(t, models.FieldNotAvailable, customer.LastPurchaseDate)
}

func TestParseCurrency(t *testing.T) {
	amount, err := parseCurrency("$620 total")
	require.NoError(t, err)
	assert.Equal(t, float64(620), amount)

	amount, err = parseCurrency("€1234.50")
	require.NoError(t, err)
	assert.Equal(t, 1234.50, amount)

	_, err = parseCurrency("$")
	assert.Error(t, err)
}

func TestLooksLikeHeader(t *testing.T) {
	assert.True(t, looksLikeHeader("Name,Email,Phone"))
	assert.True(t, looksLikeHeader("customer name,total spent"))
	assert.False(t, looksLikeHeader("Jane Doe,jane@x.com"))
	assert.False(t, looksLikeHeader("single column line"))
}
