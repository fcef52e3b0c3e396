package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/promoforge/promoforge-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// Reason recorded for customers added through the manual-entry path, which
// bypasses the segmentation heuristic entirely.
const ManualEntryReason = "Manually added customer"

var (
	phonePattern    = regexp.MustCompile(`^\+?[\d\s\-().]{7,}$`)
	currencySymbols = "$€£¥"
)

// ParseRoster parses raw delimited text (CSV/TXT, one record per line) into
// customer records. Blank lines are discarded, a header-looking first line is
// skipped, and rows with an empty name are dropped. Every other row is kept
// even if all remaining fields degrade to sentinels.
func ParseRoster(content string) []models.Customer {
	lines := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return []models.Customer{}
	}

	if looksLikeHeader(lines[0]) {
		lines = lines[1:]
	}

	customers := make([]models.Customer, 0, len(lines))
	for _, line := range lines {
		fields := splitFields(line)
		customer, ok := classifyFields(fields)
		if !ok {
			logrus.Debugf("Skipping roster line with empty name: %q", line)
			continue
		}
		customers = append(customers, customer)
	}

	return customers
}

// looksLikeHeader reports whether the first line of an upload is a column
// header row rather than data. Header detection is keyword based: a line
// whose tokens are column names like "name" or "email" carries no record.
func looksLikeHeader(line string) bool {
	if !strings.Contains(line, ",") {
		return false
	}
	lower := strings.ToLower(line)
	headerWords := []string{"name", "email", "phone", "customer", "history", "spent"}
	for _, field := range strings.Split(lower, ",") {
		field = strings.TrimSpace(strings.Trim(strings.TrimSpace(field), `"'`))
		for _, word := range headerWords {
			if field == word || strings.HasPrefix(field, word+" ") || strings.HasSuffix(field, " "+word) {
				return true
			}
		}
	}
	return false
}

// splitFields splits a roster line on commas, honoring double quotes so that
// free-text fields may contain commas, then trims whitespace and surrounding
// quote characters. Unbalanced quotes never fail; the remainder of the line
// becomes the final field.
func splitFields(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())

	for i, f := range fields {
		f = strings.TrimSpace(f)
		f = strings.Trim(f, `"'`)
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// classifyFields assigns meaning to each field of a roster row by shape
// rather than by column position. The first field is always the candidate
// name; rows without one are rejected. The remaining fields run through an
// ordered chain of predicate rules so the ambiguity of duck-typed column
// detection stays visible rule by rule.
func classifyFields(fields []string) (models.Customer, bool) {
	if len(fields) == 0 {
		return models.Customer{}, false
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return models.Customer{}, false
	}

	customer := models.Customer{
		Name:             name,
		Email:            models.FieldNotAvailable,
		Phone:            models.FieldNotAvailable,
		LastPurchaseDate: models.FieldNotAvailable,
	}

	for _, field := range fields[1:] {
		if field == "" {
			continue
		}
		for _, rule := range classifyRules {
			if rule.matches(field, &customer) {
				rule.assign(field, &customer)
				break
			}
		}
	}

	customer.Segment, customer.SegmentReason = Classify(customer.TotalSpent, customer.PurchaseHistory)
	if customer.TotalSpent > 0 {
		customer.LastPurchaseDate = recentPurchaseDate()
	}

	return customer, true
}

// classifyRule is one step of the field-sniffing chain: a named predicate
// paired with the field assignment it performs. First matching rule wins.
type classifyRule struct {
	name    string
	matches func(field string, c *models.Customer) bool
	assign  func(field string, c *models.Customer)
}

var classifyRules = []classifyRule{
	{
		name: "email",
		matches: func(field string, c *models.Customer) bool {
			return strings.Contains(field, "@") && c.Email == models.FieldNotAvailable
		},
		assign: func(field string, c *models.Customer) {
			c.Email = field
		},
	},
	{
		name: "phone",
		matches: func(field string, c *models.Customer) bool {
			return phonePattern.MatchString(field) && digitCount(field) >= 7 && c.Phone == models.FieldNotAvailable
		},
		assign: func(field string, c *models.Customer) {
			c.Phone = field
		},
	},
	{
		name: "spend",
		matches: func(field string, c *models.Customer) bool {
			return strings.ContainsAny(field, currencySymbols)
		},
		assign: func(field string, c *models.Customer) {
			// Malformed amounts are swallowed, leaving the zero default.
			if amount, err := parseCurrency(field); err == nil && amount >= 0 {
				c.TotalSpent = amount
			}
		},
	},
	{
		name: "history",
		matches: func(field string, c *models.Customer) bool {
			return len(field) > 20 && c.PurchaseHistory == ""
		},
		assign: func(field string, c *models.Customer) {
			c.PurchaseHistory = field
		},
	},
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

// parseCurrency extracts the numeric amount from a token containing a
// currency symbol, e.g. "$620 total" -> 620.
func parseCurrency(field string) (float64, error) {
	var number strings.Builder
	seenDigit := false
	for _, r := range field {
		if (r >= '0' && r <= '9') || (r == '.' && seenDigit) {
			number.WriteRune(r)
			if r != '.' {
				seenDigit = true
			}
		} else if seenDigit {
			break
		}
	}
	return strconv.ParseFloat(number.String(), 64)
}
