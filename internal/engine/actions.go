package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/docminder/docminder/internal/core/domain"
)

// Keyword lists are ordered: output preserves list order, appointments first.
var appointmentKeywords = []string{
	"appointment", "meeting", "visit", "consultation", "checkup", "examination",
	"scheduled", "booked", "reserved", "confirmed", "reminder",
}

var todoKeywords = []string{
	"refill", "renew", "expires", "due", "deadline", "reminder", "follow up",
	"call", "contact", "schedule", "book", "make appointment", "pay", "submit",
}

// ActionExtractor finds sentences carrying appointment or todo intent and
// emits structured action items. Stateless; safe for concurrent use.
type ActionExtractor struct{}

func NewActionExtractor() *ActionExtractor {
	return &ActionExtractor{}
}

// Extract returns action items for the text, tagged with the given category.
// For each keyword, only the first matching sentence emits an item, even when
// several sentences contain that keyword. All appointment items come before
// all todo items; there is no chronological sort.
func (e *ActionExtractor) Extract(text string, category domain.Category) []domain.ActionItem {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	dates := FindDates(lower)
	sentences := splitSentences(text)

	var items []domain.ActionItem
	items = e.appendKeywordMatches(items, lower, sentences, dates, appointmentKeywords,
		domain.ActionAppointment, string(category)+" Appointment", category)
	items = e.appendKeywordMatches(items, lower, sentences, dates, todoKeywords,
		domain.ActionTodo, string(category)+" Task", category)
	return items
}

func (e *ActionExtractor) appendKeywordMatches(
	items []domain.ActionItem,
	lowerText string,
	sentences []string,
	dates []Span,
	keywords []string,
	kind domain.ActionKind,
	title string,
	category domain.Category,
) []domain.ActionItem {
	for _, keyword := range keywords {
		if !strings.Contains(lowerText, keyword) {
			continue
		}
		for _, sentence := range sentences {
			if !strings.Contains(strings.ToLower(sentence), keyword) {
				continue
			}
			items = append(items, domain.ActionItem{
				Kind:        kind,
				Title:       title,
				Description: strings.TrimSpace(sentence),
				DueAt:       resolveDueDate(sentence, dates),
				Category:    category,
			})
			break
		}
	}
	return items
}

// resolveDueDate finds the first date span literally contained in the
// sentence and parses it by the format its punctuation implies. A matched
// time of day without a matched date yields no due date; times are never
// combined into the parsed date.
func resolveDueDate(sentence string, dates []Span) *time.Time {
	sentenceLower := strings.ToLower(sentence)
	for _, span := range dates {
		if strings.Contains(sentenceLower, span.Text) {
			return parseDueDate(span.Text)
		}
	}
	return nil
}

var longFormDate = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2}),\s+(\d{4})$`)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

// parseDueDate parses a matched date substring. A comma implies
// "<Month name> <day>, <year>", a slash implies <month>/<day>/<year>, and a
// dash with a short leading token implies <day>-<month>-<year>. Years must
// have four digits; anything else, including calendar-invalid dates, yields
// nil and the item simply carries no due date.
func parseDueDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	switch {
	case strings.Contains(s, ","):
		m := longFormDate.FindStringSubmatch(s)
		if m == nil {
			return nil
		}
		month, ok := monthsByName[m[1]]
		if !ok {
			return nil
		}
		return makeDate(atoi(m[3]), month, atoi(m[2]))
	case strings.Contains(s, "/"):
		parts := strings.Split(s, "/")
		if len(parts) != 3 || len(parts[2]) != 4 {
			return nil
		}
		return makeDate(atoi(parts[2]), time.Month(atoi(parts[0])), atoi(parts[1]))
	case strings.Contains(s, "-"):
		parts := strings.Split(s, "-")
		if len(parts) != 3 || len(parts[0]) > 2 || len(parts[2]) != 4 {
			return nil
		}
		return makeDate(atoi(parts[2]), time.Month(atoi(parts[1])), atoi(parts[0]))
	}
	return nil
}

func makeDate(year int, month time.Month, day int) *time.Time {
	if year <= 0 || month < time.January || month > time.December || day < 1 {
		return nil
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// Round-trip check rejects overflow normalization such as February 30.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return nil
	}
	return &t
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
