package engine

import "regexp"

// Span is one regex match: the matched text and its byte offsets.
// Spans are ephemeral, scoped to a single extraction call.
type Span struct {
	Text  string
	Start int
	End   int
}

// Date pattern families, evaluated in declaration order. All matches are
// retained; overlapping matches from different families are not deduplicated.
// There is no semantic validation at this layer: "13/45/2099" is a valid
// textual match and parsing failure is deferred to due-date resolution.
var datePatterns = []*regexp.Regexp{
	// Long-form: January 5, 2025
	regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}\b`),
	// Numeric: 03/10/2024, 3-10-24
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	// Abbreviated: 5 jan 2025
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{2,4}\b`),
	// Weekday-qualified: Monday, January 5, 2025
	regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday),?\s+(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}\b`),
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:am|pm)\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s*(?:am|pm)\b`),
	regexp.MustCompile(`(?i)\b(?:morning|afternoon|evening|noon|midnight)\b`),
}

// FindDates scans the whole text for date substrings, case-insensitively.
func FindDates(text string) []Span {
	return scanPatterns(datePatterns, text)
}

// FindTimes scans the whole text for time-of-day substrings.
func FindTimes(text string) []Span {
	return scanPatterns(timePatterns, text)
}

func scanPatterns(patterns []*regexp.Regexp, text string) []Span {
	var spans []Span
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
		}
	}
	return spans
}
