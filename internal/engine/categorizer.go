package engine

import (
	"strings"

	"github.com/docminder/docminder/internal/core/domain"
)

// Categorizer scores text against the static taxonomy tables.
// It is stateless; one instance serves concurrent calls.
type Categorizer struct{}

func NewCategorizer() *Categorizer {
	return &Categorizer{}
}

// Categorize returns the best-fit category for the given text and filename.
// It is a pure function of its inputs: identical input always yields the
// identical category.
//
// Counting is literal substring counting with no word-boundary check, so a
// keyword matching inside a longer word still counts ("id" inside "paid").
// That over-counting is load-bearing for existing classification outcomes;
// do not add tokenization here.
func (c *Categorizer) Categorize(text, filename string) domain.Category {
	if text == "" && filename == "" {
		return domain.CategoryOther
	}
	haystack := strings.ToLower(filename + " " + text)

	scores := make(map[domain.Category]float64, len(profileOrder))
	triggerHits := make(map[domain.Category]int, len(profileOrder))
	for _, category := range profileOrder {
		profile := profiles[category]
		keywordScore := float64(countOccurrences(haystack, profile.keywords)) * profile.weight
		triggers := countOccurrences(haystack, profile.triggers)
		// Triggers weigh heavily to reduce cross-category bleed.
		scores[category] = keywordScore + float64(triggers)*3.0
		triggerHits[category] = triggers
	}

	best := profileOrder[0]
	for _, category := range profileOrder[1:] {
		if scores[category] > scores[best] {
			best = category
		}
	}
	if scores[best] <= 0 {
		return domain.CategoryOther
	}

	// Medical and Dental share vocabulary; when both score, triggers decide.
	if scores[domain.CategoryMedical] > 0 && scores[domain.CategoryDental] > 0 {
		medTriggers := triggerHits[domain.CategoryMedical]
		denTriggers := triggerHits[domain.CategoryDental]
		if denTriggers > medTriggers {
			return domain.CategoryDental
		}
		if medTriggers > denTriggers {
			return domain.CategoryMedical
		}
		// Exact trigger tie: prefer Medical unless explicit dental words exist.
		for _, trigger := range profiles[domain.CategoryDental].triggers {
			if strings.Contains(haystack, trigger) {
				return domain.CategoryDental
			}
		}
		return domain.CategoryMedical
	}

	return best
}

func countOccurrences(haystack string, terms []string) int {
	count := 0
	for _, term := range terms {
		if term == "" {
			continue
		}
		count += strings.Count(haystack, strings.ToLower(term))
	}
	return count
}
