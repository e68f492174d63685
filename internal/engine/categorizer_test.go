package engine

import (
	"testing"

	"github.com/docminder/docminder/internal/core/domain"
)

func TestCategorizeReturnsOtherWithoutAnyHits(t *testing.T) {
	c := NewCategorizer()
	got := c.Categorize("lorem ipsum dolor sit amet", "notes_0001")
	if got != domain.CategoryOther {
		t.Fatalf("expected Other, got %s", got)
	}
}

func TestCategorizeEmptyInputReturnsOtherImmediately(t *testing.T) {
	c := NewCategorizer()
	if got := c.Categorize("", ""); got != domain.CategoryOther {
		t.Fatalf("expected Other for empty input, got %s", got)
	}
}

func TestCategorizeIsDeterministic(t *testing.T) {
	c := NewCategorizer()
	text := "insurance policy claim with some medical coverage details"
	first := c.Categorize(text, "scan.pdf")
	for i := 0; i < 10; i++ {
		if got := c.Categorize(text, "scan.pdf"); got != first {
			t.Fatalf("run %d: expected %s, got %s", i, first, got)
		}
	}
}

func TestCategorizeFilenameContributesToScore(t *testing.T) {
	c := NewCategorizer()
	if got := c.Categorize("", "pharmacy_receipt.pdf"); got != domain.CategoryPharmacy {
		t.Fatalf("expected Pharmacy from filename alone, got %s", got)
	}
}

func TestCategorizeDentalTriggersBeatMedicalKeywordCount(t *testing.T) {
	c := NewCategorizer()
	// Generic medical keywords outscore dental on raw count, but only dental
	// trigger words are present; the trigger rule must dominate.
	text := "health therapy surgery health therapy surgery tooth cleaning"
	if got := c.Categorize(text, ""); got != domain.CategoryDental {
		t.Fatalf("expected Dental, got %s", got)
	}
}

func TestCategorizeMedicalWinsTriggerMajority(t *testing.T) {
	c := NewCategorizer()
	text := "patient visited the clinic and hospital; dental filling was mentioned once"
	if got := c.Categorize(text, ""); got != domain.CategoryMedical {
		t.Fatalf("expected Medical, got %s", got)
	}
}

func TestCategorizeTriggerTieDefaultsToMedical(t *testing.T) {
	c := NewCategorizer()
	// Both categories score through keywords only: no trigger words on either
	// side, and no dental trigger appears literally, so Medical wins the tie.
	text := "surgery therapy cavity filling"
	if got := c.Categorize(text, ""); got != domain.CategoryMedical {
		t.Fatalf("expected Medical on exact trigger tie, got %s", got)
	}
}

func TestCategorizeCountsSubstringsInsideWords(t *testing.T) {
	c := NewCategorizer()
	// Literal substring counting: "id" matches inside "paid". This is the
	// documented counting behavior, not a bug.
	if got := c.Categorize("paid paid paid", ""); got != domain.CategoryID {
		t.Fatalf("expected ID via embedded substring counting, got %s", got)
	}
}

func TestCategorizeTaxonomyMembership(t *testing.T) {
	c := NewCategorizer()
	inputs := []struct{ text, filename string }{
		{"", ""},
		{"random text", "file.bin"},
		{"insurance claim", ""},
		{"dentist tooth doctor hospital", "mixed.pdf"},
	}
	valid := make(map[domain.Category]bool)
	for _, cat := range domain.Categories() {
		valid[cat] = true
	}
	for _, in := range inputs {
		if got := c.Categorize(in.text, in.filename); !valid[got] {
			t.Fatalf("category %q outside the closed taxonomy", got)
		}
	}
}
