package engine

import "github.com/docminder/docminder/internal/core/domain"

// categoryProfile holds the static keyword table for one category.
// Triggers are the low-ambiguity subset used to break ties between
// overlapping categories; they score higher than plain keywords.
type categoryProfile struct {
	keywords []string
	triggers []string
	weight   float64
}

// profileOrder fixes the scoring iteration order so that score ties
// resolve the same way on every call.
var profileOrder = []domain.Category{
	domain.CategoryMedical,
	domain.CategoryDental,
	domain.CategoryPharmacy,
	domain.CategoryInsurance,
	domain.CategoryFinance,
	domain.CategoryID,
	domain.CategoryLegal,
}

// profiles is read-only after init; concurrent Categorize calls share it
// without locking.
var profiles = map[domain.Category]categoryProfile{
	domain.CategoryMedical: {
		keywords: []string{
			"doctor", "physician", "medical", "hospital", "clinic", "patient", "diagnosis",
			"treatment", "surgery", "medication", "health", "illness",
			"symptoms", "medical record", "lab results", "blood test", "x-ray", "mri",
			"ct scan", "ultrasound", "biopsy", "therapy", "rehabilitation",
		},
		triggers: []string{"medical", "doctor", "hospital", "clinic", "patient", "lab", "results"},
		weight:   1.0,
	},
	domain.CategoryDental: {
		keywords: []string{
			"dentist", "dental", "tooth", "teeth", "oral", "cleaning", "cavity",
			"filling", "root canal", "extraction", "braces", "orthodontist",
			"gum", "periodontal", "dental checkup", "dental appointment",
		},
		triggers: []string{"dental", "dentist", "tooth", "teeth", "orthodont", "periodontal", "gum"},
		weight:   1.0,
	},
	domain.CategoryPharmacy: {
		keywords: []string{
			"pharmacy", "pharmacist", "prescription", "medication", "drug", "pill",
			"refill", "dosage", "pharmaceutical", "rx", "medicine", "tablet",
			"capsule", "syrup", "injection", "pharmacy receipt",
		},
		triggers: []string{"pharmacy", "rx", "prescription"},
		weight:   1.0,
	},
	domain.CategoryInsurance: {
		keywords: []string{
			"insurance", "policy", "coverage", "premium", "deductible", "claim",
			"benefits", "copay", "copayment", "health insurance", "medical insurance",
			"dental insurance", "vision insurance", "life insurance", "auto insurance",
		},
		triggers: []string{"insurance", "policy", "claim"},
		weight:   1.0,
	},
	domain.CategoryFinance: {
		keywords: []string{
			"bank", "account", "statement", "transaction", "deposit", "withdrawal",
			"credit card", "debit", "loan", "mortgage", "investment", "portfolio",
			"tax", "irs", "w-2", "1099", "financial", "budget", "expense", "invoice", "bill",
		},
		triggers: []string{"invoice", "bill", "statement", "payment"},
		weight:   1.0,
	},
	domain.CategoryID: {
		keywords: []string{
			"id", "identification", "passport", "driver license", "social security",
			"ssn", "birth certificate", "visa", "green card", "citizenship",
			"identity", "personal information",
		},
		triggers: []string{"passport", "driver", "ssn", "identity"},
		weight:   1.0,
	},
	domain.CategoryLegal: {
		keywords: []string{
			"legal", "lawyer", "attorney", "court", "lawsuit", "contract",
			"agreement", "lease", "will", "trust", "power of attorney",
			"legal document", "notary", "legal advice",
		},
		triggers: []string{"legal", "attorney", "contract", "court"},
		weight:   1.0,
	},
}
