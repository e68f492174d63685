package domain

// Category is one label from the fixed document taxonomy.
type Category string

const (
	CategoryMedical   Category = "Medical"
	CategoryDental    Category = "Dental"
	CategoryPharmacy  Category = "Pharmacy"
	CategoryInsurance Category = "Insurance"
	CategoryFinance   Category = "Finance"
	CategoryID        Category = "ID"
	CategoryLegal     Category = "Legal"
	CategoryOther     Category = "Other"
)

// Categories returns the closed taxonomy in declaration order.
func Categories() []Category {
	return []Category{
		CategoryMedical,
		CategoryDental,
		CategoryPharmacy,
		CategoryInsurance,
		CategoryFinance,
		CategoryID,
		CategoryLegal,
		CategoryOther,
	}
}

// NormalizeCategory maps an arbitrary string onto the closed taxonomy.
// Anything outside the taxonomy, including the empty string, becomes Other.
func NormalizeCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}
