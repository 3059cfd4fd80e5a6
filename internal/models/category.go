package models

// Fixed expense categories used across the finance module
const (
	CategoryFood       = "FOOD"
	CategoryTransport  = "TRANSPORT"
	CategoryHousing    = "HOUSING"
	CategoryHealth     = "HEALTH"
	CategoryEducation  = "EDUCATION"
	CategoryLeisure    = "LEISURE"
	CategoryShopping   = "SHOPPING"
	CategorySalary     = "SALARY"
	CategoryInvestment = "INVESTMENT"
	CategoryOther      = "OTHER"
)

// CategoryUncategorized is the bucket key for transactions created without a
// category. It is a grouping label, not a value stored on transactions.
const CategoryUncategorized = "UNCATEGORIZED"

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryHealth,
		CategoryEducation,
		CategoryLeisure,
		CategoryShopping,
		CategorySalary,
		CategoryInvestment,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// BucketForCategory maps a stored category value to its breakdown bucket key.
// An empty category falls into the uncategorized bucket, never dropped.
func BucketForCategory(category string) string {
	if category == "" {
		return CategoryUncategorized
	}
	return category
}
