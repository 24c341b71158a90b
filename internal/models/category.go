package models

// Category classifies expenses and budgets. The set is fixed, matching the
// keyboard the chat frontend renders.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryHousing       Category = "housing"
	CategoryTransport     Category = "transport"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryTechnology    Category = "technology"
	CategoryFinance       Category = "finance"
	CategoryInsurance     Category = "insurance"
	CategoryEntertainment Category = "entertainment"
	CategoryClothing      Category = "clothing"
	CategoryOther         Category = "other"
)

// categories lists all known categories in the order the frontend
// displays them.
var categories = []Category{
	CategoryFood,
	CategoryHousing,
	CategoryTransport,
	CategoryHealth,
	CategoryEducation,
	CategoryTechnology,
	CategoryFinance,
	CategoryInsurance,
	CategoryEntertainment,
	CategoryClothing,
	CategoryOther,
}

// Categories returns all known categories in display order.
func Categories() []Category {
	c := make([]Category, len(categories))
	copy(c, categories)
	return c
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, category := range categories {
		if c == category {
			return true
		}
	}

	return false
}

func (c Category) String() string {
	return string(c)
}
