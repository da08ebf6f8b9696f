package domain

// Category is a product category as it appears in inventory data.
type Category string

const (
	CategoryGroceries   Category = "Groceries"
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryHomeGoods   Category = "Home Goods"
	CategoryBooks       Category = "Books"
	CategoryBeauty      Category = "Beauty & Health"
	CategorySports      Category = "Sports & Outdoors"
)

// Categories lists every known category in a stable order.
var Categories = []Category{
	CategoryGroceries,
	CategoryElectronics,
	CategoryClothing,
	CategoryHomeGoods,
	CategoryBooks,
	CategoryBeauty,
	CategorySports,
}

// ExpiryType describes the category-specific notion of staleness. Not all of
// these are literal expiration: electronics "expire" when their warranty runs
// out, clothing when the fashion season turns.
type ExpiryType string

const (
	ExpiryShelfLife      ExpiryType = "Shelf Life"
	ExpiryExpirationDate ExpiryType = "Expiration Date"
	ExpiryWarrantyPeriod ExpiryType = "Warranty Period"
	ExpiryFashionSeason  ExpiryType = "Fashion Season"
	ExpiryQualityPeriod  ExpiryType = "Quality Period"
	ExpiryObsolescence   ExpiryType = "Obsolescence"
	ExpiryWearPeriod     ExpiryType = "Wear Period"
)

// PriorityClass groups expiry types by how aggressively they should be
// tracked. It controls score weighting and at-risk flag thresholds.
type PriorityClass int

const (
	PriorityLow PriorityClass = iota
	PriorityModerate
	PriorityCritical
)

// ExpiryTypeForCategory maps a category to its expiry type. Unknown
// categories fall back to Wear Period, the safest low-priority bucket.
func ExpiryTypeForCategory(c Category) ExpiryType {
	switch c {
	case CategoryGroceries:
		return ExpiryShelfLife
	case CategoryBeauty:
		return ExpiryExpirationDate
	case CategoryElectronics:
		return ExpiryWarrantyPeriod
	case CategoryClothing:
		return ExpiryFashionSeason
	case CategoryHomeGoods:
		return ExpiryQualityPeriod
	case CategoryBooks:
		return ExpiryObsolescence
	case CategorySports:
		return ExpiryWearPeriod
	default:
		return ExpiryWearPeriod
	}
}

// Priority returns the priority class for an expiry type. Unknown types are
// treated as low priority.
func (t ExpiryType) Priority() PriorityClass {
	switch t {
	case ExpiryShelfLife, ExpiryExpirationDate:
		return PriorityCritical
	case ExpiryWarrantyPeriod, ExpiryFashionSeason:
		return PriorityModerate
	case ExpiryQualityPeriod, ExpiryObsolescence, ExpiryWearPeriod:
		return PriorityLow
	default:
		return PriorityLow
	}
}

func (p PriorityClass) String() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityModerate:
		return "Moderate"
	default:
		return "Low"
	}
}
