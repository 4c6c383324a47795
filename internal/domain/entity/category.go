package entity

// Category is the partition a store falls into for a given viewer.
type Category string

const (
	CategoryOwn        Category = "own"
	CategoryCurrent    Category = "current"
	CategoryPending    Category = "pending"
	CategoryAvailable  Category = "available"
	CategoryIneligible Category = "ineligible" // at the partnership cap with no relationship to the viewer.
)

// Color returns the marker color used for the category.
func (c Category) Color() string {
	switch c {
	case CategoryOwn:
		return "#2563eb"
	case CategoryCurrent:
		return "#16a34a"
	case CategoryPending:
		return "#f59e0b"
	case CategoryAvailable:
		return "#dc2626"
	default:
		return "#9ca3af"
	}
}
