package model

// CategoryKind classifies a category explicitly. The kind lives on the
// category record itself, never inferred from id ranges.
type CategoryKind string

const (
	CategoryInflow     CategoryKind = "inflow"
	CategoryOutflow    CategoryKind = "outflow"
	CategoryInvestment CategoryKind = "investment"
)

// Category represents a row in categories.csv.
type Category struct {
	ID    int
	Name  string
	Kind  CategoryKind
	Color string // default display color (hex); per-user overrides live in the color map
}
