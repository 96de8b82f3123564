package domain

// Category classifies a task for styling and iconography.
type Category string

const (
	CategoryAMC     Category = "amc"
	CategoryMidterm Category = "midterm"
	CategoryHS      Category = "hs"
	CategoryGeneral Category = "general"
)

// Categories lists the named categories in legend order.
// CategoryGeneral is the fallback and is not listed.
var Categories = []Category{CategoryAMC, CategoryMidterm, CategoryHS}

// ParseCategory maps a raw task type tag to its category.
// Unrecognized tags fall back to CategoryGeneral.
func ParseCategory(tag string) Category {
	switch Category(tag) {
	case CategoryAMC, CategoryMidterm, CategoryHS:
		return Category(tag)
	default:
		return CategoryGeneral
	}
}

// Label returns the short legend label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryAMC:
		return "AMC 8"
	case CategoryMidterm:
		return "Midterms"
	case CategoryHS:
		return "HS Adm"
	default:
		return "General"
	}
}

// Icon returns the glyph drawn next to a task of this category.
func (c Category) Icon() string {
	switch c {
	case CategoryAMC:
		return "∑"
	case CategoryMidterm:
		return "▤"
	case CategoryHS:
		return "◆"
	default:
		return "◷"
	}
}
