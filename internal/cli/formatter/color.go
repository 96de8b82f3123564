package formatter

import (
	"strings"

	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorSlate  = lipgloss.Color("#a89984")
	ColorDone   = lipgloss.Color("#665c54")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleDone   = lipgloss.NewStyle().Foreground(ColorDone)
)

// DoneMark is shown on cards that are marked done.
const DoneMark = "✔"

// CategoryColor returns the accent color for a task category.
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryAMC:
		return ColorGreen
	case domain.CategoryMidterm:
		return ColorBlue
	case domain.CategoryHS:
		return ColorPurple
	default:
		return ColorSlate
	}
}

// CategoryStyle returns the foreground style for a task category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(c))
}

// CategoryIcon returns the glyph shown next to a task's time.
func CategoryIcon(c domain.Category) string {
	return c.Icon()
}

// CategoryBadge renders the icon and legend label in the category color.
func CategoryBadge(c domain.Category) string {
	return CategoryStyle(c).Bold(true).Render(CategoryIcon(c) + " " + c.Label())
}

// Legend renders a badge for every named category.
func Legend() string {
	badges := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		badges[i] = CategoryBadge(c)
	}
	return strings.Join(badges, "  ")
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
