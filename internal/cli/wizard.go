package cli

import (
	"strings"

	"github.com/alexanderramin/studyboard/internal/cli/formatter"
	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// studyHuhTheme matches huh forms to the board palette.
func studyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dayPickerForm lists every day by heading and goal. It returns nil when
// there are no days to pick from.
func dayPickerForm(days []domain.Day, value *int) *huh.Form {
	if len(days) == 0 {
		return nil
	}
	opts := make([]huh.Option[int], len(days))
	for i, d := range days {
		label := strings.TrimSpace(d.Heading())
		if d.Goal != "" {
			label += " - " + d.Goal
		}
		opts[i] = huh.NewOption(label, i)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Go to day").
				Options(opts...).
				Value(value),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)
}
