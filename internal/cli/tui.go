package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUI runs the dashboard in the alternate screen until the user quits.
func runTUI(app *App) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Config.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(newAppModel(app), opts...).Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
