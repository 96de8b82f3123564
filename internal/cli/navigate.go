package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard, then runs nextCmd against the view below.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// focusDayMsg moves the board cursor to the first task of a day.
type focusDayMsg struct {
	day int
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func focusDay(day int) tea.Cmd {
	return func() tea.Msg { return focusDayMsg{day: day} }
}
