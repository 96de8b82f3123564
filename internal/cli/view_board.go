package cli

import (
	"strings"

	"github.com/alexanderramin/studyboard/internal/cli/formatter"
	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// boardTopLines is the legend line plus a blank line above the grid.
const boardTopLines = 2

// wheelStep is how many lines one mouse wheel notch scrolls.
const wheelStep = 3

// boardKeyMap holds the board's key bindings.
type boardKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	GoTo   key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "day")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "task")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next task")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter", "x"), key.WithHelp("space/click", "toggle done")),
		GoTo:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to day")),
	}
}

// renderedCard is a cached card rendering and the inputs it was drawn with.
type renderedCard struct {
	done     bool
	selected bool
	out      string
}

// cardHit is a card's rectangle in grid coordinates.
type cardHit struct {
	key        domain.CompletionKey
	x, y, w, h int
}

func (h cardHit) contains(x, y int) bool {
	return x >= h.x && x < h.x+h.w && y >= h.y && y < h.y+h.h
}

// boardView is the home screen: one column per day with a card per task.
// A cursor selects a card; space or a mouse click toggles completion.
type boardView struct {
	state *SharedState
	keys  boardKeyMap

	cursor   domain.CompletionKey
	firstDay int // leftmost visible column
	yOffset  int // first visible grid line

	cards map[domain.CompletionKey]renderedCard
	grid  []string
	hits  []cardHit
}

func newBoardView(state *SharedState) *boardView {
	v := &boardView{
		state: state,
		keys:  defaultBoardKeys(),
		cards: make(map[domain.CompletionKey]renderedCard),
	}
	v.layout(true)
	return v
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "Week" }

func (v *boardView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Left, v.keys.Up, v.keys.Toggle, v.keys.GoTo}
}

func (v *boardView) Init() tea.Cmd {
	v.layout(true)
	return nil
}

func (v *boardView) days() []domain.Day {
	return v.state.Board.Schedule.Days
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.layout(true)
		return v, nil

	case focusDayMsg:
		v.moveTo(msg.day, 0)
		return v, nil

	case tea.MouseMsg:
		v.handleMouse(msg)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Left):
			v.moveTo(v.cursor.Day-1, v.cursor.Task)
		case key.Matches(msg, v.keys.Right):
			v.moveTo(v.cursor.Day+1, v.cursor.Task)
		case key.Matches(msg, v.keys.Up):
			v.moveTo(v.cursor.Day, v.cursor.Task-1)
		case key.Matches(msg, v.keys.Down):
			v.moveTo(v.cursor.Day, v.cursor.Task+1)
		case key.Matches(msg, v.keys.Toggle):
			v.toggle(v.cursor)
		case key.Matches(msg, v.keys.GoTo):
			return v, v.openDayPicker()
		}
	}
	return v, nil
}

func (v *boardView) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		k, ok := v.cardAt(msg.X, msg.Y)
		if !ok {
			return
		}
		v.cursor = k
		v.toggle(k)
	case tea.MouseButtonWheelUp:
		v.yOffset -= wheelStep
		v.layout(false)
	case tea.MouseButtonWheelDown:
		v.yOffset += wheelStep
		v.layout(false)
	}
}

// moveTo places the cursor, clamping to the schedule.
func (v *boardView) moveTo(day, task int) {
	days := v.days()
	if len(days) == 0 {
		return
	}
	day = min(max(day, 0), len(days)-1)
	task = min(max(task, 0), max(len(days[day].Tasks)-1, 0))
	v.cursor = domain.Key(day, task)
	v.layout(true)
}

// toggle flips one task and redraws only that card.
func (v *boardView) toggle(k domain.CompletionKey) {
	task, ok := v.state.Board.Schedule.Task(k)
	if !ok {
		return
	}
	done, _ := v.state.Tracker.Toggle(k.Day, k.Task)
	delete(v.cards, k)
	v.state.Logger.Debug("task toggled",
		zap.Int("day", k.Day),
		zap.Int("task", k.Task),
		zap.String("title", task.Title),
		zap.Bool("done", done),
	)
	v.layout(false)
}

func (v *boardView) openDayPicker() tea.Cmd {
	day := v.cursor.Day
	form := dayPickerForm(v.days(), &day)
	return startWizardCmd(v.state, "Go to day", form, func() tea.Cmd {
		return focusDay(day)
	})
}

// ── layout ───────────────────────────────────────────────────────────────────

// visibleDays returns how many day columns fit the terminal.
func (v *boardView) visibleDays() int {
	n := len(v.days())
	if v.state.Width <= 0 {
		return n
	}
	return min(formatter.ColumnsPerRow(v.state.Width), n)
}

// gridHeight is the number of grid lines shown. Before the first resize
// the whole grid is shown.
func (v *boardView) gridHeight() int {
	if v.state.Height <= 0 {
		return max(len(v.grid), 1)
	}
	return max(v.state.ContentHeight()-boardTopLines, 1)
}

// card returns the rendering for k, reusing the cache when nothing changed.
func (v *boardView) card(k domain.CompletionKey, task domain.Task) string {
	done := v.state.Tracker.IsDone(k.Day, k.Task)
	selected := k == v.cursor
	if c, ok := v.cards[k]; ok && c.done == done && c.selected == selected {
		return c.out
	}
	out := formatter.RenderCard(task, formatter.CardOptions{
		Width:    formatter.ColumnWidth,
		Done:     done,
		Selected: selected,
	})
	v.cards[k] = renderedCard{done: done, selected: selected, out: out}
	return out
}

// layout rebuilds the grid from the visible columns. With follow set, the
// window scrolls so the selected card is on screen.
func (v *boardView) layout(follow bool) {
	days := v.days()
	if len(days) == 0 {
		v.grid, v.hits = nil, nil
		return
	}

	n := v.visibleDays()
	if v.cursor.Day < v.firstDay {
		v.firstDay = v.cursor.Day
	}
	if v.cursor.Day >= v.firstDay+n {
		v.firstDay = v.cursor.Day - n + 1
	}
	v.firstDay = min(max(v.firstDay, 0), len(days)-n)

	cols := make([]string, 0, n)
	v.hits = v.hits[:0]
	for i := 0; i < n; i++ {
		d := v.firstDay + i
		x := i * (formatter.ColumnWidth + formatter.ColumnGap)
		done, total := v.state.Tracker.DayProgress(d)
		header := formatter.RenderDayHeader(days[d], done, total, formatter.ColumnWidth)

		parts := []string{header, ""}
		y := lipgloss.Height(header) + 1
		for t, task := range days[d].Tasks {
			k := domain.Key(d, t)
			c := v.card(k, task)
			h := lipgloss.Height(c)
			v.hits = append(v.hits, cardHit{key: k, x: x, y: y, w: formatter.ColumnWidth, h: h})
			parts = append(parts, c)
			y += h
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, parts...))
	}
	v.grid = strings.Split(formatter.JoinColumns(cols), "\n")

	if follow {
		v.scrollToCursor()
	}
	v.yOffset = min(max(v.yOffset, 0), max(len(v.grid)-v.gridHeight(), 0))
}

func (v *boardView) scrollToCursor() {
	for _, h := range v.hits {
		if h.key != v.cursor {
			continue
		}
		top := h.y
		if h.key.Task == 0 {
			top = 0 // keep the day header in view
		}
		if top < v.yOffset {
			v.yOffset = top
		}
		if bottom := h.y + h.h; bottom > v.yOffset+v.gridHeight() {
			v.yOffset = bottom - v.gridHeight()
		}
		return
	}
}

// cardAt maps view coordinates to the card drawn there.
func (v *boardView) cardAt(x, y int) (domain.CompletionKey, bool) {
	if y < boardTopLines || y-boardTopLines >= v.gridHeight() {
		return domain.CompletionKey{}, false
	}
	gy := y - boardTopLines + v.yOffset
	for _, h := range v.hits {
		if h.contains(x, gy) {
			return h.key, true
		}
	}
	return domain.CompletionKey{}, false
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *boardView) View() string {
	if len(v.days()) == 0 {
		return "\n  " + formatter.Dim("No days scheduled.")
	}

	s := v.state.Board.Schedule
	top := formatter.Legend() + "   " +
		formatter.RenderProgress(v.state.Tracker.DoneCount(), s.TotalTasks(), 10)

	end := min(v.yOffset+v.gridHeight(), len(v.grid))
	visible := v.grid[min(v.yOffset, end):end]

	return top + "\n\n" + strings.Join(visible, "\n")
}
