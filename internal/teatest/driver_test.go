package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// recorder records every message and answers "ping" keys with a Cmd chain.
type recorder struct {
	seen []tea.Msg
}

func (r *recorder) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return echoMsg("a") },
		func() tea.Msg { return echoMsg("b") },
	)
}

func (r *recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	r.seen = append(r.seen, msg)
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "p":
			return r, func() tea.Msg { return echoMsg("pong") }
		case "q":
			return r, tea.Quit
		}
	}
	return r, nil
}

func (r *recorder) View() string { return "recorder" }

func TestDriver_DrainsInitBatch(t *testing.T) {
	r := &recorder{}
	d := New(t, r, WithSize(80, 24))
	d.DrainInit()

	assert.Equal(t, []tea.Msg{tea.WindowSizeMsg{Width: 80, Height: 24}, echoMsg("a"), echoMsg("b")}, r.seen)
}

func TestDriver_FollowsCmdChains(t *testing.T) {
	r := &recorder{}
	d := New(t, r)

	d.PressKey('p')

	assert.Len(t, r.seen, 2)
	assert.Equal(t, echoMsg("pong"), r.seen[1])
}

func TestDriver_QuitStopsFurtherInput(t *testing.T) {
	r := &recorder{}
	d := New(t, r)

	d.PressKey('q')
	assert.True(t, d.Quitting)

	n := len(r.seen)
	d.PressKey('p')
	assert.Len(t, r.seen, n)
}

func TestDriver_ClickAndWheel(t *testing.T) {
	r := &recorder{}
	d := New(t, r)

	d.Click(3, 4)
	d.Wheel(0, 0, true)

	click := r.seen[0].(tea.MouseMsg)
	assert.Equal(t, 3, click.X)
	assert.Equal(t, 4, click.Y)
	assert.Equal(t, tea.MouseButtonLeft, click.Button)
	assert.Equal(t, tea.MouseButtonWheelDown, r.seen[1].(tea.MouseMsg).Button)
}
