package cli

import (
	"testing"

	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/alexanderramin/studyboard/internal/schedule"
	"github.com/alexanderramin/studyboard/internal/teatest"
	"go.uber.org/zap"
)

// TestDriver wraps teatest.Driver with studyboard-specific inspection
// methods: the view stack, the board cursor and the session tracker.
type TestDriver struct {
	*teatest.Driver
}

// testApp returns an App over the real week with a silent logger.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Board:  schedule.LoadBoard(),
		Logger: zap.NewNop(),
	}
}

// NewTestDriver builds the appModel at the given terminal size and drains Init.
func NewTestDriver(t *testing.T, app *App, width, height int) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(width, height))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Tracker returns the session's completion tracker.
func (d *TestDriver) Tracker() *domain.CompletionTracker {
	return d.appModel().state.Tracker
}

// Board returns the board view at the bottom of the stack.
func (d *TestDriver) Board() *boardView {
	d.T.Helper()
	bv, ok := d.appModel().viewStack[0].(*boardView)
	if !ok {
		d.T.Fatalf("bottom view is %T, not *boardView", d.appModel().viewStack[0])
	}
	return bv
}

// CardScreenPos returns a screen cell inside the card for k, or false when
// the card is not currently on screen.
func (d *TestDriver) CardScreenPos(k domain.CompletionKey) (x, y int, ok bool) {
	bv := d.Board()
	for _, h := range bv.hits {
		if h.key != k {
			continue
		}
		// Aim one cell inside the border.
		gy := h.y + 1 - bv.yOffset
		if gy < 0 || gy >= bv.gridHeight() {
			return 0, 0, false
		}
		return h.x + 1, gy + boardTopLines + headerLines, true
	}
	return 0, 0, false
}

// ClickCard clicks the card for k, failing the test if it is off screen.
func (d *TestDriver) ClickCard(k domain.CompletionKey) {
	d.T.Helper()
	x, y, ok := d.CardScreenPos(k)
	if !ok {
		d.T.Fatalf("card %v is not on screen", k)
	}
	d.Click(x, y)
}
