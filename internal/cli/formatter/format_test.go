package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/alexanderramin/studyboard/internal/schedule"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var sampleTask = domain.Task{
	Time:     "8:00 AM",
	Duration: "75m",
	Title:    "AMC 8: Full Practice",
	Type:     "amc",
	Desc:     "40 min test.",
}

func TestCategoryIcon_Exhaustive(t *testing.T) {
	seen := map[string]domain.Category{}
	for _, c := range append(domain.Categories, domain.CategoryGeneral) {
		icon := CategoryIcon(c)
		require.NotEmpty(t, icon)
		prev, dup := seen[icon]
		assert.False(t, dup, "%s and %s share icon %s", prev, c, icon)
		seen[icon] = c
	}
}

func TestCategoryColor_FallbackDiffersFromNamed(t *testing.T) {
	fallback := CategoryColor(domain.CategoryGeneral)
	for _, c := range domain.Categories {
		assert.NotEqual(t, fallback, CategoryColor(c), "category %s", c)
	}
}

func TestRenderCard_Content(t *testing.T) {
	out := stripANSI(RenderCard(sampleTask, CardOptions{Width: 30}))

	assert.Contains(t, out, "∑ 8:00 AM")
	assert.Contains(t, out, "75m")
	assert.Contains(t, out, "AMC 8: Full Practice")
	assert.Contains(t, out, "40 min test.")
	assert.NotContains(t, out, DoneMark)
	assert.Contains(t, out, "╭")
}

func TestRenderCard_UnknownTypeUsesFallbackIcon(t *testing.T) {
	task := sampleTask
	task.Type = "unknown-value"

	out := stripANSI(RenderCard(task, CardOptions{Width: 30}))

	assert.Contains(t, out, CategoryIcon(domain.CategoryGeneral)+" 8:00 AM")
	for _, c := range domain.Categories {
		assert.NotContains(t, out, CategoryIcon(c))
	}
}

func TestRenderCard_DoneAddsMark(t *testing.T) {
	out := stripANSI(RenderCard(sampleTask, CardOptions{Width: 30, Done: true}))

	assert.Contains(t, out, "75m "+DoneMark)
	assert.Contains(t, out, "AMC 8: Full Practice")
}

func TestRenderCard_SelectedUsesThickBorder(t *testing.T) {
	out := stripANSI(RenderCard(sampleTask, CardOptions{Width: 30, Selected: true}))
	assert.Contains(t, out, "┏")
	assert.NotContains(t, out, "╭")
}

func TestRenderCard_FixedWidth(t *testing.T) {
	task := sampleTask
	task.Title = "A very long title that certainly does not fit in the card"
	task.Desc = strings.Repeat("word ", 30)

	out := RenderCard(task, CardOptions{Width: 26})

	assert.Equal(t, 26, lipgloss.Width(out))
	assert.Contains(t, stripANSI(out), "…")
}

func TestRenderDayHeader(t *testing.T) {
	day := domain.Day{Label: "Monday (OFF - Heavy Lifting)", Goal: "Master math."}

	out := stripANSI(RenderDayHeader(day, 2, 6, 30))

	assert.Contains(t, out, "MONDAY")
	assert.NotContains(t, out, "OFF - Heavy")
	assert.Contains(t, out, "Master math.")
	assert.Contains(t, out, "2/6")
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		want        string
	}{
		{"none", 0, 4, "[░░░░] 0/4"},
		{"half", 2, 4, "[██░░] 2/4"},
		{"all", 4, 4, "[████] 4/4"},
		{"empty day", 0, 0, "[░░░░] 0/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.done, tt.total, 4)))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestSpreadLine(t *testing.T) {
	assert.Equal(t, "left   right", SpreadLine("left", "right", 12))
	assert.Equal(t, "left right", SpreadLine("left", "right", 3))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("test", "content here", 0)
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")

	fixed := RenderBox("", "x", 20)
	assert.Equal(t, 20, lipgloss.Width(fixed))
}

func TestFormatBoard_AllDaysAndNotes(t *testing.T) {
	b := schedule.LoadBoard()
	tr := domain.NewCompletionTracker(b.Schedule)
	tr.Toggle(0, 0)

	out := stripANSI(FormatBoard(b, tr, BoardOptions{Width: 160, Notes: true}))

	for _, h := range []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"} {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "Study Strategy Dashboard")
	assert.Contains(t, out, "The 10-Minute Reset")
	assert.Contains(t, out, "AMC 8: PERFECT SCORE CHECKLIST")
	assert.Equal(t, 1, strings.Count(out, DoneMark))
	assert.Contains(t, out, "1/22")
}

func TestFormatBoard_NarrowWithoutNotes(t *testing.T) {
	b := schedule.LoadBoard()

	out := stripANSI(FormatBoard(b, nil, BoardOptions{Width: 20}))

	assert.Contains(t, out, "FRIDAY")
	assert.NotContains(t, out, "The 10-Minute Reset")
	assert.NotContains(t, out, DoneMark)
}

func TestColumnsPerRow(t *testing.T) {
	assert.Equal(t, 1, ColumnsPerRow(10))
	assert.Equal(t, 1, ColumnsPerRow(ColumnWidth))
	assert.Equal(t, 2, ColumnsPerRow(2*ColumnWidth+ColumnGap))
	assert.Equal(t, 5, ColumnsPerRow(5*ColumnWidth+4*ColumnGap))
}

func TestFormatSummary(t *testing.T) {
	s := schedule.Load()
	tr := domain.NewCompletionTracker(s)
	tr.Toggle(1, 1)
	assert.Equal(t, "1 of 22 tasks done", FormatSummary(s, tr))
}
