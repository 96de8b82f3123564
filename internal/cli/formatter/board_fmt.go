package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Layout defaults shared by the terminal and static renderers.
const (
	ColumnWidth = 30
	ColumnGap   = 2
	minCardW    = 12
)

// CardOptions controls how a single task card is drawn.
type CardOptions struct {
	Width    int
	Done     bool
	Selected bool
}

// RenderCard draws one task card. Done cards drop their category colors
// for a single muted treatment and carry the done mark.
func RenderCard(task domain.Task, opts CardOptions) string {
	width := max(opts.Width, minCardW)
	inner := width - 4

	cat := task.Category()
	accent := CategoryColor(cat)
	text := lipgloss.NewStyle().Foreground(accent)
	meta := StyleDim
	body := StyleFg
	if opts.Done {
		accent = ColorDone
		text = StyleDone
		meta = StyleDone
		body = StyleDone
	}

	right := task.Duration
	if opts.Done {
		right += " " + DoneMark
	}

	lines := []string{
		SpreadLine(text.Render(CategoryIcon(cat)+" "+task.Time), meta.Render(right), inner),
		text.Bold(true).Render(Truncate(task.Title, inner)),
		body.Width(inner).Render(task.Desc),
	}

	border := lipgloss.RoundedBorder()
	borderColor := accent
	if opts.Selected {
		border = lipgloss.ThickBorder()
		if !opts.Done {
			borderColor = ColorHeader
		}
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// RenderDayHeader draws a day's heading, goal and completion bar.
func RenderDayHeader(day domain.Day, done, total, width int) string {
	heading := strings.ToUpper(strings.TrimSpace(day.Heading()))
	return lipgloss.JoinVertical(lipgloss.Left,
		StyleHeader.Render(Truncate(heading, width)),
		StyleDim.Width(width).Render(day.Goal),
		RenderProgress(done, total, max(width-8, 2)),
	)
}

// RenderColumn draws a day header followed by its cards, without selection.
func RenderColumn(s domain.Schedule, dayIdx int, tracker *domain.CompletionTracker, width int) string {
	day := s.Days[dayIdx]
	done, total := tracker.DayProgress(dayIdx)

	parts := []string{RenderDayHeader(day, done, total, width), ""}
	for t, task := range day.Tasks {
		parts = append(parts, RenderCard(task, CardOptions{
			Width: width,
			Done:  tracker.IsDone(dayIdx, t),
		}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ColumnsPerRow returns how many day columns fit in width.
func ColumnsPerRow(width int) int {
	return max(1, (width+ColumnGap)/(ColumnWidth+ColumnGap))
}

// JoinColumns lays rendered columns side by side with the standard gap.
func JoinColumns(cols []string) string {
	if len(cols) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", ColumnGap)
	parts := make([]string, 0, len(cols)*2-1)
	for i, c := range cols {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderBoardHeader draws the title, subtitle, legend and overall progress.
func RenderBoardHeader(b domain.Board, tracker *domain.CompletionTracker) string {
	total := b.Schedule.TotalTasks()
	done := tracker.DoneCount()
	return lipgloss.JoinVertical(lipgloss.Left,
		StyleBold.Render(b.Title),
		Dim(b.Subtitle),
		"",
		Legend()+"   "+Dim("completed ")+RenderProgress(done, total, 10),
	)
}

// RenderTips draws the header tip boxes, side by side when width allows.
func RenderTips(tips []domain.Note, width int) string {
	if len(tips) == 0 {
		return ""
	}
	boxW := width
	sideBySide := width >= 60 && len(tips) > 1
	if sideBySide {
		boxW = (width - ColumnGap*(len(tips)-1)) / len(tips)
	}

	boxes := make([]string, len(tips))
	for i, n := range tips {
		content := StyleYellow.Bold(true).Render(n.Title) + "\n" + StyleFg.Width(max(boxW-6, 1)).Render(n.Body)
		boxes[i] = RenderBox("", content, boxW)
	}
	if sideBySide {
		return JoinColumns(boxes)
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

// RenderChecklist draws the footer checklist box.
func RenderChecklist(title string, items []domain.Note, width int) string {
	if len(items) == 0 {
		return ""
	}
	blocks := make([]string, len(items))
	for i, n := range items {
		blocks[i] = Bold(n.Title) + "\n" + StyleDim.Width(max(width-6, 1)).Render(n.Body)
	}
	return RenderBox(title, strings.Join(blocks, "\n\n"), width)
}

// BoardOptions controls static board rendering.
type BoardOptions struct {
	Width int
	Notes bool
}

// FormatBoard renders the whole board for non-interactive output.
func FormatBoard(b domain.Board, tracker *domain.CompletionTracker, opts BoardOptions) string {
	if tracker == nil {
		tracker = domain.NewCompletionTracker(b.Schedule)
	}
	width := max(opts.Width, ColumnWidth)

	var sb strings.Builder
	sb.WriteString(RenderBoardHeader(b, tracker))
	sb.WriteString("\n\n")

	if opts.Notes && len(b.Tips) > 0 {
		sb.WriteString(RenderTips(b.Tips, width))
		sb.WriteString("\n\n")
	}

	perRow := ColumnsPerRow(width)
	days := len(b.Schedule.Days)
	for start := 0; start < days; start += perRow {
		end := min(start+perRow, days)
		cols := make([]string, 0, end-start)
		for d := start; d < end; d++ {
			cols = append(cols, RenderColumn(b.Schedule, d, tracker, ColumnWidth))
		}
		sb.WriteString(JoinColumns(cols))
		sb.WriteString("\n\n")
	}

	if opts.Notes && len(b.Checklist) > 0 {
		sb.WriteString(RenderChecklist(b.ChecklistTitle, b.Checklist, width))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatSummary renders a one-line completion summary.
func FormatSummary(s domain.Schedule, tracker *domain.CompletionTracker) string {
	return fmt.Sprintf("%d of %d tasks done", tracker.DoneCount(), s.TotalTasks())
}
