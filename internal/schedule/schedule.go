// Package schedule holds the embedded study plan shown by the dashboard.
package schedule

import "github.com/alexanderramin/studyboard/internal/domain"

// Load returns the fixed weekly schedule.
// Each call returns a fresh copy so callers cannot alter the embedded plan.
func Load() domain.Schedule {
	days := make([]domain.Day, len(week))
	for i, d := range week {
		days[i] = domain.Day{
			Label: d.Label,
			Goal:  d.Goal,
			Tasks: append([]domain.Task(nil), d.Tasks...),
		}
	}
	return domain.Schedule{Days: days}
}

// LoadBoard returns the schedule together with its header and footer notes.
func LoadBoard() domain.Board {
	return domain.Board{
		Title:          "Study Strategy Dashboard",
		Subtitle:       "Targeting Midterm Excellence & AMC 8 Perfect Score (25/25)",
		Tips:           append([]domain.Note(nil), tips...),
		ChecklistTitle: "AMC 8: Perfect Score Checklist",
		Checklist:      append([]domain.Note(nil), checklist...),
		Schedule:       Load(),
	}
}

var tips = []domain.Note{
	{Title: "The 10-Minute Reset", Body: "Eyes off screens. Look far away. Hydrate. No social media scrolling."},
	{Title: "Mistake Prevention", Body: "Use the 25-Box Scratch Grid. Re-read the LAST sentence before bubbling."},
}

var checklist = []domain.Note{
	{Title: "Scratch Paper Strategy", Body: "Divide your paper into a 5x5 grid. Do work for Question N in Box N. Clean work prevents dumb arithmetic errors."},
	{Title: `The "Final Read" Rule`, Body: "Before selecting your answer, read the last sentence of the prompt one more time. Did they ask for area? Perimeter? x or y?"},
	{Title: "Logical Sanity Check", Body: "Is your answer realistic? If a runner's speed is 200 mph, something went wrong in your algebra. Pivot and re-check."},
}
