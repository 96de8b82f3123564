package web

import "github.com/alexanderramin/studyboard/internal/domain"

// boardPage is the template data for the HTML board.
type boardPage struct {
	Title          string
	Subtitle       string
	Legend         []legendItem
	Tips           []domain.Note
	ChecklistTitle string
	Checklist      []domain.Note
	Days           []dayCard
	Done           int
	Total          int
}

type legendItem struct {
	Icon  string
	Label string
	Class string
}

type dayCard struct {
	Heading string
	Goal    string
	Done    int
	Total   int
	Tasks   []taskCard
}

type taskCard struct {
	Day      int
	Index    int
	Time     string
	Duration string
	Title    string
	Desc     string
	Icon     string
	Class    string
	Done     bool
}

// categoryClass maps a category to its CSS class.
func categoryClass(c domain.Category) string {
	switch c {
	case domain.CategoryAMC:
		return "cat-amc"
	case domain.CategoryMidterm:
		return "cat-midterm"
	case domain.CategoryHS:
		return "cat-hs"
	default:
		return "cat-general"
	}
}

func newBoardPage(b domain.Board, tracker *domain.CompletionTracker) boardPage {
	page := boardPage{
		Title:          b.Title,
		Subtitle:       b.Subtitle,
		Tips:           b.Tips,
		ChecklistTitle: b.ChecklistTitle,
		Checklist:      b.Checklist,
		Done:           tracker.DoneCount(),
		Total:          b.Schedule.TotalTasks(),
	}
	for _, c := range domain.Categories {
		page.Legend = append(page.Legend, legendItem{Icon: c.Icon(), Label: c.Label(), Class: categoryClass(c)})
	}

	for d, day := range b.Schedule.Days {
		done, total := tracker.DayProgress(d)
		dc := dayCard{Heading: day.Heading(), Goal: day.Goal, Done: done, Total: total}
		for t, task := range day.Tasks {
			cat := task.Category()
			tc := taskCard{
				Day:      d,
				Index:    t,
				Time:     task.Time,
				Duration: task.Duration,
				Title:    task.Title,
				Desc:     task.Desc,
				Icon:     cat.Icon(),
				Class:    categoryClass(cat),
				Done:     tracker.IsDone(d, t),
			}
			// The done treatment replaces the category styling.
			if tc.Done {
				tc.Class = "done"
			}
			dc.Tasks = append(dc.Tasks, tc)
		}
		page.Days = append(page.Days, dc)
	}
	return page
}
