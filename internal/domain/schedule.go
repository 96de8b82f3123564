package domain

import "strings"

// Task is one study activity. Time and Duration are display labels and
// are never parsed.
type Task struct {
	Time     string
	Duration string
	Title    string
	Type     string
	Desc     string
}

// Category returns the category for the task's type tag.
func (t Task) Category() Category {
	return ParseCategory(t.Type)
}

// Day is one calendar day's plan. Task order is chronological.
type Day struct {
	Label string
	Goal  string
	Tasks []Task
}

// Heading returns the label text preceding the first "(", or the whole
// label when it has no annotation. Surrounding whitespace is kept.
func (d Day) Heading() string {
	if i := strings.Index(d.Label, "("); i >= 0 {
		return d.Label[:i]
	}
	return d.Label
}

// Schedule is the fixed weekly plan in weekday order.
type Schedule struct {
	Days []Day
}

// TaskCounts returns the number of tasks in each day.
func (s Schedule) TaskCounts() []int {
	counts := make([]int, len(s.Days))
	for i, d := range s.Days {
		counts[i] = len(d.Tasks)
	}
	return counts
}

// TotalTasks returns the number of tasks across all days.
func (s Schedule) TotalTasks() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Tasks)
	}
	return n
}

// Contains reports whether key addresses a task in the schedule.
func (s Schedule) Contains(key CompletionKey) bool {
	if key.Day < 0 || key.Day >= len(s.Days) {
		return false
	}
	return key.Task >= 0 && key.Task < len(s.Days[key.Day].Tasks)
}

// Task looks up the task addressed by key.
func (s Schedule) Task(key CompletionKey) (Task, bool) {
	if !s.Contains(key) {
		return Task{}, false
	}
	return s.Days[key.Day].Tasks[key.Task], true
}

// Note is a titled block of guidance shown around the schedule.
type Note struct {
	Title string
	Body  string
}

// Board is everything the dashboard displays: the schedule plus its
// header and footer notes.
type Board struct {
	Title          string
	Subtitle       string
	Tips           []Note
	ChecklistTitle string
	Checklist      []Note
	Schedule       Schedule
}
