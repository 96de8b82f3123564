package schedule

import (
	"testing"

	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FiveDaysInWeekdayOrder(t *testing.T) {
	s := Load()

	require.Len(t, s.Days, 5)
	assert.Equal(t, []int{6, 4, 4, 4, 4}, s.TaskCounts())

	headings := make([]string, len(s.Days))
	for i, d := range s.Days {
		headings[i] = d.Heading()
	}
	assert.Equal(t, []string{"Monday ", "Tuesday ", "Wednesday ", "Thursday ", "Friday "}, headings)
}

func TestLoad_TasksKeepChronologicalOrder(t *testing.T) {
	s := Load()

	assert.Equal(t, "8:00 AM", s.Days[0].Tasks[0].Time)
	assert.Equal(t, "AMC 8: Full Practice", s.Days[0].Tasks[0].Title)
	assert.Equal(t, "4:10 PM", s.Days[0].Tasks[5].Time)
	assert.Equal(t, "HS: Vocab Review", s.Days[4].Tasks[3].Title)
}

func TestLoad_OnlyNamedCategories(t *testing.T) {
	for _, d := range Load().Days {
		for _, task := range d.Tasks {
			assert.NotEqual(t, domain.CategoryGeneral, task.Category(), "task %q", task.Title)
		}
	}
}

func TestLoad_ReturnsIndependentCopies(t *testing.T) {
	a := Load()
	a.Days[0].Tasks[0].Title = "changed"
	a.Days[0].Label = "changed"

	b := Load()
	assert.Equal(t, "AMC 8: Full Practice", b.Days[0].Tasks[0].Title)
	assert.Equal(t, "Monday (OFF - Heavy Lifting)", b.Days[0].Label)
}

func TestLoadBoard_Notes(t *testing.T) {
	b := LoadBoard()

	assert.Equal(t, "Study Strategy Dashboard", b.Title)
	assert.Len(t, b.Tips, 2)
	assert.Len(t, b.Checklist, 3)
	assert.Len(t, b.Schedule.Days, 5)
}
