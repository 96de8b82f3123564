package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexanderramin/studyboard/internal/domain"
	"github.com/gin-gonic/gin"
)

// errorResponse is the JSON body for failed API calls.
type errorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// parseKey reads the :day and :task path parameters.
func parseKey(c *gin.Context) (domain.CompletionKey, error) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return domain.CompletionKey{}, fmt.Errorf("day index %q is not a number", c.Param("day"))
	}
	task, err := strconv.Atoi(c.Param("task"))
	if err != nil {
		return domain.CompletionKey{}, fmt.Errorf("task index %q is not a number", c.Param("task"))
	}
	return domain.Key(day, task), nil
}

func (s *Server) handleBoard(c *gin.Context) {
	c.HTML(http.StatusOK, "board", newBoardPage(s.board, s.tracker))
}

// handleToggleForm serves the card forms on the HTML page.
func (s *Server) handleToggleForm(c *gin.Context) {
	k, err := parseKey(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	s.toggle(k)
	c.Redirect(http.StatusSeeOther, "/")
}

type toggleResponse struct {
	Day     int  `json:"day"`
	Task    int  `json:"task"`
	Done    bool `json:"done"`
	Changed bool `json:"changed"`
}

func (s *Server) handleToggleJSON(c *gin.Context) {
	k, err := parseKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid task key", Details: err.Error()})
		return
	}
	done, changed := s.toggle(k)
	c.JSON(http.StatusOK, toggleResponse{
		Day:     k.Day,
		Task:    k.Task,
		Done:    done,
		Changed: changed,
	})
}

type completionsResponse struct {
	Done  [][2]int `json:"done"`
	Count int      `json:"count"`
}

func (s *Server) handleCompletions(c *gin.Context) {
	keys := s.tracker.Keys()
	done := make([][2]int, len(keys))
	for i, k := range keys {
		done[i] = [2]int{k.Day, k.Task}
	}
	c.JSON(http.StatusOK, completionsResponse{Done: done, Count: len(done)})
}

type taskJSON struct {
	Time     string `json:"time"`
	Duration string `json:"duration"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Desc     string `json:"desc"`
}

type dayJSON struct {
	Label   string     `json:"day"`
	Heading string     `json:"heading"`
	Goal    string     `json:"goal"`
	Tasks   []taskJSON `json:"tasks"`
}

type scheduleResponse struct {
	Days []dayJSON `json:"days"`
}

func (s *Server) handleSchedule(c *gin.Context) {
	resp := scheduleResponse{Days: make([]dayJSON, len(s.board.Schedule.Days))}
	for i, d := range s.board.Schedule.Days {
		tasks := make([]taskJSON, len(d.Tasks))
		for j, t := range d.Tasks {
			tasks[j] = taskJSON{
				Time:     t.Time,
				Duration: t.Duration,
				Title:    t.Title,
				Type:     t.Type,
				Category: string(t.Category()),
				Desc:     t.Desc,
			}
		}
		resp.Days[i] = dayJSON{Label: d.Label, Heading: d.Heading(), Goal: d.Goal, Tasks: tasks}
	}
	c.JSON(http.StatusOK, resp)
}
