package domain

import (
	"sort"
	"sync"
)

// CompletionKey identifies a task by its zero-based position in the schedule.
// Keys are positional: editing the dataset re-points previously recorded keys.
type CompletionKey struct {
	Day  int
	Task int
}

// Key builds a CompletionKey.
func Key(day, task int) CompletionKey {
	return CompletionKey{Day: day, Task: task}
}

// CompletionTracker records which tasks have been marked done.
// Absent keys are not done. It is safe for concurrent use.
type CompletionTracker struct {
	mu       sync.RWMutex
	schedule Schedule
	done     map[CompletionKey]bool
}

// NewCompletionTracker returns an empty tracker for the given schedule.
func NewCompletionTracker(s Schedule) *CompletionTracker {
	return &CompletionTracker{
		schedule: s,
		done:     make(map[CompletionKey]bool),
	}
}

// IsDone reports whether the task at (day, task) is marked done.
// Indices outside the schedule are never done.
func (c *CompletionTracker) IsDone(day, task int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.done[Key(day, task)]
}

// Toggle flips the done flag for (day, task). It returns the flag after
// the call and whether a flip happened. Indices outside the schedule are
// ignored and report (false, false).
func (c *CompletionTracker) Toggle(day, task int) (done, changed bool) {
	key := Key(day, task)
	if !c.schedule.Contains(key) {
		return false, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done[key] = !c.done[key]
	return c.done[key], true
}

// DoneCount returns the number of tasks currently marked done.
func (c *CompletionTracker) DoneCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, v := range c.done {
		if v {
			n++
		}
	}
	return n
}

// DayProgress returns the done and total task counts for one day.
func (c *CompletionTracker) DayProgress(day int) (done, total int) {
	if day < 0 || day >= len(c.schedule.Days) {
		return 0, 0
	}
	total = len(c.schedule.Days[day].Tasks)
	c.mu.RLock()
	defer c.mu.RUnlock()
	for t := 0; t < total; t++ {
		if c.done[Key(day, t)] {
			done++
		}
	}
	return done, total
}

// Keys returns the keys marked done, ordered by day then task.
func (c *CompletionTracker) Keys() []CompletionKey {
	c.mu.RLock()
	keys := make([]CompletionKey, 0, len(c.done))
	for k, v := range c.done {
		if v {
			keys = append(keys, k)
		}
	}
	c.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Task < keys[j].Task
	})
	return keys
}
