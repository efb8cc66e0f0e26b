package progress

import "github.com/mkalita/daygrid/internal/model"

// Summary is the per-day completion tally over the active tasks that
// apply to a date.
type Summary struct {
	Total    int
	Done     int
	Fraction float64
}

type Status string

const (
	StatusEmpty   Status = "empty"
	StatusPartial Status = "partial"
	StatusFull    Status = "full"
)

// Compute tallies completion for one date. Inactive tasks are excluded;
// a task with no completion entry counts as not done. Zero active tasks
// yields the zero summary.
func Compute(dateKey string, tasks []model.Task, completions model.Completions) Summary {
	var s Summary
	for _, task := range tasks {
		if !task.Active {
			continue
		}
		s.Total++
		if completions.Done(dateKey, task.ID) {
			s.Done++
		}
	}
	if s.Total == 0 {
		return Summary{}
	}
	s.Fraction = float64(s.Done) / float64(s.Total)
	return s
}

// StatusOf maps a summary onto the tri-state cell tint.
func StatusOf(s Summary) Status {
	switch {
	case s.Total == 0 || s.Fraction == 0:
		return StatusEmpty
	case s.Fraction >= 1:
		return StatusFull
	default:
		return StatusPartial
	}
}
