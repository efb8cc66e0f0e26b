package progress

import (
	"math"
	"testing"

	"github.com/mkalita/daygrid/internal/model"
)

func threeTasks() []model.Task {
	return []model.Task{
		{ID: "t1", Title: "Exercise", Active: true},
		{ID: "t2", Title: "Read", Active: true},
		{ID: "t3", Title: "Plan tomorrow", Active: true},
	}
}

func TestComputeScenario(t *testing.T) {
	const day = "2024-03-15"
	tasks := threeTasks()
	completions := model.Completions{}

	s := Compute(day, tasks, completions)
	if s.Total != 3 || s.Done != 0 || s.Fraction != 0 {
		t.Fatalf("expected {3,0,0}, got %+v", s)
	}
	if StatusOf(s) != StatusEmpty {
		t.Fatalf("expected empty status, got %s", StatusOf(s))
	}

	completions[day] = map[string]bool{"t1": true}
	s = Compute(day, tasks, completions)
	if s.Total != 3 || s.Done != 1 {
		t.Fatalf("expected {3,1}, got %+v", s)
	}
	if math.Abs(s.Fraction-1.0/3.0) > 1e-9 {
		t.Fatalf("expected fraction 1/3, got %v", s.Fraction)
	}
	if StatusOf(s) != StatusPartial {
		t.Fatalf("expected partial status, got %s", StatusOf(s))
	}

	completions[day] = map[string]bool{"t1": true, "t2": true, "t3": true}
	s = Compute(day, tasks, completions)
	if s.Total != 3 || s.Done != 3 || s.Fraction != 1 {
		t.Fatalf("expected {3,3,1}, got %+v", s)
	}
	if StatusOf(s) != StatusFull {
		t.Fatalf("expected full status, got %s", StatusOf(s))
	}
}

func TestComputeSkipsInactiveTasks(t *testing.T) {
	tasks := threeTasks()
	tasks[2].Active = false
	completions := model.Completions{"2024-03-15": {"t1": true, "t3": true}}

	s := Compute("2024-03-15", tasks, completions)
	if s.Total != 2 || s.Done != 1 {
		t.Fatalf("expected inactive task excluded, got %+v", s)
	}
}

func TestComputeNoActiveTasks(t *testing.T) {
	s := Compute("2024-03-15", nil, model.Completions{})
	if s != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	if StatusOf(s) != StatusEmpty {
		t.Fatalf("expected empty status for zero tasks, got %s", StatusOf(s))
	}

	inactive := []model.Task{{ID: "x", Title: "ghost", Active: false}}
	if got := Compute("2024-03-15", inactive, model.Completions{}); got != (Summary{}) {
		t.Fatalf("expected zero summary for all-inactive, got %+v", got)
	}
}

func TestComputeBoundsHoldAcrossStates(t *testing.T) {
	tasks := threeTasks()
	completions := model.Completions{}
	day := "2024-06-01"
	for i, id := range []string{"t1", "t2", "t3"} {
		if completions[day] == nil {
			completions[day] = make(map[string]bool)
		}
		completions[day][id] = true
		s := Compute(day, tasks, completions)
		if s.Done < 0 || s.Done > s.Total {
			t.Fatalf("done out of bounds: %+v", s)
		}
		if math.Abs(s.Fraction-float64(s.Done)/float64(s.Total)) > 1e-9 {
			t.Fatalf("fraction mismatch at step %d: %+v", i, s)
		}
	}
}
