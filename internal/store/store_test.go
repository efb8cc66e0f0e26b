package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mkalita/daygrid/internal/model"
	"github.com/mkalita/daygrid/internal/progress"
	"github.com/mkalita/daygrid/internal/storage"
)

func defaults() []model.Task {
	return []model.Task{
		{ID: "t1", Title: "Exercise", Active: true},
		{ID: "t2", Title: "Read", Active: true},
		{ID: "t3", Title: "Plan tomorrow", Active: true},
	}
}

func openStore(t *testing.T) (*Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	s, err := Open(context.Background(), kv, defaults())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s, kv
}

func TestOpenFallsBackOnMissingAndMalformedState(t *testing.T) {
	ctx := context.Background()

	s, _ := openStore(t)
	if len(s.Tasks()) != 3 {
		t.Fatalf("expected default tasks on empty storage, got %d", len(s.Tasks()))
	}

	kv := storage.NewMemoryKV()
	if err := kv.Set(ctx, storage.StateKey, "{broken"); err != nil {
		t.Fatalf("seed kv: %v", err)
	}
	s, err := Open(ctx, kv, defaults())
	if err != nil {
		t.Fatalf("open with malformed blob: %v", err)
	}
	if len(s.Tasks()) != 3 || len(s.Completions()) != 0 {
		t.Fatalf("expected defaults after malformed blob, got %d tasks", len(s.Tasks()))
	}
}

func TestToggleCompletionIsAnInvolution(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	const day = "2024-03-15"

	if err := s.ToggleCompletion(ctx, day, "t1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !s.Completions().Done(day, "t1") {
		t.Fatal("expected t1 done after first toggle")
	}
	if err := s.ToggleCompletion(ctx, day, "t1"); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if s.Completions().Done(day, "t1") {
		t.Fatal("expected t1 not done after second toggle")
	}
}

func TestMarkAllCoversRecurringAndDailyTasks(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	const day = "2024-03-15"

	daily, added, err := s.AddDailyTask(ctx, day, "Dentist")
	if err != nil || !added {
		t.Fatalf("add daily task: added=%v err=%v", added, err)
	}

	if err := s.MarkAll(ctx, day, true); err != nil {
		t.Fatalf("mark all: %v", err)
	}
	summary := progress.Compute(day, s.TasksFor(day), s.Completions())
	if summary.Fraction != 1 || summary.Total != 4 {
		t.Fatalf("expected full progress over 4 tasks, got %+v", summary)
	}
	if !s.Completions().Done(day, daily.ID) {
		t.Fatal("expected day-specific task marked done")
	}

	if err := s.MarkAll(ctx, day, false); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	summary = progress.Compute(day, s.TasksFor(day), s.Completions())
	if summary.Done != 0 {
		t.Fatalf("expected cleared progress, got %+v", summary)
	}
}

func TestMarkAllSkipsInactiveTasks(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	const day = "2024-03-15"

	if err := s.SetTaskActive(ctx, "t3", false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if err := s.MarkAll(ctx, day, true); err != nil {
		t.Fatalf("mark all: %v", err)
	}
	if s.Completions().Done(day, "t3") {
		t.Fatal("expected inactive task left out of mark-all")
	}
	summary := progress.Compute(day, s.TasksFor(day), s.Completions())
	if summary.Total != 2 || summary.Fraction != 1 {
		t.Fatalf("expected full progress over 2 active tasks, got %+v", summary)
	}
}

func TestAddRecurringTaskIgnoresBlankTitles(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	before := len(s.Tasks())
	for _, title := range []string{"", "   ", "\t"} {
		_, added, err := s.AddRecurringTask(ctx, title)
		if err != nil {
			t.Fatalf("add %q: %v", title, err)
		}
		if added {
			t.Fatalf("expected no-op for blank title %q", title)
		}
	}
	if len(s.Tasks()) != before {
		t.Fatalf("task list changed: %d -> %d", before, len(s.Tasks()))
	}
}

func TestAddTasksAppendInOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	const day = "2024-04-01"

	task, added, err := s.AddRecurringTask(ctx, "  Meditate ")
	if err != nil || !added {
		t.Fatalf("add recurring: added=%v err=%v", added, err)
	}
	if task.Title != "Meditate" || !task.Active {
		t.Fatalf("unexpected task: %#v", task)
	}
	tasks := s.Tasks()
	if tasks[len(tasks)-1].ID != task.ID {
		t.Fatal("expected recurring task appended at end")
	}

	first, _, err := s.AddDailyTask(ctx, day, "Call plumber")
	if err != nil {
		t.Fatalf("add daily: %v", err)
	}
	second, _, err := s.AddDailyTask(ctx, day, "Buy gift")
	if err != nil {
		t.Fatalf("add daily: %v", err)
	}
	daily := s.DailyTasks(day)
	if len(daily) != 2 || daily[0].ID != first.ID || daily[1].ID != second.ID {
		t.Fatalf("unexpected daily order: %#v", daily)
	}

	applicable := s.TasksFor(day)
	if len(applicable) != len(tasks)+2 {
		t.Fatalf("expected recurring+daily set, got %d", len(applicable))
	}
}

func TestSetTaskActiveUnknownID(t *testing.T) {
	s, _ := openStore(t)
	err := s.SetTaskActive(context.Background(), "nope", false)
	if !errors.Is(err, ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask, got %v", err)
	}
}

func TestMutationsPersistAndReload(t *testing.T) {
	ctx := context.Background()
	s, kv := openStore(t)
	const day = "2024-03-15"

	if _, _, err := s.AddRecurringTask(ctx, "Meditate"); err != nil {
		t.Fatalf("add recurring: %v", err)
	}
	if _, _, err := s.AddDailyTask(ctx, day, "Dentist"); err != nil {
		t.Fatalf("add daily: %v", err)
	}
	if err := s.ToggleCompletion(ctx, day, "t1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	reloaded, err := Open(ctx, kv, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reflect.DeepEqual(reloaded.Tasks(), s.Tasks()) {
		t.Fatalf("tasks not persisted:\n got %#v\nwant %#v", reloaded.Tasks(), s.Tasks())
	}
	if !reflect.DeepEqual(reloaded.DailyTasks(day), s.DailyTasks(day)) {
		t.Fatalf("daily tasks not persisted: %#v", reloaded.DailyTasks(day))
	}
	if !reloaded.Completions().Done(day, "t1") {
		t.Fatal("completion not persisted")
	}
}
