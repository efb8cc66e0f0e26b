package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mkalita/daygrid/internal/model"
	"github.com/mkalita/daygrid/internal/storage"
)

var ErrUnknownTask = errors.New("store: unknown task id")

// Store is the single source of truth for the persisted model: the
// recurring task list, the per-date task lists and the completion map.
// All mutation goes through its methods; every mutation synchronously
// writes the snapshot back to the KV before returning.
type Store struct {
	kv  storage.KV
	key string

	tasks       []model.Task
	dailyTasks  map[string][]model.Task
	completions model.Completions
}

// Open loads the persisted snapshot, falling back to the given default
// recurring tasks and empty maps when the blob is absent or unreadable.
// Only a transport error from the KV itself is surfaced.
func Open(ctx context.Context, kv storage.KV, defaults []model.Task) (*Store, error) {
	s := &Store{
		kv:          kv,
		key:         storage.StateKey,
		tasks:       append([]model.Task(nil), defaults...),
		dailyTasks:  make(map[string][]model.Task),
		completions: make(model.Completions),
	}

	raw, ok, err := kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("store: load state: %w", err)
	}
	if !ok {
		return s, nil
	}

	snap, err := storage.DecodeSnapshot(raw)
	if err != nil {
		// Unparsable state is recovered locally: keep the defaults.
		return s, nil
	}
	if snap.Tasks != nil {
		s.tasks = snap.Tasks
	}
	if snap.Completions != nil {
		s.completions = snap.Completions
	}
	if snap.DailyTasks != nil {
		s.dailyTasks = snap.DailyTasks
	}
	return s, nil
}

// Tasks returns the recurring task list.
func (s *Store) Tasks() []model.Task {
	return s.tasks
}

// DailyTasks returns the day-specific tasks for a date key, possibly nil.
func (s *Store) DailyTasks(dateKey string) []model.Task {
	return s.dailyTasks[dateKey]
}

// TasksFor returns the full applicable set for a date: recurring tasks
// followed by that date's day-specific tasks.
func (s *Store) TasksFor(dateKey string) []model.Task {
	out := make([]model.Task, 0, len(s.tasks)+len(s.dailyTasks[dateKey]))
	out = append(out, s.tasks...)
	out = append(out, s.dailyTasks[dateKey]...)
	return out
}

// Completions exposes the completion map for progress computation.
// Callers must treat it as read-only.
func (s *Store) Completions() model.Completions {
	return s.completions
}

// ToggleCompletion flips the done flag for one task on one date,
// creating the date entry if absent. Applying it twice restores the
// prior state.
func (s *Store) ToggleCompletion(ctx context.Context, dateKey, taskID string) error {
	byTask := s.completions[dateKey]
	if byTask == nil {
		byTask = make(map[string]bool)
		s.completions[dateKey] = byTask
	}
	byTask[taskID] = !byTask[taskID]
	return s.persist(ctx)
}

// MarkAll overwrites the date's completion entry with value for every
// active task applicable to that date, recurring and day-specific alike.
func (s *Store) MarkAll(ctx context.Context, dateKey string, value bool) error {
	entry := make(map[string]bool)
	for _, task := range s.TasksFor(dateKey) {
		if !task.Active {
			continue
		}
		entry[task.ID] = value
	}
	s.completions[dateKey] = entry
	return s.persist(ctx)
}

// AddRecurringTask appends a task applying to every date. A blank title
// is a silent no-op; the returned bool reports whether a task was added.
func (s *Store) AddRecurringTask(ctx context.Context, title string) (model.Task, bool, error) {
	task, err := model.NewTask(title)
	if err != nil {
		return model.Task{}, false, nil
	}
	s.tasks = append(s.tasks, task)
	return task, true, s.persist(ctx)
}

// AddDailyTask appends a task applying only to the given date key,
// creating the date's list if absent. Blank titles are a silent no-op.
func (s *Store) AddDailyTask(ctx context.Context, dateKey, title string) (model.Task, bool, error) {
	task, err := model.NewTask(title)
	if err != nil {
		return model.Task{}, false, nil
	}
	s.dailyTasks[dateKey] = append(s.dailyTasks[dateKey], task)
	return task, true, s.persist(ctx)
}

// SetTaskActive flips the soft-delete flag on a recurring or day-specific
// task. The data model supports deactivation even though the UI exposes
// no binding for it yet.
func (s *Store) SetTaskActive(ctx context.Context, taskID string, active bool) error {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i].Active = active
			return s.persist(ctx)
		}
	}
	for dateKey := range s.dailyTasks {
		for i := range s.dailyTasks[dateKey] {
			if s.dailyTasks[dateKey][i].ID == taskID {
				s.dailyTasks[dateKey][i].Active = active
				return s.persist(ctx)
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTask, strings.TrimSpace(taskID))
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := storage.EncodeSnapshot(storage.Snapshot{
		Tasks:       s.tasks,
		Completions: s.completions,
		DailyTasks:  s.dailyTasks,
	})
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("store: persist state: %w", err)
	}
	return nil
}
