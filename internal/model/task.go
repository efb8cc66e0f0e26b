package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyTitle = errors.New("model: task title is required")

// Task is a single tracked commitment. Recurring tasks apply to every
// date; day-specific tasks apply to exactly one date key. Inactive tasks
// are excluded from progress and listings but are never hard-deleted.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// NewTask builds an active task with a fresh opaque id. The title must be
// non-empty after trimming.
func NewTask(title string) (Task, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return Task{}, ErrEmptyTitle
	}
	return Task{
		ID:     uuid.NewString(),
		Title:  trimmed,
		Active: true,
	}, nil
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// DefaultTasks builds the built-in recurring list used when storage is
// empty or unreadable. Blank titles are skipped.
func DefaultTasks(titles []string) []Task {
	out := make([]Task, 0, len(titles))
	for _, title := range titles {
		task, err := NewTask(title)
		if err != nil {
			continue
		}
		out = append(out, task)
	}
	return out
}
