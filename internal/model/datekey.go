package model

import (
	"fmt"
	"time"
)

// Date keys are canonical zero-padded YYYY-MM-DD strings. Every map keyed
// by day (completions, day-specific tasks) uses this form so lookups are
// exact string matches.

const dateKeyLayout = "2006-01-02"

func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

func DateKeyFor(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(dateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: parse date key %q: %w", key, err)
	}
	return t, nil
}

// Completions is the sparse done-state record: date key to task id to
// done flag. A missing date or task id entry means "not done".
type Completions map[string]map[string]bool

func (c Completions) Done(dateKey, taskID string) bool {
	byTask, ok := c[dateKey]
	if !ok {
		return false
	}
	return byTask[taskID]
}
