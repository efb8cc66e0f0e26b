package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mkalita/daygrid/internal/model"
)

// StateKey is the fixed key the whole persisted state lives under.
const StateKey = "daygrid/state/v1"

// Snapshot is the persisted subset of the application state. Every field
// is optional on load so older blobs keep working: a missing field leaves
// the in-memory default in place.
type Snapshot struct {
	Tasks       []model.Task            `json:"tasks,omitempty"`
	Completions model.Completions       `json:"completions,omitempty"`
	DailyTasks  map[string][]model.Task `json:"dailyTasks,omitempty"`
}

func EncodeSnapshot(s Snapshot) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(raw), nil
}

// DecodeSnapshot parses a stored blob. An empty blob decodes to the zero
// snapshot without error; a malformed one returns the zero snapshot and
// an error the caller may swallow.
func DecodeSnapshot(raw string) (Snapshot, error) {
	if strings.TrimSpace(raw) == "" {
		return Snapshot{}, nil
	}
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
