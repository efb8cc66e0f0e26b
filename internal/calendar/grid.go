package calendar

import (
	"fmt"
	"time"

	"github.com/mkalita/daygrid/internal/model"
)

// Cell is one slot in the 7-column month grid. Blank cells pad the first
// and last weeks so the grid stays rectangular; they carry only a key.
type Cell struct {
	Key     string
	DateKey string
	Day     int
}

func (c Cell) Blank() bool { return c.Day == 0 }

// DaysInMonth counts the days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CellsFor returns the ordered grid for a month: leading blanks aligning
// day 1 with its weekday column, one cell per day, then trailing blanks
// until the length is a multiple of 7.
func CellsFor(year int, month time.Month, weekStart time.Weekday) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7

	cells := make([]Cell, 0, 42)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Key: fmt.Sprintf("lead-%d", i)})
	}
	days := DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		key := model.DateKeyFor(year, month, day)
		cells = append(cells, Cell{Key: key, DateKey: key, Day: day})
	}
	for i := 0; len(cells)%7 != 0; i++ {
		cells = append(cells, Cell{Key: fmt.Sprintf("tail-%d", i)})
	}
	return cells
}

// WeekdayHeader lists the two-letter day labels in grid column order.
func WeekdayHeader(weekStart time.Weekday) []string {
	out := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(weekStart) + i) % 7)
		out = append(out, day.String()[:2])
	}
	return out
}
