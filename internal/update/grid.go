package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkalita/daygrid/internal/calendar"
	"github.com/mkalita/daygrid/internal/model"
	"github.com/mkalita/daygrid/internal/progress"
	"github.com/mkalita/daygrid/internal/views"
)

func (m Model) handleGridKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "t":
		m.gotoToday()
	case "enter", " ":
		if cell := m.cursorCell(); !cell.Blank() {
			m.selectDate(cell.DateKey)
		}
	}
	return m
}

// moveCursor steps through the grid, sliding past blank padding cells in
// the same direction and staying put at the edges.
func (m *Model) moveCursor(delta int) {
	step := 1
	if delta < 0 {
		step = -1
	}
	next := m.Cursor + delta
	for next >= 0 && next < len(m.Cells) && m.Cells[next].Blank() {
		next += step
	}
	if next < 0 || next >= len(m.Cells) || m.Cells[next].Blank() {
		return
	}
	m.Cursor = next
}

// navigateMonth shifts the visible month, rolling the year at the
// boundaries. Navigation closes the detail panel.
func (m *Model) navigateMonth(delta int) {
	shifted := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.Year = shifted.Year()
	m.Month = shifted.Month()
	m.Panel.Open = false
	m.Panel.Focus = FocusTasks
	m.refreshCells()
	m.moveCursorToDay(1)
	m.Status = StatusBar{Text: fmt.Sprintf("viewing %s %d", m.Month, m.Year), IsError: false}
}

// selectDate opens the detail panel for a date, jumping the visible
// month there first when needed.
func (m *Model) selectDate(dateKey string) {
	day, err := model.ParseDateKey(dateKey)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if day.Year() != m.Year || day.Month() != m.Month {
		m.Year = day.Year()
		m.Month = day.Month()
		m.refreshCells()
	}
	m.moveCursorToDay(day.Day())
	m.SelectedDate = dateKey
	m.Panel = PanelState{Open: true, Cursor: 0, Focus: FocusTasks}
	m.recurringInput.Blur()
	m.dailyInput.Blur()
}

func (m *Model) gotoToday() {
	m.selectDate(m.todayKey())
	m.Panel.Open = false
	m.Status = StatusBar{Text: "jumped to today", IsError: false}
}

func (m Model) renderMonthGrid() string {
	cells := make([]views.CellData, 0, len(m.Cells))
	todayKey := m.todayKey()
	fullDays, startedDays := 0, 0
	for i, cell := range m.Cells {
		data := views.CellData{Blank: cell.Blank(), Day: cell.Day}
		if !cell.Blank() {
			summary := progress.Compute(cell.DateKey, m.Store.TasksFor(cell.DateKey), m.Store.Completions())
			status := progress.StatusOf(summary)
			data.Status = string(status)
			data.Cursor = i == m.Cursor
			data.Selected = m.Panel.Open && cell.DateKey == m.SelectedDate
			data.Today = cell.DateKey == todayKey
			switch status {
			case progress.StatusFull:
				fullDays++
				startedDays++
			case progress.StatusPartial:
				startedDays++
			}
		}
		cells = append(cells, data)
	}

	return views.RenderMonthGrid(views.MonthGridData{
		Title:   fmt.Sprintf("%s %d", m.Month, m.Year),
		Header:  calendar.WeekdayHeader(m.WeekStart),
		Cells:   cells,
		Summary: fmt.Sprintf("month: %d started, %d full", startedDays, fullDays),
	})
}
