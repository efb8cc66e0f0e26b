package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mkalita/daygrid/internal/calendar"
	"github.com/mkalita/daygrid/internal/model"
	"github.com/mkalita/daygrid/internal/store"
)

// PanelFocus says which part of the detail panel receives keystrokes.
type PanelFocus string

const (
	FocusTasks          PanelFocus = "tasks"
	FocusRecurringInput PanelFocus = "recurring-input"
	FocusDailyInput     PanelFocus = "daily-input"
)

type PanelState struct {
	Open   bool
	Cursor int
	Focus  PanelFocus
}

type PaletteState struct {
	Active bool
	Input  string
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	PrevMonth string
	NextMonth string
	Palette   string
	Help      string
	Quit      string
}

// Model is the single bubbletea model: view state plus the store holding
// the persisted half. Derived values (cells, progress) are recomputed
// from current state on every update.
type Model struct {
	Store *store.Store

	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Cells     []calendar.Cell
	Cursor    int

	SelectedDate string
	Panel        PanelState
	Palette      PaletteState
	HelpVisible  bool
	Status       StatusBar
	Keys         GlobalKeyMap
	Quitting     bool
	LastError    error

	now func() time.Time

	// Bubble components used for rich TUI controls
	recurringInput textinput.Model
	dailyInput     textinput.Model
	commandInput   textinput.Model
	taskViewport   viewport.Model
	doneProgress   progress.Model
	helpModel      help.Model
}

type SelectDateMsg struct {
	DateKey string
}

type NavigateMonthMsg struct {
	Delta int
}

type ToggleTaskMsg struct {
	DateKey string
	TaskID  string
}

type MarkAllMsg struct {
	Value bool
}

type AddRecurringTaskMsg struct {
	Title string
}

type AddDailyTaskMsg struct {
	Title string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(st *store.Store) Model {
	return NewModelWithConfig(st, DefaultRuntimeConfig())
}

func NewModelWithConfig(st *store.Store, cfg RuntimeConfig) Model {
	m := Model{
		Store:     st,
		WeekStart: cfg.WeekStart,
		Panel:     PanelState{Focus: FocusTasks},
		Keys: GlobalKeyMap{
			PrevMonth: "[",
			NextMonth: "]",
			Palette:   "/",
			Help:      "?",
			Quit:      "q",
		},
		now: time.Now,
	}
	today := m.now()
	m.Year = today.Year()
	m.Month = today.Month()
	m.initBubbleComponents()
	m.refreshCells()
	m.moveCursorToDay(today.Day())
	return m
}

func (m *Model) initBubbleComponents() {
	m.recurringInput = textinput.New()
	m.recurringInput.Prompt = "> "
	m.recurringInput.Placeholder = "every day"
	m.recurringInput.CharLimit = 128
	m.recurringInput.Width = 28

	m.dailyInput = textinput.New()
	m.dailyInput.Prompt = "> "
	m.dailyInput.Placeholder = "just this day"
	m.dailyInput.CharLimit = 128
	m.dailyInput.Width = 28

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 128
	m.commandInput.Width = 36

	m.taskViewport = viewport.New(40, 10)
	m.doneProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	m.helpModel = help.New()
}

// refreshCells rebuilds the grid for the current month and clamps the
// cursor onto a day cell.
func (m *Model) refreshCells() {
	m.Cells = calendar.CellsFor(m.Year, m.Month, m.WeekStart)
	if m.Cursor >= len(m.Cells) {
		m.Cursor = len(m.Cells) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cells[m.Cursor].Blank() {
		m.moveCursorToDay(1)
	}
}

func (m *Model) moveCursorToDay(day int) {
	for i, cell := range m.Cells {
		if cell.Day == day {
			m.Cursor = i
			return
		}
	}
	for i, cell := range m.Cells {
		if !cell.Blank() {
			m.Cursor = i
			return
		}
	}
}

func (m Model) cursorCell() calendar.Cell {
	if m.Cursor < 0 || m.Cursor >= len(m.Cells) {
		return calendar.Cell{}
	}
	return m.Cells[m.Cursor]
}

func (m Model) todayKey() string {
	return model.DateKey(m.now())
}
