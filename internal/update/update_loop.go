package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkalita/daygrid/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}

		keyStr := typed.String()
		if m.Panel.Open && m.Panel.Focus != FocusTasks && keyStr != "ctrl+c" {
			return m.handlePanelInput(typed), nil
		}

		switch keyStr {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.PrevMonth:
			m.navigateMonth(-1)
			return m, nil
		case m.Keys.NextMonth:
			m.navigateMonth(1)
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Panel.Open {
			return m.handlePanelKey(typed), nil
		}
		return m.handleGridKey(typed), nil

	case SelectDateMsg:
		m.selectDate(typed.DateKey)
		return m, nil
	case NavigateMonthMsg:
		m.navigateMonth(typed.Delta)
		return m, nil
	case ToggleTaskMsg:
		m.toggleTask(typed.DateKey, typed.TaskID)
		return m, nil
	case MarkAllMsg:
		m.markAllSelected(typed.Value)
		return m, nil
	case AddRecurringTaskMsg:
		m.addRecurringTask(typed.Title)
		return m, nil
	case AddDailyTaskMsg:
		m.addDailyTask(typed.Title)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	rightPane := ""
	if m.Panel.Open {
		rightPane = m.renderDetailPanel()
	}
	if m.Palette.Active {
		rightPane = joinPanes(rightPane, views.RenderPalette(views.PalettePanelData{
			Active:    true,
			InputView: m.commandInput.View(),
		}))
	}
	if m.HelpVisible {
		rightPane = joinPanes(rightPane, m.renderHelpView())
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("daygrid | %s %d | today: %s", m.Month, m.Year, m.todayKey()),
		LeftPane:   m.renderMonthGrid(),
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: arrows move | enter open day | %s/%s month | %s cmd | %s help | %s quit",
			m.Keys.PrevMonth, m.Keys.NextMonth, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

// mutateCtx is the context every store call runs under: the event loop
// is synchronous, so there is nothing to cancel.
func mutateCtx() context.Context {
	return context.Background()
}

func joinPanes(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + "\n\n" + b
}
