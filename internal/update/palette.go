package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkalita/daygrid/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	cmd, err := commands.Parse(m.Palette.Input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.addRecurringTask(a.Title)
			return commands.Result{Message: fmt.Sprintf("added recurring task: %s", a.Title)}, nil
		},
		Plan: func(p commands.PlanArgs) (commands.Result, error) {
			if m.SelectedDate == "" {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "plan needs a selected day"}
			}
			m.addDailyTask(p.Title)
			return commands.Result{Message: fmt.Sprintf("planned for %s: %s", m.SelectedDate, p.Title)}, nil
		},
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			m.selectDate(g.DateKey)
			return commands.Result{Message: fmt.Sprintf("jumped to %s", g.DateKey)}, nil
		},
		Today: func() (commands.Result, error) {
			m.selectDate(m.todayKey())
			return commands.Result{Message: "jumped to today"}, nil
		},
		Mark: func(a commands.MarkArgs) (commands.Result, error) {
			if m.SelectedDate == "" {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "mark needs a selected day"}
			}
			m.markAllSelected(a.Value)
			if a.Value {
				return commands.Result{Message: "marked all done"}, nil
			}
			return commands.Result{Message: "cleared all"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.closePalette()
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}
