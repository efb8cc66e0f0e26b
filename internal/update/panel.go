package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkalita/daygrid/internal/model"
	"github.com/mkalita/daygrid/internal/progress"
	"github.com/mkalita/daygrid/internal/views"
)

func (m Model) handlePanelKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Panel.Open = false
		m.Status = StatusBar{Text: "panel closed", IsError: false}
	case "up", "k":
		if m.Panel.Cursor > 0 {
			m.Panel.Cursor--
		}
	case "down", "j":
		if m.Panel.Cursor < len(m.panelTasks())-1 {
			m.Panel.Cursor++
		}
	case " ", "enter":
		m.toggleTaskAtCursor()
	case "m":
		m.markAllSelected(true)
	case "u":
		m.markAllSelected(false)
	case "a":
		m.Panel.Focus = FocusRecurringInput
		m.recurringInput.Focus()
	case "A":
		m.Panel.Focus = FocusDailyInput
		m.dailyInput.Focus()
	}
	return m
}

// handlePanelInput routes keystrokes to whichever add-input owns focus.
// Enter submits, esc returns focus to the task list.
func (m Model) handlePanelInput(msg tea.KeyMsg) Model {
	input := &m.recurringInput
	if m.Panel.Focus == FocusDailyInput {
		input = &m.dailyInput
	}

	switch msg.String() {
	case "esc":
		input.Blur()
		m.Panel.Focus = FocusTasks
		return m
	case "enter":
		title := input.Value()
		if m.Panel.Focus == FocusDailyInput {
			m.addDailyTask(title)
		} else {
			m.addRecurringTask(title)
		}
		return m
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	_ = cmd
	return m
}

type panelTask struct {
	model.Task
	Daily bool
}

// panelTasks is the ordered list shown in the panel: active recurring
// tasks first, then the selected date's own active tasks.
func (m Model) panelTasks() []panelTask {
	if m.SelectedDate == "" {
		return nil
	}
	out := make([]panelTask, 0, 8)
	for _, task := range m.Store.Tasks() {
		if task.Active {
			out = append(out, panelTask{Task: task})
		}
	}
	for _, task := range m.Store.DailyTasks(m.SelectedDate) {
		if task.Active {
			out = append(out, panelTask{Task: task, Daily: true})
		}
	}
	return out
}

func (m *Model) toggleTaskAtCursor() {
	tasks := m.panelTasks()
	if m.Panel.Cursor < 0 || m.Panel.Cursor >= len(tasks) {
		return
	}
	m.toggleTask(m.SelectedDate, tasks[m.Panel.Cursor].ID)
}

func (m *Model) toggleTask(dateKey, taskID string) {
	if dateKey == "" || taskID == "" {
		return
	}
	if err := m.Store.ToggleCompletion(mutateCtx(), dateKey, taskID); err != nil {
		m.reportError(err)
	}
}

func (m *Model) markAllSelected(value bool) {
	if m.SelectedDate == "" {
		return
	}
	if err := m.Store.MarkAll(mutateCtx(), m.SelectedDate, value); err != nil {
		m.reportError(err)
		return
	}
	if value {
		m.Status = StatusBar{Text: "all tasks marked done", IsError: false}
	} else {
		m.Status = StatusBar{Text: "all tasks cleared", IsError: false}
	}
}

func (m *Model) addRecurringTask(title string) {
	task, added, err := m.Store.AddRecurringTask(mutateCtx(), title)
	if err != nil {
		m.reportError(err)
		return
	}
	if !added {
		return
	}
	m.recurringInput.SetValue("")
	m.Status = StatusBar{Text: fmt.Sprintf("added recurring task: %s", task.Title), IsError: false}
}

func (m *Model) addDailyTask(title string) {
	if m.SelectedDate == "" {
		m.Status = StatusBar{Text: "select a day first", IsError: true}
		return
	}
	task, added, err := m.Store.AddDailyTask(mutateCtx(), m.SelectedDate, title)
	if err != nil {
		m.reportError(err)
		return
	}
	if !added {
		return
	}
	m.dailyInput.SetValue("")
	m.Status = StatusBar{Text: fmt.Sprintf("added task for %s: %s", m.SelectedDate, task.Title), IsError: false}
}

func (m *Model) reportError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

func (m Model) renderDetailPanel() string {
	if m.SelectedDate == "" {
		return "(no day selected)"
	}

	tasks := m.panelTasks()
	rows := make([]views.TaskRowData, 0, len(tasks))
	for i, task := range tasks {
		rows = append(rows, views.TaskRowData{
			Title:  task.Title,
			Done:   m.Store.Completions().Done(m.SelectedDate, task.ID),
			Daily:  task.Daily,
			Cursor: i == m.Panel.Cursor,
		})
	}

	vp := m.taskViewport
	vp.SetContent(views.RenderTaskList(rows))
	if m.Panel.Cursor >= vp.Height {
		vp.SetYOffset(m.Panel.Cursor - vp.Height + 1)
	}

	summary := progress.Compute(m.SelectedDate, m.Store.TasksFor(m.SelectedDate), m.Store.Completions())
	return views.RenderDetailPanel(views.DetailPanelData{
		DateKey:            m.SelectedDate,
		Done:               summary.Done,
		Total:              summary.Total,
		ProgressView:       m.doneProgress.ViewAs(summary.Fraction),
		TaskListView:       vp.View(),
		RecurringInputView: m.recurringInput.View(),
		DailyInputView:     m.dailyInput.View(),
	})
}
