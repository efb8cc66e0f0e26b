package views

import (
	"fmt"
	"strings"
)

type CellData struct {
	Blank    bool
	Day      int
	Status   string
	Cursor   bool
	Selected bool
	Today    bool
}

type MonthGridData struct {
	Title   string
	Header  []string
	Cells   []CellData
	Summary string
}

type TaskRowData struct {
	Title  string
	Done   bool
	Daily  bool
	Cursor bool
}

type DetailPanelData struct {
	DateKey            string
	Done               int
	Total              int
	ProgressView       string
	TaskListView       string
	RecurringInputView string
	DailyInputView     string
}

type PalettePanelData struct {
	Active    bool
	InputView string
}

type HelpPanelData struct {
	Bindings  []string
	HelpView  string
	UsageView string
}

func statusGlyph(status string) string {
	switch status {
	case "full":
		return "●"
	case "partial":
		return "◐"
	default:
		return "·"
	}
}

// RenderMonthGrid draws the 7-column calendar. Each day cell shows its
// number plus a tri-state glyph; the cursor cell is marked with ">".
func RenderMonthGrid(data MonthGridData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	for _, label := range data.Header {
		b.WriteString(fmt.Sprintf(" %-4s", label))
	}
	b.WriteString("\n")

	for i, cell := range data.Cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		if cell.Blank {
			b.WriteString("     ")
			continue
		}
		marker := " "
		if cell.Cursor {
			marker = ">"
		}
		text := fmt.Sprintf("%s%2d%s ", marker, cell.Day, statusGlyph(cell.Status))
		b.WriteString(cellStyle(cell.Status, cell.Today, cell.Selected).Render(text))
	}
	b.WriteString("\n")
	if data.Summary != "" {
		b.WriteString(data.Summary + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderTaskList draws the panel's scrollable content: recurring tasks
// first, then the day-specific section.
func RenderTaskList(rows []TaskRowData) string {
	var b strings.Builder
	b.WriteString("recurring:\n")
	dailyHeaderWritten := false
	count := 0
	for _, row := range rows {
		if row.Daily && !dailyHeaderWritten {
			b.WriteString("for this day:\n")
			dailyHeaderWritten = true
		}
		cursor := " "
		if row.Cursor {
			cursor = ">"
		}
		box := "[ ]"
		if row.Done {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, box, row.Title))
		count++
	}
	if count == 0 {
		b.WriteString("  (no tasks)\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDetailPanel(data DetailPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("day: %s\n", data.DateKey))
	b.WriteString(fmt.Sprintf("done: %d/%d\n", data.Done, data.Total))
	b.WriteString(data.ProgressView + "\n")
	b.WriteString("actions: [space]toggle [m]all done [u]clear [a/A]add [esc]close\n")
	b.WriteString(data.TaskListView + "\n")
	b.WriteString("add recurring: " + data.RecurringInputView + "\n")
	b.WriteString("add for day:   " + data.DailyInputView)
	return b.String()
}

func RenderPalette(data PalettePanelData) string {
	if !data.Active {
		return ""
	}
	return "command: " + data.InputView
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	for _, binding := range data.Bindings {
		b.WriteString("- " + binding + "\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView + "\n")
	}
	if data.UsageView != "" {
		b.WriteString(data.UsageView + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
