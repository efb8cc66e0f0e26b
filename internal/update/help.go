package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mkalita/daygrid/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const usageMarkdown = `## daygrid

Move over the month grid with the arrow keys and press **enter** on a
day to open its panel. Inside the panel, **space** toggles the task
under the cursor, **m** marks everything done and **u** clears the day.

Palette commands: ` + "`add`, `plan`, `goto YYYY-MM-DD`, `today`, `mark done|clear`."

func (m Model) renderHelpView() string {
	plain := make([]string, 0, 16)
	for _, kb := range m.bindings() {
		plain = append(plain, fmt.Sprintf("%s: %s", kb.Key, kb.Action))
	}
	helpBindings := make([]key.Binding, 0, len(m.bindings()))
	for _, kb := range m.bindings() {
		helpBindings = append(helpBindings, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: helpBindings,
			full:  [][]key.Binding{helpBindings},
		}),
		UsageView: views.RenderMarkdown(usageMarkdown),
	})
}

func (m Model) bindings() []KeyBinding {
	out := []KeyBinding{
		{Key: "arrows", Action: "move over the grid"},
		{Key: "enter", Action: "open day panel"},
		{Key: "t", Action: "jump to today"},
		{Key: m.Keys.PrevMonth + "/" + m.Keys.NextMonth, Action: "previous/next month"},
		{Key: m.Keys.Palette, Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
	if m.Panel.Open {
		out = append(out,
			KeyBinding{Key: "j/k", Action: "move task cursor"},
			KeyBinding{Key: "space", Action: "toggle task"},
			KeyBinding{Key: "m/u", Action: "mark all done / clear"},
			KeyBinding{Key: "a/A", Action: "add recurring / day task"},
			KeyBinding{Key: "esc", Action: "close panel"},
		)
	}
	return out
}
