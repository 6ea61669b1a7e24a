package ui

import (
	"fmt"

	"github.com/atomicstack/gallery-browser/internal/catalog"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	uistate "github.com/atomicstack/gallery-browser/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const jumpMaxResults = 8

// jumpForm is the sub-category search prompt.
type jumpForm struct {
	input textinput.Model
	list  *uistate.Jump
	help  string
}

func newJumpForm(entries []catalog.Entry) *jumpForm {
	ti := textinput.New()
	ti.Placeholder = "album name"
	ti.CharLimit = 64
	ti.Prompt = "/ "
	if styles.JumpPrompt != nil {
		ti.PromptStyle = styles.JumpPrompt.Copy()
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return &jumpForm{
		input: ti,
		list:  uistate.NewJump(entries),
		help:  "Enter to jump. Esc to cancel.",
	}
}

// Update feeds a key to the form. done reports a confirmed selection and
// cancel an abandoned prompt.
func (f *jumpForm) Update(msg tea.KeyMsg) (cmd tea.Cmd, done bool, cancel bool) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return nil, false, true
	case "enter":
		_, ok := f.list.Selected()
		return nil, ok, false
	case "up", "ctrl+p":
		f.list.Move(-1)
		return nil, false, false
	case "down", "ctrl+n", "tab":
		f.list.Move(1)
		return nil, false, false
	}
	before := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	if value := f.input.Value(); value != before {
		f.list.SetQuery(value)
		events.Jump.Query(value, len(f.list.Items))
	}
	return cmd, false, false
}

func (f *jumpForm) Selected() (catalog.Entry, bool) {
	return f.list.Selected()
}

func (m *Model) openJump() tea.Cmd {
	entries := m.controller.Tree().Entries()
	if len(entries) == 0 {
		return nil
	}
	m.jump = newJumpForm(entries)
	events.Jump.Open()
	return nil
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	cmd, done, cancel := m.jump.Update(msg)
	if cancel {
		m.jump = nil
		events.Jump.Cancel()
		return cmd
	}
	if !done {
		return cmd
	}
	entry, _ := m.jump.Selected()
	m.jump = nil
	events.Jump.Select(entry.Label)
	if err := m.controller.SelectCategory(entry.CategoryID); err != nil {
		m.errMsg = err.Error()
		events.Action.Error(err)
		return nil
	}
	return m.selectSubCategory(entry.SubCategoryID)
}

func (m *Model) jumpLines() []styledLine {
	if m.jump == nil {
		return nil
	}
	lines := []styledLine{
		{text: "Jump to album", style: styles.SectionTitle},
		{text: m.jump.input.View(), raw: true},
	}
	items := m.jump.list.Items
	if len(items) == 0 {
		lines = append(lines, styledLine{text: "No matching albums", style: styles.Info})
	}
	start := 0
	if m.jump.list.Cursor >= jumpMaxResults {
		start = m.jump.list.Cursor - jumpMaxResults + 1
	}
	end := min(start+jumpMaxResults, len(items))
	for i := start; i < end; i++ {
		entry := items[i]
		style := styles.JumpItem
		prefix := "  "
		if i == m.jump.list.Cursor {
			style = styles.SelectedJump
			prefix = "▌ "
		}
		lines = append(lines, styledLine{text: fmt.Sprintf("%s%s (%d)", prefix, entry.Label, entry.Items), style: style})
	}
	lines = append(lines, styledLine{}, styledLine{text: m.jump.help, style: styles.Footer})
	return lines
}
