package ui

import (
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	uistate "github.com/atomicstack/gallery-browser/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.quitting {
		return nil
	}
	if m.jump != nil {
		return m.handleJumpKey(keyMsg)
	}
	if m.modalOpen() {
		return m.handleModalKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "esc", "H":
		return m.goHome()
	case "v":
		return m.toggleMode()
	case "enter":
		return m.openPreview()
	case "o":
		return m.openCurrentURL()
	case "y":
		return m.copyCurrentURL()
	case "up", "k":
		return m.moveCursor(func(g *uistate.Grid, _ int) bool { return g.Move(0, -1) })
	case "down", "j":
		return m.moveCursor(func(g *uistate.Grid, _ int) bool { return g.Move(0, 1) })
	case "left", "h":
		return m.moveCursor(func(g *uistate.Grid, _ int) bool { return g.Move(-1, 0) })
	case "right", "l":
		return m.moveCursor(func(g *uistate.Grid, _ int) bool { return g.Move(1, 0) })
	case "pgup":
		return m.moveCursor((*uistate.Grid).PageUp)
	case "pgdown", " ":
		return m.moveCursor((*uistate.Grid).PageDown)
	case "home", "g":
		return m.moveCursor(func(g *uistate.Grid, _ int) bool { return g.MoveHome() })
	case "end", "G":
		return m.moveCursor(func(g *uistate.Grid, _ int) bool { return g.MoveEnd() })
	}
	if m.mode != ModeImages {
		return nil
	}
	switch keyMsg.String() {
	case "tab":
		return m.cycleCategory(1)
	case "shift+tab":
		return m.cycleCategory(-1)
	case "]":
		return m.cycleSubCategory(1)
	case "[":
		return m.cycleSubCategory(-1)
	case "m":
		return m.loadMore()
	case "a":
		return m.toggleViewAll()
	case "/":
		return m.openJump()
	}
	return nil
}

// moveCursor applies a grid movement and reports a scroll when the offset
// changed.
func (m *Model) moveCursor(move func(*uistate.Grid, int) bool) tea.Cmd {
	grid := m.activeGrid()
	rows := m.visibleRows()
	before := grid.Offset
	moved := move(grid, rows)
	grid.EnsureCursorVisible(rows)
	if moved {
		events.UI.Cursor(m.mode.String(), grid.Cursor, grid.Offset)
	}
	if grid.Offset != before {
		return m.publishViewport(true)
	}
	return nil
}

func (m *Model) goHome() tea.Cmd {
	events.UI.Home()
	m.Shutdown()
	return m.navigator.Home()
}

func (m *Model) toggleMode() tea.Cmd {
	if m.mode == ModeImages {
		m.mode = ModeVideos
	} else {
		m.mode = ModeImages
	}
	m.errMsg = ""
	m.forceClearInfo()
	events.UI.View(m.mode.String())
	m.syncGrid()
	return m.publishViewport(false)
}

func (m *Model) cycleCategory(delta int) tea.Cmd {
	chips := m.controller.CategoryChips()
	if len(chips) == 0 {
		return nil
	}
	idx := 0
	for i, chip := range chips {
		if chip.Active {
			idx = i
			break
		}
	}
	next := ((idx+delta)%len(chips) + len(chips)) % len(chips)
	return m.selectCategory(chips[next].ID)
}

func (m *Model) cycleSubCategory(delta int) tea.Cmd {
	chips := m.controller.SubCategoryChips()
	if len(chips) == 0 {
		return nil
	}
	idx := -1
	for i, chip := range chips {
		if chip.Active {
			idx = i
			break
		}
	}
	next := 0
	if idx >= 0 {
		next = ((idx+delta)%len(chips) + len(chips)) % len(chips)
	}
	return m.selectSubCategory(chips[next].ID)
}

func (m *Model) selectCategory(id string) tea.Cmd {
	if err := m.controller.SelectCategory(id); err != nil {
		m.errMsg = err.Error()
		events.Action.Error(err)
		return nil
	}
	return m.afterSelection()
}

func (m *Model) selectSubCategory(id string) tea.Cmd {
	if err := m.controller.SelectSubCategory(id); err != nil {
		m.errMsg = err.Error()
		events.Action.Error(err)
		return nil
	}
	return m.afterSelection()
}

func (m *Model) afterSelection() tea.Cmd {
	m.errMsg = ""
	m.forceClearInfo()
	m.grid.Reset()
	m.traceSelection()
	m.syncGrid()
	return m.publishViewport(false)
}

func (m *Model) loadMore() tea.Cmd {
	task, ok := m.controller.RevealMore(m.controller.NextIncrement())
	if !ok {
		return nil
	}
	return m.schedule(task)
}

// toggleViewAll reveals every item, or shrinks back to the default window
// when everything is already shown and there is something to hide.
func (m *Model) toggleViewAll() tea.Cmd {
	if m.controller.IsShowingAll() {
		if m.controller.Total() <= m.controller.InitialCount() {
			return nil
		}
		task, ok := m.controller.ResetToInitial()
		if !ok {
			return nil
		}
		m.grid.Reset()
		return m.schedule(task)
	}
	task, ok := m.controller.RevealAll()
	if !ok {
		return nil
	}
	return m.schedule(task)
}
