package ui

import (
	"github.com/atomicstack/gallery-browser/internal/gallery"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	uistate "github.com/atomicstack/gallery-browser/internal/ui/state"
	"github.com/atomicstack/gallery-browser/internal/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Card boxes include border and padding.
const (
	cardWidth  = 26
	cardHeight = 5
	cardGap    = 1
)

// Rows reserved around the grid.
const (
	topChrome    = 5
	bottomChrome = 3
	footerRows   = 2
)

const wheelStep = 1

// columns returns how many cards fit side by side.
func (m *Model) columns() int {
	if m.width <= 0 {
		return 3
	}
	return max(1, (m.width+cardGap)/(cardWidth+cardGap))
}

// visibleRows returns how many card rows fit on screen, or -1 when the
// height is unknown and every row is rendered.
func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := topChrome + bottomChrome
	if m.showFooter {
		used += footerRows
	}
	return max(1, (m.height-used)/cardHeight)
}

func (m *Model) pixelWidth() int {
	return m.width * m.cellWidth
}

func (m *Model) rowPixels() int {
	return cardHeight * m.cellHeight
}

func (m *Model) activeGrid() *uistate.Grid {
	if m.mode == ModeVideos {
		return m.videoGrid
	}
	return m.grid
}

// syncGrid refreshes both grids after the window or terminal changed.
func (m *Model) syncGrid() {
	cols := m.columns()
	rows := m.visibleRows()
	m.grid.SetColumns(cols)
	m.grid.SetCount(len(m.controller.VisibleItems()))
	m.grid.EnsureCursorVisible(rows)
	m.videoGrid.SetColumns(cols)
	m.videoGrid.SetCount(len(m.videos.Videos))
	m.videoGrid.EnsureCursorVisible(rows)
}

// scrollPosition returns the bottom edge of the viewport and the page height,
// in pixels, for the image grid.
func (m *Model) scrollPosition() (int, int) {
	chrome := topChrome + bottomChrome
	totalRows := m.grid.Rows()
	pageHeight := chrome*m.cellHeight + totalRows*m.rowPixels()
	rows := m.visibleRows()
	if rows < 0 || m.grid.Offset+rows >= totalRows {
		return pageHeight, pageHeight
	}
	position := chrome*m.cellHeight + (m.grid.Offset+rows)*m.rowPixels()
	return position, pageHeight
}

// intersectingKeys lists the slot keys whose card lies within the viewport
// expanded by the proximity margin.
func (m *Model) intersectingKeys() []string {
	cards := m.controller.Cards()
	if len(cards) == 0 {
		return nil
	}
	rows := m.visibleRows()
	if rows < 0 {
		rows = m.grid.Rows()
	}
	rowPx := m.rowPixels()
	top := m.grid.Offset*rowPx - gallery.ProximityMargin
	bottom := (m.grid.Offset+rows)*rowPx + gallery.ProximityMargin
	first := max(top, 0) / rowPx
	last := (bottom + rowPx - 1) / rowPx
	start, end := m.grid.RowRange(first, last)
	end = min(end, len(cards))
	keys := make([]string, 0, max(end-start, 0))
	for _, card := range cards[min(start, end):end] {
		keys = append(keys, card.Key)
	}
	return keys
}

// publishViewport reports the current geometry to the hub and schedules
// whatever the dispatcher queued. Scroll signals are only sent when the
// offset actually moved.
func (m *Model) publishViewport(scrolled bool) tea.Cmd {
	if m.mode != ModeImages || m.quitting {
		return nil
	}
	m.checkEagerAssets()
	if scrolled {
		position, pageHeight := m.scrollPosition()
		n := m.hub.Publish(viewport.Event{Kind: viewport.KindScroll, Position: position, PageHeight: pageHeight})
		events.Viewport.Publish(viewport.KindScroll.String(), n)
	}
	if keys := m.intersectingKeys(); len(keys) > 0 {
		n := m.hub.Publish(viewport.Event{Kind: viewport.KindIntersect, Keys: keys})
		events.Viewport.Publish(viewport.KindIntersect.String(), n)
	}
	tasks := m.dispatcher.Drain()
	if len(tasks) == 0 {
		return nil
	}
	return m.schedule(tasks...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncGrid()
	if m.quitting {
		return nil
	}
	n := m.hub.Publish(viewport.Event{Kind: viewport.KindResize, Width: m.pixelWidth()})
	events.Viewport.Publish(viewport.KindResize.String(), n)
	tasks := m.dispatcher.Drain()
	var cmds []tea.Cmd
	if len(tasks) > 0 {
		cmds = append(cmds, m.schedule(tasks...))
	}
	if cmd := m.publishViewport(false); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.jump != nil || m.modalOpen() {
		return nil
	}
	grid := m.activeGrid()
	rows := m.visibleRows()
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if grid.ScrollBy(-wheelStep, rows) {
			return m.publishViewport(true)
		}
	case tea.MouseButtonWheelDown:
		if grid.ScrollBy(wheelStep, rows) {
			return m.publishViewport(true)
		}
	}
	return nil
}
