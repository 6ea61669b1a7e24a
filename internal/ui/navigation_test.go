package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabCyclesCategories(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("tab")
	c := h.Model().Controller()
	if cat := c.ActiveCategory(); cat == nil || cat.ID != "ps" {
		t.Fatalf("expected primary category, got %#v", cat)
	}
	if sub := c.ActiveSubCategory(); sub == nil || sub.ID != "fair" {
		t.Fatalf("expected fair album, got %#v", sub)
	}
	h.Key("tab")
	if cat := c.ActiveCategory(); cat.ID != "kg" {
		t.Fatalf("expected wrap to kindergarten, got %s", cat.ID)
	}
	h.Key("shift+tab")
	if cat := c.ActiveCategory(); cat.ID != "ps" {
		t.Fatalf("expected shift+tab to go back, got %s", cat.ID)
	}
}

func TestBracketsCycleAlbums(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("]")
	c := h.Model().Controller()
	if sub := c.ActiveSubCategory(); sub.ID != "sports" {
		t.Fatalf("expected sports album, got %s", sub.ID)
	}
	if got := len(c.VisibleItems()); got != 3 {
		t.Fatalf("expected 3 sports photos, got %d", got)
	}
	h.Key("[")
	if sub := c.ActiveSubCategory(); sub.ID != "annual" {
		t.Fatalf("expected annual album, got %s", sub.ID)
	}
}

func TestSelectionResetsCursor(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("end")
	if h.Model().grid.Cursor != 11 {
		t.Fatalf("expected cursor on last card, got %d", h.Model().grid.Cursor)
	}
	h.Key("]")
	if h.Model().grid.Cursor != 0 || h.Model().grid.Offset != 0 {
		t.Fatalf("expected cursor reset, got %#v", h.Model().grid)
	}
}

func TestArrowKeysMoveCursor(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("right")
	h.Key("down")
	if got := h.Model().grid.Cursor; got != 4 {
		t.Fatalf("expected cursor 4, got %d", got)
	}
	h.Key("k")
	h.Key("h")
	if got := h.Model().grid.Cursor; got != 0 {
		t.Fatalf("expected cursor back at 0, got %d", got)
	}
}

func TestLoadMoreRevealsNextIncrement(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("m")
	c := h.Model().Controller()
	if got := len(c.VisibleItems()); got != 24 {
		t.Fatalf("expected 24 visible items, got %d", got)
	}
	if c.Adjusting() {
		t.Fatalf("expected transition settled")
	}
	if h.Model().grid.Count != 24 {
		t.Fatalf("expected grid to follow the window, got %d", h.Model().grid.Count)
	}
}

func TestViewAllTogglesBack(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("a")
	c := h.Model().Controller()
	if !c.IsShowingAll() || len(c.VisibleItems()) != 30 {
		t.Fatalf("expected all 30 items, got %d", len(c.VisibleItems()))
	}
	h.Key("a")
	if got := len(c.VisibleItems()); got != 12 {
		t.Fatalf("expected reset to 12, got %d", got)
	}
}

func TestViewAllIgnoredForSmallAlbums(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("]")
	h.Key("a")
	c := h.Model().Controller()
	if c.Adjusting() || len(c.VisibleItems()) != 3 {
		t.Fatalf("expected small album untouched, got %d", len(c.VisibleItems()))
	}
}

func TestWheelNearBottomRevealsMore(t *testing.T) {
	h := newTestHarness(t, func(o *Options) { o.InitialHeight = 18 })
	if rows := h.Model().visibleRows(); rows != 2 {
		t.Fatalf("expected 2 visible rows, got %d", rows)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m := h.Model()
	if m.grid.Offset != 1 {
		t.Fatalf("expected offset 1, got %d", m.grid.Offset)
	}
	if got := len(m.Controller().VisibleItems()); got != 24 {
		t.Fatalf("expected auto-advance to 24, got %d", got)
	}
}

func TestModeToggleSwitchesGrid(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("v")
	m := h.Model()
	if m.Mode() != ModeVideos {
		t.Fatalf("expected videos mode")
	}
	h.Key("right")
	if m.videoGrid.Cursor != 1 || m.grid.Cursor != 0 {
		t.Fatalf("expected only the video cursor to move, got video=%d image=%d", m.videoGrid.Cursor, m.grid.Cursor)
	}
	h.Key("m")
	if got := len(m.Controller().VisibleItems()); got != 12 {
		t.Fatalf("expected image keys ignored in videos mode, got %d", got)
	}
	h.Key("v")
	if m.Mode() != ModeImages {
		t.Fatalf("expected images mode")
	}
}

func TestEscGoesHome(t *testing.T) {
	nav := &recordingNavigator{}
	h := newTestHarness(t, func(o *Options) { o.Navigator = nav })
	h.Key("esc")
	if nav.calls != 1 {
		t.Fatalf("expected navigator called once, got %d", nav.calls)
	}
	if h.Model().hub.Len() != 0 {
		t.Fatalf("expected subscriptions released on the way home")
	}
}

func TestQuitKey(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("q")
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func TestJumpPromptSelectsAlbum(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("/")
	if h.Model().jump == nil {
		t.Fatalf("expected jump prompt open")
	}
	for _, r := range "fair" {
		h.Key(string(r))
	}
	view := plainView(h)
	if !strings.Contains(view, "Primary / Album fair (6)") {
		t.Fatalf("expected fair in results, got:\n%s", view)
	}
	h.Key("enter")
	c := h.Model().Controller()
	if h.Model().jump != nil {
		t.Fatalf("expected prompt closed")
	}
	if sub := c.ActiveSubCategory(); sub == nil || sub.ID != "fair" {
		t.Fatalf("expected fair album, got %#v", sub)
	}
}

func TestJumpPromptCancel(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Key("/")
	h.Key("s")
	h.Key("esc")
	if h.Model().jump != nil {
		t.Fatalf("expected prompt closed")
	}
	if sub := h.Model().Controller().ActiveSubCategory(); sub.ID != "annual" {
		t.Fatalf("expected selection unchanged, got %s", sub.ID)
	}
}
