package gallery

import "testing"

func TestInitialCountBreakpoints(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{0, 6}, {639, 6}, {640, 9}, {767, 9}, {768, 12}, {1023, 12}, {1024, 15}, {4000, 15},
	}
	for _, tc := range cases {
		if got := InitialCount(tc.width); got != tc.want {
			t.Fatalf("InitialCount(%d) = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestInitialCountMonotonic(t *testing.T) {
	prev := InitialCount(0)
	for w := 1; w <= 2000; w++ {
		got := InitialCount(w)
		if got < prev {
			t.Fatalf("InitialCount decreased at width %d: %d < %d", w, got, prev)
		}
		switch got {
		case 6, 9, 12, 15:
		default:
			t.Fatalf("unexpected count %d at width %d", got, w)
		}
		prev = got
	}
}

func TestDesktopRevealMoreScenario(t *testing.T) {
	c := New(singleAlbumTree(20), 1200)
	if c.InitialCount() != 15 {
		t.Fatalf("expected initial count 15, got %d", c.InitialCount())
	}
	if len(c.VisibleItems()) != 15 {
		t.Fatalf("expected 15 visible items, got %d", len(c.VisibleItems()))
	}
	if !c.HasMore() {
		t.Fatalf("expected more items")
	}
	task, ok := c.RevealMore(15)
	if !ok {
		t.Fatalf("expected reveal to be scheduled")
	}
	if !c.Adjusting() {
		t.Fatalf("expected pending transition")
	}
	if c.Count() != 15 {
		t.Fatalf("count must not change before completion, got %d", c.Count())
	}
	if task.Delay != RevealDelay {
		t.Fatalf("expected %v delay, got %v", RevealDelay, task.Delay)
	}
	if !c.Complete(task) {
		t.Fatalf("expected completion to apply")
	}
	if c.Count() != 20 {
		t.Fatalf("expected count 20, got %d", c.Count())
	}
	if c.HasMore() || !c.IsShowingAll() {
		t.Fatalf("expected all items shown")
	}
	if c.Adjusting() {
		t.Fatalf("expected transition cleared")
	}
}

func TestRevealMoreIsNoOpWithoutMore(t *testing.T) {
	c := New(singleAlbumTree(5), 1200)
	if !c.IsShowingAll() {
		t.Fatalf("expected small album to be fully shown")
	}
	if c.Count() != 5 {
		t.Fatalf("expected count clamped to 5, got %d", c.Count())
	}
	if _, ok := c.RevealMore(15); ok {
		t.Fatalf("expected reveal to be ignored")
	}
	if c.Adjusting() {
		t.Fatalf("ignored reveal must not start a transition")
	}
}

func TestRevealAllScenario(t *testing.T) {
	c := New(singleAlbumTree(20), 1200)
	task, ok := c.RevealAll()
	if !ok {
		t.Fatalf("expected reveal all to be scheduled")
	}
	c.Complete(task)
	if c.Count() != 20 || !c.IsShowingAll() {
		t.Fatalf("expected 20 visible, got %d", c.Count())
	}
}

func TestResetAfterRevealAllOnMobile(t *testing.T) {
	c := New(singleAlbumTree(20), 1200)
	task, _ := c.RevealAll()
	c.Complete(task)
	c.Complete(c.Resize(500))
	if c.Count() != 20 {
		t.Fatalf("expected view all to survive resize, got %d", c.Count())
	}
	reset, ok := c.ResetToInitial()
	if !ok {
		t.Fatalf("expected reset to be scheduled")
	}
	c.Complete(reset)
	if c.Count() != 6 {
		t.Fatalf("expected count 6 after reset, got %d", c.Count())
	}
}

func TestResetNeverExceedsTotal(t *testing.T) {
	c := New(singleAlbumTree(4), 1200)
	task, ok := c.ResetToInitial()
	if !ok {
		t.Fatalf("expected reset to be scheduled")
	}
	c.Complete(task)
	if c.Count() > c.Total() {
		t.Fatalf("count %d exceeds total %d", c.Count(), c.Total())
	}
}

func TestTransitionsSuppressedWhilePending(t *testing.T) {
	c := New(singleAlbumTree(50), 1200)
	first, ok := c.RevealMore(15)
	if !ok {
		t.Fatalf("expected first reveal")
	}
	if _, ok := c.RevealMore(15); ok {
		t.Fatalf("expected second reveal to be suppressed")
	}
	if _, ok := c.RevealAll(); ok {
		t.Fatalf("expected reveal all to be suppressed")
	}
	if _, ok := c.ResetToInitial(); ok {
		t.Fatalf("expected reset to be suppressed")
	}
	c.Complete(first)
	if c.Count() != 30 {
		t.Fatalf("expected 30 after single reveal, got %d", c.Count())
	}
	if c.Complete(first) {
		t.Fatalf("expected replayed task to be ignored")
	}
}

func TestRevealMonotonicAndCapped(t *testing.T) {
	c := New(singleAlbumTree(37), 700)
	prev := c.Count()
	for i := 0; i < 10; i++ {
		task, ok := c.RevealMore(c.InitialCount())
		if !ok {
			break
		}
		c.Complete(task)
		if c.Count() < prev {
			t.Fatalf("count decreased from %d to %d", prev, c.Count())
		}
		if c.Count() > c.Total() {
			t.Fatalf("count %d exceeds total %d", c.Count(), c.Total())
		}
		prev = c.Count()
	}
	if c.Count() != 37 {
		t.Fatalf("expected to reach total, got %d", c.Count())
	}
}

func TestNextIncrement(t *testing.T) {
	c := New(singleAlbumTree(20), 1200)
	if got := c.NextIncrement(); got != 5 {
		t.Fatalf("expected next increment 5, got %d", got)
	}
	c = New(singleAlbumTree(40), 500)
	if got := c.NextIncrement(); got != 6 {
		t.Fatalf("expected next increment 6, got %d", got)
	}
}

func TestResizeDebounceAppliesLatestOnly(t *testing.T) {
	c := New(singleAlbumTree(40), 1200)
	first := c.Resize(500)
	second := c.Resize(700)
	if first.Delay != ResizeSettle {
		t.Fatalf("expected settle delay, got %v", first.Delay)
	}
	if c.Complete(first) {
		t.Fatalf("expected superseded resize to be dropped")
	}
	if c.Width() != 1200 {
		t.Fatalf("expected width unchanged, got %d", c.Width())
	}
	if !c.Complete(second) {
		t.Fatalf("expected latest resize to apply")
	}
	if c.Width() != 700 || c.Count() != 9 {
		t.Fatalf("expected width 700 and count 9, got %d/%d", c.Width(), c.Count())
	}
}

func TestResizeKeepsPartialReveal(t *testing.T) {
	c := New(singleAlbumTree(60), 1200)
	task, _ := c.RevealMore(15)
	c.Complete(task)
	c.Complete(c.Resize(500))
	if c.Count() != 30 {
		t.Fatalf("expected partial reveal kept at 30, got %d", c.Count())
	}
}

func TestResizeGrowsDefaultView(t *testing.T) {
	c := New(singleAlbumTree(60), 500)
	c.Complete(c.Resize(1100))
	if c.Count() != 15 {
		t.Fatalf("expected count 15 after growing, got %d", c.Count())
	}
}

func TestResizeWhilePendingDefersToTransition(t *testing.T) {
	c := New(singleAlbumTree(60), 1200)
	task, _ := c.RevealMore(15)
	c.Complete(c.Resize(500))
	if c.Count() != 15 {
		t.Fatalf("expected window untouched while pending, got %d", c.Count())
	}
	c.Complete(task)
	if c.Count() != 30 {
		t.Fatalf("expected pending reveal to land, got %d", c.Count())
	}
}

func TestResizeWhilePendingAppliesAfterReveal(t *testing.T) {
	c := New(singleAlbumTree(60), 500)
	task, _ := c.RevealMore(6)
	c.Complete(c.Resize(1200))
	if c.Count() != 6 {
		t.Fatalf("expected window untouched while pending, got %d", c.Count())
	}
	if !c.Complete(task) {
		t.Fatalf("expected reveal to apply")
	}
	if c.Count() != 15 {
		t.Fatalf("expected grown breakpoint to apply after reveal, got %d", c.Count())
	}
	if len(c.Cards()) != 15 {
		t.Fatalf("expected observations rebuilt for 15 cards, got %d", len(c.Cards()))
	}
}
