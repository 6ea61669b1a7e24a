package gallery

import (
	"time"

	"github.com/atomicstack/gallery-browser/internal/catalog"
)

const (
	// RevealDelay is the simulated latency of reveal and reset transitions.
	RevealDelay = 300 * time.Millisecond
	// ResizeSettle is the debounce applied to viewport width changes.
	ResizeSettle = 250 * time.Millisecond
	// MaxStagger bounds the random delay before an intersecting slot loads.
	MaxStagger = 200 * time.Millisecond
	// ProximityMargin is how close (px) a slot must be to the viewport to count as intersecting.
	ProximityMargin = 100
	// AutoAdvanceThreshold is the distance (px) from the page bottom that triggers auto-load.
	AutoAdvanceThreshold = 800
	// EagerSlots are always loaded regardless of intersection.
	EagerSlots = 4
)

// InitialCount maps a viewport width in pixels to the default window size.
func InitialCount(width int) int {
	switch {
	case width < 640:
		return 6
	case width < 768:
		return 9
	case width < 1024:
		return 12
	default:
		return 15
	}
}

type window struct {
	count     int
	manual    bool
	adjusting bool
	pending   uint64
	// resizedFrom is the width before the first resize that landed while a
	// transition was pending. Zero when none did.
	resizedFrom int
}

// InitialCount returns the breakpoint count for the current viewport width.
func (c *Controller) InitialCount() int {
	return InitialCount(c.width)
}

// Width returns the last settled viewport width.
func (c *Controller) Width() int {
	return c.width
}

// Count returns the raw window count.
func (c *Controller) Count() int {
	return c.window.count
}

// Total returns the number of items in the active sub-category.
func (c *Controller) Total() int {
	if c.sub == nil {
		return 0
	}
	return len(c.sub.Items)
}

// Adjusting reports whether a reveal or reset transition is pending.
func (c *Controller) Adjusting() bool {
	return c.window.adjusting
}

// VisibleItems returns the rendered prefix of the active sub-category.
func (c *Controller) VisibleItems() []catalog.MediaItem {
	if c.sub == nil {
		return nil
	}
	n := c.window.count
	if n > len(c.sub.Items) {
		n = len(c.sub.Items)
	}
	return c.sub.Items[:n]
}

// HasMore reports whether items remain hidden.
func (c *Controller) HasMore() bool {
	return c.sub != nil && c.window.count < len(c.sub.Items)
}

// IsShowingAll reports whether every item is rendered.
func (c *Controller) IsShowingAll() bool {
	return c.sub != nil && c.window.count >= len(c.sub.Items)
}

// NextIncrement is the number of items the next "load more" would add.
func (c *Controller) NextIncrement() int {
	remaining := c.Total() - c.window.count
	if remaining <= 0 {
		return 0
	}
	return min(c.InitialCount(), remaining)
}

// RevealMore schedules growing the window by increment, capped at the total.
// It is ignored while another transition is pending or nothing is hidden.
func (c *Controller) RevealMore(increment int) (Task, bool) {
	if c.sub == nil || c.window.adjusting || !c.HasMore() || increment <= 0 {
		return Task{}, false
	}
	target := min(c.window.count+increment, c.Total())
	return c.beginTransition(TaskReveal, target), true
}

// RevealAll schedules showing every item of the active sub-category.
func (c *Controller) RevealAll() (Task, bool) {
	if c.sub == nil || c.window.adjusting {
		return Task{}, false
	}
	return c.beginTransition(TaskReveal, c.Total()), true
}

// ResetToInitial schedules shrinking the window back to the breakpoint
// count. The count is resolved when the task completes so a resize during
// the transition is honoured.
func (c *Controller) ResetToInitial() (Task, bool) {
	if c.sub == nil || c.window.adjusting {
		return Task{}, false
	}
	return c.beginTransition(TaskReset, 0), true
}

func (c *Controller) beginTransition(kind TaskKind, target int) Task {
	c.seq++
	c.window.adjusting = true
	c.window.pending = c.seq
	return Task{
		Kind:       kind,
		Delay:      RevealDelay,
		Generation: c.generation,
		Seq:        c.seq,
		Count:      target,
	}
}

func (c *Controller) completeTransition(task Task) bool {
	if task.Generation != c.generation || !c.window.adjusting || task.Seq != c.window.pending {
		return false
	}
	c.window.adjusting = false
	c.window.pending = 0
	if task.Kind == TaskReset {
		c.window.count = c.clampedInitial(c.width)
		c.window.manual = false
	} else {
		c.window.count = min(task.Count, c.Total())
		c.window.manual = true
	}
	if from := c.window.resizedFrom; from > 0 {
		c.window.resizedFrom = 0
		c.fitWidth(from)
	}
	c.observe()
	return true
}

// Resize records a raw viewport width change and returns the debounced task
// that applies it. Only the most recent resize task takes effect.
func (c *Controller) Resize(width int) Task {
	c.resizeSeq++
	return Task{
		Kind:       TaskResize,
		Delay:      ResizeSettle,
		Generation: c.generation,
		Seq:        c.resizeSeq,
		Width:      width,
	}
}

func (c *Controller) applyResize(width int) {
	from := c.width
	c.width = width
	if c.sub == nil {
		return
	}
	if c.window.adjusting {
		if c.window.resizedFrom == 0 {
			c.window.resizedFrom = from
		}
		return
	}
	if c.fitWidth(from) {
		c.observe()
	}
}

// fitWidth moves a default-sized window to the breakpoint count of the
// current width. from is the width the window was last sized for. It
// reports whether the count changed.
func (c *Controller) fitWidth(from int) bool {
	// An explicit "view all" survives resizes.
	if c.window.manual && c.IsShowingAll() {
		return false
	}
	prev := c.clampedInitial(from)
	next := c.clampedInitial(c.width)
	count := c.window.count
	if count != prev && (count >= next || c.IsShowingAll()) {
		return false
	}
	if count == next {
		return false
	}
	c.window.count = next
	c.window.manual = false
	return true
}

func (c *Controller) clampedInitial(width int) int {
	return min(InitialCount(width), c.Total())
}
