// Package gallery implements the progressive disclosure state machine behind
// the image gallery: the active category/sub-category selection, the window
// of visible items, the lazy-reveal tracker, scroll-triggered auto-advance
// and the preview modal.
//
// The controller never starts timers. Operations that would wait (reveal
// transitions, resize debouncing, staggered loads) return a Task; the host
// sleeps for Task.Delay and passes the task back to Complete. Each task
// carries the selection generation it was created under so completions that
// arrive after the user switched albums are discarded.
package gallery

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/gallery-browser/internal/catalog"
)

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownSubCategory = errors.New("unknown sub-category")
	ErrNoCategory         = errors.New("no active category")
)

// Status classifies what the view should render.
type Status int

const (
	StatusReady Status = iota
	// StatusEmpty means no category survived loading.
	StatusEmpty
	// StatusNoSelection means the tree has data but no sub-category is active.
	StatusNoSelection
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusEmpty:
		return "empty"
	case StatusNoSelection:
		return "no-selection"
	default:
		return "unknown"
	}
}

// Controller owns the per-view gallery state. It is not safe for concurrent
// use; the host serialises calls on its event loop.
type Controller struct {
	tree     catalog.Tree
	category *catalog.Category
	sub      *catalog.SubCategory

	width  int
	window window

	tracker *Tracker
	preview Preview[catalog.MediaItem]

	generation uint64
	seq        uint64
	resizeSeq  uint64

	jitter func() time.Duration
}

// Option customises a Controller.
type Option func(*Controller)

// WithJitter replaces the random stagger applied to deferred loads.
func WithJitter(fn func() time.Duration) Option {
	return func(c *Controller) {
		if fn != nil {
			c.jitter = fn
		}
	}
}

// New mounts a controller over tree at the given viewport width. The first
// category and its first sub-category are selected.
func New(tree catalog.Tree, width int, opts ...Option) *Controller {
	c := &Controller{
		tree:    tree,
		width:   width,
		tracker: NewTracker(),
		jitter:  randomStagger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.tree.Categories) > 0 {
		c.category = &c.tree.Categories[0]
		if len(c.category.SubCategories) > 0 {
			c.sub = &c.category.SubCategories[0]
		}
	}
	c.resetSelectionState()
	return c
}

// Tree returns the loaded taxonomy.
func (c *Controller) Tree() catalog.Tree {
	return c.tree
}

// Status reports which top-level state the view is in.
func (c *Controller) Status() Status {
	switch {
	case c.tree.Empty():
		return StatusEmpty
	case c.sub == nil:
		return StatusNoSelection
	default:
		return StatusReady
	}
}

// Generation identifies the current selection context.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// ActiveCategory returns the selected category or nil.
func (c *Controller) ActiveCategory() *catalog.Category {
	return c.category
}

// ActiveSubCategory returns the selected sub-category or nil.
func (c *Controller) ActiveSubCategory() *catalog.SubCategory {
	return c.sub
}

// SelectCategory activates a category and its first sub-category.
func (c *Controller) SelectCategory(id string) error {
	cat, ok := c.tree.Category(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	c.category = cat
	c.sub = nil
	if len(cat.SubCategories) > 0 {
		c.sub = &cat.SubCategories[0]
	}
	c.resetSelectionState()
	return nil
}

// SelectSubCategory activates a sub-category of the active category.
// Selecting the already active sub-category still resets the window.
func (c *Controller) SelectSubCategory(id string) error {
	if c.category == nil {
		return ErrNoCategory
	}
	sub, ok := c.category.SubCategory(id)
	if !ok {
		return fmt.Errorf("%w: %q in %q", ErrUnknownSubCategory, id, c.category.ID)
	}
	c.sub = sub
	c.resetSelectionState()
	return nil
}

// resetSelectionState starts a new context: pending work from the previous
// selection becomes stale and the loaded set is cleared.
func (c *Controller) resetSelectionState() {
	c.generation++
	c.window = window{count: c.clampedInitial(c.width)}
	c.tracker.Reset()
	c.observe()
}

func (c *Controller) observe() {
	c.tracker.Observe(c.slotKeys())
}

func (c *Controller) slotKeys() []string {
	items := c.VisibleItems()
	if len(items) == 0 {
		return nil
	}
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = catalog.ItemKey(c.sub.ID, item.ID)
	}
	return keys
}

// Complete applies a previously returned task. It reports false when the
// task was stale and had no effect.
func (c *Controller) Complete(task Task) bool {
	switch task.Kind {
	case TaskReveal, TaskReset:
		return c.completeTransition(task)
	case TaskResize:
		if task.Seq != c.resizeSeq {
			return false
		}
		c.applyResize(task.Width)
		return true
	case TaskMarkLoaded:
		if task.Generation != c.generation {
			return false
		}
		return c.tracker.MarkLoaded(task.Key)
	default:
		return false
	}
}

// Scroll reports a scroll position (bottom edge of the viewport) and the
// page height, both in pixels. Near the bottom it requests more items.
func (c *Controller) Scroll(position, pageHeight int) (Task, bool) {
	if !c.HasMore() || c.window.adjusting {
		return Task{}, false
	}
	if position < pageHeight-AutoAdvanceThreshold {
		return Task{}, false
	}
	return c.RevealMore(c.InitialCount())
}

// Intersect reports that the slot key entered the viewport (or its proximity
// margin). A staggered load task is returned when the slot is not yet loaded.
func (c *Controller) Intersect(key string) (Task, bool) {
	if !c.tracker.Intersect(key) {
		return Task{}, false
	}
	return Task{
		Kind:       TaskMarkLoaded,
		Delay:      c.jitter(),
		Generation: c.generation,
		Key:        key,
	}, true
}

// AssetFailed substitutes the placeholder for key and marks it loaded.
func (c *Controller) AssetFailed(key string) bool {
	return c.tracker.Fail(key)
}

// Tracker exposes the lazy-reveal tracker for inspection.
func (c *Controller) Tracker() *Tracker {
	return c.tracker
}

// Preview returns the modal state.
func (c *Controller) Preview() *Preview[catalog.MediaItem] {
	return &c.preview
}

// Teardown releases every observation and invalidates pending work. Call it
// when the view unmounts.
func (c *Controller) Teardown() {
	c.tracker.Teardown()
	c.generation++
	c.window.adjusting = false
	c.window.pending = 0
	c.window.resizedFrom = 0
}
