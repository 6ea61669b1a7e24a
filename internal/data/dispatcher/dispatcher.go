// Package dispatcher routes viewport signals into the gallery controller and
// queues the deferred tasks it produces for the host to schedule.
package dispatcher

import (
	"github.com/atomicstack/gallery-browser/internal/gallery"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	"github.com/atomicstack/gallery-browser/internal/viewport"
)

// Result reports what a single event changed and the tasks it produced.
type Result struct {
	Resized     bool
	Scrolled    bool
	Intersected int
	Tasks       []gallery.Task
}

// Dispatcher feeds viewport events to a gallery controller.
type Dispatcher struct {
	controller *gallery.Controller
	releases   []func()
	pending    []gallery.Task
}

// New returns a dispatcher for c. It is inert until Mount.
func New(c *gallery.Controller) *Dispatcher {
	return &Dispatcher{controller: c}
}

// Handle applies a single event to the controller.
func (d *Dispatcher) Handle(evt viewport.Event) Result {
	var res Result
	if d.controller == nil {
		return res
	}
	switch evt.Kind {
	case viewport.KindResize:
		if evt.Width <= 0 {
			return res
		}
		res.Tasks = append(res.Tasks, d.controller.Resize(evt.Width))
		res.Resized = true
	case viewport.KindScroll:
		res.Scrolled = true
		if task, ok := d.controller.Scroll(evt.Position, evt.PageHeight); ok {
			res.Tasks = append(res.Tasks, task)
		}
	case viewport.KindIntersect:
		for _, key := range evt.Keys {
			if task, ok := d.controller.Intersect(key); ok {
				res.Tasks = append(res.Tasks, task)
				res.Intersected++
			}
		}
	}
	return res
}

// Mount subscribes to every viewport kind on hub. Produced tasks queue until
// Drain. Mounting twice releases the previous subscriptions first.
func (d *Dispatcher) Mount(hub *viewport.Hub) {
	d.release()
	for _, kind := range []viewport.Kind{viewport.KindResize, viewport.KindScroll, viewport.KindIntersect} {
		d.releases = append(d.releases, hub.Subscribe(kind, func(evt viewport.Event) {
			res := d.Handle(evt)
			d.pending = append(d.pending, res.Tasks...)
		}))
	}
	events.Viewport.Mount(len(d.releases))
}

// Drain returns and clears the queued tasks.
func (d *Dispatcher) Drain() []gallery.Task {
	tasks := d.pending
	d.pending = nil
	return tasks
}

// Pending reports how many tasks are queued.
func (d *Dispatcher) Pending() int {
	return len(d.pending)
}

// Unmount releases every subscription, discards queued tasks and tears the
// controller's observations down.
func (d *Dispatcher) Unmount() {
	d.release()
	d.pending = nil
	if d.controller != nil {
		d.controller.Teardown()
	}
	events.Viewport.Unmount()
}

func (d *Dispatcher) release() {
	for _, release := range d.releases {
		release()
	}
	d.releases = nil
}
