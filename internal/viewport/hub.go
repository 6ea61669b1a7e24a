// Package viewport carries the host's geometry signals (resize, scroll and
// slot intersection) to whoever subscribed to them.
package viewport

import (
	"sort"
	"sync"
)

// Kind represents the type of signal published on the hub.
type Kind int

const (
	KindResize Kind = iota
	KindScroll
	KindIntersect
)

func (k Kind) String() string {
	switch k {
	case KindResize:
		return "resize"
	case KindScroll:
		return "scroll"
	case KindIntersect:
		return "intersect"
	default:
		return "unknown"
	}
}

// Event conveys one geometry change. Widths and positions are in pixels.
type Event struct {
	Kind Kind

	// KindResize
	Width int

	// KindScroll: Position is the bottom edge of the viewport.
	Position   int
	PageHeight int

	// KindIntersect: slot keys within the viewport or its proximity margin.
	Keys []string
}

// Listener receives published events.
type Listener func(Event)

type subscription struct {
	id       uint64
	listener Listener
}

// Hub fans events out to listeners registered per kind. Listeners run
// synchronously on the publisher's goroutine in subscription order.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Kind][]subscription
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[Kind][]subscription)}
}

// Subscribe registers listener for kind. The returned release func removes
// it and is safe to call more than once.
func (h *Hub) Subscribe(kind Kind, listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[kind] = append(h.subs[kind], subscription{id: id, listener: listener})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(kind, id) })
	}
}

func (h *Hub) remove(kind Kind, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.subs[kind]
	for i, sub := range subs {
		if sub.id == id {
			h.subs[kind] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(h.subs[kind]) == 0 {
		delete(h.subs, kind)
	}
}

// Publish delivers evt to every listener of its kind and returns how many
// were notified.
func (h *Hub) Publish(evt Event) int {
	h.mu.Lock()
	subs := append([]subscription(nil), h.subs[evt.Kind]...)
	h.mu.Unlock()
	for _, sub := range subs {
		sub.listener(evt)
	}
	return len(subs)
}

// Len returns the number of active subscriptions across all kinds.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, subs := range h.subs {
		n += len(subs)
	}
	return n
}

// Kinds lists the kinds that currently have listeners.
func (h *Hub) Kinds() []Kind {
	h.mu.Lock()
	defer h.mu.Unlock()
	kinds := make([]Kind, 0, len(h.subs))
	for kind := range h.subs {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
