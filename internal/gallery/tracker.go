package gallery

type observation struct {
	index int
	eager bool
}

// Tracker records which rendered slots have entered the viewport and which
// have finished loading. Observations are keyed by catalog.ItemKey.
type Tracker struct {
	registry     map[string]observation
	intersecting map[string]struct{}
	loaded       map[string]struct{}
	failed       map[string]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Reset drops observations and every loaded/intersecting mark.
func (t *Tracker) Reset() {
	t.registry = make(map[string]observation)
	t.intersecting = make(map[string]struct{})
	t.loaded = make(map[string]struct{})
	t.failed = make(map[string]struct{})
}

// Observe replaces the observation set with keys, in render order. The first
// EagerSlots keys are marked loaded immediately.
func (t *Tracker) Observe(keys []string) {
	t.registry = make(map[string]observation, len(keys))
	for i, key := range keys {
		eager := i < EagerSlots
		t.registry[key] = observation{index: i, eager: eager}
		if eager {
			t.loaded[key] = struct{}{}
		}
	}
}

// Teardown stops observing every slot. Loaded marks are kept.
func (t *Tracker) Teardown() {
	t.registry = make(map[string]observation)
}

// Observed reports whether key is in the current observation set.
func (t *Tracker) Observed(key string) bool {
	_, ok := t.registry[key]
	return ok
}

// Len returns the number of observed slots.
func (t *Tracker) Len() int {
	return len(t.registry)
}

// Intersect marks an observed slot as intersecting. It reports true when the
// slot still needs a deferred load.
func (t *Tracker) Intersect(key string) bool {
	if _, ok := t.registry[key]; !ok {
		return false
	}
	if _, ok := t.intersecting[key]; ok {
		return false
	}
	t.intersecting[key] = struct{}{}
	_, done := t.loaded[key]
	return !done
}

// MarkLoaded records key as loaded and reports whether it was newly marked.
func (t *Tracker) MarkLoaded(key string) bool {
	if _, ok := t.loaded[key]; ok {
		return false
	}
	t.loaded[key] = struct{}{}
	return true
}

// Fail records an asset failure. The slot shows the placeholder and counts
// as loaded.
func (t *Tracker) Fail(key string) bool {
	if _, ok := t.registry[key]; !ok {
		return false
	}
	if _, ok := t.failed[key]; ok {
		return false
	}
	t.failed[key] = struct{}{}
	t.loaded[key] = struct{}{}
	return true
}

// Loaded reports whether key is loaded.
func (t *Tracker) Loaded(key string) bool {
	_, ok := t.loaded[key]
	return ok
}

// Intersecting reports whether key has entered the viewport.
func (t *Tracker) Intersecting(key string) bool {
	_, ok := t.intersecting[key]
	return ok
}

// Failed reports whether key fell back to the placeholder.
func (t *Tracker) Failed(key string) bool {
	_, ok := t.failed[key]
	return ok
}

// LoadedCount returns the size of the loaded set.
func (t *Tracker) LoadedCount() int {
	return len(t.loaded)
}

// Eager reports whether key occupies one of the above-the-fold slots.
func (t *Tracker) Eager(key string) bool {
	obs, ok := t.registry[key]
	return ok && obs.eager
}
