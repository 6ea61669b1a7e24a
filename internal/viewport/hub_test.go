package viewport

import "testing"

func TestPublishReachesOnlyMatchingKind(t *testing.T) {
	hub := NewHub()
	var resized, scrolled []Event
	hub.Subscribe(KindResize, func(e Event) { resized = append(resized, e) })
	hub.Subscribe(KindScroll, func(e Event) { scrolled = append(scrolled, e) })

	if n := hub.Publish(Event{Kind: KindResize, Width: 800}); n != 1 {
		t.Fatalf("expected one listener notified, got %d", n)
	}
	if len(resized) != 1 || resized[0].Width != 800 {
		t.Fatalf("unexpected resize events %#v", resized)
	}
	if len(scrolled) != 0 {
		t.Fatalf("expected scroll listener untouched")
	}
	if n := hub.Publish(Event{Kind: KindIntersect, Keys: []string{"a"}}); n != 0 {
		t.Fatalf("expected no intersect listeners, got %d", n)
	}
}

func TestReleaseRemovesListener(t *testing.T) {
	hub := NewHub()
	calls := 0
	release := hub.Subscribe(KindScroll, func(Event) { calls++ })
	other := hub.Subscribe(KindScroll, func(Event) {})
	if hub.Len() != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", hub.Len())
	}
	release()
	release()
	hub.Publish(Event{Kind: KindScroll})
	if calls != 0 {
		t.Fatalf("expected released listener not called")
	}
	if hub.Len() != 1 {
		t.Fatalf("expected 1 subscription, got %d", hub.Len())
	}
	other()
	if hub.Len() != 0 || len(hub.Kinds()) != 0 {
		t.Fatalf("expected hub empty after releasing all")
	}
}

func TestListenerMayReleaseDuringPublish(t *testing.T) {
	hub := NewHub()
	var release func()
	calls := 0
	release = hub.Subscribe(KindResize, func(Event) {
		calls++
		release()
	})
	hub.Publish(Event{Kind: KindResize})
	hub.Publish(Event{Kind: KindResize})
	if calls != 1 {
		t.Fatalf("expected single delivery, got %d", calls)
	}
}

func TestKindsSorted(t *testing.T) {
	hub := NewHub()
	hub.Subscribe(KindIntersect, func(Event) {})
	hub.Subscribe(KindResize, func(Event) {})
	kinds := hub.Kinds()
	if len(kinds) != 2 || kinds[0] != KindResize || kinds[1] != KindIntersect {
		t.Fatalf("unexpected kinds %v", kinds)
	}
	if KindScroll.String() != "scroll" {
		t.Fatalf("unexpected kind name %q", KindScroll.String())
	}
}
