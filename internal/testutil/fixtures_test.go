package testutil

import "testing"

func TestTreeShape(t *testing.T) {
	tree := Tree()
	if len(tree.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(tree.Categories))
	}
	if got := tree.Categories[0].ItemCount(); got != 33 {
		t.Fatalf("expected 33 kindergarten photos, got %d", got)
	}
}

func TestAlbumDates(t *testing.T) {
	sub := Album("x", 28)
	if got := sub.Items[0].Date.Short(); got != "Mar 2, 2024" {
		t.Fatalf("unexpected first date %q", got)
	}
	if got := sub.Items[27].Date.Short(); got != "Mar 1, 2024" {
		t.Fatalf("expected wrap to the 1st, got %q", got)
	}
}

func TestPlainStripsStyles(t *testing.T) {
	AssertContains(t, "\x1b[1mbold\x1b[0m text", "bold text")
	AssertNotContains(t, "\x1b[1mbold\x1b[0m", "\x1b")
}
