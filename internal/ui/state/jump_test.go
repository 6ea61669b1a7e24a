package state

import (
	"testing"

	"github.com/atomicstack/gallery-browser/internal/catalog"
)

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{CategoryID: "kg", SubCategoryID: "annual-day", Label: "Kindergarten / Annual Day", Items: 20},
		{CategoryID: "kg", SubCategoryID: "sports-day", Label: "Kindergarten / Sports Day", Items: 9},
		{CategoryID: "ps", SubCategoryID: "science-fair", Label: "Primary & Secondary / Science Fair", Items: 24},
		{CategoryID: "ps", SubCategoryID: "graduation", Label: "Primary & Secondary / Graduation", Items: 6},
	}
}

func TestFilterEntriesEmptyQueryKeepsAll(t *testing.T) {
	entries := testEntries()
	got := FilterEntries(entries, "  ")
	if len(got) != len(entries) {
		t.Fatalf("expected all entries, got %d", len(got))
	}
	got[0].Label = "changed"
	if entries[0].Label == "changed" {
		t.Fatalf("expected filter to copy entries")
	}
}

func TestFilterEntriesFuzzy(t *testing.T) {
	got := FilterEntries(testEntries(), "sprt")
	if len(got) != 1 || got[0].SubCategoryID != "sports-day" {
		t.Fatalf("expected sports day only, got %#v", got)
	}
	got = FilterEntries(testEntries(), "kindergarten")
	if len(got) != 2 || got[0].SubCategoryID != "annual-day" {
		t.Fatalf("expected both kindergarten albums in order, got %#v", got)
	}
	if got := FilterEntries(testEntries(), "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestBestMatchPrefersSubCategoryPrefix(t *testing.T) {
	entries := testEntries()
	if idx := BestMatchIndex(entries, "grad"); idx != 3 {
		t.Fatalf("expected graduation, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "SCIENCE-FAIR"); idx != 2 {
		t.Fatalf("expected exact id match, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for no entries, got %d", idx)
	}
}

func TestJumpSetQueryAndMove(t *testing.T) {
	j := NewJump(testEntries())
	if len(j.Items) != 4 || j.Cursor != 0 {
		t.Fatalf("unexpected initial jump state %#v", j)
	}
	j.SetQuery("sports")
	entry, ok := j.Selected()
	if !ok || entry.SubCategoryID != "sports-day" {
		t.Fatalf("expected sports day selected, got %#v", entry)
	}
	j.SetQuery("")
	j.Move(-1)
	if j.Cursor != 3 {
		t.Fatalf("expected wrap to last entry, got %d", j.Cursor)
	}
	j.Move(1)
	if j.Cursor != 0 {
		t.Fatalf("expected wrap to first entry, got %d", j.Cursor)
	}
	j.SetQuery("zzz")
	if _, ok := j.Selected(); ok {
		t.Fatalf("expected no selection without matches")
	}
}
