package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sub(id string, items int) SubCategory {
	s := SubCategory{ID: id, Title: id}
	for i := 0; i < items; i++ {
		s.Items = append(s.Items, MediaItem{ID: string(rune('a' + i)), Title: "item"})
	}
	return s
}

func TestLoadSkipsSourcesWithoutSubCategories(t *testing.T) {
	tree := Load(
		Category{ID: "empty"},
		Category{ID: "kg", SubCategories: []SubCategory{sub("annual", 2)}},
		Category{ID: "ps", SubCategories: []SubCategory{sub("fair", 1)}},
	)
	if len(tree.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(tree.Categories))
	}
	if tree.Categories[0].ID != "kg" || tree.Categories[1].ID != "ps" {
		t.Fatalf("expected declaration order kg, ps; got %s, %s", tree.Categories[0].ID, tree.Categories[1].ID)
	}
}

func TestLoadWithNoSourcesIsEmpty(t *testing.T) {
	tree := Load(Category{}, Category{ID: "x"})
	if !tree.Empty() {
		t.Fatalf("expected empty tree, got %#v", tree)
	}
	if len(tree.Entries()) != 0 {
		t.Fatalf("expected no entries for empty tree")
	}
}

func TestBuiltinSourcesDecode(t *testing.T) {
	sources, err := BuiltinSources()
	if err != nil {
		t.Fatalf("builtin sources: %v", err)
	}
	tree := Load(sources...)
	if len(tree.Categories) != 2 {
		t.Fatalf("expected 2 builtin categories, got %d", len(tree.Categories))
	}
	first := tree.Categories[0]
	if first.ID != "kg" {
		t.Fatalf("expected kg first, got %s", first.ID)
	}
	item := first.SubCategories[0].Items[0]
	if !item.Date.Valid() || item.Date.String() != "2024-12-14" {
		t.Fatalf("expected parsed date, got %q", item.Date.String())
	}
	if item.AltText() == item.Title {
		t.Fatalf("expected explicit alt text on first item")
	}
	if first.ItemCount() != 33 {
		t.Fatalf("expected 33 kindergarten photos, got %d", first.ItemCount())
	}
}

func TestBuiltinVideosDeriveURLs(t *testing.T) {
	list, err := BuiltinVideos()
	if err != nil {
		t.Fatalf("builtin videos: %v", err)
	}
	if len(list.Videos) == 0 {
		t.Fatalf("expected videos")
	}
	yt := list.Videos[0]
	if got := yt.ThumbnailURL(); got != "https://img.youtube.com/vi/"+yt.YouTubeID+"/hqdefault.jpg" {
		t.Fatalf("unexpected thumbnail %q", got)
	}
	if got := yt.PlayURL(); got != "https://www.youtube.com/embed/"+yt.YouTubeID+"?autoplay=1" {
		t.Fatalf("unexpected play url %q", got)
	}
	file := Video{Type: VideoFile, Src: "a.mp4", Thumbnail: "a.jpg"}
	if file.ThumbnailURL() != "a.jpg" || file.PlayURL() != "a.mp4" {
		t.Fatalf("unexpected file video urls %q %q", file.ThumbnailURL(), file.PlayURL())
	}
}

func TestParseCategoryRejectsBadDate(t *testing.T) {
	_, err := ParseCategory([]byte("id: x\nsubcategories:\n  - id: s\n    items:\n      - id: '1'\n        date: 'yesterday'\n"))
	if err == nil {
		t.Fatalf("expected invalid date error")
	}
}

func TestParseCategoryRequiresID(t *testing.T) {
	if _, err := ParseCategory([]byte("title: nameless\n")); err == nil {
		t.Fatalf("expected missing id error")
	}
}

func TestLoadDirReadsCategoriesAndVideos(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("b.yaml", "id: b\ntitle: B\nsubcategories:\n  - id: s\n    items:\n      - id: '1'\n        title: one\n        image: x.jpg\n        date: 2024-01-02\n")
	write("a.yaml", "id: a\ntitle: A\nsubcategories: []\n")
	write("videos.yaml", "title: V\nvideos:\n  - id: v\n    type: file\n    src: v.mp4\n")

	sources, videos, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(sources) != 2 || sources[0].ID != "a" || sources[1].ID != "b" {
		t.Fatalf("expected lexical order a, b; got %#v", sources)
	}
	if got := sources[1].SubCategories[0].Items[0].Date.Time; !got.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}
	if len(videos.Videos) != 1 || videos.Title != "V" {
		t.Fatalf("unexpected videos %#v", videos)
	}
	tree := Load(sources...)
	if len(tree.Categories) != 1 {
		t.Fatalf("expected empty source a to be skipped, got %d categories", len(tree.Categories))
	}
}

func TestEntriesFlattenTree(t *testing.T) {
	tree := Load(
		Category{ID: "kg", Title: "KG", SubCategories: []SubCategory{sub("a", 1), sub("b", 3)}},
	)
	entries := tree.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Label != "KG / b" || entries[1].Items != 3 {
		t.Fatalf("unexpected entry %#v", entries[1])
	}
}

func TestDateFormats(t *testing.T) {
	d := NewDate(2025, time.March, 28)
	if d.Short() != "Mar 28, 2025" {
		t.Fatalf("unexpected short date %q", d.Short())
	}
	if d.Long() != "Friday, March 28, 2025" {
		t.Fatalf("unexpected long date %q", d.Long())
	}
	var zero Date
	if zero.Valid() || zero.Short() != "" || zero.Long() != "" {
		t.Fatalf("expected zero date to render empty")
	}
}
