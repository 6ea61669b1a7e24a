package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/gallery-browser/internal/catalog"
	"github.com/atomicstack/gallery-browser/internal/ui"
)

func TestLoadDataUsesBuiltinSources(t *testing.T) {
	tree, videos, source, err := LoadData("")
	if err != nil {
		t.Fatalf("load builtin: %v", err)
	}
	if source != builtinSource {
		t.Fatalf("expected builtin source, got %q", source)
	}
	if tree.Empty() {
		t.Fatalf("expected builtin categories")
	}
	if len(videos.Videos) == 0 {
		t.Fatalf("expected builtin videos")
	}
}

func TestLoadDataReadsDirectory(t *testing.T) {
	dir := t.TempDir()
	body := "id: club\ntitle: Clubs\nsubcategories:\n  - id: chess\n    title: Chess\n    items:\n      - id: '1'\n        title: Finals\n        image: finals.jpg\n"
	if err := os.WriteFile(filepath.Join(dir, "club.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tree, videos, source, err := LoadData(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if source != dir {
		t.Fatalf("expected source %q, got %q", dir, source)
	}
	if len(tree.Categories) != 1 || tree.Categories[0].ID != "club" {
		t.Fatalf("unexpected tree %#v", tree)
	}
	if len(videos.Videos) != 0 {
		t.Fatalf("expected no videos without videos.yaml")
	}
}

func TestLoadDataReportsBadFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("id: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, _, err := LoadData(dir); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestOptionsMapsConfig(t *testing.T) {
	cfg := Config{View: "videos", Width: 90, InitialHeight: 30, CellWidth: 9, CellHeight: 18, ShowFooter: true, Style: "light"}
	opts := cfg.Options(catalog.Tree{}, catalog.VideoList{})
	if opts.View != ui.ModeVideos {
		t.Fatalf("expected videos mode, got %v", opts.View)
	}
	if opts.Width != 90 || opts.InitialHeight != 30 || opts.CellWidth != 9 || opts.CellHeight != 18 {
		t.Fatalf("unexpected geometry %#v", opts)
	}
	if !opts.ShowFooter || opts.Style != "light" {
		t.Fatalf("expected footer and style carried, got %#v", opts)
	}
}
