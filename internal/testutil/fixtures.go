// Package testutil holds gallery fixtures and view assertions shared by
// package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/gallery-browser/internal/catalog"
	"github.com/charmbracelet/x/ansi"
)

// Album builds a sub-category with n photos. Photo i is dated March i+1, 2024
// (wrapping after the 28th) and points at https://example.test/<id>/<i>.jpg.
func Album(id string, n int) catalog.SubCategory {
	sub := catalog.SubCategory{ID: id, Title: "Album " + id, Icon: "📷"}
	for i := 1; i <= n; i++ {
		sub.Items = append(sub.Items, catalog.MediaItem{
			ID:    fmt.Sprintf("%d", i),
			Title: fmt.Sprintf("%s photo %d", id, i),
			Image: fmt.Sprintf("https://example.test/%s/%d.jpg", id, i),
			Date:  catalog.NewDate(2024, time.March, i%28+1),
		})
	}
	return sub
}

// SingleAlbum wraps subs in one "kg" category.
func SingleAlbum(subs ...catalog.SubCategory) catalog.Tree {
	return catalog.Load(catalog.Category{ID: "kg", Title: "Kindergarten", Icon: "🧸", SubCategories: subs})
}

// Tree returns two categories: kg (annual 30, sports 3) and ps (fair 6).
func Tree() catalog.Tree {
	return catalog.Load(
		catalog.Category{ID: "kg", Title: "Kindergarten", Icon: "🧸", SubCategories: []catalog.SubCategory{
			Album("annual", 30),
			Album("sports", 3),
		}},
		catalog.Category{ID: "ps", Title: "Primary", Icon: "🏫", SubCategories: []catalog.SubCategory{
			Album("fair", 6),
		}},
	)
}

// Videos returns a YouTube entry followed by a self-hosted one.
func Videos() catalog.VideoList {
	return catalog.VideoList{
		Title:       "School Videos",
		Description: "Highlights from the year.",
		Videos: []catalog.Video{
			{ID: "v1", Title: "Annual day recap", Type: catalog.VideoYouTube, YouTubeID: "abc123"},
			{ID: "v2", Title: "Science fair walkthrough", Type: catalog.VideoFile, Src: "/videos/fair.mp4", Thumbnail: "/videos/fair.jpg"},
		},
	}
}

// Plain strips terminal styling from a rendered view.
func Plain(view string) string {
	return ansi.Strip(view)
}

// AssertContains fails unless every want appears in the unstyled view.
func AssertContains(t *testing.T, view string, wants ...string) {
	t.Helper()
	plain := Plain(view)
	for _, want := range wants {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, plain)
		}
	}
}

// AssertNotContains fails if any of unwanted appears in the unstyled view.
func AssertNotContains(t *testing.T, view string, unwanted ...string) {
	t.Helper()
	plain := Plain(view)
	for _, u := range unwanted {
		if strings.Contains(plain, u) {
			t.Fatalf("did not expect %q in view, got:\n%s", u, plain)
		}
	}
}
