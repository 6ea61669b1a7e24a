package gallery

import (
	"fmt"
	"time"

	"github.com/atomicstack/gallery-browser/internal/catalog"
)

func newSub(id string, items int) catalog.SubCategory {
	sub := catalog.SubCategory{ID: id, Title: "Album " + id}
	for i := 1; i <= items; i++ {
		sub.Items = append(sub.Items, catalog.MediaItem{
			ID:    fmt.Sprintf("%d", i),
			Title: fmt.Sprintf("%s photo %d", id, i),
			Image: fmt.Sprintf("https://example.test/%s/%d.jpg", id, i),
		})
	}
	return sub
}

func singleAlbumTree(items int) catalog.Tree {
	return catalog.Load(catalog.Category{
		ID:            "kg",
		Title:         "Kindergarten",
		SubCategories: []catalog.SubCategory{newSub("annual", items)},
	})
}

func twoCategoryTree() catalog.Tree {
	return catalog.Load(
		catalog.Category{ID: "kg", Title: "Kindergarten", SubCategories: []catalog.SubCategory{newSub("annual", 20), newSub("sports", 8)}},
		catalog.Category{ID: "ps", Title: "Primary", SubCategories: []catalog.SubCategory{newSub("fair", 30)}},
	)
}

func fixedJitter(d time.Duration) Option {
	return WithJitter(func() time.Duration { return d })
}
