package gallery

import "github.com/atomicstack/gallery-browser/internal/catalog"

// Card describes one rendered slot.
type Card struct {
	Key          string
	Index        int
	Item         catalog.MediaItem
	Loaded       bool
	Intersecting bool
	Failed       bool
	Eager        bool
}

// Chip is a selectable category or sub-category label.
type Chip struct {
	ID     string
	Title  string
	Icon   string
	Count  int
	Active bool
}

// Summary carries the counters shown around the grid.
type Summary struct {
	Title      string
	Visible    int
	Total      int
	Increment  int
	HasMore    bool
	ShowingAll bool
	Adjusting  bool
}

// Cards returns descriptors for the visible window.
func (c *Controller) Cards() []Card {
	items := c.VisibleItems()
	if len(items) == 0 {
		return nil
	}
	cards := make([]Card, len(items))
	for i, item := range items {
		key := catalog.ItemKey(c.sub.ID, item.ID)
		cards[i] = Card{
			Key:          key,
			Index:        i,
			Item:         item,
			Loaded:       c.tracker.Loaded(key),
			Intersecting: c.tracker.Intersecting(key),
			Failed:       c.tracker.Failed(key),
			Eager:        c.tracker.Eager(key),
		}
	}
	return cards
}

// CategoryChips lists the categories with the active one flagged.
func (c *Controller) CategoryChips() []Chip {
	chips := make([]Chip, 0, len(c.tree.Categories))
	for _, cat := range c.tree.Categories {
		chips = append(chips, Chip{
			ID:     cat.ID,
			Title:  cat.Title,
			Icon:   cat.Icon,
			Count:  len(cat.SubCategories),
			Active: c.category != nil && c.category.ID == cat.ID,
		})
	}
	return chips
}

// SubCategoryChips lists the active category's sub-categories.
func (c *Controller) SubCategoryChips() []Chip {
	if c.category == nil {
		return nil
	}
	chips := make([]Chip, 0, len(c.category.SubCategories))
	for _, sub := range c.category.SubCategories {
		chips = append(chips, Chip{
			ID:     sub.ID,
			Title:  sub.Title,
			Icon:   sub.Icon,
			Count:  len(sub.Items),
			Active: c.sub != nil && c.sub.ID == sub.ID,
		})
	}
	return chips
}

// Summary returns the counters for the active sub-category.
func (c *Controller) Summary() Summary {
	s := Summary{
		Visible:    len(c.VisibleItems()),
		Total:      c.Total(),
		Increment:  c.NextIncrement(),
		HasMore:    c.HasMore(),
		ShowingAll: c.IsShowingAll(),
		Adjusting:  c.window.adjusting,
	}
	if c.sub != nil {
		s.Title = c.sub.Title
	}
	return s
}
