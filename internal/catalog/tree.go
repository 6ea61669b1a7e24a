package catalog

// Tree is the merged, read-only gallery taxonomy.
type Tree struct {
	Categories []Category
}

// Load merges taxonomy sources into a tree. A source is kept only when it has
// at least one sub-category; declaration order is preserved. An empty tree is
// a valid result.
func Load(sources ...Category) Tree {
	tree := Tree{}
	for _, src := range sources {
		if len(src.SubCategories) == 0 {
			continue
		}
		tree.Categories = append(tree.Categories, src)
	}
	return tree
}

// Empty reports whether no category survived loading.
func (t Tree) Empty() bool {
	return len(t.Categories) == 0
}

// Category looks up a category by id.
func (t *Tree) Category(id string) (*Category, bool) {
	for i := range t.Categories {
		if t.Categories[i].ID == id {
			return &t.Categories[i], true
		}
	}
	return nil, false
}

// Entry identifies one sub-category in the flattened tree.
type Entry struct {
	CategoryID    string
	SubCategoryID string
	Label         string
	Items         int
}

// Entries flattens every sub-category, in tree order.
func (t Tree) Entries() []Entry {
	var entries []Entry
	for _, cat := range t.Categories {
		for _, sub := range cat.SubCategories {
			entries = append(entries, Entry{
				CategoryID:    cat.ID,
				SubCategoryID: sub.ID,
				Label:         cat.Title + " / " + sub.Title,
				Items:         len(sub.Items),
			})
		}
	}
	return entries
}
