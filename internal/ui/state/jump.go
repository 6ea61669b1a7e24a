package state

import (
	"strings"

	"github.com/atomicstack/gallery-browser/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Jump holds the sub-category jump prompt's matches and cursor.
type Jump struct {
	Full   []catalog.Entry
	Items  []catalog.Entry
	Query  string
	Cursor int
}

// NewJump constructs a jump list over entries with an empty query.
func NewJump(entries []catalog.Entry) *Jump {
	j := &Jump{Full: entries}
	j.SetQuery("")
	return j
}

// SetQuery filters the entries and moves the cursor to the best match.
func (j *Jump) SetQuery(query string) {
	j.Query = query
	j.Items = FilterEntries(j.Full, query)
	j.Cursor = 0
	if len(j.Items) == 0 {
		return
	}
	if idx := BestMatchIndex(j.Items, query); idx >= 0 {
		j.Cursor = idx
	}
}

// Move shifts the cursor by delta, wrapping at both ends.
func (j *Jump) Move(delta int) {
	n := len(j.Items)
	if n == 0 {
		j.Cursor = 0
		return
	}
	j.Cursor = ((j.Cursor+delta)%n + n) % n
}

// Selected returns the entry under the cursor.
func (j *Jump) Selected() (catalog.Entry, bool) {
	if j.Cursor < 0 || j.Cursor >= len(j.Items) {
		return catalog.Entry{}, false
	}
	return j.Items[j.Cursor], true
}

// FilterEntries returns entries whose label fuzzily matches query, in their
// original order. A query without fuzzy matches falls back to substring
// matching on labels and sub-category ids.
func FilterEntries(entries []catalog.Entry, query string) []catalog.Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]catalog.Entry(nil), entries...)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]catalog.Entry, 0, len(matches))
		for idx, entry := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, entry)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), lower) || strings.Contains(strings.ToLower(entry.SubCategoryID), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among entries: exact
// matches first, then prefix matches on the sub-category title, then the
// closest fuzzy rank.
func BestMatchIndex(entries []catalog.Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.EqualFold(entry.Label, trimmed) || strings.EqualFold(entry.SubCategoryID, trimmed) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(subTitle(entry)), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func labels(entries []catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Label
	}
	return out
}

// subTitle returns the part of the label after the category separator.
func subTitle(entry catalog.Entry) string {
	if _, after, ok := strings.Cut(entry.Label, " / "); ok {
		return after
	}
	return entry.Label
}
