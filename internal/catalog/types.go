package catalog

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// MediaItem is a single photo inside a sub-category.
type MediaItem struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Image       string `yaml:"image"`
	Alt         string `yaml:"alt,omitempty"`
	Date        Date   `yaml:"date,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// AltText returns the accessible label, falling back to the title.
func (m MediaItem) AltText() string {
	if alt := strings.TrimSpace(m.Alt); alt != "" {
		return alt
	}
	return m.Title
}

// SubCategory groups media items (an album).
type SubCategory struct {
	ID    string      `yaml:"id"`
	Title string      `yaml:"title"`
	Icon  string      `yaml:"icon,omitempty"`
	Items []MediaItem `yaml:"items"`
}

// Category is the top level of the taxonomy.
type Category struct {
	ID            string        `yaml:"id"`
	Title         string        `yaml:"title"`
	Icon          string        `yaml:"icon,omitempty"`
	SubCategories []SubCategory `yaml:"subcategories"`
}

// ItemCount sums the items of every sub-category.
func (c Category) ItemCount() int {
	total := 0
	for _, sub := range c.SubCategories {
		total += len(sub.Items)
	}
	return total
}

// SubCategory looks up a sub-category by id.
func (c *Category) SubCategory(id string) (*SubCategory, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.SubCategories {
		if c.SubCategories[i].ID == id {
			return &c.SubCategories[i], true
		}
	}
	return nil, false
}

// Date is an optional calendar date. The zero value means "no date".
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Valid reports whether a date was supplied.
func (d Date) Valid() bool {
	return !d.Time.IsZero()
}

// String formats the date as YYYY-MM-DD, or "" when unset.
func (d Date) String() string {
	if !d.Valid() {
		return ""
	}
	return d.Time.Format(dateLayout)
}

// Short renders the card format, e.g. "Jan 2, 2006".
func (d Date) Short() string {
	if !d.Valid() {
		return ""
	}
	return d.Time.Format("Jan 2, 2006")
}

// Long renders the modal format, e.g. "Monday, January 2, 2006".
func (d Date) Long() string {
	if !d.Valid() {
		return ""
	}
	return d.Time.Format("Monday, January 2, 2006")
}

// UnmarshalYAML accepts YYYY-MM-DD scalars and RFC 3339 timestamps.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	raw := strings.TrimSpace(node.Value)
	if raw == "" || raw == "~" || raw == "null" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		*d = Date{Time: t}
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q", node.Line, raw)
	}
	*d = Date{Time: t.UTC()}
	return nil
}

// MarshalYAML writes the date back in YYYY-MM-DD form.
func (d Date) MarshalYAML() (interface{}, error) {
	if !d.Valid() {
		return nil, nil
	}
	return d.String(), nil
}

// ItemKey builds the composite identifier used by the lazy-reveal tracker.
func ItemKey(subCategoryID, itemID string) string {
	return subCategoryID + "-" + itemID
}
