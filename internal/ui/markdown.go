package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
)

const defaultMarkdownWidth = 60

// markdownRenderer renders item descriptions. Descriptions are sanitised
// first so embedded HTML never reaches the terminal.
type markdownRenderer struct {
	style  string
	policy *bluemonday.Policy

	mu    sync.Mutex
	cache map[int]*cachedRenderer
}

// cachedRenderer guards a TermRenderer, which is not safe for concurrent use.
type cachedRenderer struct {
	mu       sync.Mutex
	renderer *glamour.TermRenderer
}

func (c *cachedRenderer) render(markdown string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderer.Render(markdown)
}

func newMarkdownRenderer(style string) *markdownRenderer {
	return &markdownRenderer{
		style:  normaliseStyle(style),
		policy: bluemonday.StrictPolicy(),
		cache:  map[int]*cachedRenderer{},
	}
}

func normaliseStyle(style string) string {
	style = strings.ToLower(strings.TrimSpace(style))
	switch style {
	case "auto", "dark", "light", "notty":
		return style
	default:
		return "dark"
	}
}

// Render returns the description as display lines.
func (r *markdownRenderer) Render(markdown string, width int) ([]string, error) {
	clean := strings.TrimSpace(r.policy.Sanitize(markdown))
	if clean == "" {
		return nil, nil
	}
	renderer, err := r.get(width)
	if err != nil {
		return nil, err
	}
	out, err := renderer.render(clean)
	if err != nil {
		return nil, err
	}
	out = strings.Trim(out, "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (r *markdownRenderer) get(width int) (*cachedRenderer, error) {
	if width <= 0 {
		width = defaultMarkdownWidth
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if renderer, ok := r.cache[width]; ok {
		return renderer, nil
	}
	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	renderer := &cachedRenderer{renderer: tr}
	r.cache[width] = renderer
	return renderer, nil
}
