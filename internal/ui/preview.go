package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/atomicstack/gallery-browser/internal/catalog"
	"github.com/atomicstack/gallery-browser/internal/gallery"
	"github.com/atomicstack/gallery-browser/internal/logging"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const (
	modalMinWidth = 30
	modalMaxWidth = 80
)

var errMissingImage = errors.New("missing image reference")

// previewData holds the rendered description for the open image modal.
type previewData struct {
	id      string
	seq     int
	lines   []string
	loading bool
	err     string
}

type previewRenderedMsg struct {
	id    string
	seq   int
	lines []string
	err   error
}

type assetFailedMsg struct {
	key        string
	generation uint64
	err        error
}

func (m *Model) modalOpen() bool {
	if m.mode == ModeVideos {
		return m.videoView.IsOpen()
	}
	return m.controller.Preview().IsOpen()
}

func (m *Model) modalWidth() int {
	w := m.width - 4
	if m.width <= 0 {
		w = modalMaxWidth
	}
	return min(max(w, modalMinWidth), modalMaxWidth)
}

func (m *Model) currentItem() (catalog.MediaItem, bool) {
	items := m.controller.VisibleItems()
	if m.grid.Cursor < 0 || m.grid.Cursor >= len(items) {
		return catalog.MediaItem{}, false
	}
	return items[m.grid.Cursor], true
}

func (m *Model) currentVideo() (catalog.Video, bool) {
	videos := m.videos.Videos
	if m.videoGrid.Cursor < 0 || m.videoGrid.Cursor >= len(videos) {
		return catalog.Video{}, false
	}
	return videos[m.videoGrid.Cursor], true
}

func (m *Model) openPreview() tea.Cmd {
	if m.mode == ModeVideos {
		video, ok := m.currentVideo()
		if !ok {
			return nil
		}
		m.videoView.Open(video)
		events.Preview.Open("video", video.ID, video.Title)
		return nil
	}
	item, ok := m.currentItem()
	if !ok {
		return nil
	}
	m.controller.Preview().Open(item)
	events.Preview.Open("image", item.ID, item.Title)
	return m.ensurePreviewRender(item)
}

// ensurePreviewRender starts rendering the item's description. Results for
// an older request are dropped by sequence number.
func (m *Model) ensurePreviewRender(item catalog.MediaItem) tea.Cmd {
	if m.preview != nil && m.preview.id == item.ID && !m.preview.loading {
		return nil
	}
	m.previewSeq++
	seq := m.previewSeq
	m.preview = &previewData{id: item.ID, seq: seq, loading: true}
	renderer := m.renderer
	width := m.modalWidth() - 4
	description := item.Description
	return func() tea.Msg {
		lines, err := renderer.Render(description, width)
		return previewRenderedMsg{id: item.ID, seq: seq, lines: lines, err: err}
	}
}

func (m *Model) handlePreviewRenderedMsg(msg tea.Msg) tea.Cmd {
	rendered, ok := msg.(previewRenderedMsg)
	if !ok {
		return nil
	}
	if m.preview == nil || m.preview.seq != rendered.seq || m.preview.id != rendered.id {
		return nil
	}
	m.preview.loading = false
	m.preview.lines = rendered.lines
	m.preview.err = ""
	if rendered.err != nil {
		m.preview.err = rendered.err.Error()
		logging.Error(fmt.Errorf("render description %s: %w", rendered.id, rendered.err))
	}
	return nil
}

func (m *Model) closePreview() {
	if m.mode == ModeVideos {
		m.videoView.Close()
		events.Preview.Close("video")
		return
	}
	m.controller.Preview().Close()
	events.Preview.Close("image")
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc", "enter", "q", " ":
		m.closePreview()
	case "o":
		return m.openCurrentURL()
	case "y":
		return m.copyCurrentURL()
	}
	return nil
}

// checkAsset reports whether an item's image reference can be loaded.
func checkAsset(item catalog.MediaItem) error {
	ref := strings.TrimSpace(item.Image)
	if ref == "" {
		return errMissingImage
	}
	u, err := url.Parse(ref)
	if err != nil {
		return fmt.Errorf("invalid image reference %q: %w", ref, err)
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "file" {
		return fmt.Errorf("unsupported image scheme %q", u.Scheme)
	}
	return nil
}

// assetCheckCmd validates the image behind a due load task. A failure is
// reported back as assetFailedMsg.
func (m *Model) assetCheckCmd(task gallery.Task) tea.Cmd {
	for _, card := range m.controller.Cards() {
		if card.Key != task.Key {
			continue
		}
		if err := checkAsset(card.Item); err != nil {
			return func() tea.Msg {
				return assetFailedMsg{key: task.Key, generation: task.Generation, err: err}
			}
		}
		return nil
	}
	return nil
}

// checkEagerAssets validates the above-the-fold slots. They are loaded on
// observation and never see a load task.
func (m *Model) checkEagerAssets() {
	for _, card := range m.controller.Cards() {
		if !card.Eager || card.Failed {
			continue
		}
		if err := checkAsset(card.Item); err != nil {
			m.assetFailed(card.Key, err)
		}
	}
}

func (m *Model) handleAssetFailedMsg(msg tea.Msg) tea.Cmd {
	failed, ok := msg.(assetFailedMsg)
	if !ok {
		return nil
	}
	if failed.generation != m.controller.Generation() {
		return nil
	}
	m.assetFailed(failed.key, failed.err)
	return nil
}

func (m *Model) assetFailed(key string, err error) {
	if !m.controller.AssetFailed(key) {
		return
	}
	events.Gallery.AssetFailed(key)
	if err != nil {
		logging.Error(fmt.Errorf("asset %s: %w", key, err))
	}
}

func (m *Model) imageModalLines() []styledLine {
	item, ok := m.controller.Preview().Current()
	if !ok {
		return nil
	}
	lines := []styledLine{{text: item.Title, style: styles.ModalTitle}}
	if sub := m.controller.ActiveSubCategory(); sub != nil {
		badge := strings.TrimSpace(sub.Icon + " " + sub.Title)
		lines = append(lines, styledLine{text: badge, style: styles.Badge})
	}
	if item.Date.Valid() {
		lines = append(lines, styledLine{
			text:  fmt.Sprintf("%s (%s)", item.Date.Long(), humanize.Time(item.Date.Time)),
			style: styles.CardMeta,
		})
	}
	key := ""
	if sub := m.controller.ActiveSubCategory(); sub != nil {
		key = catalog.ItemKey(sub.ID, item.ID)
	}
	if key != "" && m.controller.Tracker().Failed(key) {
		lines = append(lines, styledLine{text: "Image unavailable, showing placeholder", style: styles.Placeholder})
	} else if item.Image != "" {
		lines = append(lines, styledLine{text: item.Image, style: styles.URL})
	}
	lines = append(lines, styledLine{text: "Alt: " + item.AltText(), style: styles.ModalBody})
	if m.preview != nil && m.preview.id == item.ID {
		switch {
		case m.preview.loading:
			lines = append(lines, styledLine{}, styledLine{text: "Rendering description…", style: styles.Loading})
		case m.preview.err != "":
			lines = append(lines, styledLine{}, styledLine{text: m.preview.err, style: styles.Error})
		case len(m.preview.lines) > 0:
			lines = append(lines, styledLine{})
			for _, line := range m.preview.lines {
				lines = append(lines, styledLine{text: line, raw: true})
			}
		}
	}
	lines = append(lines, styledLine{}, styledLine{text: "esc close  o open image  y copy link", style: styles.Footer})
	return lines
}

func (m *Model) videoModalLines() []styledLine {
	video, ok := m.videoView.Current()
	if !ok {
		return nil
	}
	kind := "Video"
	if video.Type == catalog.VideoYouTube {
		kind = "YouTube"
	}
	lines := []styledLine{
		{text: video.Title, style: styles.ModalTitle},
		{text: kind, style: styles.Badge},
		{},
		{text: "Play: " + video.PlayURL(), style: styles.URL},
	}
	if thumb := video.ThumbnailURL(); thumb != "" {
		lines = append(lines, styledLine{text: "Thumbnail: " + thumb, style: styles.CardMeta})
	}
	lines = append(lines, styledLine{}, styledLine{text: "esc close  o play in browser  y copy link", style: styles.Footer})
	return lines
}
