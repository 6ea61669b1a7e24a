package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gallery-browser/internal/catalog"
	"github.com/atomicstack/gallery-browser/internal/format/table"
	"github.com/atomicstack/gallery-browser/internal/gallery"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	breadcrumbHome = "← Home"
	skeletonFill   = "░"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var body []styledLine
	switch {
	case m.jump != nil:
		body = append(m.breadcrumbLines(), m.jumpLines()...)
	case m.modalOpen():
		body = append(m.breadcrumbLines(), m.modalLines()...)
	case m.mode == ModeVideos:
		body = m.videoLines()
	default:
		body = m.imageLines()
	}
	bottom := []styledLine{m.statusLine()}
	if m.showFooter {
		bottom = append(bottom, styledLine{}, styledLine{text: m.footerText(), style: styles.Footer})
	}
	if m.height > 0 {
		body = limitHeight(body, m.height-len(bottom), m.width)
	}
	lines := applyWidth(append(body, bottom...), m.width)
	return renderLines(lines)
}

func (m *Model) breadcrumbLines() []styledLine {
	section := "Gallery"
	if m.mode == ModeVideos {
		section = "Videos"
	}
	return []styledLine{{text: breadcrumbHome + " / " + section, style: styles.Breadcrumb}}
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) footerText() string {
	if m.mode == ModeVideos {
		return "←↑↓→ move  enter preview  o play  y copy link  v photos  esc home  q quit"
	}
	return "←↑↓→ move  enter preview  tab category  [ ] album  m more  a all  / jump  v videos  q quit"
}

func (m *Model) imageLines() []styledLine {
	lines := m.breadcrumbLines()
	switch m.controller.Status() {
	case gallery.StatusEmpty:
		return append(lines,
			styledLine{},
			styledLine{text: "No gallery data available", style: styles.SectionTitle},
			styledLine{text: "Photos will appear here once albums are published.", style: styles.Info},
		)
	case gallery.StatusNoSelection:
		return append(lines,
			styledLine{text: m.renderChips(m.controller.CategoryChips(), false), raw: true},
			styledLine{},
			styledLine{text: "Select a category to view photos", style: styles.SectionTitle},
		)
	}
	summary := m.controller.Summary()
	lines = append(lines,
		styledLine{text: m.renderChips(m.controller.CategoryChips(), false), raw: true},
		styledLine{text: m.renderChips(m.controller.SubCategoryChips(), true), raw: true},
		m.summaryLine(summary),
		styledLine{},
	)
	lines = append(lines, m.gridLines()...)
	lines = append(lines, m.controlLines(summary)...)
	if overview := m.overviewLines(); len(overview) > 0 {
		if m.height <= 0 || len(lines)+len(overview)+1+m.bottomRows() <= m.height {
			lines = append(lines, styledLine{})
			lines = append(lines, overview...)
		}
	}
	return lines
}

func (m *Model) bottomRows() int {
	if m.showFooter {
		return 1 + footerRows
	}
	return 1
}

func (m *Model) summaryLine(summary gallery.Summary) styledLine {
	text := fmt.Sprintf("%s · Showing %d of %d photos", summary.Title, summary.Visible, summary.Total)
	if summary.Adjusting {
		text += "  " + m.spinner.View() + " Loading more photos..."
		return styledLine{text: styles.Summary.Render(text), raw: true}
	}
	return styledLine{text: text, style: styles.Summary}
}

func (m *Model) renderChips(chips []gallery.Chip, counts bool) string {
	parts := make([]string, 0, len(chips))
	for _, chip := range chips {
		label := strings.TrimSpace(chip.Icon + " " + chip.Title)
		if counts {
			label = fmt.Sprintf("%s %d", label, chip.Count)
		}
		style := styles.Chip
		if chip.Active {
			style = styles.ActiveChip
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}

func (m *Model) gridLines() []styledLine {
	cards := m.controller.Cards()
	if len(cards) == 0 {
		return m.skeletonLines()
	}
	start, end := m.grid.VisibleRange(m.visibleRows())
	var lines []styledLine
	cols := m.grid.Columns
	for rowStart := start; rowStart < end; rowStart += cols {
		rowEnd := min(rowStart+cols, end)
		boxes := make([]string, 0, cols)
		for i := rowStart; i < rowEnd; i++ {
			boxes = append(boxes, m.renderCard(cards[i], i == m.grid.Cursor))
		}
		lines = append(lines, joinBoxes(boxes)...)
	}
	return lines
}

func (m *Model) renderCard(card gallery.Card, selected bool) string {
	inner := cardWidth - 4
	title := truncateText(card.Item.Title, inner)
	meta := ""
	if card.Item.Date.Valid() {
		meta = card.Item.Date.Short()
	}
	var state string
	switch {
	case card.Failed:
		state = styles.Placeholder.Render(truncateText("▢ image unavailable", inner))
	case card.Loaded:
		state = styles.CardMeta.Render(truncateText("▣ "+card.Item.AltText(), inner))
	case card.Intersecting:
		state = styles.Loading.Render(truncateText("░ loading…", inner))
	default:
		state = styles.Skeleton.Render(strings.Repeat(skeletonFill, inner))
	}
	content := strings.Join([]string{
		styles.CardTitle.Render(title),
		styles.CardMeta.Render(meta),
		state,
	}, "\n")
	style := styles.Card
	if selected {
		style = styles.SelectedCard
	}
	return style.Copy().Width(cardWidth - 2).Height(cardHeight - 2).Render(content)
}

func (m *Model) skeletonLines() []styledLine {
	count := m.controller.InitialCount()
	if rows := m.visibleRows(); rows > 0 {
		count = min(count, rows*m.grid.Columns)
	}
	cols := max(m.grid.Columns, 1)
	inner := cardWidth - 4
	fill := styles.Skeleton.Render(strings.Repeat(skeletonFill, inner))
	box := styles.Card.Copy().Width(cardWidth - 2).Height(cardHeight - 2).Render(strings.Join([]string{fill, fill, fill}, "\n"))
	var lines []styledLine
	for placed := 0; placed < count; placed += cols {
		n := min(cols, count-placed)
		boxes := make([]string, n)
		for i := range boxes {
			boxes[i] = box
		}
		lines = append(lines, joinBoxes(boxes)...)
	}
	return lines
}

func joinBoxes(boxes []string) []styledLine {
	spaced := make([]string, 0, len(boxes)*2)
	for i, box := range boxes {
		if i > 0 {
			spaced = append(spaced, strings.Repeat(" ", cardGap))
		}
		spaced = append(spaced, box)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
	parts := strings.Split(row, "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, raw: true}
	}
	return lines
}

// controlLines renders the reveal controls and the count summary below the
// grid. Controls only appear when the album is larger than one screenful.
func (m *Model) controlLines(summary gallery.Summary) []styledLine {
	var controls styledLine
	if summary.Total > m.controller.InitialCount() {
		var parts []string
		switch {
		case summary.Adjusting:
			parts = append(parts, m.spinner.View()+" Loading...")
		case summary.ShowingAll:
			parts = append(parts, styles.Control.Render("[a] Show Less Images"))
		default:
			parts = append(parts,
				styles.Control.Render(fmt.Sprintf("[a] View All %d Images", summary.Total)),
				styles.Control.Render(fmt.Sprintf("[m] Load %d more", summary.Increment)),
				styles.Progress.Render(fmt.Sprintf("%d of %d loaded, scroll down for more", summary.Visible, summary.Total)),
			)
		}
		controls = styledLine{text: strings.Join(parts, "  "), raw: true}
	}
	var count styledLine
	if summary.ShowingAll {
		count = styledLine{text: fmt.Sprintf("Showing all %d photos from %s", summary.Total, summary.Title), style: styles.Summary}
	} else {
		count = styledLine{text: fmt.Sprintf("Showing %d of %d photos • View all", summary.Visible, summary.Total), style: styles.Summary}
	}
	return []styledLine{controls, count}
}

// overviewLines lists every category with its album and photo counts.
func (m *Model) overviewLines() []styledLine {
	tree := m.controller.Tree()
	if tree.Empty() {
		return nil
	}
	rows := [][]string{{"Category", "Albums", "Photos"}}
	for _, cat := range tree.Categories {
		rows = append(rows, []string{
			strings.TrimSpace(cat.Icon + " " + cat.Title),
			fmt.Sprintf("%d", len(cat.SubCategories)),
			fmt.Sprintf("%d", cat.ItemCount()),
		})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight})
	active := ""
	if cat := m.controller.ActiveCategory(); cat != nil {
		active = cat.ID
	}
	lines := []styledLine{{text: "All gallery categories", style: styles.SectionTitle}}
	for i, text := range formatted {
		style := styles.TableRow
		switch {
		case i == 0:
			style = styles.TableHeader
		case tree.Categories[i-1].ID == active:
			style = styles.ActiveRow
		}
		lines = append(lines, styledLine{text: text, style: style})
	}
	return lines
}

func (m *Model) videoLines() []styledLine {
	lines := m.breadcrumbLines()
	title := m.videos.Title
	if title == "" {
		title = "Videos"
	}
	lines = append(lines, styledLine{text: title, style: styles.SectionTitle})
	if m.videos.Description != "" {
		lines = append(lines, styledLine{text: m.videos.Description, style: styles.Info})
	}
	if len(m.videos.Videos) == 0 {
		return append(lines, styledLine{}, styledLine{text: "No videos available", style: styles.Info})
	}
	lines = append(lines, styledLine{text: fmt.Sprintf("%d videos", len(m.videos.Videos)), style: styles.Summary}, styledLine{})
	start, end := m.videoGrid.VisibleRange(m.visibleRows())
	cols := m.videoGrid.Columns
	for rowStart := start; rowStart < end; rowStart += cols {
		rowEnd := min(rowStart+cols, end)
		boxes := make([]string, 0, cols)
		for i := rowStart; i < rowEnd; i++ {
			boxes = append(boxes, m.renderVideoCard(m.videos.Videos[i], i == m.videoGrid.Cursor))
		}
		lines = append(lines, joinBoxes(boxes)...)
	}
	return lines
}

func (m *Model) renderVideoCard(video catalog.Video, selected bool) string {
	inner := cardWidth - 4
	source := "▶ Video"
	if video.Type == catalog.VideoYouTube {
		source = "▶ YouTube"
	}
	thumb := video.ThumbnailURL()
	if thumb == "" {
		thumb = "no thumbnail"
	}
	content := strings.Join([]string{
		styles.CardTitle.Render(truncateText(video.Title, inner)),
		styles.Badge.Render(source),
		styles.CardMeta.Render(truncateText(thumb, inner)),
	}, "\n")
	style := styles.Card
	if selected {
		style = styles.SelectedCard
	}
	return style.Copy().Width(cardWidth - 2).Height(cardHeight - 2).Render(content)
}

func (m *Model) modalLines() []styledLine {
	var content []styledLine
	if m.mode == ModeVideos {
		content = m.videoModalLines()
	} else {
		content = m.imageModalLines()
	}
	width := m.modalWidth()
	inner := applyWidth(content, width-4)
	box := styles.Modal.Copy().Width(width - 2).Render(renderLines(inner))
	parts := strings.Split(box, "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, raw: true}
	}
	return lines
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:  truncateText(line.text, width),
			style: line.style,
			raw:   line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case line.raw, line.style == nil, line.text == "":
			out[i] = line.text
		default:
			out[i] = line.style.Render(line.text)
		}
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width cells, keeping ANSI sequences intact.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
