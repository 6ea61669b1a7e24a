package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading      *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Breadcrumb   *lipgloss.Style
	Footer       *lipgloss.Style
	Summary      *lipgloss.Style
	SectionTitle *lipgloss.Style

	Chip       *lipgloss.Style
	ActiveChip *lipgloss.Style

	Card         *lipgloss.Style
	SelectedCard *lipgloss.Style
	CardTitle    *lipgloss.Style
	CardMeta     *lipgloss.Style
	Skeleton     *lipgloss.Style
	Placeholder  *lipgloss.Style

	Control      *lipgloss.Style
	Progress     *lipgloss.Style
	TableHeader  *lipgloss.Style
	TableRow     *lipgloss.Style
	ActiveRow    *lipgloss.Style
	JumpPrompt   *lipgloss.Style
	JumpItem     *lipgloss.Style
	SelectedJump *lipgloss.Style

	Modal      *lipgloss.Style
	ModalTitle *lipgloss.Style
	ModalBody  *lipgloss.Style
	Badge      *lipgloss.Style
	URL        *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Breadcrumb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Summary: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	SectionTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Chip: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	ActiveChip: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1),
	),
	Card: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	SelectedCard: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	CardTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	CardMeta: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Skeleton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Italic(true),
	),
	Control: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Padding(0, 1),
	),
	Progress: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	TableHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	TableRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ActiveRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	JumpPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	JumpItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedJump: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Modal: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	ModalTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	ModalBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
	),
	URL: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
