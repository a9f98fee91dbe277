package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the page.
type Styles struct {
	Header     lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Label      lipgloss.Style
	Button     lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Title      lipgloss.Style
	Desc       lipgloss.Style
	Owner      lipgloss.Style
	Shared     lipgloss.Style
	Action     lipgloss.Style
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#A78BFA"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	return Styles{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Tab:        lipgloss.NewStyle().Padding(0, 2).Foreground(muted),
		ActiveTab:  lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true).Foreground(accent),
		Label:      lipgloss.NewStyle().Foreground(muted),
		Button:     lipgloss.NewStyle().Padding(0, 2).Bold(true).Background(accent).Foreground(lipgloss.Color("#FFFFFF")),
		Card:       lipgloss.NewStyle().PaddingLeft(2),
		Selected:   lipgloss.NewStyle().PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(accent),
		Title:      lipgloss.NewStyle().Bold(true),
		Desc:       lipgloss.NewStyle().Foreground(muted),
		Owner:      lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Shared:     lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
		Action:     lipgloss.NewStyle().Foreground(accent),
		Modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		Help:       lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
