package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the model.
type Styles struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Owed     lipgloss.Style
	Owing    lipgloss.Style
	Even     lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Notice   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default color scheme.
// Balances the user is owed render green and debts render red.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA94D")).MarginBottom(1),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#495057")).Padding(0, 1),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA94D")).Bold(true),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("#FFF4E6")).Foreground(lipgloss.Color("#212529")),
		Owed:     lipgloss.NewStyle().Foreground(lipgloss.Color("#66A80F")),
		Owing:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E03131")),
		Even:     lipgloss.NewStyle(),
		Label:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#868E96")),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#E03131")).Padding(0, 1),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#868E96")).MarginTop(1),
	}
}
