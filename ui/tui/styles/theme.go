package styles

import (
	"github.com/charmbracelet/lipgloss"

	"hostdash/internal/dashboard"
	"hostdash/internal/severity"
)

var (
	Text      = lipgloss.Color("#a9b1d6")
	Subtle    = lipgloss.Color("#565f89")
	Highlight = lipgloss.Color(dashboard.ColorBlue)
	Base      = lipgloss.Color("#1a1b26")

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(3).
			Padding(0, 1).
			Bold(true).
			Foreground(Base).
			Background(Highlight)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Foreground(Text).
			Padding(0, 1).
			Margin(0, 1, 0, 0)

	CardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(Highlight)

	SelectedRowStyle = lipgloss.NewStyle().Background(lipgloss.Color("#283457"))

	HelpStyle = lipgloss.NewStyle().Foreground(Subtle)
)

// ForTier colors process rows by their severity tier.
func ForTier(t severity.Tier) lipgloss.Style {
	switch t {
	case severity.High:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(dashboard.ColorRed))
	case severity.Medium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(dashboard.ColorYellow))
	default:
		return lipgloss.NewStyle().Foreground(Text)
	}
}
