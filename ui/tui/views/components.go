package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hostdash/ui/tui/styles"
)

// InfoCard renders labelled lines inside a card. Empty values show as "-".
func InfoCard(title string, width int, pairs ...[2]string) string {
	lines := []string{styles.CardTitleStyle.Render(title)}
	for _, p := range pairs {
		value := p[1]
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		if p[0] == "" {
			lines = append(lines, value)
			continue
		}
		label := lipgloss.NewStyle().Foreground(styles.Subtle).Render(p[0] + ": ")
		lines = append(lines, label+value)
	}
	style := styles.CardStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
