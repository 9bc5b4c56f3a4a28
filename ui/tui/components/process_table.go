package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"hostdash/internal/projection"
	"hostdash/ui/tui/styles"
)

var columnWidths = []int{8, 22, 8, 8, 14}

// RowZone is the bubblezone id of process row i.
func RowZone(i int) string { return fmt.Sprintf("proc_%d", i) }

// ProcessTable renders the top-process rows with tier colors.
type ProcessTable struct {
	Rows     []projection.Row
	Selected int
	Height   int
}

func NewProcessTable() *ProcessTable {
	return &ProcessTable{Height: 12}
}

func (t *ProcessTable) Resize(_, h int) {
	if h > 2 {
		t.Height = h
	}
}

// Move shifts the selection by delta, staying within the rows.
func (t *ProcessTable) Move(delta int) {
	t.Select(t.Selected + delta)
}

func (t *ProcessTable) Select(i int) {
	if len(t.Rows) == 0 {
		t.Selected = 0
		return
	}
	t.Selected = max(0, min(i, len(t.Rows)-1))
}

func (t *ProcessTable) View() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(styles.Highlight).Render(formatCells(projection.Columns))

	lines := []string{styles.CardTitleStyle.Render("Top Processes"), header}
	first := 0
	if visible := t.Height - 2; visible > 0 && t.Selected >= visible {
		first = t.Selected - visible + 1
	}
	for i := first; i < len(t.Rows) && i-first < t.Height-2; i++ {
		row := t.Rows[i]
		style := styles.ForTier(row.Tier)
		if i == t.Selected {
			style = style.Inherit(styles.SelectedRowStyle)
		}
		lines = append(lines, zone.Mark(RowZone(i), style.Render(formatCells(row.Cells()))))
	}
	if len(t.Rows) == 0 {
		lines = append(lines, styles.HelpStyle.Render("no processes"))
	}
	return strings.Join(lines, "\n")
}

func formatCells(cells []string) string {
	var b strings.Builder
	for i, c := range cells {
		w := columnWidths[i]
		if r := []rune(c); len(r) > w-1 {
			c = string(r[:w-2]) + "…"
		}
		fmt.Fprintf(&b, "%-*s", w, c)
	}
	return b.String()
}
