// Package console prints a compact, non-interactive report of one frame.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"hostdash/internal/dashboard"
	"hostdash/internal/projection"
	"hostdash/internal/severity"
	"hostdash/internal/surface"
)

const labelWidth = 22

// Printer writes frames using the color profile of its output.
type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a printer for w. The profile decides how much color
// survives: termenv.Ascii strips it entirely.
func NewPrinter(w io.Writer, profile termenv.Profile) *Printer {
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Print renders the frame with one line per check and field, then the
// process table.
func (p *Printer) Print(f surface.Frame, checks []severity.Check) {
	w := p.out
	fmt.Fprintf(w, "%s\n", p.paint("■ HOSTDASH REPORT", dashboard.ColorCyan))

	p.section("Usage")
	for _, c := range checks {
		p.item(c.Name, fmt.Sprintf("%.1f%%", c.Value), marker(c.Tier), colorFor(c.Tier))
	}

	p.section("System")
	for _, field := range []struct {
		label string
		id    surface.FieldID
	}{
		{"CPU", surface.FieldCPUInfo},
		{"Cores", surface.FieldCores},
		{"Memory", surface.FieldRAMInfo},
		{"GPU", surface.FieldGPUInfo},
		{"Disk", surface.FieldDiskInfo},
		{"Network", surface.FieldNetInfo},
		{"OS", surface.FieldOS},
		{"Kernel", surface.FieldKernel},
		{"Uptime", surface.FieldUptime},
	} {
		p.item(field.label, oneLine(f.Text(field.id)), "", "")
	}

	p.section("Processes")
	fmt.Fprintf(w, "  %s\n", strings.Join(padCells(projection.Columns), " "))
	for _, row := range f.Rows {
		fmt.Fprintf(w, "  %s\n", p.paint(strings.Join(padCells(row.Cells()), " "), colorFor(row.Tier)))
	}
	fmt.Fprintln(w)
}

func (p *Printer) section(title string) {
	fmt.Fprintf(p.out, "%s\n", p.paint("─ "+title, dashboard.ColorCyan))
}

func (p *Printer) item(label, value, status, color string) {
	if r := []rune(label); len(r) > labelWidth-2 {
		label = string(r[:labelWidth-5]) + "..."
	}
	dots := strings.Repeat("·", labelWidth-len([]rune(label)))
	if status != "" {
		status = " " + p.paint(status, color)
	}
	fmt.Fprintf(p.out, "  %s%s %s%s\n", label, p.paint(dots, dashboard.ColorBlue), value, status)
}

func (p *Printer) paint(s, hex string) string {
	if hex == "" {
		return s
	}
	return p.out.String(s).Foreground(p.out.Color(hex)).String()
}

func marker(t severity.Tier) string {
	switch t {
	case severity.High:
		return "X"
	case severity.Medium:
		return "!"
	default:
		return "✓"
	}
}

func colorFor(t severity.Tier) string {
	switch t {
	case severity.High:
		return dashboard.ColorRed
	case severity.Medium:
		return dashboard.ColorYellow
	default:
		return dashboard.ColorGreen
	}
}

var cellWidths = []int{7, 20, 7, 7, 12}

func padCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		w := cellWidths[i]
		if r := []rune(c); len(r) > w {
			c = string(r[:w])
		}
		out[i] = fmt.Sprintf("%-*s", w, c)
	}
	return out
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " | ")
}
