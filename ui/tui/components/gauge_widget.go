package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"hostdash/internal/gauge"
	"hostdash/internal/surface"
	"hostdash/ui/tui/styles"
)

// Raster size of one gauge in terminal cells. Cells are roughly twice as
// tall as they are wide, so the horizontal radius is doubled.
const (
	gaugeCols = 21
	gaugeRows = 11
	gaugeCX   = 10.0
	gaugeCY   = 5.0
	gaugeRX   = 8.0
	gaugeRY   = 4.0
	arcSteps  = 120
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellTrack
	cellGlow
	cellArc
)

type cell struct {
	kind  cellKind
	color string
}

type raster [gaugeRows][gaugeCols]cell

// rasterize paints cmd in its paint order onto a cell grid. The glow is a
// halo one cell outside the ring.
func rasterize(cmd gauge.Command) raster {
	var r raster
	r.stroke(cmd.Track.Points(gaugeCX, gaugeCY, gaugeRX, gaugeRY, arcSteps), cellTrack, cmd.Track.Color)
	if cmd.Glow != nil {
		r.stroke(cmd.Glow.Points(gaugeCX, gaugeCY, gaugeRX+2, gaugeRY+1, arcSteps), cellGlow, cmd.Glow.Color)
	}
	r.stroke(cmd.Arc.Points(gaugeCX, gaugeCY, gaugeRX, gaugeRY, arcSteps), cellArc, cmd.Arc.Color)
	return r
}

func (r *raster) stroke(pts []gauge.Point, kind cellKind, color string) {
	for _, p := range pts {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		if x < 0 || x >= gaugeCols || y < 0 || y >= gaugeRows {
			continue
		}
		r[y][x] = cell{kind: kind, color: color}
	}
}

func (r *raster) count(kind cellKind) int {
	n := 0
	for y := range r {
		for x := range r[y] {
			if r[y][x].kind == kind {
				n++
			}
		}
	}
	return n
}

// GaugeWidget draws one circular gauge. The needle eases toward the last
// drawn value; the label always shows the drawn value itself.
type GaugeWidget struct {
	Title string
	Glow  bool

	current  surface.Gauge
	shown    float64
	velocity float64
	spring   harmonica.Spring
}

func NewGaugeWidget(title string, glow bool) *GaugeWidget {
	return &GaugeWidget{
		Title:  title,
		Glow:   glow,
		spring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0),
	}
}

// Set records the gauge as drawn by the latest frame.
func (g *GaugeWidget) Set(v surface.Gauge) {
	g.current = v
}

// Step advances the easing animation by one frame. The needle eases toward
// the clamped value; a non-finite spring state restarts from 0.
func (g *GaugeWidget) Step() {
	if !finite(g.shown) || !finite(g.velocity) {
		g.shown, g.velocity = 0, 0
	}
	g.shown, g.velocity = g.spring.Update(g.shown, g.velocity, gauge.Clamp(g.current.Value))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Shown is the value the needle currently points at.
func (g *GaugeWidget) Shown() float64 { return g.shown }

func (g *GaugeWidget) Resize(int, int) {}

func (g *GaugeWidget) View() string {
	cmd := gauge.Draw(g.shown, gauge.Style{
		Track: g.current.Track,
		Color: g.current.Arc,
		Glow:  g.Glow,
	})
	r := rasterize(cmd)

	var b strings.Builder
	for y := range r {
		line := make([]string, 0, gaugeCols)
		for x := range r[y] {
			c := r[y][x]
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.color))
			switch c.kind {
			case cellTrack:
				line = append(line, style.Render("·"))
			case cellGlow:
				line = append(line, style.Faint(true).Render("░"))
			case cellArc:
				line = append(line, style.Render("●"))
			default:
				line = append(line, " ")
			}
		}
		if y == int(gaugeCY) {
			line = overlayLabel(line, g.current.Label, g.current.Arc)
		}
		b.WriteString(strings.Join(line, ""))
		if y < gaugeRows-1 {
			b.WriteByte('\n')
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		styles.CardTitleStyle.Render(g.Title),
		b.String(),
	)
}

func overlayLabel(line []string, label, color string) []string {
	if label == "" {
		return line
	}
	start := int(gaugeCX) - len(label)/2
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	for i, ch := range label {
		if x := start + i; x > 0 && x < gaugeCols-1 {
			line[x] = style.Render(string(ch))
		}
	}
	return line
}
