// Package gauge maps a percentage onto the arc a circular gauge draws.
//
// Angles are in degrees, measured counter-clockwise from the 3 o'clock
// position. Every arc starts at the top of the circle and a negative sweep
// runs clockwise.
package gauge

import (
	"fmt"
	"math"
)

const (
	// StartDeg is the top of the circle.
	StartDeg = 90.0

	DefaultWidth    = 12.0
	DefaultTrack    = "#1f2335"
	glowWidthFactor = 2.0
	glowOpacity     = 0.35
)

// Arc is a start angle plus a signed sweep.
type Arc struct {
	StartDeg float64
	SweepDeg float64
}

// ArcFor returns the arc for value. Values outside [0, 100] are treated as
// the nearest bound and NaN as 0.
func ArcFor(value float64) Arc {
	return Arc{StartDeg: StartDeg, SweepDeg: -(Clamp(value) / 100) * 360}
}

// Clamp bounds value to [0, 100].
func Clamp(value float64) float64 {
	switch {
	case math.IsNaN(value), value < 0:
		return 0
	case value > 100:
		return 100
	}
	return value
}

// Label formats value the way gauges and info texts show it.
func Label(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// Point is a position in screen space (y grows downward).
type Point struct {
	X, Y float64
}

// Points samples the arc on an ellipse centered at (cx, cy) with radii rx
// and ry. It returns steps+1 points from the start to the end of the sweep,
// or nil for a zero-length arc.
func (a Arc) Points(cx, cy, rx, ry float64, steps int) []Point {
	if a.SweepDeg == 0 || steps <= 0 {
		return nil
	}
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		deg := a.StartDeg + a.SweepDeg*float64(i)/float64(steps)
		rad := deg * math.Pi / 180
		pts = append(pts, Point{
			X: cx + rx*math.Cos(rad),
			Y: cy - ry*math.Sin(rad),
		})
	}
	return pts
}

// Style is the constant look of one gauge.
type Style struct {
	Track string // background circle color
	Color string // foreground arc color
	Width float64
	Glow  bool
}

// Stroke is a single arc to paint.
type Stroke struct {
	Arc
	Color   string
	Width   float64
	Opacity float64
}

// Command is everything a renderer needs to paint one gauge, in paint order:
// track, then glow (if any), then the arc, then the label.
type Command struct {
	Value float64
	Track Stroke
	Glow  *Stroke
	Arc   Stroke
	Label string
}

// Draw builds the paint command for value. The label shows the unclamped
// value; only the arc is clamped.
func Draw(value float64, style Style) Command {
	if style.Track == "" {
		style.Track = DefaultTrack
	}
	if style.Width <= 0 {
		style.Width = DefaultWidth
	}

	arc := ArcFor(value)
	cmd := Command{
		Value: value,
		Track: Stroke{Arc: Arc{StartDeg: 0, SweepDeg: 360}, Color: style.Track, Width: style.Width, Opacity: 1},
		Arc:   Stroke{Arc: arc, Color: style.Color, Width: style.Width, Opacity: 1},
		Label: Label(value),
	}
	if style.Glow {
		cmd.Glow = &Stroke{Arc: arc, Color: style.Color, Width: style.Width * glowWidthFactor, Opacity: glowOpacity}
	}
	return cmd
}
