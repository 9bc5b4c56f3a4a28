package gauge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcFor(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		sweep float64
	}{
		{"empty", 0, 0},
		{"full", 100, -360},
		{"half", 50, -180},
		{"below range", -10, 0},
		{"above range", 150, -360},
		{"fraction", 73.4, -264.24},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc := ArcFor(tt.value)
			assert.Equal(t, StartDeg, arc.StartDeg)
			assert.InDelta(t, tt.sweep, arc.SweepDeg, 1e-9)
		})
	}
}

func TestArcForHalfIsHalfOfFull(t *testing.T) {
	assert.Equal(t, ArcFor(100).SweepDeg/2, ArcFor(50).SweepDeg)
	assert.Equal(t, ArcFor(0), ArcFor(-10))
	assert.Equal(t, ArcFor(100), ArcFor(150))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "73.4%", Label(73.4))
	assert.Equal(t, "0.0%", Label(0))
	assert.Equal(t, "100.0%", Label(99.96))
	assert.Equal(t, "150.0%", Label(150))
}

func TestDraw(t *testing.T) {
	cmd := Draw(25, Style{Color: "#bb9af7"})

	assert.Equal(t, DefaultTrack, cmd.Track.Color)
	assert.Equal(t, 360.0, cmd.Track.SweepDeg)
	assert.Equal(t, DefaultWidth, cmd.Arc.Width)
	assert.Equal(t, "#bb9af7", cmd.Arc.Color)
	assert.InDelta(t, -90, cmd.Arc.SweepDeg, 1e-9)
	assert.Equal(t, "25.0%", cmd.Label)
	assert.Nil(t, cmd.Glow)
}

func TestDrawGlow(t *testing.T) {
	cmd := Draw(130, Style{Track: "#000000", Color: "#7dcfff", Width: 4, Glow: true})

	require.NotNil(t, cmd.Glow)
	assert.Equal(t, cmd.Arc.Arc, cmd.Glow.Arc)
	assert.Greater(t, cmd.Glow.Width, cmd.Arc.Width)
	assert.Less(t, cmd.Glow.Opacity, cmd.Arc.Opacity)
	assert.Equal(t, "#000000", cmd.Track.Color)
	assert.Equal(t, "130.0%", cmd.Label)
	assert.Equal(t, -360.0, cmd.Arc.SweepDeg)
}

func TestPoints(t *testing.T) {
	assert.Nil(t, ArcFor(0).Points(0, 0, 1, 1, 8))

	pts := ArcFor(25).Points(10, 10, 5, 5, 4)
	require.Len(t, pts, 5)

	// Starts at the top and ends at 3 o'clock after a clockwise quarter turn.
	assert.InDelta(t, 10, pts[0].X, 1e-9)
	assert.InDelta(t, 5, pts[0].Y, 1e-9)
	assert.InDelta(t, 15, pts[4].X, 1e-9)
	assert.InDelta(t, 10, pts[4].Y, 1e-9)
}
