package components

import (
	"slices"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"hostdash/internal/history"
	"hostdash/internal/surface"
	"hostdash/ui/tui/styles"
)

// SeriesChart plots one series as a braille line. The y-range comes from
// the frame, so charts sharing an axis stay comparable.
type SeriesChart struct {
	Title  string
	Chart  linechart.Model
	Values []float64
	Range  surface.Range
	Width  int
	Height int
}

func NewSeriesChart(title string, width, height int) *SeriesChart {
	c := &SeriesChart{
		Title:  title,
		Range:  surface.Range{Min: 0, Max: 100},
		Width:  width,
		Height: height,
	}
	c.Chart = c.newChart()
	return c
}

func (c *SeriesChart) newChart() linechart.Model {
	// width, height, minX, maxX, minY, maxY
	return linechart.New(c.Width, c.Height, 0, float64(history.DefaultSize-1), c.Range.Min, c.Range.Max)
}

// Set replaces the plotted values. A changed range rebuilds the chart.
func (c *SeriesChart) Set(s surface.Series) {
	c.Values = slices.Clone(s.Values)
	if s.Range != c.Range && s.Range.Max > s.Range.Min {
		c.Range = s.Range
		c.Chart = c.newChart()
	}
}

func (c *SeriesChart) Resize(w, h int) {
	if w < 10 || h < 3 {
		return
	}
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *SeriesChart) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.Values)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.Values[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.Values[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitleStyle.Render(c.Title),
		c.Chart.View(),
	)
}
