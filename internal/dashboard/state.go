// Package dashboard holds the single mutable aggregate of the dashboard:
// the current record, one history per series and the derived texts and rows.
package dashboard

import (
	"hostdash/internal/gauge"
	"hostdash/internal/history"
	"hostdash/internal/projection"
	"hostdash/internal/severity"
	"hostdash/internal/snapshot"
	"hostdash/internal/surface"
)

// Metric names the severity thresholds a gauge is tinted with.
type Metric int

const (
	MetricCPU Metric = iota
	MetricRAM
	MetricDisk
	MetricGPU
)

// State is owned by a single goroutine and must not be shared.
type State struct {
	layout     Layout
	thresholds severity.Config

	record  snapshot.Record
	history map[surface.SeriesID]*history.Buffer
	texts   map[surface.FieldID]string
	rows    []projection.Row
	applied int
}

// New returns a state with zeroed histories and an empty record.
func New(layout Layout, thresholds severity.Config) *State {
	s := &State{
		layout:     layout,
		thresholds: thresholds,
		history:    make(map[surface.SeriesID]*history.Buffer, len(layout.Series)),
		texts:      make(map[surface.FieldID]string, len(layout.Fields)),
	}
	for _, spec := range layout.Series {
		s.history[spec.ID] = history.New(history.DefaultSize)
	}
	s.derive()
	return s
}

// Apply replaces the current record with rec, appends one sample to every
// series and recomputes the derived texts and rows.
func (s *State) Apply(rec snapshot.Record) {
	s.record = rec
	for _, spec := range s.layout.Series {
		s.history[spec.ID].Append(spec.Value(rec))
	}
	s.derive()
	s.applied++
}

func (s *State) derive() {
	for _, f := range s.layout.Fields {
		s.texts[f.ID] = f.Format(s.record)
	}
	s.rows = projection.Rows(s.record.Processes, s.thresholds.Process)
}

// Publish draws the current state onto out and notifies it.
func (s *State) Publish(out surface.Surface) {
	for _, g := range s.layout.Gauges {
		v := g.Value(s.record)
		out.DrawGauge(g.ID, v, gauge.DefaultTrack, s.arcColor(g, v), gauge.Label(v))
	}

	axes := s.axisRanges()
	for _, spec := range s.layout.Series {
		yRange := spec.Range
		if spec.Axis != "" {
			yRange = axes[spec.Axis]
		}
		out.SetSeries(spec.ID, s.history[spec.ID].Values(), yRange)
	}

	for _, f := range s.layout.Fields {
		out.SetText(f.ID, s.texts[f.ID])
	}
	out.SetTable(s.rows)
	out.Notify()
}

func (s *State) axisRanges() map[string]surface.Range {
	shared := make(map[string][]*history.Buffer)
	for _, spec := range s.layout.Series {
		if spec.Axis != "" {
			shared[spec.Axis] = append(shared[spec.Axis], s.history[spec.ID])
		}
	}
	out := make(map[string]surface.Range, len(shared))
	for axis, bufs := range shared {
		out[axis] = surface.Range{Min: 0, Max: history.ScaleHint(bufs...)}
	}
	return out
}

func (s *State) arcColor(g GaugeSpec, v float64) string {
	switch s.thresholdsFor(g.Metric).Classify(v) {
	case severity.High:
		return ColorRed
	case severity.Medium:
		return ColorYellow
	default:
		return g.Color
	}
}

func (s *State) thresholdsFor(m Metric) severity.Thresholds {
	switch m {
	case MetricRAM:
		return s.thresholds.RAM
	case MetricDisk:
		return s.thresholds.Disk
	case MetricGPU:
		return s.thresholds.GPU
	default:
		return s.thresholds.CPU
	}
}

// Record returns the current record.
func (s *State) Record() snapshot.Record { return s.record }

// History returns a copy of the window of id, or nil for an untracked id.
func (s *State) History(id surface.SeriesID) []float64 {
	b, ok := s.history[id]
	if !ok {
		return nil
	}
	return b.Values()
}

// Text returns the derived text of id.
func (s *State) Text(id surface.FieldID) string { return s.texts[id] }

// Rows returns the current process rows.
func (s *State) Rows() []projection.Row { return s.rows }

// Applied returns how many records have been applied.
func (s *State) Applied() int { return s.applied }
