package surface

import (
	"maps"
	"slices"

	"hostdash/internal/projection"
)

// Gauge is one gauge as last drawn.
type Gauge struct {
	Value float64
	Track string
	Arc   string
	Label string
}

// Series is one graph as last set.
type Series struct {
	Values []float64
	Range  Range
}

// Frame is a complete, immutable picture of the dashboard after one cycle.
type Frame struct {
	Seq    uint64
	Gauges map[GaugeID]Gauge
	Series map[SeriesID]Series
	Texts  map[FieldID]string
	Rows   []projection.Row
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	out := Frame{
		Seq:    f.Seq,
		Gauges: maps.Clone(f.Gauges),
		Texts:  maps.Clone(f.Texts),
		Rows:   slices.Clone(f.Rows),
		Series: make(map[SeriesID]Series, len(f.Series)),
	}
	for id, s := range f.Series {
		out.Series[id] = Series{Values: slices.Clone(s.Values), Range: s.Range}
	}
	return out
}

// Text returns the text of id, or "" if it was never set.
func (f Frame) Text(id FieldID) string { return f.Texts[id] }

// FrameBuilder implements Surface. It accumulates draw calls and on Notify
// hands a deep copy of the accumulated frame to its sink. Values persist
// between cycles until they are drawn again.
type FrameBuilder struct {
	cur  Frame
	sink func(Frame)
}

// NewFrameBuilder returns a builder delivering completed frames to sink.
func NewFrameBuilder(sink func(Frame)) *FrameBuilder {
	return &FrameBuilder{
		cur: Frame{
			Gauges: make(map[GaugeID]Gauge),
			Series: make(map[SeriesID]Series),
			Texts:  make(map[FieldID]string),
		},
		sink: sink,
	}
}

func (b *FrameBuilder) DrawGauge(id GaugeID, value float64, track, arc, label string) {
	b.cur.Gauges[id] = Gauge{Value: value, Track: track, Arc: arc, Label: label}
}

func (b *FrameBuilder) SetSeries(id SeriesID, values []float64, yRange Range) {
	b.cur.Series[id] = Series{Values: slices.Clone(values), Range: yRange}
}

func (b *FrameBuilder) SetText(id FieldID, text string) {
	b.cur.Texts[id] = text
}

// SetTable replaces every row; rows beyond the new count are dropped.
func (b *FrameBuilder) SetTable(rows []projection.Row) {
	b.cur.Rows = slices.Clone(rows)
}

func (b *FrameBuilder) Notify() {
	b.cur.Seq++
	if b.sink != nil {
		b.sink(b.cur.Clone())
	}
}

// Recorder is a Surface that keeps every completed frame. It is meant for
// tests.
type Recorder struct {
	*FrameBuilder
	Frames []Frame
}

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.FrameBuilder = NewFrameBuilder(func(f Frame) {
		r.Frames = append(r.Frames, f)
	})
	return r
}

// Last returns the most recent frame and whether there is one.
func (r *Recorder) Last() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}
