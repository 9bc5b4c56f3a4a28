// Package surface defines what the dashboard draws onto and a builder that
// folds one cycle of draw calls into an immutable Frame.
package surface

import "hostdash/internal/projection"

type (
	GaugeID  string
	SeriesID string
	FieldID  string
)

const (
	GaugeCPU  GaugeID = "cpu"
	GaugeRAM  GaugeID = "ram"
	GaugeGPU  GaugeID = "gpu"
	GaugeDisk GaugeID = "disk"
)

const (
	SeriesCPU   SeriesID = "cpu"
	SeriesNetRx SeriesID = "net_rx"
	SeriesNetTx SeriesID = "net_tx"
)

const (
	FieldCPUInfo  FieldID = "cpu_info"
	FieldCores    FieldID = "cores"
	FieldRAMInfo  FieldID = "ram_info"
	FieldGPUInfo  FieldID = "gpu_info"
	FieldDiskInfo FieldID = "disk_info"
	FieldNetInfo  FieldID = "net_info"
	FieldUptime   FieldID = "uptime"
	FieldKernel   FieldID = "kernel"
	FieldOS       FieldID = "os"
)

// Range is a y-axis range.
type Range struct {
	Min, Max float64
}

// Surface receives the draw calls of one update cycle. Notify marks the
// cycle complete; nothing drawn before it is visible to readers.
type Surface interface {
	DrawGauge(id GaugeID, value float64, track, arc, label string)
	SetSeries(id SeriesID, values []float64, yRange Range)
	SetText(id FieldID, text string)
	SetTable(rows []projection.Row)
	Notify()
}
