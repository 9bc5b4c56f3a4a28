package dashboard

import (
	"fmt"
	"strconv"

	"hostdash/internal/gauge"
	"hostdash/internal/snapshot"
	"hostdash/internal/surface"
)

// SeriesSpec describes one tracked series. Series with the same non-empty
// Axis share a y-range derived from history.ScaleHint; the others use Range.
type SeriesSpec struct {
	ID    surface.SeriesID
	Value func(snapshot.Record) float64
	Axis  string
	Range surface.Range
}

// GaugeSpec describes one gauge. Metric selects the severity thresholds
// that tint the arc.
type GaugeSpec struct {
	ID     surface.GaugeID
	Value  func(snapshot.Record) float64
	Color  string
	Metric Metric
}

// FieldSpec describes one derived text.
type FieldSpec struct {
	ID     surface.FieldID
	Format func(snapshot.Record) string
}

// Layout is the configurable set of panels the dashboard maintains.
type Layout struct {
	Series []SeriesSpec
	Gauges []GaugeSpec
	Fields []FieldSpec
}

// Tokyo Night accents.
const (
	ColorCyan   = "#7dcfff"
	ColorPurple = "#bb9af7"
	ColorGreen  = "#9ece6a"
	ColorBlue   = "#7aa2f7"
	ColorYellow = "#e0af68"
	ColorRed    = "#f7768e"
)

const netAxis = "net"

// DefaultLayout is the standard dashboard: a CPU history graph, shared-axis
// network graphs, four gauges and the system info texts.
func DefaultLayout() Layout {
	return Layout{
		Series: []SeriesSpec{
			{ID: surface.SeriesCPU, Value: func(r snapshot.Record) float64 { return r.CPUUsagePercent }, Range: surface.Range{Min: 0, Max: 100}},
			{ID: surface.SeriesNetRx, Value: func(r snapshot.Record) float64 { return r.NetRxKbps }, Axis: netAxis},
			{ID: surface.SeriesNetTx, Value: func(r snapshot.Record) float64 { return r.NetTxKbps }, Axis: netAxis},
		},
		Gauges: []GaugeSpec{
			{ID: surface.GaugeCPU, Value: func(r snapshot.Record) float64 { return r.CPUUsagePercent }, Color: ColorBlue, Metric: MetricCPU},
			{ID: surface.GaugeRAM, Value: func(r snapshot.Record) float64 { return r.RAMUsagePercent }, Color: ColorPurple, Metric: MetricRAM},
			{ID: surface.GaugeGPU, Value: func(r snapshot.Record) float64 { return r.GPUUsagePercent }, Color: ColorCyan, Metric: MetricGPU},
			{ID: surface.GaugeDisk, Value: func(r snapshot.Record) float64 { return r.DiskUsagePercent }, Color: ColorGreen, Metric: MetricDisk},
		},
		Fields: []FieldSpec{
			{ID: surface.FieldCPUInfo, Format: cpuInfo},
			{ID: surface.FieldCores, Format: func(r snapshot.Record) string { return strconv.Itoa(r.CoreCount()) }},
			{ID: surface.FieldRAMInfo, Format: ramInfo},
			{ID: surface.FieldGPUInfo, Format: gpuInfo},
			{ID: surface.FieldDiskInfo, Format: diskInfo},
			{ID: surface.FieldNetInfo, Format: netInfo},
			{ID: surface.FieldUptime, Format: func(r snapshot.Record) string { return FormatUptime(r.UptimeSeconds) }},
			{ID: surface.FieldKernel, Format: func(r snapshot.Record) string { return r.KernelVersion }},
			{ID: surface.FieldOS, Format: func(r snapshot.Record) string { return r.OSName }},
		},
	}
}

func cpuInfo(r snapshot.Record) string {
	return fmt.Sprintf("Model: %s | Freq: %.0f MHz | Load: %s", r.CPUModel, r.CPUFreqMHz, gauge.Label(r.CPUUsagePercent))
}

func ramInfo(r snapshot.Record) string {
	return fmt.Sprintf("%.1f GB / %.1f GB", r.RAMUsedGB, r.RAMTotalGB)
}

func gpuInfo(r snapshot.Record) string {
	return fmt.Sprintf("%s\nVRAM: %.1f GB / %.1f GB", r.GPUName, r.GPUMemoryUsedGB, r.GPUMemoryTotalGB)
}

func diskInfo(r snapshot.Record) string {
	return fmt.Sprintf("Used: %.1f GB\nTotal: %.1f GB", r.DiskUsedGB, r.DiskTotalGB)
}

func netInfo(r snapshot.Record) string {
	return fmt.Sprintf("RX %.1f KB/s  TX %.1f KB/s", r.NetRxKbps, r.NetTxKbps)
}

// FormatUptime splits seconds into hours, minutes and seconds. Negative
// input is shown as zero.
func FormatUptime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, seconds%3600/60, seconds%60)
}
