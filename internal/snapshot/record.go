// Package snapshot holds the typed form of one provider sample and the
// byte-exact codec for the fixed-layout record the provider fills.
package snapshot

const (
	MaxCores     = 64
	MaxProcesses = 30

	// LineLen bounds cpu_model, os_name, kernel_version and gpu_name.
	LineLen = 512
	// StrLen bounds process name and user.
	StrLen = 256
)

// ProcessEntry is one row of the provider's top-process list.
type ProcessEntry struct {
	PID        int32
	Name       string
	CPUPercent float64
	RAMPercent float64
	User       string
}

// CoreUsage is a fixed-capacity list of per-core usage values.
// Slots beyond Len are never exposed.
type CoreUsage struct {
	vals [MaxCores]float64
	n    int
}

// NewCoreUsage copies at most MaxCores values.
func NewCoreUsage(vals ...float64) CoreUsage {
	var c CoreUsage
	c.n = copy(c.vals[:], vals)
	return c
}

func (c CoreUsage) Len() int { return c.n }

// At returns the usage of core i. It panics if i is outside [0, Len).
func (c CoreUsage) At(i int) float64 {
	if i < 0 || i >= c.n {
		panic("snapshot: core index out of range")
	}
	return c.vals[i]
}

// Values returns a copy of the valid slots.
func (c CoreUsage) Values() []float64 {
	out := make([]float64, c.n)
	copy(out, c.vals[:c.n])
	return out
}

// ProcessList is a fixed-capacity list of process entries.
type ProcessList struct {
	entries [MaxProcesses]ProcessEntry
	n       int
}

// NewProcessList copies at most MaxProcesses entries.
func NewProcessList(entries ...ProcessEntry) ProcessList {
	var p ProcessList
	p.n = copy(p.entries[:], entries)
	return p
}

func (p ProcessList) Len() int { return p.n }

// At returns entry i. It panics if i is outside [0, Len).
func (p ProcessList) At(i int) ProcessEntry {
	if i < 0 || i >= p.n {
		panic("snapshot: process index out of range")
	}
	return p.entries[i]
}

// Entries returns a copy of the valid entries in provider order.
func (p ProcessList) Entries() []ProcessEntry {
	out := make([]ProcessEntry, p.n)
	copy(out, p.entries[:p.n])
	return out
}

// Record is one immutable sample of every tracked metric. It is a plain
// value: copying a Record copies all of its data.
type Record struct {
	// CPU
	CPUModel        string
	CPUFreqMHz      float64
	CPUUsagePercent float64
	Cores           CoreUsage

	// RAM
	RAMTotalGB      float64
	RAMUsedGB       float64
	RAMUsagePercent float64

	// Disk
	DiskTotalGB      float64
	DiskUsedGB       float64
	DiskUsagePercent float64

	// Host
	UptimeSeconds int64
	OSName        string
	KernelVersion string

	// GPU
	GPUName          string
	GPUUsagePercent  float64
	GPUMemoryTotalGB float64
	GPUMemoryUsedGB  float64

	Processes ProcessList

	// Network, KiB/s
	NetRxKbps float64
	NetTxKbps float64
}

// CoreCount is the number of valid per-core entries.
func (r Record) CoreCount() int { return r.Cores.Len() }

// ProcessCount is the number of valid process entries.
func (r Record) ProcessCount() int { return r.Processes.Len() }
