// Package severity classifies metric values into display tiers. Tiers only
// pick colors; they never change what the dashboard does.
package severity

import (
	"fmt"

	"hostdash/internal/snapshot"
)

type Tier int

const (
	Low Tier = iota
	Medium
	High
)

func (t Tier) String() string {
	switch t {
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

// Thresholds are exclusive lower bounds: a value equal to Warning is still
// Low, a value just above it is Medium.
type Thresholds struct {
	Warning  float64
	Critical float64
}

// Classify maps value onto a tier.
func (th Thresholds) Classify(value float64) Tier {
	if value > th.Critical {
		return High
	}
	if value > th.Warning {
		return Medium
	}
	return Low
}

// Config holds the thresholds for every classified metric.
type Config struct {
	Process Thresholds // per-process CPU%
	CPU     Thresholds
	RAM     Thresholds
	Disk    Thresholds
	GPU     Thresholds
}

func DefaultConfig() Config {
	return Config{
		Process: Thresholds{Warning: 5.0, Critical: 20.0},
		CPU:     Thresholds{Warning: 70.0, Critical: 90.0},
		RAM:     Thresholds{Warning: 70.0, Critical: 90.0},
		Disk:    Thresholds{Warning: 80.0, Critical: 90.0},
		GPU:     Thresholds{Warning: 70.0, Critical: 90.0},
	}
}

// Check is one classified headline metric.
type Check struct {
	Name  string
	Value float64
	Tier  Tier
}

func (c Check) String() string {
	return fmt.Sprintf("%s %.1f%% [%s]", c.Name, c.Value, c.Tier)
}

// Evaluate classifies the headline utilization figures of rec.
func (c Config) Evaluate(rec snapshot.Record) []Check {
	return []Check{
		{Name: "CPU Usage", Value: rec.CPUUsagePercent, Tier: c.CPU.Classify(rec.CPUUsagePercent)},
		{Name: "RAM Usage", Value: rec.RAMUsagePercent, Tier: c.RAM.Classify(rec.RAMUsagePercent)},
		{Name: "GPU Usage", Value: rec.GPUUsagePercent, Tier: c.GPU.Classify(rec.GPUUsagePercent)},
		{Name: "Disk Usage", Value: rec.DiskUsagePercent, Tier: c.Disk.Classify(rec.DiskUsagePercent)},
	}
}
