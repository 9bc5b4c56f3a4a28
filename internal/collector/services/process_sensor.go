package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shirou/gopsutil/v4/process"
)

type ProcessInfo struct {
	PID    int32   `json:"pid"`
	Name   string  `json:"name,omitempty"`
	CPU    float64 `json:"cpu_percent"`
	Memory float64 `json:"memory_percent"`
	User   string  `json:"user,omitempty"`
}

type ProcessResult struct {
	Processes []ProcessInfo `json:"processes"`
}

// ProcessSensor lists the busiest processes, highest CPU first.
type ProcessSensor struct {
	limit int
}

func NewProcessSensor(limit int) *ProcessSensor {
	return &ProcessSensor{limit: limit}
}

func (s *ProcessSensor) Name() string {
	return "Process"
}

func (s *ProcessSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *ProcessSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *ProcessSensor) Collect(ctx context.Context) (any, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue // exited, or a kernel thread without a name
		}
		cpuPct, _ := p.CPUPercentWithContext(ctx)
		memPct, _ := p.MemoryPercentWithContext(ctx)
		user, _ := p.UsernameWithContext(ctx)

		infos = append(infos, ProcessInfo{
			PID:    p.Pid,
			Name:   name,
			CPU:    cpuPct,
			Memory: float64(memPct),
			User:   user,
		})
	}

	return ProcessResult{Processes: topByCPU(infos, s.limit)}, nil
}

// topByCPU sorts by CPU descending, PID ascending on ties, and keeps limit.
func topByCPU(infos []ProcessInfo, limit int) []ProcessInfo {
	slices.SortFunc(infos, func(a, b ProcessInfo) int {
		if c := cmp.Compare(b.CPU, a.CPU); c != 0 {
			return c
		}
		return cmp.Compare(a.PID, b.PID)
	})
	if limit >= 0 && len(infos) > limit {
		infos = infos[:limit]
	}
	return infos
}
