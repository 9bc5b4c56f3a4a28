package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
)

type CPUResult struct {
	TotalUsage float64
	PerCore    []float64
	Model      string
	FreqMHz    float64
	Cores      int
}

// CPUSensor derives usage from the change in CPU times between two calls,
// so the first Collect reports 0% everywhere.
type CPUSensor struct {
	mu        sync.Mutex
	prevTotal cpu.TimesStat
	prevCores []cpu.TimesStat
	primed    bool
	model     string
}

func NewCPUSensor() *CPUSensor {
	return &CPUSensor{}
}

func (s *CPUSensor) Name() string {
	return "CPU"
}

// Connect caches the model name, which does not change while running.
func (s *CPUSensor) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = "Unknown CPU"
	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		s.model = strings.TrimSpace(info[0].ModelName)
	}
	return nil
}

func (s *CPUSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *CPUSensor) Collect(ctx context.Context) (any, error) {
	total, err := cpu.TimesWithContext(ctx, false)
	if err != nil || len(total) == 0 {
		return nil, fmt.Errorf("failed to get cpu times: %w", err)
	}
	cores, err := cpu.TimesWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get per-core cpu times: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := CPUResult{
		Model:   s.model,
		Cores:   len(cores),
		PerCore: make([]float64, len(cores)),
	}
	if s.primed {
		res.TotalUsage = busyPercent(s.prevTotal, total[0])
		for i, c := range cores {
			if i < len(s.prevCores) {
				res.PerCore[i] = busyPercent(s.prevCores[i], c)
			}
		}
	}
	s.prevTotal, s.prevCores, s.primed = total[0], cores, true

	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		res.FreqMHz = info[0].Mhz
	}
	return res, nil
}

// busyPercent is the non-idle share of the time elapsed between prev and cur.
func busyPercent(prev, cur cpu.TimesStat) float64 {
	dt := cur.Total() - prev.Total()
	if dt <= 0 {
		return 0
	}
	idle := (cur.Idle + cur.Iowait) - (prev.Idle + prev.Iowait)
	return 100 * (1 - idle/dt)
}
