package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

type DiskResult struct {
	Path        string
	TotalGB     float64
	UsedGB      float64
	UsedPercent float64
}

// DiskSensor reports usage of the filesystem mounted at one path.
type DiskSensor struct {
	path string
}

func NewDiskSensor(path string) *DiskSensor {
	if path == "" {
		path = "/"
	}
	return &DiskSensor{path: path}
}

func (s *DiskSensor) Name() string {
	return "Disk"
}

// Connect checks the path is a usable mount.
func (s *DiskSensor) Connect(ctx context.Context) error {
	if _, err := disk.UsageWithContext(ctx, s.path); err != nil {
		return fmt.Errorf("disk usage of %s: %w", s.path, err)
	}
	return nil
}

func (s *DiskSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *DiskSensor) Collect(ctx context.Context) (any, error) {
	u, err := disk.UsageWithContext(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to get disk usage of %s: %w", s.path, err)
	}

	return DiskResult{
		Path:        u.Path,
		TotalGB:     toGB(u.Total),
		UsedGB:      toGB(u.Used),
		UsedPercent: u.UsedPercent,
	}, nil
}
