package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

type HostResult struct {
	OSName        string
	KernelVersion string
	Uptime        int64
}

type HostSensor struct{}

func NewHostSensor() *HostSensor {
	return &HostSensor{}
}

func (s *HostSensor) Name() string {
	return "Host"
}

func (s *HostSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *HostSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *HostSensor) Collect(ctx context.Context) (any, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}

	return HostResult{
		OSName:        osName(info.Platform, info.PlatformVersion, info.OS),
		KernelVersion: info.KernelVersion,
		Uptime:        int64(info.Uptime),
	}, nil
}

// osName renders e.g. "Ubuntu 24.04", falling back to the kernel OS name.
func osName(platform, version, fallback string) string {
	if platform == "" {
		return fallback
	}
	name := strings.ToUpper(platform[:1]) + platform[1:]
	if version != "" {
		name += " " + version
	}
	return name
}
