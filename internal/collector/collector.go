package collector

import (
	"context"
	"fmt"
	"sync"

	"hostdash/internal/collector/services"
	"hostdash/internal/logger"
	"hostdash/internal/snapshot"
)

// SystemCollector gathers host metrics in-process and writes them in the
// provider record layout, so it can stand in for the native library.
type SystemCollector struct {
	cfg CollectorConfig
	log logger.Logger

	cpuSensor     services.Sensor
	memSensor     services.Sensor
	diskSensor    services.Sensor
	hostSensor    services.Sensor
	netSensor     services.Sensor
	processSensor services.Sensor
	gpuSensor     services.Sensor // nil when GPU collection is disabled
}

// NewSystemCollector validates cfg and connects every sensor.
func NewSystemCollector(ctx context.Context, cfg CollectorConfig) (*SystemCollector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &SystemCollector{
		cfg:           cfg,
		log:           logger.New("[collector]"),
		cpuSensor:     services.NewCPUSensor(),
		memSensor:     services.NewMemSensor(),
		diskSensor:    services.NewDiskSensor(cfg.DiskPath),
		hostSensor:    services.NewHostSensor(),
		netSensor:     services.NewNetSensor(),
		processSensor: services.NewProcessSensor(cfg.ProcessLimit),
	}
	if cfg.EnableGPU {
		s.gpuSensor = services.NewGPUSensor(cfg.GPUTimeout)
	}

	for _, sensor := range s.sensors() {
		if err := sensor.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect %s sensor: %w", sensor.Name(), err)
		}
	}
	return s, nil
}

func (s *SystemCollector) sensors() []services.Sensor {
	all := []services.Sensor{s.cpuSensor, s.memSensor, s.diskSensor, s.hostSensor, s.netSensor, s.processSensor}
	if s.gpuSensor != nil {
		all = append(all, s.gpuSensor)
	}
	return all
}

// Fill collects one sample and writes it into buf.
func (s *SystemCollector) Fill(buf []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	rec, err := s.Collect(ctx)
	if err != nil {
		return err
	}
	return snapshot.EncodeInto(rec, buf)
}

// Close disconnects every sensor.
func (s *SystemCollector) Close() error {
	ctx := context.Background()
	for _, sensor := range s.sensors() {
		if err := sensor.Disconnect(ctx); err != nil {
			return fmt.Errorf("disconnect %s sensor: %w", sensor.Name(), err)
		}
	}
	return nil
}

type sensorResult struct {
	name string
	val  any
	err  error
}

// Collect runs every sensor concurrently. CPU and memory failures fail the
// sample; the other sensors degrade to zero values.
func (s *SystemCollector) Collect(ctx context.Context) (snapshot.Record, error) {
	sensors := s.sensors()
	results := make(chan sensorResult, len(sensors))

	var wg sync.WaitGroup
	wg.Add(len(sensors))
	for _, sensor := range sensors {
		go func(sensor services.Sensor) {
			defer wg.Done()
			val, err := sensor.Collect(ctx)
			results <- sensorResult{name: sensor.Name(), val: val, err: err}
		}(sensor)
	}
	wg.Wait()
	close(results)

	var rec snapshot.Record
	for r := range results {
		if r.err != nil {
			if r.name == s.cpuSensor.Name() || r.name == s.memSensor.Name() {
				return snapshot.Record{}, fmt.Errorf("failed to get %s metrics: %w", r.name, r.err)
			}
			s.log.Debug("%s sensor: %v", r.name, r.err)
			continue
		}
		apply(&rec, r.val)
	}
	return rec, nil
}

// apply copies one sensor result into rec.
func apply(rec *snapshot.Record, val any) {
	switch v := val.(type) {
	case services.CPUResult:
		rec.CPUModel = v.Model
		rec.CPUFreqMHz = v.FreqMHz
		rec.CPUUsagePercent = v.TotalUsage
		rec.Cores = snapshot.NewCoreUsage(v.PerCore...)
	case services.MemResult:
		rec.RAMTotalGB = v.TotalGB
		rec.RAMUsedGB = v.UsedGB
		rec.RAMUsagePercent = v.UsedPercent
	case services.DiskResult:
		rec.DiskTotalGB = v.TotalGB
		rec.DiskUsedGB = v.UsedGB
		rec.DiskUsagePercent = v.UsedPercent
	case services.HostResult:
		rec.UptimeSeconds = v.Uptime
		rec.OSName = v.OSName
		rec.KernelVersion = v.KernelVersion
	case services.NetResult:
		rec.NetRxKbps = v.RxKbps
		rec.NetTxKbps = v.TxKbps
	case services.ProcessResult:
		entries := make([]snapshot.ProcessEntry, 0, len(v.Processes))
		for _, p := range v.Processes {
			entries = append(entries, snapshot.ProcessEntry{
				PID:        p.PID,
				Name:       p.Name,
				CPUPercent: p.CPU,
				RAMPercent: p.Memory,
				User:       p.User,
			})
		}
		rec.Processes = snapshot.NewProcessList(entries...)
	case services.GPUResult:
		rec.GPUName = v.Name
		rec.GPUUsagePercent = v.Usage
		rec.GPUMemoryUsedGB = v.MemUsedGB
		rec.GPUMemoryTotalGB = v.MemTotalGB
	}
}
