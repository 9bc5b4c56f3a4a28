package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/net"
)

type NetResult struct {
	RxKbps float64
	TxKbps float64
}

// NetSensor reports receive and transmit throughput in KiB/s summed over
// every non-loopback interface. Rates come from counter deltas, so the
// first Collect reports zero.
type NetSensor struct {
	mu     sync.Mutex
	now    func() time.Time
	prevAt time.Time
	prevRx uint64
	prevTx uint64
}

func NewNetSensor() *NetSensor {
	return &NetSensor{now: time.Now}
}

func (s *NetSensor) Name() string {
	return "Network"
}

func (s *NetSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *NetSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *NetSensor) Collect(ctx context.Context) (any, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get net io counters: %w", err)
	}

	var rx, tx uint64
	for _, c := range counters {
		if isLoopback(c.Name) {
			continue
		}
		rx += c.BytesRecv
		tx += c.BytesSent
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advance(rx, tx, s.now()), nil
}

func (s *NetSensor) advance(rx, tx uint64, at time.Time) NetResult {
	var res NetResult
	if !s.prevAt.IsZero() {
		if secs := at.Sub(s.prevAt).Seconds(); secs > 0 {
			res.RxKbps = kibPerSec(s.prevRx, rx, secs)
			res.TxKbps = kibPerSec(s.prevTx, tx, secs)
		}
	}
	s.prevAt, s.prevRx, s.prevTx = at, rx, tx
	return res
}

// kibPerSec treats a shrinking counter (reset or wrap) as no traffic.
func kibPerSec(prev, cur uint64, secs float64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur-prev) / 1024 / secs
}

func isLoopback(name string) bool {
	return name == "lo" || name == "lo0"
}
