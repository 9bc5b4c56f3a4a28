package services

import "context"

// Sensor is one source of host metrics. Collect returns the sensor's own
// result type; callers type-assert it.
type Sensor interface {
	Name() string
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Collect(ctx context.Context) (any, error)
}

const bytesPerGB = 1024 * 1024 * 1024

func toGB(b uint64) float64 { return float64(b) / bytesPerGB }
