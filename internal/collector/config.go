package collector

import (
	"time"

	"hostdash/internal/snapshot"
)

// CollectorConfig contains configurable parameters for the native collector.
// Use DefaultCollectorConfig() to get sensible defaults, then override as needed.
type CollectorConfig struct {
	DiskPath     string        // Mount point whose usage is reported (default: "/")
	ProcessLimit int           // Number of top processes to report (default: 30, max 30)
	EnableGPU    bool          // Whether to query nvidia-smi (default: true)
	GPUTimeout   time.Duration // Timeout for one nvidia-smi call (default: 400ms)
	Timeout      time.Duration // Upper bound for one full collection (default: 900ms)
}

// DefaultCollectorConfig returns a CollectorConfig with sensible defaults.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		DiskPath:     "/",
		ProcessLimit: snapshot.MaxProcesses,
		EnableGPU:    true,
		GPUTimeout:   400 * time.Millisecond,
		Timeout:      900 * time.Millisecond,
	}
}

// WithDiskPath returns a copy of the config with modified disk path.
func (c CollectorConfig) WithDiskPath(path string) CollectorConfig {
	c.DiskPath = path
	return c
}

// WithProcessLimit returns a copy of the config with modified process limit.
func (c CollectorConfig) WithProcessLimit(n int) CollectorConfig {
	c.ProcessLimit = n
	return c
}

// WithGPU returns a copy of the config with GPU collection enabled/disabled.
func (c CollectorConfig) WithGPU(enabled bool) CollectorConfig {
	c.EnableGPU = enabled
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c CollectorConfig) Validate() error {
	if c.DiskPath == "" {
		return &ConfigError{Field: "DiskPath", Message: "must not be empty"}
	}
	if c.ProcessLimit < 1 || c.ProcessLimit > snapshot.MaxProcesses {
		return &ConfigError{Field: "ProcessLimit", Message: "must be between 1 and 30"}
	}
	if c.EnableGPU && c.GPUTimeout <= 0 {
		return &ConfigError{Field: "GPUTimeout", Message: "must be positive"}
	}
	if c.Timeout <= 0 {
		return &ConfigError{Field: "Timeout", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
