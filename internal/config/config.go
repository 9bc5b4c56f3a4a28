// Package config loads hostdash settings from YAML files and HOSTDASH_*
// environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hostdash/internal/collector"
	"hostdash/internal/errors"
	"hostdash/internal/snapshot"
)

const (
	ConfigFileName   = ".hostdash.yaml"
	GlobalConfigDir  = ".config/hostdash"
	GlobalConfigFile = "config.yaml"
	EnvPrefix        = "HOSTDASH"

	ProviderNative  = "native"
	ProviderLibrary = "library"
)

// Config is the effective application configuration. The refresh interval
// is fixed and deliberately absent.
type Config struct {
	Provider     string `mapstructure:"provider" yaml:"provider"`
	LibraryPath  string `mapstructure:"library_path" yaml:"library_path"`
	DiskPath     string `mapstructure:"disk_path" yaml:"disk_path"`
	ProcessLimit int    `mapstructure:"process_limit" yaml:"process_limit"`
	GPU          bool   `mapstructure:"gpu" yaml:"gpu"`
	LogFile      string `mapstructure:"log_file" yaml:"log_file"`
	Glow         bool   `mapstructure:"glow" yaml:"glow"`

	// Source is the file the config was read from, "" for defaults.
	Source string `mapstructure:"-" yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Provider:     ProviderNative,
		LibraryPath:  "build/libmonitor.so",
		DiskPath:     "/",
		ProcessLimit: snapshot.MaxProcesses,
		GPU:          true,
		LogFile:      filepath.Join(os.TempDir(), "hostdash.log"),
		Glow:         true,
	}
}

func (c Config) WithProvider(p string) Config {
	c.Provider = p
	return c
}

func (c Config) WithLibraryPath(path string) Config {
	c.LibraryPath = path
	return c
}

func (c Config) WithProcessLimit(n int) Config {
	c.ProcessLimit = n
	return c
}

// Validate reports the first invalid field as a structured CONFIG error.
func (c Config) Validate() error {
	fail := func(field, msg, hint string) error {
		return errors.WrapWithCode(&ConfigError{Field: field, Message: msg}, errors.ErrConfig,
			"Invalid configuration", hint)
	}
	switch c.Provider {
	case ProviderNative:
	case ProviderLibrary:
		if c.LibraryPath == "" {
			return fail("library_path", "must be set when provider is library", "Set library_path to the metrics shared library")
		}
	default:
		return fail("provider", "must be native or library, got "+strings.TrimSpace(c.Provider), "Use provider: native or provider: library")
	}
	if c.DiskPath == "" {
		return fail("disk_path", "must not be empty", "Set disk_path to a mount point, e.g. /")
	}
	if c.ProcessLimit < 1 || c.ProcessLimit > snapshot.MaxProcesses {
		return fail("process_limit", "must be between 1 and 30", "Use a value between 1 and 30")
	}
	return nil
}

// Collector maps the config onto the native collector settings.
func (c Config) Collector() collector.CollectorConfig {
	return collector.DefaultCollectorConfig().
		WithDiskPath(c.DiskPath).
		WithProcessLimit(c.ProcessLimit).
		WithGPU(c.GPU)
}

// YAML renders the config as a config file would hold it.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
