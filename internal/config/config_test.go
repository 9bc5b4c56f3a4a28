package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"hostdash/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ProviderNative, cfg.Provider)
	assert.Equal(t, 30, cfg.ProcessLimit)
	assert.True(t, cfg.GPU)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		field   string
		wantErr bool
	}{
		{"defaults", DefaultConfig(), "", false},
		{"library provider", DefaultConfig().WithProvider(ProviderLibrary), "", false},
		{"library without path", DefaultConfig().WithProvider(ProviderLibrary).WithLibraryPath(""), "library_path", true},
		{"unknown provider", DefaultConfig().WithProvider("wmi"), "provider", true},
		{"process limit zero", DefaultConfig().WithProcessLimit(0), "process_limit", true},
		{"process limit above capacity", DefaultConfig().WithProcessLimit(45), "process_limit", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestWithMethodsDoNotMutate(t *testing.T) {
	cfg := DefaultConfig()
	changed := cfg.WithProvider(ProviderLibrary).WithProcessLimit(5)

	assert.Equal(t, ProviderNative, cfg.Provider)
	assert.Equal(t, 30, cfg.ProcessLimit)
	assert.Equal(t, ProviderLibrary, changed.Provider)
	assert.Equal(t, 5, changed.ProcessLimit)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
provider: library
library_path: /opt/monitor/libmonitor.so
process_limit: 10
gpu: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderLibrary, cfg.Provider)
	assert.Equal(t, "/opt/monitor/libmonitor.so", cfg.LibraryPath)
	assert.Equal(t, 10, cfg.ProcessLimit)
	assert.False(t, cfg.GPU)
	assert.Equal(t, "/", cfg.DiskPath, "unset keys keep defaults")
	assert.True(t, cfg.Glow)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "process_limit: 10\n")
	t.Setenv("HOSTDASH_PROCESS_LIMIT", "12")
	t.Setenv("HOSTDASH_DISK_PATH", "/home")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.ProcessLimit)
	assert.Equal(t, "/home", cfg.DiskPath)
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Provider, cfg.Provider)
	assert.Empty(t, cfg.Source)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "provider: [native\n"},
		{"out of range", "process_limit: 99\n"},
		{"wrong type", "process_limit: lots\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	path, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, path)

	require.NoError(t, os.WriteFile(ConfigFileName, []byte("gpu: false\n"), 0o644))
	path, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, ConfigFileName, path)
}

func TestCollectorMapping(t *testing.T) {
	cc := DefaultConfig().WithProcessLimit(7).Collector()
	assert.Equal(t, 7, cc.ProcessLimit)
	assert.Equal(t, "/", cc.DiskPath)
	assert.NoError(t, cc.Validate())
}

func TestYAMLRoundTrip(t *testing.T) {
	out, err := DefaultConfig().WithProvider(ProviderLibrary).YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "provider: library")
	assert.NotContains(t, out, "source")

	var back Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, ProviderLibrary, back.Provider)
}
