package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostdash/internal/config"
	"hostdash/internal/dashboard"
	"hostdash/internal/errors"
	"hostdash/internal/logger"
	"hostdash/internal/provider"
	"hostdash/internal/severity"
	"hostdash/internal/snapshot"
	"hostdash/ui/console"
)

type fakeProvider struct {
	records  []snapshot.Record
	fills    int
	closed   bool
	closeErr error
}

func (f *fakeProvider) Fill(buf []byte) error {
	rec := f.records[min(f.fills, len(f.records)-1)]
	f.fills++
	return snapshot.EncodeInto(rec, buf)
}

func (f *fakeProvider) Close() error {
	f.closed = true
	return f.closeErr
}

func stubProvider(t *testing.T, p provider.Provider, err error) {
	t.Helper()
	prev := openProvider
	t.Cleanup(func() { openProvider = prev })
	openProvider = func(context.Context, config.Config) (provider.Provider, error) {
		return p, err
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatVersion(tt.in))
	}
}

func TestVersionOutput(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	defer SetVersionInfo(originalVersion, originalCommit, originalDate)

	SetVersionInfo("1.2.3", "abc1234", "2025-01-08T12:00:00Z")
	assert.Equal(t, "1.2.3", GetVersion())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "hostdash v1.2.3")
	assert.Contains(t, out, "commit: abc1234")
	assert.Contains(t, out, "built: 2025-01-08T12:00:00Z")
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("process_limit: 9\n"), 0o644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config", "--config", path})
	defer func() {
		rootCmd.SetArgs(nil)
		configPath = ""
	}()
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "# source: "+path)
	assert.Contains(t, out, "process_limit: 9")
	assert.Contains(t, out, "provider: native")
}

func TestSnapshotCommandPrimesThenReports(t *testing.T) {
	fake := &fakeProvider{records: []snapshot.Record{
		{CPUUsagePercent: 0},
		{CPUUsagePercent: 42, UptimeSeconds: 3725, Processes: snapshot.NewProcessList(
			snapshot.ProcessEntry{PID: 7, Name: "bash", CPUPercent: 25, User: "alice"},
		)},
	}}
	stubProvider(t, fake, nil)

	var buf bytes.Buffer
	err := snapshotCommand(context.Background(), config.DefaultConfig(),
		console.NewPrinter(&buf, termenv.Ascii), time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.fills)
	assert.True(t, fake.closed)
	out := buf.String()
	assert.Contains(t, out, "42.0%")
	assert.Contains(t, out, "1h 2m 5s")
	assert.Contains(t, out, "bash")
}

func TestSnapshotCommandProviderFailure(t *testing.T) {
	stubProvider(t, nil, errors.New(errors.ErrProvider, "Failed to load metrics library", ""))

	var buf bytes.Buffer
	err := snapshotCommand(context.Background(), config.DefaultConfig(),
		console.NewPrinter(&buf, termenv.Ascii), 0)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrProvider))
	assert.Empty(t, buf.String())
}

func TestRunConsoleStopsOnCancel(t *testing.T) {
	fake := &fakeProvider{records: []snapshot.Record{{CPUUsagePercent: 12}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	state := dashboard.New(dashboard.DefaultLayout(), severity.DefaultConfig())
	err := runConsole(ctx, fake, state, &buf, termenv.Ascii)
	require.NoError(t, err)
	assert.Equal(t, 0, fake.fills)
}

func TestCommandsRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{"snapshot", "config", "version"} {
		assert.Contains(t, joined, want, fmt.Sprintf("missing %s command", want))
	}
}

func TestSnapshotCommandLogsCloseFailure(t *testing.T) {
	buf := logger.NewBuffer()
	prev := logger.Default()
	logger.SetDefault(buf)
	defer logger.SetDefault(prev)

	fake := &fakeProvider{
		records:  []snapshot.Record{{CPUUsagePercent: 5}},
		closeErr: fmt.Errorf("dlclose failed"),
	}
	stubProvider(t, fake, nil)

	var out bytes.Buffer
	err := snapshotCommand(context.Background(), config.DefaultConfig(),
		console.NewPrinter(&out, termenv.Ascii), 0)
	require.NoError(t, err)
	assert.True(t, fake.closed)
	assert.Equal(t, 1, buf.Count("warn"))
	assert.Contains(t, buf.Entries[0].Message, "dlclose failed")
}
