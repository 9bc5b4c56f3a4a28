// Command snapdump prints one decoded metrics record as YAML. The record
// comes from the configured provider or from a raw record file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hostdash/internal/config"
	"hostdash/internal/errors"
	"hostdash/internal/provider"
	"hostdash/internal/snapshot"
)

var (
	configPath string
	rawIn      string
	rawOut     string
	wait       time.Duration
)

// openProvider is replaced in tests.
var openProvider = provider.Open

func main() {
	cmd := &cobra.Command{
		Use:   "snapdump",
		Short: "Dump one decoded metrics record as YAML",
		Long: `Sample the configured provider once, or read a raw record file, and print
the decoded record as YAML.

CPU usage and network rates are deltas, so a live provider is sampled
twice, --wait apart, and the second sample is dumped.

Examples:
  snapdump
  snapdump --wait 2s
  snapdump --raw-out sample.bin
  snapdump --raw sample.bin`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file")
	cmd.Flags().StringVar(&rawIn, "raw", "", "decode this raw record file instead of sampling")
	cmd.Flags().StringVar(&rawOut, "raw-out", "", "also write the raw record bytes to this file")
	cmd.Flags().DurationVar(&wait, "wait", time.Second, "delay between the priming and the dumped sample")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	var prov provider.Provider
	if rawIn != "" {
		raw, err := os.ReadFile(rawIn)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrDecode, "Cannot read raw record", "Check the --raw path")
		}
		prov = provider.Static{Raw: raw}
	} else {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		if prov, err = openProvider(ctx, cfg); err != nil {
			return err
		}
	}
	defer prov.Close()

	buf := make([]byte, snapshot.RecordSize)
	if rawIn == "" && wait > 0 {
		if err := prov.Fill(buf); err != nil {
			return errors.Wrap(err, "Failed to read metrics")
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := prov.Fill(buf); err != nil {
		return errors.Wrap(err, "Failed to read metrics")
	}
	if rawOut != "" {
		if err := os.WriteFile(rawOut, buf, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", rawOut, err)
		}
	}

	rec, rep, err := snapshot.Decode(buf)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrDecode, "Failed to decode metrics record", "")
	}
	return yaml.NewEncoder(out).Encode(newDump(rec, rep))
}

type processDump struct {
	PID  int32   `yaml:"pid"`
	Name string  `yaml:"name"`
	CPU  float64 `yaml:"cpu_percent"`
	RAM  float64 `yaml:"ram_percent"`
	User string  `yaml:"user"`
}

type dump struct {
	CPUModel    string    `yaml:"cpu_model"`
	CPUFreqMHz  float64   `yaml:"cpu_freq_mhz"`
	CPUUsage    float64   `yaml:"cpu_usage"`
	Cores       []float64 `yaml:"cores_usage"`
	RAMTotalGB  float64   `yaml:"ram_total_gb"`
	RAMUsedGB   float64   `yaml:"ram_used_gb"`
	RAMUsage    float64   `yaml:"ram_usage"`
	DiskTotalGB float64   `yaml:"disk_total_gb"`
	DiskUsedGB  float64   `yaml:"disk_used_gb"`
	DiskUsage   float64   `yaml:"disk_usage"`
	Uptime      int64     `yaml:"uptime_seconds"`
	OSName      string    `yaml:"os_name"`
	Kernel      string    `yaml:"kernel_version"`
	GPUName     string    `yaml:"gpu_name"`
	GPUUsage    float64   `yaml:"gpu_usage"`
	GPUMemTotal float64   `yaml:"gpu_memory_total_gb"`
	GPUMemUsed  float64   `yaml:"gpu_memory_used_gb"`
	NetRx       float64   `yaml:"net_rx_kbps"`
	NetTx       float64   `yaml:"net_tx_kbps"`

	Processes []processDump `yaml:"processes"`

	ReportedCores     int32 `yaml:"reported_core_count"`
	ReportedProcesses int32 `yaml:"reported_process_count"`
	Clamped           bool  `yaml:"clamped"`
}

func newDump(rec snapshot.Record, rep snapshot.Report) dump {
	d := dump{
		CPUModel:          rec.CPUModel,
		CPUFreqMHz:        rec.CPUFreqMHz,
		CPUUsage:          rec.CPUUsagePercent,
		Cores:             rec.Cores.Values(),
		RAMTotalGB:        rec.RAMTotalGB,
		RAMUsedGB:         rec.RAMUsedGB,
		RAMUsage:          rec.RAMUsagePercent,
		DiskTotalGB:       rec.DiskTotalGB,
		DiskUsedGB:        rec.DiskUsedGB,
		DiskUsage:         rec.DiskUsagePercent,
		Uptime:            rec.UptimeSeconds,
		OSName:            rec.OSName,
		Kernel:            rec.KernelVersion,
		GPUName:           rec.GPUName,
		GPUUsage:          rec.GPUUsagePercent,
		GPUMemTotal:       rec.GPUMemoryTotalGB,
		GPUMemUsed:        rec.GPUMemoryUsedGB,
		NetRx:             rec.NetRxKbps,
		NetTx:             rec.NetTxKbps,
		ReportedCores:     rep.ReportedCores,
		ReportedProcesses: rep.ReportedProcesses,
		Clamped:           rep.Clamped(),
	}
	for _, p := range rec.Processes.Entries() {
		d.Processes = append(d.Processes, processDump{PID: p.PID, Name: p.Name, CPU: p.CPUPercent, RAM: p.RAMPercent, User: p.User})
	}
	return d
}
