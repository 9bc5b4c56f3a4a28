// Package cli wires the hostdash commands together.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hostdash/internal/config"
	"hostdash/internal/logger"
	"hostdash/internal/provider"
)

var configPath string

// openProvider is replaced in tests.
var openProvider = provider.Open

var rootCmd = &cobra.Command{
	Use:   "hostdash",
	Short: "Live host telemetry dashboard",
	Long: `hostdash samples CPU, memory, disk, GPU, network and process metrics once
per second and shows them as gauges, graphs and a process table.

When stdout is not a terminal, each sample is printed as a plain report
instead.

Examples:
  hostdash
  hostdash --config ./monitor.yaml
  hostdash snapshot`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		return dashboardCommand(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./.hostdash.yaml or ~/.config/hostdash/config.yaml)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	logger.SetDefault(logger.New("[hostdash]"))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		msg := err.Error()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprint(os.Stderr, msg)
		os.Exit(1)
	}
}

// closeProvider closes p, logging instead of failing the command.
func closeProvider(p provider.Provider) {
	if err := p.Close(); err != nil {
		logger.Default().Warn("close provider: %v", err)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
