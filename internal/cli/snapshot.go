package cli

import (
	"context"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"hostdash/internal/config"
	"hostdash/internal/dashboard"
	"hostdash/internal/provider"
	"hostdash/internal/severity"
	"hostdash/internal/surface"
	"hostdash/ui/console"
)

var snapshotWait time.Duration

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one report and exit",
	Long: `Take a single sample and print it as a report.

Rates such as CPU usage and network throughput need two samples, so the
provider is sampled twice, --wait apart.

Examples:
  hostdash snapshot
  hostdash snapshot --wait 2s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		profile := termenv.Ascii
		if isTerminal(os.Stdout) {
			profile = termenv.EnvColorProfile()
		}
		return snapshotCommand(cmd.Context(), cfg, console.NewPrinter(cmd.OutOrStdout(), profile), snapshotWait)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().DurationVar(&snapshotWait, "wait", time.Second, "delay between the priming and the reported sample")
}

func snapshotCommand(ctx context.Context, cfg config.Config, printer *console.Printer, wait time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	prov, err := openProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProvider(prov)

	if wait > 0 {
		if _, _, err := provider.Sample(prov); err != nil {
			return err
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil
		}
	}

	rec, _, err := provider.Sample(prov)
	if err != nil {
		return err
	}

	thresholds := severity.DefaultConfig()
	state := dashboard.New(dashboard.DefaultLayout(), thresholds)
	state.Apply(rec)
	rr := surface.NewRecorder()
	state.Publish(rr)
	frame, _ := rr.Last()
	printer.Print(frame, thresholds.Evaluate(rec))
	return nil
}
