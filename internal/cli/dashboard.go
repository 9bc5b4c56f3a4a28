package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"hostdash/internal/config"
	"hostdash/internal/dashboard"
	"hostdash/internal/errors"
	"hostdash/internal/logger"
	"hostdash/internal/provider"
	"hostdash/internal/scheduler"
	"hostdash/internal/severity"
	"hostdash/internal/surface"
	"hostdash/ui/console"
	"hostdash/ui/tui"
)

// dashboardCommand opens the provider once and runs the refresh cycle until
// the user quits or ctx is cancelled.
func dashboardCommand(ctx context.Context, cfg config.Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	prov, err := openProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProvider(prov)

	state := dashboard.New(dashboard.DefaultLayout(), severity.DefaultConfig())
	if !isTerminal(os.Stdout) {
		return runConsole(ctx, prov, state, out, termenv.Ascii)
	}
	return runTUI(ctx, prov, state, cfg)
}

func runTUI(ctx context.Context, prov provider.Provider, state *dashboard.State, cfg config.Config) error {
	// The TUI owns the terminal, so logs go to a file.
	logFile, err := tea.LogToFile(cfg.LogFile, "hostdash")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file "+cfg.LogFile,
			"Set log_file to a writable path")
	}
	defer logFile.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tui.NewProgram(tui.Options{Glow: cfg.Glow}, tea.WithContext(ctx))
	sched := scheduler.New(prov, state, prog.Surface(), scheduler.WithLogger(logger.New("[scheduler]")))

	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx) }()

	runErr := prog.Run()
	interrupted := ctx.Err() != nil
	sched.Stop()
	cancel()
	<-done

	if runErr != nil && !interrupted {
		return errors.WrapWithCode(runErr, errors.ErrRender, "Dashboard stopped unexpectedly", "")
	}
	return nil
}

// runConsole prints every completed frame as a plain report.
func runConsole(ctx context.Context, prov provider.Provider, state *dashboard.State, out io.Writer, profile termenv.Profile) error {
	printer := console.NewPrinter(out, profile)
	thresholds := severity.DefaultConfig()
	sink := surface.NewFrameBuilder(func(f surface.Frame) {
		printer.Print(f, thresholds.Evaluate(state.Record()))
	})
	return scheduler.New(prov, state, sink).Run(ctx)
}
