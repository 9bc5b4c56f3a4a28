package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"hostdash/internal/surface"
	"hostdash/ui/tui/state"
	"hostdash/ui/tui/styles"
)

type DashboardView struct{}

func (v DashboardView) Render(s state.AppState, props ViewProps) string {
	title := styles.TitleStyle.Render("HOSTDASH")
	if !s.Ready {
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Left, props.SpinnerView, title),
			styles.HelpStyle.Render("\n  Waiting for the first sample..."),
		)
	}

	f := s.Frame
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		props.SpinnerView,
		title,
		styles.HelpStyle.Render(fmt.Sprintf("%s  |  up %s  |  #%d  %s",
			f.Text(surface.FieldOS), f.Text(surface.FieldUptime), f.Seq, s.LastUpdate.Format("15:04:05"))),
	)

	gauges := make([]string, 0, len(props.GaugeViews))
	for _, g := range props.GaugeViews {
		gauges = append(gauges, styles.CardStyle.Render(g))
	}
	gaugeRow := lipgloss.JoinHorizontal(lipgloss.Top, gauges...)

	cpuCard := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		props.CPUChart,
		f.Text(surface.FieldCPUInfo),
		"Cores: "+f.Text(surface.FieldCores),
	))
	netCard := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		props.RxChart,
		props.TxChart,
		f.Text(surface.FieldNetInfo),
	))
	chartRow := lipgloss.JoinHorizontal(lipgloss.Top, cpuCard, netCard)

	info := lipgloss.JoinVertical(lipgloss.Left,
		InfoCard("Memory", 30, [2]string{"", f.Text(surface.FieldRAMInfo)}),
		InfoCard("GPU", 30, [2]string{"", f.Text(surface.FieldGPUInfo)}),
		InfoCard("Disk", 30, [2]string{"", f.Text(surface.FieldDiskInfo)}),
		InfoCard("System", 30,
			[2]string{"OS", f.Text(surface.FieldOS)},
			[2]string{"Kernel", f.Text(surface.FieldKernel)},
			[2]string{"Uptime", f.Text(surface.FieldUptime)},
		),
	)
	table := styles.CardStyle.Render(props.TableView)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, table, info)

	help := "[↑/↓] Select process • click a row • [Q] Quit"
	if pid, ok := s.SelectedPID(); ok {
		help = fmt.Sprintf("PID %d selected • %s", pid, help)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		gaugeRow,
		chartRow,
		bottomRow,
		styles.HelpStyle.Render(help),
	))
}
