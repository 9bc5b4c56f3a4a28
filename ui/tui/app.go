package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"hostdash/internal/surface"
	"hostdash/ui/tui/components"
	"hostdash/ui/tui/state"
	"hostdash/ui/tui/views"
)

// Gauges in display order.
var gaugeOrder = []struct {
	id    surface.GaugeID
	title string
}{
	{surface.GaugeCPU, "CPU"},
	{surface.GaugeRAM, "RAM"},
	{surface.GaugeGPU, "GPU"},
	{surface.GaugeDisk, "Disk"},
}

var zoneOnce sync.Once

// Options are the display settings of the TUI.
type Options struct {
	Glow bool
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	state    state.AppState
	spinner  spinner.Model
	gauges   map[surface.GaugeID]*components.GaugeWidget
	cpuChart *components.SeriesChart
	rxChart  *components.SeriesChart
	txChart  *components.SeriesChart
	table    *components.ProcessTable
	quitting bool
	width    int
	height   int
}

// Messages
type FrameMsg surface.Frame
type AnimateMsg time.Time

func InitialModel(opts Options) *MainModel {
	zoneOnce.Do(zone.NewGlobal)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))

	gauges := make(map[surface.GaugeID]*components.GaugeWidget, len(gaugeOrder))
	for _, g := range gaugeOrder {
		gauges[g.id] = components.NewGaugeWidget(g.title, opts.Glow)
	}

	return &MainModel{
		spinner:  s,
		gauges:   gauges,
		cpuChart: components.NewSeriesChart("CPU History", 40, 8),
		rxChart:  components.NewSeriesChart("Network RX (KB/s)", 40, 4),
		txChart:  components.NewSeriesChart("Network TX (KB/s)", 40, 4),
		table:    components.NewProcessTable(),
	}
}

func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		animateCmd(),
	)
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		for _, g := range m.gauges {
			g.Step()
		}
		return m, animateCmd()

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case FrameMsg:
		return m.handleFrameMsg(surface.Frame(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.table.Move(-1)
	case "down", "j":
		m.table.Move(1)
	}
	m.state.Selected = m.table.Selected
	return m, nil
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	newW := msg.Width/2 - 6
	for _, c := range []struct {
		widget components.Component
		height int
	}{
		{m.cpuChart, 8},
		{m.rxChart, 4},
		{m.txChart, 4},
		{m.table, msg.Height - 30},
	} {
		c.widget.Resize(newW, c.height)
	}
	return m, nil
}

// handleFrameMsg swaps in a completed frame. Frames are immutable copies, so
// no locking is needed against the scheduler producing the next one.
func (m *MainModel) handleFrameMsg(f surface.Frame) (tea.Model, tea.Cmd) {
	m.state.Frame = f
	m.state.Ready = true
	m.state.LastUpdate = time.Now()

	for id, g := range f.Gauges {
		if w, ok := m.gauges[id]; ok {
			w.Set(g)
		}
	}
	m.cpuChart.Set(f.Series[surface.SeriesCPU])
	m.rxChart.Set(f.Series[surface.SeriesNetRx])
	m.txChart.Set(f.Series[surface.SeriesNetTx])

	m.table.Rows = f.Rows
	m.table.Select(m.table.Selected)
	m.state.Selected = m.table.Selected
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i := range m.table.Rows {
		if zone.Get(components.RowZone(i)).InBounds(msg) {
			m.table.Select(i)
			m.state.Selected = i
			break
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	gaugeViews := make([]string, 0, len(gaugeOrder))
	for _, g := range gaugeOrder {
		gaugeViews = append(gaugeViews, m.gauges[g.id].View())
	}
	return views.RenderDashboard(m.state, views.ViewProps{
		Width:       m.width,
		Height:      m.height,
		SpinnerView: m.spinner.View(),
		GaugeViews:  gaugeViews,
		CPUChart:    m.cpuChart.View(),
		RxChart:     m.rxChart.View(),
		TxChart:     m.txChart.View(),
		TableView:   m.table.View(),
	})
}

// Program runs the TUI and exposes a Surface whose completed frames are
// delivered to it.
type Program struct {
	program *tea.Program
}

func NewProgram(opts Options, teaOpts ...tea.ProgramOption) *Program {
	teaOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, teaOpts...)
	return &Program{program: tea.NewProgram(InitialModel(opts), teaOpts...)}
}

// Surface returns a surface that sends each completed frame to the program.
// Send blocks until the program receives the frame and returns at once
// after the program has exited.
func (p *Program) Surface() surface.Surface {
	return surface.NewFrameBuilder(func(f surface.Frame) {
		p.program.Send(FrameMsg(f))
	})
}

func (p *Program) Run() error {
	_, err := p.program.Run()
	return err
}
