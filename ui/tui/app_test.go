package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hostdash/internal/dashboard"
	"hostdash/internal/projection"
	"hostdash/internal/severity"
	"hostdash/internal/snapshot"
	"hostdash/internal/surface"
)

func testFrame(t *testing.T) surface.Frame {
	t.Helper()
	rec := snapshot.Record{
		CPUModel:        "Test CPU",
		CPUUsagePercent: 50,
		RAMUsagePercent: 20,
		OSName:          "Linux",
		UptimeSeconds:   3725,
		Processes: snapshot.NewProcessList(
			snapshot.ProcessEntry{PID: 1, Name: "init", CPUPercent: 1, User: "root"},
			snapshot.ProcessEntry{PID: 2, Name: "bash", CPUPercent: 30, User: "alice"},
			snapshot.ProcessEntry{PID: 3, Name: "gcc", CPUPercent: 10, User: "alice"},
		),
	}
	st := dashboard.New(dashboard.DefaultLayout(), severity.DefaultConfig())
	st.Apply(rec)
	rec2 := surface.NewRecorder()
	st.Publish(rec2)
	f, ok := rec2.Last()
	if !ok {
		t.Fatal("expected a frame")
	}
	return f
}

func update(t *testing.T, m *MainModel, msg tea.Msg) *MainModel {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(*MainModel)
}

func TestWaitsForFirstFrame(t *testing.T) {
	m := InitialModel(Options{})
	if m.state.Ready {
		t.Fatal("expected model not ready before the first frame")
	}
	if !strings.Contains(m.View(), "Waiting for the first sample") {
		t.Errorf("expected waiting message, got %q", m.View())
	}
}

func TestFrameUpdatesState(t *testing.T) {
	m := update(t, InitialModel(Options{}), FrameMsg(testFrame(t)))

	if !m.state.Ready {
		t.Fatal("expected model ready after a frame")
	}
	if got := m.state.Frame.Text(surface.FieldUptime); got != "1h 2m 5s" {
		t.Errorf("uptime text = %q, want %q", got, "1h 2m 5s")
	}
	if len(m.table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(m.table.Rows))
	}
	if m.table.Rows[1].Tier != severity.High {
		t.Errorf("expected bash row high, got %v", m.table.Rows[1].Tier)
	}
	if !strings.Contains(m.View(), "Top Processes") {
		t.Error("expected process table in view")
	}
}

func TestProcessNavigation(t *testing.T) {
	m := update(t, InitialModel(Options{}), FrameMsg(testFrame(t)))

	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, 1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 2},
		{tea.KeyMsg{Type: tea.KeyDown}, 2},
		{tea.KeyMsg{Type: tea.KeyUp}, 1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, 0},
		{tea.KeyMsg{Type: tea.KeyUp}, 0},
	}
	for _, tt := range tests {
		m = update(t, m, tt.key)
		if m.state.Selected != tt.want {
			t.Errorf("after %q: selected = %d, want %d", tt.key.String(), m.state.Selected, tt.want)
		}
	}

	pid, ok := m.state.SelectedPID()
	if !ok || pid != 1 {
		t.Errorf("SelectedPID() = %d, %v; want 1, true", pid, ok)
	}
}

func TestSelectionClampsWhenRowsShrink(t *testing.T) {
	m := update(t, InitialModel(Options{}), FrameMsg(testFrame(t)))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	f := testFrame(t)
	f.Rows = []projection.Row{f.Rows[0]}
	m = update(t, m, FrameMsg(f))

	if m.state.Selected != 0 {
		t.Errorf("expected selection clamped to 0, got %d", m.state.Selected)
	}
}

func TestGaugeEasing(t *testing.T) {
	m := update(t, InitialModel(Options{Glow: true}), FrameMsg(testFrame(t)))
	cpu := m.gauges[surface.GaugeCPU]

	if cpu.Shown() != 0 {
		t.Fatalf("expected needle at 0 before animating, got %f", cpu.Shown())
	}

	animateMsg := AnimateMsg(time.Now())
	m = update(t, m, animateMsg)
	first := cpu.Shown()
	if first <= 0 || first >= 50 {
		t.Errorf("expected needle between 0 and 50 after one frame, got %f", first)
	}

	for i := 0; i < 300; i++ {
		m = update(t, m, animateMsg)
	}
	if diff := cpu.Shown() - 50; diff > 0.5 || diff < -0.5 {
		t.Errorf("expected needle to settle near 50, got %f", cpu.Shown())
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		m := InitialModel(Options{})
		updated, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("%q: expected quit command", key.String())
		}
		if !updated.(*MainModel).quitting {
			t.Errorf("%q: expected quitting", key.String())
		}
	}
}

func TestWindowSizeResizesWidgets(t *testing.T) {
	m := update(t, InitialModel(Options{}), tea.WindowSizeMsg{Width: 120, Height: 50})

	if m.cpuChart.Width != 54 || m.cpuChart.Height != 8 {
		t.Errorf("cpu chart = %dx%d, want 54x8", m.cpuChart.Width, m.cpuChart.Height)
	}
	if m.rxChart.Width != 54 || m.txChart.Height != 4 {
		t.Errorf("net charts = %dx%d / %dx%d, want 54x4", m.rxChart.Width, m.rxChart.Height, m.txChart.Width, m.txChart.Height)
	}
	if m.table.Height != 20 {
		t.Errorf("table height = %d, want 20", m.table.Height)
	}

	// Too small for the charts: previous sizes are kept.
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if m.cpuChart.Width != 54 {
		t.Errorf("cpu chart width = %d, want 54 kept", m.cpuChart.Width)
	}
}

func TestFooterShowsSelectedPID(t *testing.T) {
	m := update(t, InitialModel(Options{}), FrameMsg(testFrame(t)))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	if !strings.Contains(m.View(), "PID 2 selected") {
		t.Error("expected selected PID in footer")
	}
}
