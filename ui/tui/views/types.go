package views

import (
	"hostdash/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Pre-rendered component views
	SpinnerView string
	GaugeViews  []string
	CPUChart    string
	RxChart     string
	TxChart     string
	TableView   string
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
