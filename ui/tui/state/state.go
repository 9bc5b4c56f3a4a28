package state

import (
	"time"

	"hostdash/internal/surface"
)

// AppState is what the TUI knows about the dashboard: the last completed
// frame plus view-local selection.
type AppState struct {
	Frame      surface.Frame
	Ready      bool
	LastUpdate time.Time
	Selected   int
}

// SelectedPID returns the PID of the selected process row, if any.
func (s AppState) SelectedPID() (int32, bool) {
	if !s.Ready || s.Selected < 0 || s.Selected >= len(s.Frame.Rows) {
		return 0, false
	}
	return s.Frame.Rows[s.Selected].PID, true
}
