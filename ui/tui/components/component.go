package components

// Component is a dashboard widget. Widgets are redrawn from the latest
// frame and never talk to the scheduler.
type Component interface {
	Resize(width, height int)
	View() string
}
