// Package msgs defines shared message types for TUI view transitions.
package msgs

import "github.com/pablasso/tahoe/internal/tui/components"

// GoToSectionMsg asks the showcase to show a section.
type GoToSectionMsg struct {
	ID string
}

// ShowAlertMsg asks the showcase to present a modal alert over the window.
type ShowAlertMsg struct {
	Alert components.Alert
}

// StatusMsg replaces the status bar message.
type StatusMsg struct {
	Text string
}
