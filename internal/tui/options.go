package tui

import "github.com/pablasso/tahoe/internal/config"

// Options configures TUI startup behavior.
type Options struct {
	// Config is the loaded configuration with flag overrides applied.
	Config config.Config
	// Section overrides Config.StartSection when set.
	Section string
}

// startSection returns the section shown first.
func (o Options) startSection() string {
	if o.Section != "" {
		return o.Section
	}
	return o.Config.StartSection
}
