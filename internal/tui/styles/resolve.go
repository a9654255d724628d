package styles

import (
	"github.com/muesli/termenv"
	"github.com/pablasso/tahoe/internal/config"
)

// Terminal reports the capabilities a theme depends on.
type Terminal interface {
	HasDarkBackground() bool
	ColorProfile() termenv.Profile
}

type envTerminal struct{}

func (envTerminal) HasDarkBackground() bool       { return termenv.HasDarkBackground() }
func (envTerminal) ColorProfile() termenv.Profile { return termenv.EnvColorProfile() }

// DetectTerminal returns a Terminal backed by the process environment.
func DetectTerminal() Terminal {
	return envTerminal{}
}

// Resolve builds the theme described by cfg for the given terminal.
func Resolve(cfg config.Config, term Terminal) Theme {
	var p Palette
	switch cfg.Appearance {
	case config.AppearanceDark:
		p = Dark
	case config.AppearanceLight:
		p = Light
	default:
		if term.HasDarkBackground() {
			p = Dark
		} else {
			p = Light
		}
	}

	return Theme{
		Palette: p.WithAccent(cfg.Accent),
		Glass:   GlassSupported(cfg.Glass, term.ColorProfile()),
	}
}

// GlassSupported reports whether the liquid glass effect renders. Glass
// needs TrueColor for its tinted layers; other profiles fall back to the
// flat panel even when glass is forced on.
func GlassSupported(mode config.Glass, profile termenv.Profile) bool {
	if mode == config.GlassOff {
		return false
	}
	return profile == termenv.TrueColor
}
