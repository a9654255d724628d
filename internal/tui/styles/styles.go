// Package styles defines the Tahoe palettes and the shared lipgloss styles.
//
// The active theme is process-wide: Set swaps the palette and rebuilds the
// shared styles below. Components read Current() when they render, so a
// theme change takes effect on the next frame.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is built from.
type Palette struct {
	Name string

	Text       lipgloss.Color // primary label
	Secondary  lipgloss.Color // secondary label
	Disabled   lipgloss.Color // disabled label
	Accent     lipgloss.Color // Tahoe blue
	AccentText lipgloss.Color // text on accent fills
	Link       lipgloss.Color // borderless button text
	Red        lipgloss.Color
	Green      lipgloss.Color
	Yellow     lipgloss.Color

	Window    lipgloss.Color // window background
	Surface   lipgloss.Color // bordered neutral fill (5% black)
	SurfaceHi lipgloss.Color // hovered/pressed neutral fill
	Separator lipgloss.Color
	Border    lipgloss.Color
	Sidebar   lipgloss.Color // flat sidebar fallback
	Glass     lipgloss.Color // liquid glass fill
	GlassEdge lipgloss.Color // liquid glass rim highlight
	Menu      lipgloss.Color // menu and popover background
	Tooltip   lipgloss.Color
	TooltipFg lipgloss.Color
	Zebra     lipgloss.Color
	Inactive  lipgloss.Color // selected-but-unfocused rows
	Dim       lipgloss.Color // overlay scrim

	Track      lipgloss.Color
	Thumb      lipgloss.Color
	ThumbHover lipgloss.Color
	ThumbDrag  lipgloss.Color
}

// Light is the default appearance.
var Light = Palette{
	Name:       "light",
	Text:       lipgloss.Color("#262626"),
	Secondary:  lipgloss.Color("#8A8A8A"),
	Disabled:   lipgloss.Color("#BFBFBF"),
	Accent:     lipgloss.Color("#0088FF"),
	AccentText: lipgloss.Color("#FFFFFF"),
	Link:       lipgloss.Color("#0A84FF"),
	Red:        lipgloss.Color("#FF383C"),
	Green:      lipgloss.Color("#34C759"),
	Yellow:     lipgloss.Color("#FEBC2E"),
	Window:     lipgloss.Color("#FFFFFF"),
	Surface:    lipgloss.Color("#F2F2F2"),
	SurfaceHi:  lipgloss.Color("#D9D9D9"),
	Separator:  lipgloss.Color("#E5E5E5"),
	Border:     lipgloss.Color("#D1D1D1"),
	Sidebar:    lipgloss.Color("#EDEDED"),
	Glass:      lipgloss.Color("#E8EEF6"),
	GlassEdge:  lipgloss.Color("#FFFFFF"),
	Menu:       lipgloss.Color("#F4F4F4"),
	Tooltip:    lipgloss.Color("#333333"),
	TooltipFg:  lipgloss.Color("#FFFFFF"),
	Zebra:      lipgloss.Color("#F7F7F7"),
	Inactive:   lipgloss.Color("#DCDCDC"),
	Dim:        lipgloss.Color("#9A9A9A"),
	Track:      lipgloss.Color("#E0E0E0"),
	Thumb:      lipgloss.Color("#B8B8B8"),
	ThumbHover: lipgloss.Color("#A0A0A0"),
	ThumbDrag:  lipgloss.Color("#7A7A7A"),
}

// Dark is the dark appearance.
var Dark = Palette{
	Name:       "dark",
	Text:       lipgloss.Color("#EDEDED"),
	Secondary:  lipgloss.Color("#9A9A9A"),
	Disabled:   lipgloss.Color("#5C5C5C"),
	Accent:     lipgloss.Color("#0091FF"),
	AccentText: lipgloss.Color("#FFFFFF"),
	Link:       lipgloss.Color("#409CFF"),
	Red:        lipgloss.Color("#FF4245"),
	Green:      lipgloss.Color("#30D158"),
	Yellow:     lipgloss.Color("#FFD60A"),
	Window:     lipgloss.Color("#1E1E1E"),
	Surface:    lipgloss.Color("#3A3A3A"),
	SurfaceHi:  lipgloss.Color("#505050"),
	Separator:  lipgloss.Color("#3D3D3D"),
	Border:     lipgloss.Color("#4A4A4A"),
	Sidebar:    lipgloss.Color("#2A2A2A"),
	Glass:      lipgloss.Color("#2E3540"),
	GlassEdge:  lipgloss.Color("#5A6575"),
	Menu:       lipgloss.Color("#2C2C2C"),
	Tooltip:    lipgloss.Color("#E6E6E6"),
	TooltipFg:  lipgloss.Color("#000000"),
	Zebra:      lipgloss.Color("#242424"),
	Inactive:   lipgloss.Color("#3A3A3A"),
	Dim:        lipgloss.Color("#4A4A4A"),
	Track:      lipgloss.Color("#333333"),
	Thumb:      lipgloss.Color("#5E5E5E"),
	ThumbHover: lipgloss.Color("#767676"),
	ThumbDrag:  lipgloss.Color("#9E9E9E"),
}

// Theme is a palette plus rendering capabilities.
type Theme struct {
	Palette Palette
	Glass   bool // liquid glass enabled and supported
}

// WithAccent returns a copy of p with the accent replaced.
func (p Palette) WithAccent(accent string) Palette {
	if accent == "" {
		return p
	}
	p.Accent = lipgloss.Color(accent)
	return p
}

var current = Theme{Palette: Light}

var (
	// TitleStyle for headers
	TitleStyle lipgloss.Style

	// SubtleStyle for hints/help text
	SubtleStyle lipgloss.Style

	// SelectedStyle for selected items in lists
	SelectedStyle lipgloss.Style

	// SectionStyle for sidebar and menu section headers
	SectionStyle lipgloss.Style

	// StatusBarStyle for bottom status bar
	StatusBarStyle lipgloss.Style

	// BoxStyle for panel borders
	BoxStyle lipgloss.Style

	// SuccessStyle for success messages
	SuccessStyle lipgloss.Style

	// ErrorStyle for error messages
	ErrorStyle lipgloss.Style
)

func init() {
	Set(current)
}

// Current returns the active theme.
func Current() Theme {
	return current
}

// Set makes t the active theme and rebuilds the shared styles.
func Set(t Theme) {
	current = t
	p := t.Palette

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)

	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	SectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Green)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Red)
}
