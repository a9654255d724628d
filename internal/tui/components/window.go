package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// Traffic light colors.
const (
	CloseColor    = lipgloss.Color("#FF736A")
	MinimizeColor = lipgloss.Color("#FEBC2E")
	ZoomColor     = lipgloss.Color("#19C332")
)

// DefaultSidebarWidth is the sidebar width including its edge column.
const DefaultSidebarWidth = 26

// TrafficLights renders the close, minimize and zoom controls.
func TrafficLights() string {
	dot := func(c lipgloss.Color) string {
		return lipgloss.NewStyle().Foreground(c).Render("●")
	}
	return dot(CloseColor) + " " + dot(MinimizeColor) + " " + dot(ZoomColor)
}

// FitBlock clips or pads s to exactly w columns and h lines.
func FitBlock(s string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	out := make([]string, h)
	for i := range out {
		l := ""
		if i < len(lines) {
			l = ansi.Truncate(lines[i], w, "")
		}
		if pad := w - ansi.StringWidth(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		out[i] = l
	}
	return strings.Join(out, "\n")
}

// GlassGradient returns one background color per row of a glass panel,
// blending from the rim highlight at the top to the glass fill at the
// bottom.
func GlassGradient(p styles.Palette, rows int) []lipgloss.Color {
	if rows <= 0 {
		return nil
	}
	out := make([]lipgloss.Color, rows)
	top, errTop := colorful.Hex(string(p.GlassEdge))
	bottom, errBottom := colorful.Hex(string(p.Glass))
	if errTop != nil || errBottom != nil {
		for i := range out {
			out[i] = p.Glass
		}
		return out
	}
	for i := range out {
		t := 1.0
		if rows > 1 {
			t = float64(i) / float64(rows-1)
		}
		out[i] = lipgloss.Color(top.BlendLab(bottom, t).Clamped().Hex())
	}
	return out
}

// SidebarPanel renders content as a w×h sidebar. With glass it is a liquid
// glass panel; otherwise it is the flat fallback panel.
func SidebarPanel(content string, w, h int, glass bool) string {
	if w <= 1 || h <= 0 {
		return FitBlock("", w, h)
	}
	p := styles.Current().Palette
	lines := strings.Split(FitBlock(content, w-1, h), "\n")

	if glass {
		rows := GlassGradient(p, h)
		edge := lipgloss.NewStyle().Foreground(p.GlassEdge)
		for i, l := range lines {
			lines[i] = lipgloss.NewStyle().Background(rows[i]).Render(l) + edge.Render("▕")
		}
		return strings.Join(lines, "\n")
	}

	bg := lipgloss.NewStyle().Background(p.Sidebar)
	edge := lipgloss.NewStyle().Foreground(p.Separator)
	for i, l := range lines {
		lines[i] = bg.Render(l) + edge.Render("│")
	}
	return strings.Join(lines, "\n")
}

// Window is a rounded window frame with a sidebar, a toolbar row and a
// content area. The traffic lights sit at the top of the sidebar.
type Window struct {
	Title        string
	Toolbar      string
	Sidebar      string
	SidebarWidth int
	Content      string
	Width        int
	Height       int
	Glass        bool
}

// WindowLayout holds the on-screen rectangles of a Window at (0, 0).
type WindowLayout struct {
	Close    pointer.Rect
	Minimize pointer.Rect
	Zoom     pointer.Rect
	Sidebar  pointer.Rect // rows below the traffic lights
	Toolbar  pointer.Rect
	Content  pointer.Rect
}

func (w Window) sidebarWidth() int {
	if w.Sidebar == "" {
		return 0
	}
	if w.SidebarWidth > 0 {
		return w.SidebarWidth
	}
	return DefaultSidebarWidth
}

// Layout computes where each part of the window is drawn.
func (w Window) Layout() WindowLayout {
	sw := w.sidebarWidth()
	innerH := max(w.Height-2, 0)
	mainW := max(w.Width-2-sw, 0)

	return WindowLayout{
		Close:    pointer.Rect{X: 2, Y: 1, W: 1, H: 1},
		Minimize: pointer.Rect{X: 4, Y: 1, W: 1, H: 1},
		Zoom:     pointer.Rect{X: 6, Y: 1, W: 1, H: 1},
		Sidebar:  pointer.Rect{X: 1, Y: 3, W: max(sw-1, 0), H: max(innerH-2, 0)},
		Toolbar:  pointer.Rect{X: 1 + sw, Y: 1, W: mainW, H: 1},
		Content:  pointer.Rect{X: 1 + sw, Y: 3, W: mainW, H: max(innerH-2, 0)},
	}
}

// View renders the window Width×Height cells.
func (w Window) View() string {
	if w.Width < 4 || w.Height < 4 {
		return ""
	}
	p := styles.Current().Palette
	l := w.Layout()
	innerH := w.Height - 2

	toolbar := w.Toolbar
	if toolbar == "" {
		toolbar = lipgloss.PlaceHorizontal(l.Toolbar.W, lipgloss.Center, styles.TitleStyle.Render(w.Title))
	}
	sep := lipgloss.NewStyle().Foreground(p.Separator).Render(strings.Repeat("─", l.Toolbar.W))
	column := strings.Join([]string{
		FitBlock(toolbar, l.Toolbar.W, 1),
		sep,
		FitBlock(w.Content, l.Content.W, l.Content.H),
	}, "\n")

	lights := " " + TrafficLights()
	var body string
	if sw := w.sidebarWidth(); sw > 0 {
		panel := SidebarPanel(lights+"\n\n"+w.Sidebar, sw, innerH, w.Glass)
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, column)
	} else {
		body = Overlay(column, lights, 0, 0)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Render(body)
}
