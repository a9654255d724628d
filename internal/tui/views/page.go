package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/components"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// page is the content of one section. Pages own their widgets and mutate
// them in place; the showcase renders a page into its scroll viewport and
// then places it on screen so the widgets can hit-test pointer events.
type page interface {
	// Render lays the page out width cells wide and remembers where each
	// widget landed, relative to the first line.
	Render(width int) string
	// Place moves every widget to the screen, given where the first line
	// of the page is drawn.
	Place(dx, dy int)
	// Focusables is the number of keyboard focus stops on the page.
	Focusables() int
	// SetFocus focuses stop i and blurs the others; -1 blurs everything.
	SetFocus(i int) tea.Cmd
	// FocusIndex returns the focused stop, or -1.
	FocusIndex() int
	// Typing reports whether the focused stop consumes printable keys.
	Typing() bool
	Update(msg tea.Msg) tea.Cmd
	// Sync mirrors drag state onto the pointer capture.
	Sync(r *pointer.Router)
	// Teardown closes drags and menus before the page goes away.
	Teardown()
	Hints() []components.KeyHint
}

// canvas stacks rendered blocks and records their positions.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width int) *canvas {
	return &canvas{width: width}
}

// text appends a block and returns where it landed.
func (c *canvas) text(block string) pointer.Rect {
	r := pointer.Rect{X: 0, Y: len(c.lines), W: lipgloss.Width(block), H: lipgloss.Height(block)}
	c.lines = append(c.lines, strings.Split(block, "\n")...)
	return r
}

func (c *canvas) blank() {
	c.lines = append(c.lines, "")
}

// row lays blocks out side by side, gap cells apart, top-aligned.
func (c *canvas) row(gap int, blocks ...string) []pointer.Rect {
	rects := make([]pointer.Rect, len(blocks))
	parts := make([]string, 0, 2*len(blocks))
	spacer := strings.Repeat(" ", gap)
	x := 0
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, spacer)
			x += gap
		}
		rects[i] = pointer.Rect{X: x, Y: len(c.lines), W: lipgloss.Width(b), H: lipgloss.Height(b)}
		x += rects[i].W
		parts = append(parts, b)
	}
	c.text(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	return rects
}

// flow lays blocks out like row but starts a new row, one blank line
// down, whenever the next block would overflow the canvas width.
func (c *canvas) flow(gap int, blocks ...string) []pointer.Rect {
	rects := make([]pointer.Rect, 0, len(blocks))
	start, x := 0, 0
	for i, b := range blocks {
		w := lipgloss.Width(b)
		if i > start && x+gap+w > c.width {
			rects = append(rects, c.row(gap, blocks[start:i]...)...)
			c.blank()
			start, x = i, 0
		}
		if i > start {
			x += gap
		}
		x += w
	}
	if start < len(blocks) {
		rects = append(rects, c.row(gap, blocks[start:]...)...)
	}
	return rects
}

// heading writes the section title and blurb.
func (c *canvas) heading(s Section) {
	c.text(components.Typography{Variant: components.Title2}.Render(s.Title))
	c.text(components.Typography{Variant: components.Subheadline}.Render(s.Blurb))
	c.blank()
}

// label writes a caption header above a group of controls.
func (c *canvas) label(text string) {
	c.text(components.Typography{Variant: components.Caption2, Emphasis: true}.Render(text))
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// readout renders a secondary "name: value" line.
func readout(name, value string) string {
	return styles.SubtleStyle.Render(name+": ") + lipgloss.NewStyle().Foreground(styles.Current().Palette.Text).Render(value)
}

// focusRing tracks which stop of a page has keyboard focus.
type focusRing struct {
	index int
}

func (f focusRing) is(i int) bool { return f.index == i }

func (f *focusRing) set(i, n int) bool {
	if i < 0 || i >= n {
		f.index = -1
		return false
	}
	f.index = i
	return true
}

// joined formats values for a readout.
func joined(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
