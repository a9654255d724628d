package views

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tahoe/internal/scroll"
	"github.com/pablasso/tahoe/internal/tui/components"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// typographyPage lists the type ramp.
type typographyPage struct {
	noSync
	section Section
}

func newTypographyPage(s Section) *typographyPage {
	return &typographyPage{section: s}
}

func (p *typographyPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	for _, v := range components.TextVariants {
		t := components.Typography{Variant: v}
		meta := styles.SubtleStyle.Render(fmt.Sprintf("  %s · %dpt", v, t.Points()))
		c.text(t.Render("Lake Tahoe") + meta)
	}
	c.blank()
	c.label("Emphasis")
	c.text(components.Typography{Variant: components.Body, Emphasis: true}.Render("Body emphasized"))
	c.text(components.Typography{Variant: components.Footnote, Emphasis: true}.Render("Footnote emphasized"))
	return c.String()
}

func (p *typographyPage) Place(int, int)              {}
func (p *typographyPage) Focusables() int             { return 0 }
func (p *typographyPage) SetFocus(int) tea.Cmd        { return nil }
func (p *typographyPage) FocusIndex() int             { return -1 }
func (p *typographyPage) Typing() bool                { return false }
func (p *typographyPage) Update(tea.Msg) tea.Cmd      { return nil }
func (p *typographyPage) Teardown()                   {}
func (p *typographyPage) Hints() []components.KeyHint { return nil }

// Lines shown through the scrollbar demos.
var shoreline = []string{
	"Emerald Bay holds Fannette Island.",
	"Sand Harbor has granite boulders.",
	"The lake is 1,645 feet deep.",
	"Its water is clear to 70 feet.",
	"Sixty-three streams flow in.",
	"Only the Truckee River flows out.",
	"The shoreline runs 72 miles.",
	"It rarely freezes over.",
	"Washoe people named it Da ow.",
	"Rim trail loops 165 miles.",
	"Kings Beach faces south.",
	"Zephyr Cove sees afternoon wind.",
}

const (
	demoWidth  = 28
	demoHeight = 8
)

// scrollDemo is a scrollbar driving a window over a text excerpt. The page
// owns the position; the scrollbar only requests changes.
type scrollDemo struct {
	title string
	bar   components.Scrollbar
	lines []string // vertical: one entry per line; horizontal: a single line
	track pointer.Rect
}

func newScrollDemo(id, title string, o scroll.Orientation, position, ratio float64, interactive bool) scrollDemo {
	opts := []components.ScrollbarOption{
		components.WithOrientation(o),
		components.WithPosition(position),
		components.WithVisibleRatio(ratio),
	}
	if interactive {
		opts = append(opts, components.WithOnPositionChange(components.EmitPosition(id)))
	}

	d := scrollDemo{title: title, bar: components.NewScrollbar(id, opts...)}
	if o == scroll.Horizontal {
		d.lines = []string{ribbon(int(math.Round(demoWidth / ratio)))}
		return d
	}

	n := int(math.Round(demoHeight / ratio))
	d.lines = make([]string, n)
	for i := range d.lines {
		d.lines[i] = fmt.Sprintf("%2d %s", i+1, shoreline[i%len(shoreline)])
	}
	return d
}

// ribbon repeats place names up to n cells.
func ribbon(n int) string {
	const places = "Emerald Bay · Sand Harbor · Zephyr Cove · Kings Beach · Tahoe City · "
	s := strings.Repeat(places, n/len(places)+1)
	return ansi.Truncate(s, n, "")
}

// window returns the visible part of the excerpt for the current position.
func (d scrollDemo) window() string {
	style := lipgloss.NewStyle().
		Background(styles.Current().Palette.Surface).
		Foreground(styles.Current().Palette.Text)

	if d.bar.Orientation() == scroll.Horizontal {
		line := d.lines[0]
		hidden := ansi.StringWidth(line) - demoWidth
		start := int(math.Round(d.bar.Position() * float64(max(hidden, 0))))
		return style.Render(components.FitBlock(ansi.TruncateLeft(line, start, ""), demoWidth, 1))
	}

	hidden := len(d.lines) - demoHeight
	start := int(math.Round(d.bar.Position() * float64(max(hidden, 0))))
	end := min(start+demoHeight, len(d.lines))
	return style.Render(components.FitBlock(strings.Join(d.lines[start:end], "\n"), demoWidth, demoHeight))
}

// view renders the demo and returns the track position relative to the
// block's top-left corner.
func (d *scrollDemo) view() (string, pointer.Rect) {
	p := styles.Current().Palette
	title := lipgloss.NewStyle().Foreground(p.Text).Bold(true).Render(d.title)

	var track pointer.Rect
	var body string
	if d.bar.Orientation() == scroll.Horizontal {
		track = pointer.Rect{X: 0, Y: 2, W: demoWidth, H: 1}
		d.bar.SetTrack(pointer.Rect{W: track.W, H: track.H})
		body = d.window() + "\n" + d.bar.View()
	} else {
		track = pointer.Rect{X: demoWidth, Y: 1, W: 1, H: demoHeight}
		d.bar.SetTrack(pointer.Rect{W: track.W, H: track.H})
		body = lipgloss.JoinHorizontal(lipgloss.Top, d.window(), d.bar.View())
	}

	progress := components.NewProgress(d.bar.Position(), 10).View()
	value := styles.SubtleStyle.Render(fmt.Sprintf("%s · value %d", d.bar.Label(), d.bar.AccessibleValue()))
	if !d.bar.Interactive() {
		value = styles.SubtleStyle.Render("Display only")
	}
	return strings.Join([]string{title, body, progress, value}, "\n"), track
}

// scrollbarPage hosts two vertical scrollbars, one horizontal scrollbar
// and a display-only one.
type scrollbarPage struct {
	section Section
	demos   []scrollDemo // interactive demos first
	focus   focusRing
}

const interactiveDemos = 3

func newScrollbarPage(s Section) *scrollbarPage {
	return &scrollbarPage{
		section: s,
		demos: []scrollDemo{
			newScrollDemo("scrollbar/vertical-a", "Vertical · 40% visible", scroll.Vertical, 0.2, 0.4, true),
			newScrollDemo("scrollbar/vertical-b", "Vertical · 30% visible", scroll.Vertical, 0.6, 0.3, true),
			newScrollDemo("scrollbar/horizontal", "Horizontal · 50% visible", scroll.Horizontal, 0.3, 0.5, true),
			newScrollDemo("scrollbar/static", "Vertical · no handler", scroll.Vertical, 0.5, 0.6, false),
		},
		focus: focusRing{index: -1},
	}
}

func (p *scrollbarPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	blocks := make([]string, len(p.demos))
	tracks := make([]pointer.Rect, len(p.demos))
	for i := range p.demos {
		blocks[i], tracks[i] = p.demos[i].view()
	}

	c.label("Vertical")
	rects := c.flow(4, blocks[0], blocks[1], blocks[3])
	c.blank()
	c.label("Horizontal")
	rects = append(rects, c.text(blocks[2]))
	c.blank()
	c.text(styles.SubtleStyle.Render("Drag a thumb, click a track, or focus a scrollbar and use the arrow keys."))

	// rects follow the render order: a, b, static, horizontal.
	order := []int{0, 1, 3, 2}
	for k, i := range order {
		p.demos[i].track = tracks[i].Offset(rects[k].X, rects[k].Y)
	}
	return c.String()
}

func (p *scrollbarPage) Place(dx, dy int) {
	for i := range p.demos {
		p.demos[i].bar.SetTrack(p.demos[i].track.Offset(dx, dy))
	}
}

func (p *scrollbarPage) Focusables() int { return interactiveDemos }

func (p *scrollbarPage) SetFocus(i int) tea.Cmd {
	for j := range p.demos {
		p.demos[j].bar.Blur()
	}
	if p.focus.set(i, interactiveDemos) {
		p.demos[i].bar.Focus()
	}
	return nil
}

func (p *scrollbarPage) Typing() bool { return false }

func (p *scrollbarPage) FocusIndex() int { return p.focus.index }

func (p *scrollbarPage) Update(msg tea.Msg) tea.Cmd {
	if change, ok := msg.(components.PositionChangeMsg); ok {
		for i := range p.demos {
			if p.demos[i].bar.ID() == change.ID {
				p.demos[i].bar.SetPosition(change.Position)
			}
		}
		return nil
	}

	var cmds []tea.Cmd
	for i := range p.demos {
		var cmd tea.Cmd
		p.demos[i].bar, cmd = p.demos[i].bar.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (p *scrollbarPage) Sync(r *pointer.Router) {
	for _, d := range p.demos {
		if d.bar.Interactive() {
			components.SyncCapture(r, d.bar)
		}
	}
}

func (p *scrollbarPage) Teardown() {
	for i := range p.demos {
		p.demos[i].bar.CancelDrag()
	}
}

func (p *scrollbarPage) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "drag", Action: "Scroll"}, {Key: "←↑↓→", Action: "Nudge"}, {Key: "home/end", Action: "Ends"}}
}
