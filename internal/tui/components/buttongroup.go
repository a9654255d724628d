package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// SelectionMode controls how a ButtonGroup tracks selection.
type SelectionMode int

const (
	SelectSingle SelectionMode = iota
	SelectMultiple
	SelectNone
)

// Group sizes.
const (
	GroupXL     = "xl"
	GroupMedium = "medium"
)

// GroupItem is one button of a ButtonGroup.
type GroupItem struct {
	Value    string
	Label    string
	Icon     string
	Disabled bool
}

// ButtonGroup is a row of joined buttons. In single and multiple mode it
// tracks selection and reports it with SelectionChangeMsg; in none mode
// items behave like plain buttons and emit ButtonPressedMsg{ID: id/value}.
type ButtonGroup struct {
	id       string
	items    []GroupItem
	mode     SelectionMode
	size     string
	selected map[string]bool

	cursor  int
	focused bool
	origin  pointer.Rect
}

// NewButtonGroup creates a medium group with nothing selected.
func NewButtonGroup(id string, mode SelectionMode, items ...GroupItem) ButtonGroup {
	return ButtonGroup{
		id:       id,
		items:    items,
		mode:     mode,
		size:     GroupMedium,
		selected: map[string]bool{},
	}
}

func (g ButtonGroup) ID() string    { return g.id }
func (g *ButtonGroup) Focus()       { g.focused = true }
func (g *ButtonGroup) Blur()        { g.focused = false }
func (g ButtonGroup) Focused() bool { return g.focused }
func (g ButtonGroup) Cursor() int   { return g.cursor }

// Items returns the group's items.
func (g ButtonGroup) Items() []GroupItem { return g.items }

// SetSize selects GroupXL or GroupMedium.
func (g *ButtonGroup) SetSize(size string) { g.size = size }

// SetOrigin places the group's first cell on screen.
func (g *ButtonGroup) SetOrigin(x, y int) {
	g.origin = pointer.Rect{X: x, Y: y, W: g.Width(), H: 1}
}

// Bounds returns the on-screen rectangle of the group.
func (g ButtonGroup) Bounds() pointer.Rect { return g.origin }

// SetDisabled enables or disables the item with the given value.
func (g *ButtonGroup) SetDisabled(value string, disabled bool) {
	for i := range g.items {
		if g.items[i].Value == value {
			g.items[i].Disabled = disabled
		}
	}
}

// SetSelected replaces the selection. Unknown values are ignored.
func (g *ButtonGroup) SetSelected(values ...string) {
	g.selected = map[string]bool{}
	for _, v := range values {
		if g.index(v) >= 0 {
			g.selected[v] = true
		}
		if g.mode == SelectSingle {
			break
		}
	}
}

// Selected returns the selected values in item order.
func (g ButtonGroup) Selected() []string {
	var out []string
	for _, it := range g.items {
		if g.selected[it.Value] {
			out = append(out, it.Value)
		}
	}
	return out
}

// IsSelected reports whether value is selected.
func (g ButtonGroup) IsSelected(value string) bool { return g.selected[value] }

func (g ButtonGroup) index(value string) int {
	for i, it := range g.items {
		if it.Value == value {
			return i
		}
	}
	return -1
}

// SeparatorVisible reports whether the divider after item i is drawn. It
// is hidden next to a selected item so the selection reads as one shape.
func (g ButtonGroup) SeparatorVisible(i int) bool {
	if i < 0 || i+1 >= len(g.items) {
		return false
	}
	return !g.selected[g.items[i].Value] && !g.selected[g.items[i+1].Value]
}

// activate applies a press on item i.
func (g ButtonGroup) activate(i int) (ButtonGroup, tea.Cmd) {
	if i < 0 || i >= len(g.items) || g.items[i].Disabled {
		return g, nil
	}
	it := g.items[i]
	g.cursor = i

	switch g.mode {
	case SelectSingle:
		g.selected = map[string]bool{it.Value: true}
	case SelectMultiple:
		next := make(map[string]bool, len(g.selected)+1)
		for k, v := range g.selected {
			next[k] = v
		}
		next[it.Value] = !next[it.Value]
		g.selected = next
	default:
		return g, send(ButtonPressedMsg{ID: g.id + "/" + it.Value})
	}
	return g, send(SelectionChangeMsg{ID: g.id, Values: g.Selected()})
}

// Update moves focus with Left/Right, activates with Enter/Space and
// handles clicks on items.
func (g ButtonGroup) Update(msg tea.Msg) (ButtonGroup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !g.focused || len(g.items) == 0 {
			return g, nil
		}
		switch msg.String() {
		case "left", "h":
			if g.cursor > 0 {
				g.cursor--
			}
		case "right", "l":
			if g.cursor < len(g.items)-1 {
				g.cursor++
			}
		case "enter", " ":
			return g.activate(g.cursor)
		}
	case tea.MouseMsg:
		if !pointer.IsPress(msg) || !g.origin.Contains(msg.X, msg.Y) {
			return g, nil
		}
		return g.activate(g.ItemAt(msg.X - g.origin.X))
	}
	return g, nil
}

// ItemAt returns the index of the item under column x relative to the
// group's left edge, or -1 when x falls on a divider or outside the group.
func (g ButtonGroup) ItemAt(x int) int {
	col := 0
	for i := range g.items {
		w := lipgloss.Width(g.renderItem(i))
		if x >= col && x < col+w {
			return i
		}
		col += w + 1 // divider
	}
	return -1
}

func (g ButtonGroup) padding() int {
	if g.size == GroupXL {
		return 2
	}
	return 1
}

func (g ButtonGroup) renderItem(i int) string {
	p := styles.Current().Palette
	it := g.items[i]

	style := lipgloss.NewStyle().
		Padding(0, g.padding()).
		Background(p.Surface).
		Foreground(p.Text)
	switch {
	case it.Disabled:
		style = style.Foreground(p.Disabled)
	case g.selected[it.Value]:
		style = style.Background(p.SurfaceHi).Foreground(p.Accent).Bold(true)
	}
	if g.focused && i == g.cursor {
		style = style.Underline(true)
	}

	text := it.Label
	if it.Icon != "" {
		text = strings.TrimSpace(it.Icon + " " + it.Label)
	}
	return style.Render(text)
}

// View renders the items joined by dividers.
func (g ButtonGroup) View() string {
	p := styles.Current().Palette
	divider := lipgloss.NewStyle().Background(p.Surface).Foreground(p.Separator)

	var b strings.Builder
	for i := range g.items {
		b.WriteString(g.renderItem(i))
		if i == len(g.items)-1 {
			break
		}
		if g.SeparatorVisible(i) {
			b.WriteString(divider.Render("│"))
		} else {
			b.WriteString(divider.Render(" "))
		}
	}
	return b.String()
}

// Width returns the rendered width in cells.
func (g ButtonGroup) Width() int {
	return lipgloss.Width(g.View())
}
