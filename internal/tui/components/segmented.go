package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// Segment is one option of a SegmentedControl.
type Segment struct {
	Value string
	Label string
	Icon  string
}

// SegmentedControl is a set of mutually exclusive segments.
//
// Ownership of the value is decided at construction: WithValue makes the
// control controlled (the owner applies ValueChangeMsg with SetValue),
// otherwise the control keeps the value itself, starting from
// WithDefaultValue or the first segment.
type SegmentedControl struct {
	id         string
	segments   []Segment
	value      string
	controlled bool
	glass      bool

	focused bool
	origin  pointer.Rect
}

// SegmentedOption configures a SegmentedControl.
type SegmentedOption func(*SegmentedControl)

// WithValue makes the control controlled with the given value.
func WithValue(v string) SegmentedOption {
	return func(s *SegmentedControl) {
		s.value = v
		s.controlled = true
	}
}

// WithDefaultValue sets the initial value of an uncontrolled control.
func WithDefaultValue(v string) SegmentedOption {
	return func(s *SegmentedControl) {
		if !s.controlled {
			s.value = v
		}
	}
}

// WithGlass renders the control on a glass track.
func WithGlass(on bool) SegmentedOption {
	return func(s *SegmentedControl) { s.glass = on }
}

// NewSegmentedControl creates a control over segments.
func NewSegmentedControl(id string, segments []Segment, opts ...SegmentedOption) SegmentedControl {
	s := SegmentedControl{id: id, segments: segments}
	for _, opt := range opts {
		opt(&s)
	}
	if s.value == "" && !s.controlled && len(segments) > 0 {
		s.value = segments[0].Value
	}
	return s
}

func (s SegmentedControl) ID() string       { return s.id }
func (s SegmentedControl) Value() string    { return s.value }
func (s SegmentedControl) Controlled() bool { return s.controlled }
func (s *SegmentedControl) Focus()          { s.focused = true }
func (s *SegmentedControl) Blur()           { s.focused = false }

// SetValue applies an owner-accepted value.
func (s *SegmentedControl) SetValue(v string) { s.value = v }

// SetOrigin places the control's first cell on screen.
func (s *SegmentedControl) SetOrigin(x, y int) {
	s.origin = pointer.Rect{X: x, Y: y, W: lipgloss.Width(s.View()), H: 1}
}

func (s SegmentedControl) selectedIndex() int {
	for i, seg := range s.segments {
		if seg.Value == s.value {
			return i
		}
	}
	return -1
}

// SeparatorVisible reports whether the divider between segment i and i+1
// is drawn: only when neither neighbour is selected.
func (s SegmentedControl) SeparatorVisible(i int) bool {
	if i < 0 || i+1 >= len(s.segments) {
		return false
	}
	sel := s.selectedIndex()
	return sel != i && sel != i+1
}

func (s SegmentedControl) choose(i int) (SegmentedControl, tea.Cmd) {
	if i < 0 || i >= len(s.segments) {
		return s, nil
	}
	v := s.segments[i].Value
	if v == s.value {
		return s, nil
	}
	if !s.controlled {
		s.value = v
	}
	return s, send(ValueChangeMsg{ID: s.id, Value: v})
}

// Update moves the selection with Left/Right while focused and selects
// clicked segments.
func (s SegmentedControl) Update(msg tea.Msg) (SegmentedControl, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		sel := s.selectedIndex()
		switch msg.String() {
		case "left", "h":
			return s.choose(sel - 1)
		case "right", "l":
			if sel < 0 {
				return s.choose(0)
			}
			return s.choose(sel + 1)
		}
	case tea.MouseMsg:
		if pointer.IsPress(msg) && s.origin.Contains(msg.X, msg.Y) {
			return s.choose(s.segmentAt(msg.X - s.origin.X))
		}
	}
	return s, nil
}

func (s SegmentedControl) label(i int) string {
	seg := s.segments[i]
	return " " + strings.TrimSpace(seg.Icon+" "+seg.Label) + " "
}

func (s SegmentedControl) segmentAt(x int) int {
	col := 0
	for i := range s.segments {
		w := lipgloss.Width(s.label(i))
		if x >= col && x < col+w {
			return i
		}
		col += w + 1
	}
	return -1
}

// View renders the segments on one line.
func (s SegmentedControl) View() string {
	p := styles.Current().Palette

	track := p.Surface
	if s.glass {
		track = p.Glass
	}
	base := lipgloss.NewStyle().Background(track).Foreground(p.Text)
	selected := lipgloss.NewStyle().Background(p.Window).Foreground(p.Text).Bold(true)
	if s.focused {
		selected = selected.Foreground(p.Accent)
	}
	divider := lipgloss.NewStyle().Background(track).Foreground(p.Separator)

	sel := s.selectedIndex()
	var b strings.Builder
	for i := range s.segments {
		if i == sel {
			b.WriteString(selected.Render(s.label(i)))
		} else {
			b.WriteString(base.Render(s.label(i)))
		}
		if i == len(s.segments)-1 {
			break
		}
		if s.SeparatorVisible(i) {
			b.WriteString(divider.Render("│"))
		} else {
			b.WriteString(divider.Render(" "))
		}
	}
	return b.String()
}

// DisclosureButton shows or hides related content.
type DisclosureButton struct {
	ID       string
	Label    string
	Expanded bool

	focused bool
	bounds  pointer.Rect
}

func (d *DisclosureButton) Focus()                   { d.focused = true }
func (d *DisclosureButton) Blur()                    { d.focused = false }
func (d *DisclosureButton) SetBounds(r pointer.Rect) { d.bounds = r }

// Update toggles on Enter/Space while focused or on a click and reports
// the new state.
func (d DisclosureButton) Update(msg tea.Msg) (DisclosureButton, tea.Cmd) {
	toggle := false
	switch msg := msg.(type) {
	case tea.KeyMsg:
		toggle = d.focused && (msg.String() == "enter" || msg.String() == " ")
	case tea.MouseMsg:
		toggle = pointer.IsPress(msg) && d.bounds.Contains(msg.X, msg.Y)
	}
	if !toggle {
		return d, nil
	}
	d.Expanded = !d.Expanded
	return d, send(DisclosureToggleMsg{ID: d.ID, Expanded: d.Expanded})
}

// View renders the triangle and label.
func (d DisclosureButton) View() string {
	p := styles.Current().Palette
	triangle := "▸"
	if d.Expanded {
		triangle = "▾"
	}
	style := lipgloss.NewStyle().Foreground(p.Text)
	if d.focused {
		style = style.Underline(true)
	}
	return lipgloss.NewStyle().Foreground(p.Secondary).Render(triangle) + " " + style.Render(d.Label)
}
