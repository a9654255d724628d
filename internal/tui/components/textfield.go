package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
	"github.com/pablasso/tahoe/internal/util"
)

// Text field variants.
const (
	FieldDefault = "default"
	FieldSearch  = "search"
)

const searchIcon = "⌕"

// TextField is a labelled single-line input with an optional icon and
// error message. Edits are reported with ValueChangeMsg.
type TextField struct {
	id       string
	label    string
	errText  string
	icon     string
	variant  string
	disabled bool
	width    int

	input  textinput.Model
	bounds pointer.Rect
}

// TextFieldOption configures a TextField.
type TextFieldOption func(*TextField)

// WithFieldID sets the field's id. Fields without one get a generated id.
func WithFieldID(id string) TextFieldOption {
	return func(f *TextField) { f.id = id }
}

func WithLabel(label string) TextFieldOption {
	return func(f *TextField) { f.label = label }
}

func WithPlaceholder(text string) TextFieldOption {
	return func(f *TextField) { f.input.Placeholder = text }
}

func WithIcon(icon string) TextFieldOption {
	return func(f *TextField) { f.icon = icon }
}

// WithVariant selects FieldDefault or FieldSearch. The search variant shows
// a magnifier when no icon is set.
func WithVariant(v string) TextFieldOption {
	return func(f *TextField) { f.variant = v }
}

func WithError(msg string) TextFieldOption {
	return func(f *TextField) { f.errText = msg }
}

// WithWidth sets the outer width including the border.
func WithWidth(w int) TextFieldOption {
	return func(f *TextField) { f.width = w }
}

func WithDisabled(disabled bool) TextFieldOption {
	return func(f *TextField) { f.disabled = disabled }
}

// NewTextField creates a text field 30 cells wide.
func NewTextField(opts ...TextFieldOption) TextField {
	ti := textinput.New()
	ti.Prompt = ""

	f := TextField{
		variant: FieldDefault,
		width:   30,
		input:   ti,
	}
	for _, opt := range opts {
		opt(&f)
	}
	if f.id == "" {
		f.id = util.ElementID("textfield")
	}
	if f.variant == FieldSearch && f.icon == "" {
		f.icon = searchIcon
	}
	f.input.Width = f.innerWidth()
	return f
}

func (f TextField) ID() string                { return f.id }
func (f TextField) Value() string             { return f.input.Value() }
func (f TextField) Error() string             { return f.errText }
func (f TextField) Focused() bool             { return f.input.Focused() }
func (f *TextField) SetValue(v string)        { f.input.SetValue(v) }
func (f *TextField) SetError(msg string)      { f.errText = msg }
func (f *TextField) SetBounds(r pointer.Rect) { f.bounds = r }

// Focus focuses the input unless the field is disabled.
func (f *TextField) Focus() tea.Cmd {
	if f.disabled {
		return nil
	}
	return f.input.Focus()
}

func (f *TextField) Blur() { f.input.Blur() }

func (f TextField) innerWidth() int {
	w := f.width - 5 // border, padding and cursor
	if f.icon != "" {
		w -= 2
	}
	if w < 1 {
		return 1
	}
	return w
}

// Update forwards keys to the input while focused and reports edits. A
// click inside the field focuses it.
func (f TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	if f.disabled {
		return f, nil
	}
	if m, ok := msg.(tea.MouseMsg); ok {
		if pointer.IsPress(m) && f.bounds.Contains(m.X, m.Y) && !f.input.Focused() {
			return f, f.Focus()
		}
		return f, nil
	}

	prev := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if v := f.input.Value(); v != prev {
		return f, tea.Batch(cmd, send(ValueChangeMsg{ID: f.id, Value: v}))
	}
	return f, cmd
}

// View renders the label, the bordered input and the error line.
func (f TextField) View() string {
	p := styles.Current().Palette

	border := p.Border
	switch {
	case f.errText != "":
		border = p.Red
	case f.input.Focused():
		border = p.Accent
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(f.width - 2)

	body := f.input.View()
	if f.icon != "" {
		body = lipgloss.NewStyle().Foreground(p.Secondary).Render(f.icon) + " " + body
	}
	if f.disabled {
		body = lipgloss.NewStyle().Foreground(p.Disabled).Render(f.input.Value())
	}

	var parts []string
	if f.label != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(p.Text).Bold(true).Render(f.label))
	}
	parts = append(parts, box.Render(body))
	if f.errText != "" {
		parts = append(parts, styles.ErrorStyle.Render(f.errText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Window search sizes.
const (
	SearchXL     = "xl"
	SearchMedium = "medium"
)

// WindowSearch is the toolbar search field. Like SegmentedControl it is
// controlled when created with WithSearchValue: typed text is held back
// until the owner confirms it with SetValue.
type WindowSearch struct {
	id         string
	size       string
	disabled   bool
	controlled bool

	input   textinput.Model
	pending *textinput.Model
	bounds  pointer.Rect
}

// SearchOption configures a WindowSearch.
type SearchOption func(*WindowSearch)

// WithSearchValue makes the field controlled with the given value.
func WithSearchValue(v string) SearchOption {
	return func(s *WindowSearch) {
		s.controlled = true
		s.input.SetValue(v)
	}
}

// WithSearchDefault sets the initial value of an uncontrolled field.
func WithSearchDefault(v string) SearchOption {
	return func(s *WindowSearch) {
		if !s.controlled {
			s.input.SetValue(v)
		}
	}
}

// WithSearchSize selects SearchXL or SearchMedium.
func WithSearchSize(size string) SearchOption {
	return func(s *WindowSearch) { s.size = size }
}

func WithSearchDisabled(disabled bool) SearchOption {
	return func(s *WindowSearch) { s.disabled = disabled }
}

// NewWindowSearch creates a medium, uncontrolled search field.
func NewWindowSearch(id string, opts ...SearchOption) WindowSearch {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search"

	s := WindowSearch{id: id, size: SearchMedium, input: ti}
	for _, opt := range opts {
		opt(&s)
	}
	s.input.Width = s.Width() - 5
	return s
}

func (s WindowSearch) ID() string       { return s.id }
func (s WindowSearch) Value() string    { return s.input.Value() }
func (s WindowSearch) Focused() bool    { return s.input.Focused() }
func (s WindowSearch) Controlled() bool { return s.controlled }
func (s *WindowSearch) Blur()           { s.input.Blur() }

// SetBounds places the field on screen.
func (s *WindowSearch) SetBounds(r pointer.Rect) { s.bounds = r }

// Bounds returns the on-screen rectangle.
func (s WindowSearch) Bounds() pointer.Rect { return s.bounds }

// Focus focuses the field unless it is disabled.
func (s *WindowSearch) Focus() tea.Cmd {
	if s.disabled {
		return nil
	}
	return s.input.Focus()
}

// SetValue applies an owner-accepted value. Accepting the value that was
// just typed keeps the cursor where the user left it.
func (s *WindowSearch) SetValue(v string) {
	if s.pending != nil && s.pending.Value() == v {
		s.input = *s.pending
	} else {
		s.input.SetValue(v)
	}
	s.pending = nil
}

// Width returns the rendered width in cells.
func (s WindowSearch) Width() int {
	if s.size == SearchXL {
		return 30
	}
	return 22
}

// Update edits the value while focused. Clicking the field focuses it.
func (s WindowSearch) Update(msg tea.Msg) (WindowSearch, tea.Cmd) {
	if s.disabled {
		return s, nil
	}
	if m, ok := msg.(tea.MouseMsg); ok {
		if pointer.IsPress(m) && s.bounds.Contains(m.X, m.Y) && !s.input.Focused() {
			return s, s.Focus()
		}
		return s, nil
	}

	prev := s.input.Value()
	next, cmd := s.input.Update(msg)
	if next.Value() == prev {
		s.input = next
		return s, cmd
	}

	if s.controlled {
		s.pending = &next
	} else {
		s.input = next
	}
	return s, tea.Batch(cmd, send(ValueChangeMsg{ID: s.id, Value: next.Value()}))
}

// View renders the pill-shaped field. A focused, enabled field shows an
// accent ring.
func (s WindowSearch) View() string {
	p := styles.Current().Palette

	ring := p.Window
	if s.input.Focused() && !s.disabled {
		ring = p.Accent
	}
	caps := lipgloss.NewStyle().Foreground(ring)
	body := lipgloss.NewStyle().
		Background(p.Surface).
		Foreground(p.Text).
		Width(s.Width() - 2)

	icon := lipgloss.NewStyle().Foreground(p.Secondary).Render(searchIcon)
	text := s.input.View()
	if s.disabled {
		text = lipgloss.NewStyle().Foreground(p.Disabled).Render(s.input.Placeholder)
	}
	return caps.Render("▐") + body.Render(icon+" "+text) + caps.Render("▌")
}
