package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// ToggleKind selects the glyphs of a Toggle.
type ToggleKind int

const (
	KindSwitch ToggleKind = iota
	KindCheckbox
	KindRadio
)

// Toggle is a switch, checkbox or radio button. Checked is owned by the
// caller: user input only requests a change through CheckedChangeMsg.
// A checked radio does not request to be unchecked.
type Toggle struct {
	ID       string
	Kind     ToggleKind
	Label    string
	Checked  bool
	Disabled bool

	focused bool
	bounds  pointer.Rect
}

// NewSwitch creates an unchecked switch.
func NewSwitch(id, label string) Toggle {
	return Toggle{ID: id, Kind: KindSwitch, Label: label}
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(id, label string) Toggle {
	return Toggle{ID: id, Kind: KindCheckbox, Label: label}
}

// NewRadio creates an unchecked radio button.
func NewRadio(id, label string) Toggle {
	return Toggle{ID: id, Kind: KindRadio, Label: label}
}

func (t *Toggle) Focus()                   { t.focused = true }
func (t *Toggle) Blur()                    { t.focused = false }
func (t Toggle) Focused() bool             { return t.focused }
func (t *Toggle) SetBounds(r pointer.Rect) { t.bounds = r }
func (t Toggle) Bounds() pointer.Rect      { return t.bounds }

func (t Toggle) request() tea.Cmd {
	if t.Kind == KindRadio && t.Checked {
		return nil
	}
	return send(CheckedChangeMsg{ID: t.ID, Checked: !t.Checked})
}

// Update requests a change on Space or Enter while focused, or on a click.
func (t Toggle) Update(msg tea.Msg) (Toggle, tea.Cmd) {
	if t.Disabled {
		return t, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if t.focused && (msg.String() == " " || msg.String() == "enter") {
			return t, t.request()
		}
	case tea.MouseMsg:
		if pointer.IsPress(msg) && t.bounds.Contains(msg.X, msg.Y) {
			return t, t.request()
		}
	}
	return t, nil
}

// Glyph returns the control without its label.
func (t Toggle) Glyph() string {
	switch t.Kind {
	case KindCheckbox:
		if t.Checked {
			return "☑"
		}
		return "☐"
	case KindRadio:
		if t.Checked {
			return "◉"
		}
		return "○"
	default:
		if t.Checked {
			return "━━●"
		}
		return "●━━"
	}
}

// View renders the control followed by its label.
func (t Toggle) View() string {
	p := styles.Current().Palette

	glyph := lipgloss.NewStyle().Foreground(p.Secondary)
	label := lipgloss.NewStyle().Foreground(p.Text)
	switch {
	case t.Disabled:
		glyph = glyph.Foreground(p.Disabled)
		label = label.Foreground(p.Disabled)
	case t.Checked:
		glyph = glyph.Foreground(p.Accent)
	}
	if t.focused {
		label = label.Underline(true)
	}

	if t.Label == "" {
		return glyph.Render(t.Glyph())
	}
	return glyph.Render(t.Glyph()) + " " + label.Render(t.Label)
}
