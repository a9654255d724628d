package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// Button is a push button. Variant and Size take the values of the
// styles.Button* and styles.Size* constants; unknown values fall back to
// primary and default.
type Button struct {
	ID       string
	Label    string
	Icon     string
	Variant  string
	Size     string
	Disabled bool

	focused bool
	bounds  pointer.Rect
}

// NewButton creates a primary button of the default size.
func NewButton(id, label string) Button {
	return Button{
		ID:      id,
		Label:   label,
		Variant: styles.ButtonPrimary,
		Size:    styles.SizeDefault,
	}
}

func (b *Button) Focus()                   { b.focused = true }
func (b *Button) Blur()                    { b.focused = false }
func (b Button) Focused() bool             { return b.focused }
func (b *Button) SetBounds(r pointer.Rect) { b.bounds = r }
func (b Button) Bounds() pointer.Rect      { return b.bounds }

// Update emits ButtonPressedMsg on Enter or Space while focused, or on a
// click inside the button's bounds.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Disabled {
		return b, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !b.focused {
			return b, nil
		}
		switch msg.String() {
		case "enter", " ":
			return b, send(ButtonPressedMsg{ID: b.ID})
		}
	case tea.MouseMsg:
		if pointer.IsPress(msg) && b.bounds.Contains(msg.X, msg.Y) {
			return b, send(ButtonPressedMsg{ID: b.ID})
		}
	}
	return b, nil
}

func (b Button) text() string {
	if b.Size == styles.SizeIcon && b.Icon != "" {
		return b.Icon
	}
	return strings.TrimSpace(b.Icon + " " + b.Label)
}

// View renders the button on a single line.
func (b Button) View() string {
	p := styles.Current().Palette

	style := styles.Lookup(styles.ButtonVariants(p), b.Variant, styles.ButtonPrimary)
	pad, ok := styles.ButtonPadding[b.Size]
	if !ok {
		pad = styles.ButtonPadding[styles.SizeDefault]
	}
	style = style.Padding(0, pad)

	if b.Disabled {
		style = style.Foreground(p.Disabled).Bold(false)
	}
	if b.focused {
		style = style.Underline(true)
	}
	return style.Render(b.text())
}

// Width returns the rendered width in cells.
func (b Button) Width() int {
	return lipgloss.Width(b.View())
}
