package components

import (
	"strings"

	"github.com/pablasso/tahoe/internal/tui/styles"
)

// StatusBarSeparator is placed between status bar items.
const StatusBarSeparator = "  |  "

// KeyHint is a key and the action it triggers, rendered as "key action".
type KeyHint struct {
	Key    string
	Action string
}

func (h KeyHint) String() string {
	if h.Key == "" {
		return h.Action
	}
	return h.Key + " " + h.Action
}

// StatusBar renders a bottom help bar showing contextual help items.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with StatusBarSeparator and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 {
		return styles.StatusBarStyle.Width(width).Render("")
	}

	content := strings.Join(items, StatusBarSeparator)

	return styles.StatusBarStyle.Width(width).Render(content)
}

// RenderHints renders key hints the same way as Render.
func (s StatusBar) RenderHints(width int, hints []KeyHint) string {
	items := make([]string, len(hints))
	for i, h := range hints {
		items[i] = h.String()
	}
	return s.Render(width, items)
}
