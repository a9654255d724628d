package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tahoe/internal/tui/pointer"
)

func TestToggle_RequestsWithoutMutating(t *testing.T) {
	sw := NewSwitch("wifi", "Wi-Fi")
	sw.Focus()

	sw, cmd := sw.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Fatal("expected a change request")
	}
	msg := cmd().(CheckedChangeMsg)
	if msg.ID != "wifi" || !msg.Checked {
		t.Errorf("unexpected request %#v", msg)
	}
	if sw.Checked {
		t.Error("toggle must not change its own state")
	}
}

func TestToggle_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		toggle  Toggle
		checked bool
		glyph   string
		request bool
	}{
		{"switch off", NewSwitch("s", ""), false, "●━━", true},
		{"switch on", NewSwitch("s", ""), true, "━━●", true},
		{"checkbox off", NewCheckbox("c", ""), false, "☐", true},
		{"checkbox on", NewCheckbox("c", ""), true, "☑", true},
		{"radio off", NewRadio("r", ""), false, "○", true},
		{"radio on", NewRadio("r", ""), true, "◉", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := tt.toggle
			tg.Checked = tt.checked
			tg.Focus()

			if got := ansi.Strip(tg.View()); got != tt.glyph {
				t.Errorf("View() = %q, want %q", got, tt.glyph)
			}
			_, cmd := tg.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if (cmd != nil) != tt.request {
				t.Errorf("expected request=%v, got cmd=%v", tt.request, cmd != nil)
			}
		})
	}
}

func TestToggle_Click(t *testing.T) {
	cb := NewCheckbox("terms", "Accept")
	cb.SetBounds(pointer.Rect{X: 2, Y: 3, W: 8, H: 1})

	if _, cmd := cb.Update(leftPress(2, 4)); cmd != nil {
		t.Error("expected click below to be ignored")
	}
	_, cmd := cb.Update(leftPress(5, 3))
	if cmd == nil || !cmd().(CheckedChangeMsg).Checked {
		t.Error("expected click to request checked")
	}
}

func TestToggle_DisabledAndUnfocused(t *testing.T) {
	sw := NewSwitch("s", "Airplane")
	if _, cmd := sw.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("expected unfocused toggle to ignore keys")
	}

	sw.Focus()
	sw.Disabled = true
	if _, cmd := sw.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("expected disabled toggle to ignore keys")
	}
	if got := ansi.Strip(sw.View()); got != "●━━ Airplane" {
		t.Errorf("unexpected view %q", got)
	}
}
