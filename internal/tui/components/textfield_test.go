package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tahoe/internal/tui/pointer"
)

func typeRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and any batched commands, collecting ValueChangeMsgs.
func drain(cmd tea.Cmd) []ValueChangeMsg {
	if cmd == nil {
		return nil
	}
	var out []ValueChangeMsg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
	case ValueChangeMsg:
		out = append(out, msg)
	}
	return out
}

func TestTextField_GeneratedID(t *testing.T) {
	a := NewTextField()
	b := NewTextField()

	if !strings.HasPrefix(a.ID(), "textfield-") {
		t.Errorf("unexpected generated id %q", a.ID())
	}
	if a.ID() == b.ID() {
		t.Error("expected generated ids to differ")
	}
	if got := NewTextField(WithFieldID("email")).ID(); got != "email" {
		t.Errorf("expected explicit id, got %q", got)
	}
}

func TestTextField_TypingReportsValue(t *testing.T) {
	f := NewTextField(WithFieldID("name"), WithLabel("Name"))

	f, cmd := f.Update(typeRunes("a"))
	if len(drain(cmd)) != 0 || f.Value() != "" {
		t.Fatal("expected unfocused field to ignore typing")
	}

	f.Focus()
	f, cmd = f.Update(typeRunes("h"))
	f, cmd = f.Update(typeRunes("i"))
	changes := drain(cmd)
	if len(changes) != 1 || changes[0].ID != "name" || changes[0].Value != "hi" {
		t.Errorf("unexpected changes %#v", changes)
	}
	if f.Value() != "hi" {
		t.Errorf("expected value hi, got %q", f.Value())
	}
}

func TestTextField_View(t *testing.T) {
	f := NewTextField(
		WithLabel("Email"),
		WithPlaceholder("you@example.com"),
		WithError("Required"),
		WithWidth(30),
	)

	view := ansi.Strip(f.View())
	lines := strings.Split(view, "\n")
	if strings.TrimSpace(lines[0]) != "Email" {
		t.Errorf("expected label first, got %q", lines[0])
	}
	if !strings.Contains(view, "Required") {
		t.Error("expected error text")
	}
	if len(lines) != 5 {
		t.Errorf("expected label, 3 box lines and error, got %d lines", len(lines))
	}
	for _, l := range lines[1:4] {
		if w := ansi.StringWidth(l); w != 30 {
			t.Errorf("expected box width 30, got %d for %q", w, l)
		}
	}
}

func TestTextField_SearchVariantIcon(t *testing.T) {
	f := NewTextField(WithVariant(FieldSearch))
	if !strings.Contains(ansi.Strip(f.View()), searchIcon) {
		t.Error("expected search variant to show the magnifier")
	}
}

func TestTextField_DisabledIgnoresInput(t *testing.T) {
	f := NewTextField(WithDisabled(true))
	if cmd := f.Focus(); cmd != nil || f.Focused() {
		t.Error("expected disabled field not to take focus")
	}
}

func TestTextField_ClickFocuses(t *testing.T) {
	f := NewTextField()
	f.SetBounds(pointer.Rect{X: 0, Y: 0, W: 30, H: 3})

	f, _ = f.Update(leftPress(4, 1))
	if !f.Focused() {
		t.Error("expected click to focus the field")
	}
}

func TestWindowSearch_Uncontrolled(t *testing.T) {
	s := NewWindowSearch("search", WithSearchDefault("to"))
	s.Focus()

	s, cmd := s.Update(typeRunes("p"))
	changes := drain(cmd)
	if len(changes) != 1 || changes[0].Value != "top" {
		t.Fatalf("unexpected changes %#v", changes)
	}
	if s.Value() != "top" {
		t.Errorf("expected uncontrolled value top, got %q", s.Value())
	}
}

func TestWindowSearch_Controlled(t *testing.T) {
	s := NewWindowSearch("search", WithSearchValue("ab"), WithSearchDefault("ignored"))
	if !s.Controlled() || s.Value() != "ab" {
		t.Fatalf("expected controlled value ab, got %q", s.Value())
	}
	s.Focus()

	s, cmd := s.Update(typeRunes("c"))
	changes := drain(cmd)
	if len(changes) != 1 || changes[0].Value != "abc" {
		t.Fatalf("unexpected changes %#v", changes)
	}
	if s.Value() != "ab" {
		t.Errorf("controlled field must wait for its owner, got %q", s.Value())
	}

	s.SetValue("abc")
	if s.Value() != "abc" {
		t.Errorf("expected accepted value, got %q", s.Value())
	}

	s.SetValue("reset")
	if s.Value() != "reset" {
		t.Errorf("expected owner override, got %q", s.Value())
	}
}

func TestWindowSearch_Sizes(t *testing.T) {
	medium := NewWindowSearch("s")
	xl := NewWindowSearch("s", WithSearchSize(SearchXL))

	if w := ansi.StringWidth(medium.View()); w != medium.Width() {
		t.Errorf("medium view width %d, want %d", w, medium.Width())
	}
	if w := ansi.StringWidth(xl.View()); w != xl.Width() {
		t.Errorf("xl view width %d, want %d", w, xl.Width())
	}
	if xl.Width() <= medium.Width() {
		t.Error("expected xl to be wider than medium")
	}
}

func TestWindowSearch_Disabled(t *testing.T) {
	s := NewWindowSearch("s", WithSearchDisabled(true))
	if cmd := s.Focus(); cmd != nil || s.Focused() {
		t.Error("expected disabled search not to take focus")
	}
}
