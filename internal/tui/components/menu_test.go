package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tahoe/internal/tui/pointer"
)

func editMenu() Menu {
	return NewMenu("edit",
		Header("Clipboard"),
		MenuItem{Value: "undo", Label: "Undo", Shortcut: "⌘Z", Disabled: true},
		MenuItem{Value: "cut", Label: "Cut", Shortcut: "⌘X"},
		Separator(),
		MenuItem{Value: "copy", Label: "Copy", Shortcut: "⌘C"},
		MenuItem{Value: "share", Label: "Share", Submenu: []MenuItem{
			{Value: "mail", Label: "Mail"},
			{Value: "airdrop", Label: "AirDrop", Disabled: true},
			{Value: "messages", Label: "Messages"},
		}},
	)
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestMenu_ClosedIgnoresInput(t *testing.T) {
	m := editMenu()
	m, cmd := m.Update(key(tea.KeyDown))
	if cmd != nil || m.Cursor() != 2 {
		t.Error("expected closed menu to ignore keys")
	}
	if m.View() != "" {
		t.Error("expected closed menu to render nothing")
	}
}

func TestMenu_NavigationSkipsNonSelectable(t *testing.T) {
	m := editMenu()
	m.Open()

	if m.Cursor() != 2 {
		t.Fatalf("expected cursor on Cut (skipping header and disabled Undo), got %d", m.Cursor())
	}

	m, _ = m.Update(key(tea.KeyDown))
	if m.Cursor() != 4 {
		t.Errorf("expected separator to be skipped, got %d", m.Cursor())
	}
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))
	if m.Cursor() != 5 {
		t.Errorf("expected cursor to stop at the last item, got %d", m.Cursor())
	}

	m, _ = m.Update(key(tea.KeyUp))
	m, _ = m.Update(key(tea.KeyUp))
	m, _ = m.Update(key(tea.KeyUp))
	if m.Cursor() != 2 {
		t.Errorf("expected cursor to stop at the first selectable item, got %d", m.Cursor())
	}
}

func TestMenu_EnterChooses(t *testing.T) {
	m := editMenu()
	m.Open()

	m, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a selection")
	}
	sel := cmd().(MenuSelectMsg)
	if sel.ID != "edit" || sel.Value != "cut" {
		t.Errorf("unexpected selection %#v", sel)
	}
	if m.IsOpen() {
		t.Error("expected menu to close after choosing")
	}
}

func TestMenu_EscCloses(t *testing.T) {
	m := editMenu()
	m.Open()

	m, cmd := m.Update(key(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("expected a close message")
	}
	if _, ok := cmd().(MenuCloseMsg); !ok {
		t.Errorf("expected MenuCloseMsg, got %#v", cmd())
	}
	if m.IsOpen() {
		t.Error("expected menu to be closed")
	}
}

func TestMenu_Submenu(t *testing.T) {
	m := editMenu()
	m.Open()
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))

	m, _ = m.Update(key(tea.KeyRight))
	if !m.SubmenuOpen() || m.SubmenuCursor() != 0 {
		t.Fatal("expected submenu to open on its first item")
	}

	m, _ = m.Update(key(tea.KeyDown))
	if m.SubmenuCursor() != 2 {
		t.Errorf("expected disabled AirDrop to be skipped, got %d", m.SubmenuCursor())
	}

	m, _ = m.Update(key(tea.KeyLeft))
	if m.SubmenuOpen() || !m.IsOpen() {
		t.Error("expected Left to close only the submenu")
	}

	m, _ = m.Update(key(tea.KeyEnter))
	if !m.SubmenuOpen() {
		t.Fatal("expected Enter on a submenu item to open it")
	}
	_, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil || cmd().(MenuSelectMsg).Value != "mail" {
		t.Error("expected submenu selection to report mail")
	}
}

func TestMenu_ViewColumns(t *testing.T) {
	m := editMenu()
	m.Open()

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 6 rows and a border, got %d lines", len(lines))
	}
	width := ansi.StringWidth(lines[0])
	for i, l := range lines {
		if ansi.StringWidth(l) != width {
			t.Errorf("line %d has width %d, want %d", i, ansi.StringWidth(l), width)
		}
	}
	if !strings.Contains(lines[3], "Cut") || !strings.Contains(lines[3], "⌘X") {
		t.Errorf("expected Cut row with shortcut, got %q", lines[3])
	}
	if !strings.Contains(lines[4], "───") {
		t.Errorf("expected separator row, got %q", lines[4])
	}
	if !strings.Contains(lines[6], "▸") {
		t.Errorf("expected submenu arrow, got %q", lines[6])
	}
}

func TestMenu_Click(t *testing.T) {
	m := editMenu()
	m.Open()
	m.SetOrigin(10, 5)

	// Row i is at y = 5 + 1 + i.
	if _, cmd := m.Update(leftPress(12, 7)); cmd != nil {
		t.Error("expected click on disabled item to be ignored")
	}

	_, cmd := m.Update(leftPress(12, 10))
	if cmd == nil || cmd().(MenuSelectMsg).Value != "copy" {
		t.Error("expected click to choose copy")
	}

	m, cmd = m.Update(leftPress(0, 0))
	if cmd == nil || m.IsOpen() {
		t.Error("expected click outside to dismiss")
	}
}

func TestPopUpButton(t *testing.T) {
	b := NewPopUpButton("size", "m",
		MenuItem{Value: "s", Label: "Small"},
		MenuItem{Value: "m", Label: "Medium"},
		MenuItem{Value: "l", Label: "Large"},
	)
	if b.Label() != "Medium" {
		t.Errorf("expected label Medium, got %q", b.Label())
	}
	if !b.Menu().Items()[1].Checked {
		t.Error("expected current value to be checked")
	}

	b.Focus()
	b, _ = b.Update(key(tea.KeyEnter))
	if !b.Menu().IsOpen() {
		t.Fatal("expected Enter to open the menu")
	}

	b, cmd := b.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a selection")
	}
	b, cmd = b.Update(cmd())
	if b.Value() != "s" || b.Label() != "Small" {
		t.Errorf("expected value s, got %q", b.Value())
	}
	if cmd == nil || cmd().(ValueChangeMsg).Value != "s" {
		t.Error("expected ValueChangeMsg for s")
	}
	if b.Menu().Items()[1].Checked || !b.Menu().Items()[0].Checked {
		t.Error("expected check mark to follow the value")
	}

	b, _ = b.Update(MenuSelectMsg{ID: "other/menu", Value: "l"})
	if b.Value() != "s" {
		t.Error("expected selections from other menus to be ignored")
	}
}

func TestPulldownButton(t *testing.T) {
	b := NewPulldownButton("actions", "Actions",
		MenuItem{Value: "dup", Label: "Duplicate"},
		MenuItem{Value: "del", Label: "Delete"},
	)
	b.SetBounds(pointer.Rect{X: 0, Y: 0, W: 11, H: 1})

	if got := ansi.Strip(b.View()); got != " Actions  ⌄ " {
		t.Errorf("unexpected trigger %q", got)
	}

	b, _ = b.Update(leftPress(3, 0))
	if !b.Menu().IsOpen() {
		t.Fatal("expected click to open the menu")
	}
	if !strings.Contains(ansi.Strip(b.View()), "Duplicate") {
		t.Error("expected menu below the trigger")
	}

	b, _ = b.Update(key(tea.KeyDown))
	_, cmd := b.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a selection")
	}
	sel := cmd().(MenuSelectMsg)
	if sel.ID != "actions/menu" || sel.Value != "del" {
		t.Errorf("unexpected selection %#v", sel)
	}
}

func TestPopover_View(t *testing.T) {
	p := Popover{Title: "Info", Body: "Details", Width: 20, Arrow: true}
	lines := strings.Split(ansi.Strip(p.View()), "\n")

	if strings.TrimSpace(lines[0]) != "▲" {
		t.Errorf("expected arrow first, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "Info") || !strings.Contains(lines[3], "Details") {
		t.Errorf("unexpected popover %q", lines)
	}
	if ansi.StringWidth(lines[1]) != 20 {
		t.Errorf("expected width 20, got %d", ansi.StringWidth(lines[1]))
	}
}
