package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/components"
	"github.com/pablasso/tahoe/internal/tui/msgs"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

func newTestShowcase(start string) ShowcaseModel {
	m := NewShowcaseModel(ShowcaseOptions{Start: start})
	m.SetSize(120, 40)
	return m
}

func sendKey(m ShowcaseModel, msg tea.KeyMsg) (ShowcaseModel, tea.Cmd) {
	return m.Update(msg)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestShowcase_StartSection(t *testing.T) {
	if got := newTestShowcase("scrollbar").Current(); got != "scrollbar" {
		t.Errorf("expected scrollbar, got %q", got)
	}
	if got := newTestShowcase("Sidebar & Lists").Current(); got != "sidebar-lists" {
		t.Errorf("expected sidebar-lists, got %q", got)
	}
	if got := newTestShowcase("bogus").Current(); got != "buttons" {
		t.Errorf("unknown start should fall back to buttons, got %q", got)
	}
}

func TestShowcase_ViewFillsTerminal(t *testing.T) {
	m := newTestShowcase("")
	if got := lipgloss.Height(m.View()); got != 40 {
		t.Errorf("expected 40 lines, got %d", got)
	}
	if NewShowcaseModel(ShowcaseOptions{}).View() != "" {
		t.Error("expected an empty view before the first size")
	}
}

func TestShowcase_SidebarKeysAndHistory(t *testing.T) {
	m := newTestShowcase("")

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Current() != "toggles" {
		t.Fatalf("expected toggles, got %q", m.Current())
	}

	m, _ = sendKey(m, runeKey('['))
	if m.Current() != "button-groups" {
		t.Fatalf("back: expected button-groups, got %q", m.Current())
	}
	m, _ = sendKey(m, runeKey(']'))
	if m.Current() != "toggles" {
		t.Fatalf("forward: expected toggles, got %q", m.Current())
	}

	m, _ = sendKey(m, runeKey('['))
	m, _ = m.Update(msgs.GoToSectionMsg{ID: "alerts"})
	if m.Current() != "alerts" {
		t.Fatalf("expected alerts, got %q", m.Current())
	}
	if len(m.forward) != 0 {
		t.Errorf("visiting a new section should drop forward history, got %v", m.forward)
	}
	if m.Status() != "Showing Alerts" {
		t.Errorf("unexpected status %q", m.Status())
	}
}

func TestShowcase_NavButtons(t *testing.T) {
	m := newTestShowcase("")
	m, _ = m.Update(msgs.GoToSectionMsg{ID: "menus"})

	m, _ = m.Update(components.ButtonPressedMsg{ID: NavID + "/back"})
	if m.Current() != "buttons" {
		t.Fatalf("expected buttons, got %q", m.Current())
	}
	m, _ = m.Update(components.ButtonPressedMsg{ID: NavID + "/forward"})
	if m.Current() != "menus" {
		t.Errorf("expected menus, got %q", m.Current())
	}
}

func TestShowcase_SearchFiltersSidebar(t *testing.T) {
	m := newTestShowcase("")

	m, _ = m.Update(components.ValueChangeMsg{ID: SearchID, Value: "menu"})
	if m.Query() != "menu" {
		t.Fatalf("expected query menu, got %q", m.Query())
	}
	visible := m.visibleSections()
	if len(visible) != 1 || visible[0].ID != "menus" {
		t.Fatalf("unexpected sections %+v", visible)
	}

	// The current section is filtered out; down jumps to the first match.
	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Current() != "menus" {
		t.Errorf("expected menus, got %q", m.Current())
	}
}

func TestShowcase_SidebarClick(t *testing.T) {
	m := newTestShowcase("")

	row := -1
	for i, id := range m.sidebarRows {
		if id == "typography" {
			row = i
		}
	}
	if row < 0 {
		t.Fatal("typography not in the sidebar")
	}

	l := m.Layout()
	m, _ = m.Update(press(l.Sidebar.X+2, l.Sidebar.Y+row))
	if m.Current() != "typography" {
		t.Errorf("expected typography, got %q", m.Current())
	}
}

func TestShowcase_TabCycle(t *testing.T) {
	m := newTestShowcase("")

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != areaNav {
		t.Fatalf("expected nav focus, got %d", m.focus)
	}
	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != areaSearch || !m.typing() {
		t.Fatalf("expected search focus, got %d", m.focus)
	}

	// q is text while typing.
	m, cmd := sendKey(m, runeKey('q'))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q should not quit while typing")
		}
	}

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != areaSidebar {
		t.Fatalf("esc should return to the sidebar, got %d", m.focus)
	}

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != areaContent || m.contentStop != m.page().Focusables() {
		t.Errorf("shift+tab should wrap to the viewport, got area %d stop %d", m.focus, m.contentStop)
	}
}

func TestShowcase_QuitKey(t *testing.T) {
	m := newTestShowcase("")

	_, cmd := sendKey(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestShowcase_AlertIsModal(t *testing.T) {
	m := newTestShowcase("")
	alert := components.NewAlert("test", "Title", "Message",
		components.AlertAction{Label: "OK", Role: components.RolePrimary})

	m, _ = m.Update(msgs.ShowAlertMsg{Alert: alert})
	if !m.AlertOpen() {
		t.Fatal("expected an alert")
	}
	if id, _ := m.Router().HitTest(1, 1); id != AlertID {
		t.Errorf("alert should cover the window, got %q", id)
	}

	// Keys go to the alert, not the sidebar.
	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Current() != "buttons" {
		t.Errorf("sidebar moved under the alert: %q", m.Current())
	}

	m, _ = m.Update(components.AlertResultMsg{ID: "test", Label: "OK", Role: components.RolePrimary})
	if m.AlertOpen() {
		t.Fatal("expected the alert to close")
	}
	if m.Status() != "Alert: OK" {
		t.Errorf("unexpected status %q", m.Status())
	}
}

func scrollbarThumb(t *testing.T, m ShowcaseModel) (int, int) {
	t.Helper()
	p, ok := m.page().(*scrollbarPage)
	if !ok {
		t.Fatalf("expected the scrollbar page, got %T", m.page())
	}
	return thumbCell(p.demos[0].bar)
}

func TestShowcase_PageDragCapturesPointer(t *testing.T) {
	m := newTestShowcase("scrollbar")

	x, y := scrollbarThumb(t, m)
	m, _ = m.Update(press(x, y))
	if owner, ok := m.Router().Owner(); !ok || owner != "scrollbar/vertical-a" {
		t.Fatalf("expected capture by vertical-a, got %q %v", owner, ok)
	}

	// Motion outside the content still reaches the captured scrollbar.
	m, cmd := m.Update(tea.MouseMsg{X: 0, Y: 39, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if cmd == nil {
		t.Fatal("expected a position request")
	}
	m, _ = m.Update(cmd())
	p := m.page().(*scrollbarPage)
	if p.demos[0].bar.Position() != 1 {
		t.Errorf("expected the end of the range, got %v", p.demos[0].bar.Position())
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Router().Active() {
		t.Error("release should free the capture")
	}
}

func TestShowcase_AlertCancelsDrag(t *testing.T) {
	m := newTestShowcase("scrollbar")

	x, y := scrollbarThumb(t, m)
	m, _ = m.Update(press(x, y))
	if !m.Router().Active() {
		t.Fatal("expected a capture")
	}

	m, _ = m.Update(components.ButtonPressedMsg{ID: ActionsID + "/about"})
	if !m.AlertOpen() {
		t.Fatal("expected the about alert")
	}
	if m.Router().Active() {
		t.Error("opening an alert should free the capture")
	}
	if m.page().(*scrollbarPage).demos[0].bar.Dragging() {
		t.Error("opening an alert should end the drag")
	}
}

func TestShowcase_NavigationCancelsDrag(t *testing.T) {
	m := newTestShowcase("scrollbar")

	x, y := scrollbarThumb(t, m)
	m, _ = m.Update(press(x, y))
	m, _ = m.Update(msgs.GoToSectionMsg{ID: "buttons"})

	if m.Router().Active() {
		t.Error("leaving the page should free the capture")
	}
	if m.pages["scrollbar"].(*scrollbarPage).demos[0].bar.Dragging() {
		t.Error("leaving the page should end the drag")
	}
}

func TestShowcase_ResizeEndsContentDrag(t *testing.T) {
	m := newTestShowcase("scrollbar")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 16})
	if !m.viewport.Scrollable() {
		t.Fatal("expected the scrollbar page to overflow a short terminal")
	}

	bar := m.viewport.Scrollbar()
	x, y := thumbCell(bar)
	m, _ = m.Update(press(x, y))
	if owner, ok := m.Router().Owner(); !ok || owner != m.viewport.ScrollbarID() {
		t.Fatalf("expected capture by the content scrollbar, got %q %v", owner, ok)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 400})
	if m.viewport.Scrollable() {
		t.Fatal("expected the content to fit")
	}
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if m.viewport.Scrollbar().Dragging() {
		t.Error("expected the drag to end")
	}
	if m.Router().Active() {
		t.Error("expected no capture after release")
	}
}

func TestShowcase_ZoomHidesSidebar(t *testing.T) {
	m := newTestShowcase("")
	zoom := m.Layout().Zoom

	m, _ = m.Update(press(zoom.X, zoom.Y))
	if got := m.Layout().Content.X; got != 1 {
		t.Errorf("expected content at column 1, got %d", got)
	}
	if _, ok := m.Router().Lookup(SidebarID); ok {
		t.Error("hidden sidebar should not be hit-testable")
	}

	m, _ = m.Update(press(zoom.X, zoom.Y))
	if m.Layout().Content.X == 1 {
		t.Error("second click should restore the sidebar")
	}
}

func TestShowcase_CloseButtonQuits(t *testing.T) {
	m := newTestShowcase("")
	c := m.Layout().Close

	_, cmd := m.Update(press(c.X, c.Y))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestShowcase_AppearanceAndGlass(t *testing.T) {
	saved := styles.Current()
	t.Cleanup(func() { styles.Set(saved) })
	styles.Set(styles.Theme{Palette: styles.Light})

	m := newTestShowcase("")
	m, _ = m.Update(components.ButtonPressedMsg{ID: ActionsID + "/appearance"})
	if styles.Current().Palette.Name != styles.Dark.Name {
		t.Errorf("expected dark, got %q", styles.Current().Palette.Name)
	}

	m, _ = m.Update(components.ButtonPressedMsg{ID: ActionsID + "/glass"})
	if styles.Current().Glass {
		t.Error("glass should stay off without terminal support")
	}
	if m.Status() != "Liquid glass needs a TrueColor terminal" {
		t.Errorf("unexpected status %q", m.Status())
	}

	m = NewShowcaseModel(ShowcaseOptions{GlassCapable: true})
	m.SetSize(120, 40)
	m, _ = m.Update(components.ButtonPressedMsg{ID: ActionsID + "/glass"})
	if !styles.Current().Glass || m.Status() != "Liquid glass on" {
		t.Errorf("expected glass on, status %q", m.Status())
	}
}
