package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// MenuItemKind distinguishes actions from decorations.
type MenuItemKind int

const (
	MenuAction MenuItemKind = iota
	MenuSeparator
	MenuHeader
)

// MenuItem is a row of a Menu. Items with a Submenu open it instead of
// being chosen; submenus are one level deep.
type MenuItem struct {
	Kind     MenuItemKind
	Value    string
	Label    string
	Icon     string
	Shortcut string
	Checked  bool
	Disabled bool
	Submenu  []MenuItem
}

// Separator returns a divider row.
func Separator() MenuItem { return MenuItem{Kind: MenuSeparator} }

// Header returns a non-selectable section title row.
func Header(label string) MenuItem { return MenuItem{Kind: MenuHeader, Label: label} }

func (it MenuItem) selectable() bool {
	return it.Kind == MenuAction && !it.Disabled
}

// Menu is a keyboard and mouse navigable list of actions. Up/Down skip
// separators, headers and disabled items; Right opens a submenu and Left
// closes it; Enter chooses; Esc dismisses.
type Menu struct {
	id     string
	items  []MenuItem
	cursor int
	sub    int // index of the item whose submenu is open, or -1
	subCur int
	open   bool
	origin pointer.Rect
}

// NewMenu creates a closed menu.
func NewMenu(id string, items ...MenuItem) Menu {
	m := Menu{id: id, items: items, sub: -1}
	m.cursor = firstSelectable(items)
	return m
}

func (m Menu) ID() string           { return m.id }
func (m Menu) Items() []MenuItem    { return m.items }
func (m Menu) IsOpen() bool         { return m.open }
func (m Menu) Cursor() int          { return m.cursor }
func (m Menu) SubmenuOpen() bool    { return m.sub >= 0 }
func (m Menu) SubmenuCursor() int   { return m.subCur }
func (m Menu) Bounds() pointer.Rect { return m.origin }

// SetItems replaces the rows, keeping the cursor when it still lands on a
// selectable item.
func (m *Menu) SetItems(items []MenuItem) {
	m.items = items
	if m.cursor < 0 || m.cursor >= len(items) || !items[m.cursor].selectable() {
		m.cursor = firstSelectable(items)
	}
	m.sub = -1
}

// Open shows the menu with the cursor on the first selectable item.
func (m *Menu) Open() {
	m.open = true
	m.sub = -1
	m.cursor = firstSelectable(m.items)
}

// Close hides the menu and any open submenu.
func (m *Menu) Close() {
	m.open = false
	m.sub = -1
}

// SetOrigin places the menu's top-left corner on screen.
func (m *Menu) SetOrigin(x, y int) {
	m.origin = pointer.Rect{X: x, Y: y, W: m.width(m.items) + 2, H: len(m.items) + 2}
}

func firstSelectable(items []MenuItem) int {
	return step(items, -1, 1)
}

// step returns the next selectable index from i in direction dir, or i
// when there is none.
func step(items []MenuItem, i, dir int) int {
	for j := i + dir; j >= 0 && j < len(items); j += dir {
		if items[j].selectable() {
			return j
		}
	}
	return i
}

func (m Menu) choose(it MenuItem) (Menu, tea.Cmd) {
	m.Close()
	return m, send(MenuSelectMsg{ID: m.id, Value: it.Value})
}

func (m *Menu) openSubmenu(i int) bool {
	if i < 0 || i >= len(m.items) || len(m.items[i].Submenu) == 0 || !m.items[i].selectable() {
		return false
	}
	m.sub = i
	m.subCur = firstSelectable(m.items[i].Submenu)
	return true
}

// Update handles navigation while the menu is open.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.sub >= 0 {
			return m.updateSubmenu(msg)
		}
		switch msg.String() {
		case "up", "k":
			m.cursor = step(m.items, m.cursor, -1)
		case "down", "j":
			m.cursor = step(m.items, m.cursor, 1)
		case "right", "l":
			m.openSubmenu(m.cursor)
		case "enter", " ":
			if m.openSubmenu(m.cursor) {
				return m, nil
			}
			if m.cursor >= 0 && m.cursor < len(m.items) && m.items[m.cursor].selectable() {
				return m.choose(m.items[m.cursor])
			}
		case "esc":
			m.Close()
			return m, send(MenuCloseMsg{ID: m.id})
		}

	case tea.MouseMsg:
		if !pointer.IsPress(msg) {
			return m, nil
		}
		return m.click(msg.X, msg.Y)
	}
	return m, nil
}

func (m Menu) updateSubmenu(msg tea.KeyMsg) (Menu, tea.Cmd) {
	items := m.items[m.sub].Submenu
	switch msg.String() {
	case "up", "k":
		m.subCur = step(items, m.subCur, -1)
	case "down", "j":
		m.subCur = step(items, m.subCur, 1)
	case "left", "h", "esc":
		m.sub = -1
	case "enter", " ":
		if m.subCur >= 0 && m.subCur < len(items) && items[m.subCur].selectable() {
			return m.choose(items[m.subCur])
		}
	}
	return m, nil
}

func (m Menu) submenuRect() pointer.Rect {
	if m.sub < 0 {
		return pointer.Rect{}
	}
	items := m.items[m.sub].Submenu
	return pointer.Rect{
		X: m.origin.X + m.origin.W,
		Y: m.origin.Y + m.sub,
		W: m.width(items) + 2,
		H: len(items) + 2,
	}
}

// click handles a press at screen cell (x, y). Rows start one cell below
// the top border. A press outside the menu dismisses it.
func (m Menu) click(x, y int) (Menu, tea.Cmd) {
	if r := m.submenuRect(); r.Contains(x, y) {
		items := m.items[m.sub].Submenu
		if i := y - r.Y - 1; i >= 0 && i < len(items) && items[i].selectable() {
			return m.choose(items[i])
		}
		return m, nil
	}
	if !m.origin.Contains(x, y) {
		m.Close()
		return m, send(MenuCloseMsg{ID: m.id})
	}

	i := y - m.origin.Y - 1
	if i < 0 || i >= len(m.items) || !m.items[i].selectable() {
		return m, nil
	}
	m.cursor = i
	if m.openSubmenu(i) {
		return m, nil
	}
	return m.choose(m.items[i])
}

type menuColumns struct {
	icon, label, shortcut, arrow int
}

func columns(items []MenuItem) menuColumns {
	var c menuColumns
	for _, it := range items {
		if it.Icon != "" {
			c.icon = max(c.icon, runewidth.StringWidth(it.Icon)+1)
		}
		c.label = max(c.label, runewidth.StringWidth(it.Label))
		if it.Shortcut != "" {
			c.shortcut = max(c.shortcut, runewidth.StringWidth(it.Shortcut)+2)
		}
		if len(it.Submenu) > 0 {
			c.arrow = 2
		}
	}
	return c
}

// width is the inner width: check column, icon, label, shortcut, arrow.
func (m Menu) width(items []MenuItem) int {
	c := columns(items)
	return 2 + c.icon + c.label + c.shortcut + c.arrow + 1
}

func (m Menu) renderRow(it MenuItem, c menuColumns, width int) string {
	switch it.Kind {
	case MenuSeparator:
		return strings.Repeat("─", width)
	case MenuHeader:
		return runewidth.FillRight(" "+it.Label, width)
	}

	var b strings.Builder
	if it.Checked {
		b.WriteString("✓ ")
	} else {
		b.WriteString("  ")
	}
	if c.icon > 0 {
		b.WriteString(runewidth.FillRight(it.Icon, c.icon))
	}
	b.WriteString(runewidth.FillRight(it.Label, c.label))
	if c.shortcut > 0 {
		b.WriteString(runewidth.FillLeft(it.Shortcut, c.shortcut))
	}
	if c.arrow > 0 {
		if len(it.Submenu) > 0 {
			b.WriteString(" ▸")
		} else {
			b.WriteString("  ")
		}
	}
	return runewidth.FillRight(b.String(), width)
}

func (m Menu) renderBox(items []MenuItem, cursor int, active bool) string {
	p := styles.Current().Palette
	c := columns(items)
	w := m.width(items)

	base := lipgloss.NewStyle().Background(p.Menu).Foreground(p.Text)
	rows := make([]string, len(items))
	for i, it := range items {
		style := base
		switch {
		case it.Kind == MenuSeparator:
			style = style.Foreground(p.Separator)
		case it.Kind == MenuHeader:
			style = style.Foreground(p.Secondary).Bold(true)
		case it.Disabled:
			style = style.Foreground(p.Disabled)
		case i == cursor && active:
			style = style.Background(p.Accent).Foreground(p.AccentText)
		case i == cursor:
			style = style.Background(p.Inactive)
		}
		rows[i] = style.Render(m.renderRow(it, c, w))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		BorderBackground(p.Menu).
		Render(strings.Join(rows, "\n"))
}

// View renders the open menu, with its submenu to the right. A closed menu
// renders nothing.
func (m Menu) View() string {
	if !m.open {
		return ""
	}
	box := m.renderBox(m.items, m.cursor, m.sub < 0)
	if m.sub < 0 {
		return box
	}
	sub := m.renderBox(m.items[m.sub].Submenu, m.subCur, true)
	return lipgloss.JoinHorizontal(lipgloss.Top, box, strings.Repeat("\n", m.sub)+sub)
}

// PopUpButton shows the current choice and opens a menu to change it.
type PopUpButton struct {
	id      string
	value   string
	menu    Menu
	focused bool
	bounds  pointer.Rect
}

// NewPopUpButton creates a pop-up button over options, showing value.
func NewPopUpButton(id, value string, options ...MenuItem) PopUpButton {
	b := PopUpButton{id: id, value: value, menu: NewMenu(id+"/menu", options...)}
	b.markChecked()
	return b
}

func (b PopUpButton) ID() string    { return b.id }
func (b PopUpButton) Value() string { return b.value }
func (b PopUpButton) Menu() Menu    { return b.menu }
func (b *PopUpButton) Focus()       { b.focused = true }
func (b *PopUpButton) Blur()        { b.focused = false }
func (b *PopUpButton) Close()       { b.menu.Close() }

// SetBounds places the trigger on screen; the menu opens below it.
func (b *PopUpButton) SetBounds(r pointer.Rect) {
	b.bounds = r
	b.menu.SetOrigin(r.X, r.Y+r.H)
}

// Label returns the text shown on the trigger.
func (b PopUpButton) Label() string {
	for _, it := range b.menu.items {
		if it.Kind == MenuAction && it.Value == b.value {
			return it.Label
		}
	}
	return b.value
}

func (b *PopUpButton) markChecked() {
	items := make([]MenuItem, len(b.menu.items))
	for i, it := range b.menu.items {
		it.Checked = it.Kind == MenuAction && it.Value == b.value
		items[i] = it
	}
	b.menu.SetItems(items)
}

// Update opens the menu on Enter/Space or a click, forwards input to the
// open menu and adopts the chosen value.
func (b PopUpButton) Update(msg tea.Msg) (PopUpButton, tea.Cmd) {
	if sel, ok := msg.(MenuSelectMsg); ok {
		if sel.ID != b.menu.id {
			return b, nil
		}
		b.value = sel.Value
		b.markChecked()
		return b, send(ValueChangeMsg{ID: b.id, Value: b.value})
	}

	if b.menu.IsOpen() {
		var cmd tea.Cmd
		b.menu, cmd = b.menu.Update(msg)
		return b, cmd
	}

	if triggered(msg, b.focused, b.bounds) {
		b.menu.Open()
		b.menu.SetOrigin(b.bounds.X, b.bounds.Y+b.bounds.H)
	}
	return b, nil
}

// View renders the trigger and, when open, the menu below it.
func (b PopUpButton) View() string {
	trigger := triggerStyle(b.focused).Render(b.Label() + "  ⌃⌄")
	if !b.menu.IsOpen() {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, b.menu.View())
}

// PulldownButton shows a fixed label and opens a menu of commands. Choices
// are reported by the menu's MenuSelectMsg.
type PulldownButton struct {
	label   string
	menu    Menu
	focused bool
	bounds  pointer.Rect
}

// NewPulldownButton creates a pulldown whose menu has id id+"/menu".
func NewPulldownButton(id, label string, items ...MenuItem) PulldownButton {
	return PulldownButton{label: label, menu: NewMenu(id+"/menu", items...)}
}

func (b PulldownButton) Menu() Menu { return b.menu }
func (b *PulldownButton) Focus()    { b.focused = true }
func (b *PulldownButton) Blur()     { b.focused = false }
func (b *PulldownButton) Close()    { b.menu.Close() }

// SetBounds places the trigger on screen; the menu opens below it.
func (b *PulldownButton) SetBounds(r pointer.Rect) {
	b.bounds = r
	b.menu.SetOrigin(r.X, r.Y+r.H)
}

// Update opens the menu and forwards input to it while open.
func (b PulldownButton) Update(msg tea.Msg) (PulldownButton, tea.Cmd) {
	if b.menu.IsOpen() {
		var cmd tea.Cmd
		b.menu, cmd = b.menu.Update(msg)
		return b, cmd
	}
	if triggered(msg, b.focused, b.bounds) {
		b.menu.Open()
		b.menu.SetOrigin(b.bounds.X, b.bounds.Y+b.bounds.H)
	}
	return b, nil
}

// View renders the trigger and, when open, the menu below it.
func (b PulldownButton) View() string {
	trigger := triggerStyle(b.focused).Render(b.label + "  ⌄")
	if !b.menu.IsOpen() {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, b.menu.View())
}

func triggered(msg tea.Msg, focused bool, bounds pointer.Rect) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s := msg.String()
		return focused && (s == "enter" || s == " " || s == "down")
	case tea.MouseMsg:
		return pointer.IsPress(msg) && bounds.Contains(msg.X, msg.Y)
	}
	return false
}

func triggerStyle(focused bool) lipgloss.Style {
	p := styles.Current().Palette
	s := lipgloss.NewStyle().
		Background(p.Surface).
		Foreground(p.Text).
		Padding(0, 1)
	if focused {
		s = s.Underline(true)
	}
	return s
}

// Popover is a titled floating panel, optionally with an arrow pointing at
// its anchor above.
type Popover struct {
	Title string
	Body  string
	Width int
	Arrow bool
}

// View renders the panel.
func (p Popover) View() string {
	pal := styles.Current().Palette
	w := p.Width
	if w <= 0 {
		w = 32
	}

	content := p.Body
	if p.Title != "" {
		content = lipgloss.NewStyle().Bold(true).Render(p.Title) + "\n" + p.Body
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Foreground(pal.Text).
		Padding(0, 1).
		Width(w - 2).
		Render(content)

	if !p.Arrow {
		return box
	}
	arrow := lipgloss.PlaceHorizontal(lipgloss.Width(box), lipgloss.Center,
		lipgloss.NewStyle().Foreground(pal.Border).Render("▲"))
	return arrow + "\n" + box
}
