package views

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tahoe/internal/tui/components"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// menusPage shows pop-up and pulldown buttons, a pinned context menu and a
// popover.
type menusPage struct {
	noSync
	section Section
	sort    components.PopUpButton
	actions components.PulldownButton
	context components.Menu
	popover components.DisclosureButton
	rects   []pointer.Rect
	focus   focusRing
	last    string
}

const (
	menuStopSort = iota
	menuStopActions
	menuStopContext
	menuStopPopover
	menuStops
)

func newMenusPage(s Section) *menusPage {
	sort := components.NewPopUpButton("menus/sort", "name",
		components.MenuItem{Value: "name", Label: "Name"},
		components.MenuItem{Value: "kind", Label: "Kind"},
		components.MenuItem{Value: "date", Label: "Date Modified"},
		components.MenuItem{Value: "size", Label: "Size"},
	)

	actions := components.NewPulldownButton("menus/actions", "Actions",
		components.MenuItem{Value: "new-folder", Label: "New Folder", Icon: "▣", Shortcut: "⌘N"},
		components.MenuItem{Value: "duplicate", Label: "Duplicate", Shortcut: "⌘D"},
		components.Separator(),
		components.Header("Share"),
		components.MenuItem{Value: "share", Label: "Share", Icon: "⇪", Submenu: []components.MenuItem{
			{Value: "share/mail", Label: "Mail"},
			{Value: "share/messages", Label: "Messages"},
			{Value: "share/airdrop", Label: "AirDrop"},
		}},
		components.Separator(),
		components.MenuItem{Value: "trash", Label: "Move to Trash", Shortcut: "⌘⌫", Disabled: true},
	)

	context := components.NewMenu("menus/context",
		components.MenuItem{Value: "cut", Label: "Cut", Shortcut: "⌘X"},
		components.MenuItem{Value: "copy", Label: "Copy", Shortcut: "⌘C"},
		components.MenuItem{Value: "paste", Label: "Paste", Shortcut: "⌘V", Disabled: true},
		components.Separator(),
		components.MenuItem{Value: "select-all", Label: "Select All", Shortcut: "⌘A"},
		components.MenuItem{Value: "grid", Label: "Show Grid", Checked: true},
	)
	context.Open()

	return &menusPage{
		section: s,
		sort:    sort,
		actions: actions,
		context: context,
		popover: components.DisclosureButton{ID: "menus/popover", Label: "Show popover"},
		focus:   focusRing{index: -1},
	}
}

func (p *menusPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	var rects []pointer.Rect
	c.label("Pop-up and pulldown buttons")
	rects = append(rects, c.flow(3, p.sort.View(), p.actions.View())...)
	c.blank()
	c.label("Context menu")
	rects = append(rects, c.text(p.context.View()))
	c.blank()
	c.label("Popover")
	rects = append(rects, c.text(p.popover.View()))
	if p.popover.Expanded {
		c.text(components.Popover{
			Title: "Shared with 3 people",
			Body:  "Anyone with the link can view this folder.",
			Width: min(36, max(width, 12)),
			Arrow: true,
		}.View())
	}
	c.blank()

	last := p.last
	if last == "" {
		last = "none"
	}
	c.text(readout("Last choice", last))

	p.rects = rects
	return c.String()
}

func (p *menusPage) Place(dx, dy int) {
	if len(p.rects) < menuStops {
		return
	}
	trigger := func(r pointer.Rect) pointer.Rect {
		r = r.Offset(dx, dy)
		r.H = 1
		return r
	}
	p.sort.SetBounds(trigger(p.rects[menuStopSort]))
	p.actions.SetBounds(trigger(p.rects[menuStopActions]))
	r := p.rects[menuStopContext].Offset(dx, dy)
	p.context.SetOrigin(r.X, r.Y)
	p.popover.SetBounds(p.rects[menuStopPopover].Offset(dx, dy))
}

func (p *menusPage) Focusables() int { return menuStops }

func (p *menusPage) SetFocus(i int) tea.Cmd {
	p.sort.Blur()
	p.actions.Blur()
	p.popover.Blur()
	if i != menuStopSort {
		p.sort.Close()
	}
	if i != menuStopActions {
		p.actions.Close()
	}

	if !p.focus.set(i, menuStops) {
		return nil
	}
	switch i {
	case menuStopSort:
		p.sort.Focus()
	case menuStopActions:
		p.actions.Focus()
	case menuStopPopover:
		p.popover.Focus()
	}
	return nil
}

func (p *menusPage) Typing() bool { return false }

func (p *menusPage) FocusIndex() int { return p.focus.index }

func (p *menusPage) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case components.MenuSelectMsg:
		switch msg.ID {
		case p.actions.Menu().ID():
			p.last = "Actions › " + msg.Value
		case p.context.ID():
			p.last = "Edit › " + msg.Value
		}
		p.sort, cmd = p.sort.Update(msg)
		cmds = append(cmds, cmd)

	case components.ValueChangeMsg:
		if msg.ID == p.sort.ID() {
			p.last = "Sort by " + strings.ToLower(p.sort.Label())
		}

	case tea.KeyMsg:
		switch {
		case p.focus.is(menuStopSort):
			p.sort, cmd = p.sort.Update(msg)
		case p.focus.is(menuStopActions):
			p.actions, cmd = p.actions.Update(msg)
		case p.focus.is(menuStopContext):
			p.context, cmd = p.context.Update(msg)
		case p.focus.is(menuStopPopover):
			p.popover, cmd = p.popover.Update(msg)
		}
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		p.sort, cmd = p.sort.Update(msg)
		cmds = append(cmds, cmd)
		p.actions, cmd = p.actions.Update(msg)
		cmds = append(cmds, cmd)
		p.context, cmd = p.context.Update(msg)
		cmds = append(cmds, cmd)
		p.popover, cmd = p.popover.Update(msg)
		cmds = append(cmds, cmd)
	}

	// The context menu is pinned open.
	if !p.context.IsOpen() {
		p.context.Open()
	}
	return tea.Batch(cmds...)
}

func (p *menusPage) Teardown() {
	p.sort.Close()
	p.actions.Close()
}

func (p *menusPage) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "↑↓", Action: "Move"}, {Key: "→", Action: "Submenu"}, {Key: "enter", Action: "Choose"}}
}

// listsPage shows sidebar rows, a selectable list and indentation levels.
type listsPage struct {
	noSync
	section Section
	list    components.List
	zebra   components.Toggle
	rects   []pointer.Rect // list, zebra switch
	focus   focusRing

	listBounds pointer.Rect
}

func newListsPage(s Section) *listsPage {
	zebra := components.NewSwitch("lists/zebra", "Zebra stripes")
	zebra.Checked = true

	return &listsPage{
		section: s,
		list: components.List{
			Items: []components.ListItem{
				{Title: "Trail Map.pdf", Subtitle: "2.4 MB", Icon: "▤", Trailing: "Today"},
				{Title: "Emerald Bay.heic", Subtitle: "5.1 MB", Icon: "▧", Trailing: "Yesterday"},
				{Title: "Packing List.txt", Icon: "▤", Trailing: "Mon"},
				{Title: "Cabin Booking.eml", Subtitle: "Confirmed", Icon: "✉", Trailing: "Jun 2"},
				{Title: "Shoreline.mov", Icon: "▶", Trailing: "May 28"},
			},
			Zebra:    true,
			Selected: 1,
		},
		zebra: zebra,
		focus: focusRing{index: -1},
	}
}

func (p *listsPage) sidebarPreview() string {
	section := components.SidebarSection{
		Title: "Favorites",
		Items: []components.SidebarItem{
			{Icon: "⌂", Label: "Home", State: components.StateSelected, Size: components.RowMedium},
			{Icon: "◷", Label: "Recents", Badge: "12", Size: components.RowMedium},
			{Icon: "▣", Label: "Desktop", Size: components.RowSmall, Level: 1},
			{Icon: "▣", Label: "Documents", Size: components.RowSmall, Level: 1},
			{Icon: "⇣", Label: "Downloads", State: components.StateDisabled, Size: components.RowMedium},
			{Icon: "☁", Label: "iCloud Drive", Size: components.RowLarge},
		},
	}
	w := components.DefaultSidebarWidth
	body := section.Render(w-1, p.focus.is(0))
	return components.SidebarPanel(body, w, section.Height(), styles.Current().Glass)
}

func (p *listsPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	c.label("Sidebar")
	c.text(p.sidebarPreview())
	c.blank()

	var rects []pointer.Rect
	c.label("List")
	p.list.Active = p.focus.is(0)
	rects = append(rects, c.text(p.list.Render(min(width, 48))))
	c.blank()
	rects = append(rects, c.text(p.zebra.View()))
	c.blank()

	c.label("Indentation")
	for level := 0; level <= 3; level++ {
		c.text(components.ListItem{
			Title: "Level " + strconv.Itoa(level),
			Icon:  "▸",
			Level: level,
		}.Render(min(width, 48)))
	}

	p.rects = rects
	return c.String()
}

func (p *listsPage) Place(dx, dy int) {
	if len(p.rects) < 2 {
		return
	}
	p.listBounds = p.rects[0].Offset(dx, dy)
	p.zebra.SetBounds(p.rects[1].Offset(dx, dy))
}

// rowAt maps a line inside the list to an item index.
func (p *listsPage) rowAt(line int) int {
	y := 0
	for i, it := range p.list.Items {
		h := 1
		if it.Subtitle != "" {
			h = 2
		}
		if line >= y && line < y+h {
			return i
		}
		y += h
	}
	return -1
}

func (p *listsPage) Focusables() int { return 2 }

func (p *listsPage) SetFocus(i int) tea.Cmd {
	p.zebra.Blur()
	if p.focus.set(i, 2) && i == 1 {
		p.zebra.Focus()
	}
	return nil
}

func (p *listsPage) Typing() bool { return false }

func (p *listsPage) FocusIndex() int { return p.focus.index }

func (p *listsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case components.CheckedChangeMsg:
		if msg.ID == p.zebra.ID {
			p.zebra.Checked = msg.Checked
			p.list.Zebra = msg.Checked
		}
		return nil

	case tea.KeyMsg:
		if p.focus.is(0) {
			switch msg.String() {
			case "up", "k":
				p.list.Selected = max(p.list.Selected-1, 0)
			case "down", "j":
				p.list.Selected = min(p.list.Selected+1, len(p.list.Items)-1)
			}
			return nil
		}

	case tea.MouseMsg:
		if pointer.IsPress(msg) && p.listBounds.Contains(msg.X, msg.Y) {
			if i := p.rowAt(msg.Y - p.listBounds.Y); i >= 0 {
				p.list.Selected = i
			}
			return nil
		}
	}

	var cmd tea.Cmd
	p.zebra, cmd = p.zebra.Update(msg)
	return cmd
}

func (p *listsPage) Teardown() {}

func (p *listsPage) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "↑↓", Action: "Select"}, {Key: "space", Action: "Toggle"}}
}
