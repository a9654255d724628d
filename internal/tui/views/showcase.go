package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tahoe/internal/tui/components"
	"github.com/pablasso/tahoe/internal/tui/msgs"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
	"github.com/pablasso/tahoe/internal/version"
)

// WindowTitle is shown in the toolbar when there is room for it.
const WindowTitle = "Tahoe UI Component Library"

// Pointer region and widget identifiers.
const (
	CloseID    = "window/close"
	MinimizeID = "window/minimize"
	ZoomID     = "window/zoom"
	SidebarID  = "sidebar"
	NavID      = "toolbar/nav"
	SearchID   = "toolbar/search"
	ActionsID  = "toolbar/actions"
	ContentID  = "content"
	AlertID    = "alert"
	AboutID    = "about"
)

// area is a keyboard focus area of the window, in Tab order.
type area int

const (
	areaSidebar area = iota
	areaNav
	areaSearch
	areaActions
	areaContent
)

var pageBuilders = map[string]func(Section) page{
	"buttons":       func(s Section) page { return newButtonsPage(s) },
	"button-groups": func(s Section) page { return newGroupsPage(s) },
	"toggles":       func(s Section) page { return newTogglesPage(s) },
	"text-fields":   func(s Section) page { return newFieldsPage(s) },
	"menus":         func(s Section) page { return newMenusPage(s) },
	"sidebar-lists": func(s Section) page { return newListsPage(s) },
	"alerts":        func(s Section) page { return newAlertsPage(s) },
	"tooltips":      func(s Section) page { return newTooltipsPage(s) },
	"typography":    func(s Section) page { return newTypographyPage(s) },
	"scrollbar":     func(s Section) page { return newScrollbarPage(s) },
}

// ShowcaseOptions configures the showcase window.
type ShowcaseOptions struct {
	Start        string // section id or title
	Accent       string
	GlassCapable bool // the terminal can render liquid glass
}

// ShowcaseModel is the showcase window: a sidebar of sections, a toolbar
// with history, search and actions, and the selected section in a scroll
// viewport.
type ShowcaseModel struct {
	width  int
	height int
	opts   ShowcaseOptions

	router  *pointer.Router
	pages   map[string]page
	current string
	back    []string
	forward []string
	query   string

	nav      components.ButtonGroup
	search   components.WindowSearch
	actions  components.ButtonGroup
	viewport components.ScrollViewport

	focus       area
	contentStop int // page stop; Focusables() means the viewport itself

	alert       *components.Alert
	status      string
	statusBar   components.StatusBar
	hideSidebar bool

	layout      components.WindowLayout
	sidebar     string
	sidebarRows []string // section id per sidebar line, "" for headers
	toolbar     string
}

// NewShowcaseModel creates the showcase on its start section. An unknown
// start section falls back to the first one.
func NewShowcaseModel(opts ShowcaseOptions) ShowcaseModel {
	pages := make(map[string]page, len(pageBuilders))
	for _, s := range AllSections() {
		if build, ok := pageBuilders[s.ID]; ok {
			pages[s.ID] = build(s)
		}
	}

	start := AllSections()[0].ID
	if s, ok := FindSection(opts.Start); ok {
		start = s.ID
	}

	nav := components.NewButtonGroup(NavID, components.SelectNone,
		components.GroupItem{Value: "back", Label: "‹"},
		components.GroupItem{Value: "forward", Label: "›"},
	)
	actions := components.NewButtonGroup(ActionsID, components.SelectNone,
		components.GroupItem{Value: "appearance", Label: "◐"},
		components.GroupItem{Value: "glass", Label: "◇"},
		components.GroupItem{Value: "about", Label: "i"},
	)

	m := ShowcaseModel{
		opts:     opts,
		router:   pointer.NewRouter(),
		pages:    pages,
		current:  start,
		nav:      nav,
		search:   components.NewWindowSearch(SearchID),
		actions:  actions,
		viewport: components.NewScrollViewport(ContentID, 0, 0, 0),
		focus:    areaSidebar,
	}
	m.status = "Showing " + m.section().Title
	return m
}

// Init implements tea.Model. Pages with animations start them here.
func (m ShowcaseModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.pages {
		if p, ok := p.(interface{ Init() tea.Cmd }); ok {
			cmds = append(cmds, p.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Current returns the id of the section on screen.
func (m ShowcaseModel) Current() string { return m.current }

// Router returns the pointer router of the window.
func (m ShowcaseModel) Router() *pointer.Router { return m.router }

// Status returns the status bar message.
func (m ShowcaseModel) Status() string { return m.status }

// Layout returns where the window parts were drawn in the last frame.
func (m ShowcaseModel) Layout() components.WindowLayout { return m.layout }

// AlertOpen reports whether a modal alert is showing.
func (m ShowcaseModel) AlertOpen() bool { return m.alert != nil }

// Query returns the sidebar filter.
func (m ShowcaseModel) Query() string { return m.query }

// SetSize resizes the window.
func (m *ShowcaseModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.relayout()
}

func (m ShowcaseModel) section() Section {
	s, _ := FindSection(m.current)
	return s
}

func (m ShowcaseModel) page() page {
	return m.pages[m.current]
}

// visibleSections lists the sections left by the sidebar filter.
func (m ShowcaseModel) visibleSections() []Section {
	var out []Section
	for _, g := range FilterSections(Catalog(), m.query) {
		out = append(out, g.Sections...)
	}
	return out
}

func (m ShowcaseModel) sidebarWidth() int {
	if m.hideSidebar {
		return 0
	}
	return min(components.DefaultSidebarWidth, max(m.width/3, 16))
}

// Update implements tea.Model.
func (m ShowcaseModel) Update(msg tea.Msg) (ShowcaseModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case msgs.GoToSectionMsg:
		m.goTo(msg.ID, true)

	case msgs.ShowAlertMsg:
		m.openAlert(msg.Alert)

	case msgs.StatusMsg:
		m.status = msg.Text

	case components.AlertResultMsg:
		m.alert = nil
		label := msg.Label
		if label == "" {
			label = "dismissed"
		}
		m.status = "Alert: " + label
		if msg.ID != AboutID {
			cmd = m.page().Update(msg)
		}
		cmd = tea.Batch(cmd, m.restoreFocus())

	case components.ButtonPressedMsg:
		cmd = m.handlePress(msg)

	case components.ValueChangeMsg:
		if msg.ID == SearchID {
			m.query = msg.Value
		} else {
			cmd = m.page().Update(msg)
		}

	case components.PositionChangeMsg:
		if msg.ID == m.viewport.ID() {
			m.viewport, cmd = m.viewport.Update(msg)
		} else {
			cmd = m.page().Update(msg)
		}

	default:
		// Timers keep running on pages that are not on screen.
		cmds := make([]tea.Cmd, 0, len(m.pages)+1)
		var searchCmd tea.Cmd
		m.search, searchCmd = m.search.Update(msg)
		cmds = append(cmds, searchCmd)
		for _, p := range m.pages {
			cmds = append(cmds, p.Update(msg))
		}
		cmd = tea.Batch(cmds...)
	}

	m.relayout()
	m.syncCapture()
	return m, cmd
}

// syncCapture mirrors every scrollbar's drag state onto the router.
func (m *ShowcaseModel) syncCapture() {
	components.SyncCapture(m.router, m.viewport.Scrollbar())
	m.page().Sync(m.router)
}

// teardown ends drags and detaches the pointer capture.
func (m *ShowcaseModel) teardown() {
	m.page().Teardown()
	m.viewport.CancelDrag()
	m.router.Reset()
}

func (m *ShowcaseModel) quit() tea.Cmd {
	m.teardown()
	return tea.Quit
}

func (m *ShowcaseModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	if m.alert != nil {
		var cmd tea.Cmd
		*m.alert, cmd = m.alert.Update(msg)
		return cmd
	}

	switch key {
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	}

	if m.typing() {
		if key == "esc" {
			return m.setFocus(areaSidebar, 0)
		}
	} else {
		switch key {
		case "q":
			return m.quit()
		case "[":
			m.goBack()
			return nil
		case "]":
			m.goForward()
			return nil
		case "/":
			return m.setFocus(areaSearch, 0)
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case areaSidebar:
		switch key {
		case "up", "k":
			m.stepSection(-1)
		case "down", "j":
			m.stepSection(1)
		case "enter", "right", "l":
			return m.setFocus(areaContent, 0)
		}
	case areaNav:
		m.nav, cmd = m.nav.Update(msg)
	case areaSearch:
		m.search, cmd = m.search.Update(msg)
	case areaActions:
		m.actions, cmd = m.actions.Update(msg)
	case areaContent:
		if m.contentStop >= m.page().Focusables() {
			m.viewport, cmd = m.viewport.Update(msg)
		} else {
			cmd = m.page().Update(msg)
		}
	}
	return cmd
}

// typing reports whether the focused widget takes printable keys.
func (m ShowcaseModel) typing() bool {
	switch m.focus {
	case areaSearch:
		return true
	case areaContent:
		return m.contentStop < m.page().Focusables() && m.page().Typing()
	}
	return false
}

func (m *ShowcaseModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.alert != nil {
		var cmd tea.Cmd
		*m.alert, cmd = m.alert.Update(msg)
		return cmd
	}

	id, ok := m.router.Target(msg)
	if !ok {
		return nil
	}

	wheel := msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown
	press := pointer.IsPress(msg)
	var cmd tea.Cmd

	switch id {
	case CloseID:
		if press {
			return m.quit()
		}
	case MinimizeID:
		if press {
			m.status = "Minimize is not available in a terminal"
		}
	case ZoomID:
		if press {
			m.hideSidebar = !m.hideSidebar
		}
	case SidebarID:
		if press {
			row := msg.Y - m.layout.Sidebar.Y
			if row >= 0 && row < len(m.sidebarRows) && m.sidebarRows[row] != "" {
				m.goTo(m.sidebarRows[row], true)
			}
			cmd = m.setFocus(areaSidebar, 0)
		}
	case NavID:
		m.nav, cmd = m.nav.Update(msg)
	case SearchID:
		if press {
			cmd = m.setFocus(areaSearch, 0)
		}
	case ActionsID:
		m.actions, cmd = m.actions.Update(msg)
	case m.viewport.ScrollbarID():
		m.viewport, cmd = m.viewport.Update(msg)
	case ContentID:
		if wheel {
			m.viewport, cmd = m.viewport.Update(msg)
			break
		}
		cmd = m.page().Update(msg)
		if press {
			if i := m.page().FocusIndex(); i >= 0 && (m.focus != areaContent || i != m.contentStop) {
				cmd = tea.Batch(cmd, m.setFocus(areaContent, i))
			}
		}
	default:
		// A captured drag owned by a scrollbar on the page.
		cmd = m.page().Update(msg)
	}
	return cmd
}

func (m *ShowcaseModel) handlePress(msg components.ButtonPressedMsg) tea.Cmd {
	switch msg.ID {
	case NavID + "/back":
		m.goBack()
	case NavID + "/forward":
		m.goForward()
	case ActionsID + "/appearance":
		t := styles.Current()
		base := styles.Dark
		if t.Palette.Name == styles.Dark.Name {
			base = styles.Light
		}
		t.Palette = base.WithAccent(m.opts.Accent)
		styles.Set(t)
		m.status = "Appearance: " + t.Palette.Name
	case ActionsID + "/glass":
		if !m.opts.GlassCapable {
			m.status = "Liquid glass needs a TrueColor terminal"
			return nil
		}
		t := styles.Current()
		t.Glass = !t.Glass
		styles.Set(t)
		m.status = "Liquid glass off"
		if t.Glass {
			m.status = "Liquid glass on"
		}
	case ActionsID + "/about":
		about := components.NewAlert(AboutID, "Tahoe UI",
			"A terminal showcase of the Tahoe component library. Version "+version.Version+".",
			components.AlertAction{Label: "OK", Role: components.RolePrimary},
		)
		about.Icon = "◆"
		m.openAlert(about)
	default:
		return m.page().Update(msg)
	}
	return nil
}

// focusStops is the number of Tab stops: four window areas plus the page
// stops and the viewport.
func (m ShowcaseModel) focusStops() int {
	return int(areaContent) + m.page().Focusables() + 1
}

func (m ShowcaseModel) focusIndex() int {
	if m.focus == areaContent {
		return int(areaContent) + m.contentStop
	}
	return int(m.focus)
}

func (m *ShowcaseModel) cycleFocus(dir int) tea.Cmd {
	n := m.focusStops()
	next := (m.focusIndex() + dir + n) % n
	if next >= int(areaContent) {
		return m.setFocus(areaContent, next-int(areaContent))
	}
	return m.setFocus(area(next), 0)
}

// setFocus moves keyboard focus to an area; stop selects the page stop
// when the area is the content.
func (m *ShowcaseModel) setFocus(a area, stop int) tea.Cmd {
	m.nav.Blur()
	m.search.Blur()
	m.actions.Blur()
	m.viewport.Blur()
	m.page().SetFocus(-1)

	m.focus = a
	m.contentStop = 0

	switch a {
	case areaNav:
		m.nav.Focus()
	case areaSearch:
		return m.search.Focus()
	case areaActions:
		m.actions.Focus()
	case areaContent:
		n := m.page().Focusables()
		m.contentStop = max(min(stop, n), 0)
		if m.contentStop == n {
			m.viewport.Focus()
			return nil
		}
		return m.page().SetFocus(m.contentStop)
	}
	return nil
}

func (m *ShowcaseModel) restoreFocus() tea.Cmd {
	return m.setFocus(m.focus, m.contentStop)
}

// goTo shows section id. With record set the current section is pushed
// onto the back history and the forward history is dropped.
func (m *ShowcaseModel) goTo(id string, record bool) {
	if id == m.current {
		return
	}
	if _, ok := m.pages[id]; !ok {
		return
	}

	inContent := m.focus == areaContent
	m.teardown()
	m.page().SetFocus(-1)
	if record {
		m.back = append(m.back, m.current)
		m.forward = nil
	}
	m.current = id
	m.viewport.SetPosition(0)
	m.status = "Showing " + m.section().Title
	if inContent {
		m.setFocus(areaContent, 0)
	}
}

func (m *ShowcaseModel) goBack() {
	if len(m.back) == 0 {
		return
	}
	prev := m.back[len(m.back)-1]
	m.back = m.back[:len(m.back)-1]
	m.forward = append(m.forward, m.current)
	m.goTo(prev, false)
}

func (m *ShowcaseModel) goForward() {
	if len(m.forward) == 0 {
		return
	}
	next := m.forward[len(m.forward)-1]
	m.forward = m.forward[:len(m.forward)-1]
	m.back = append(m.back, m.current)
	m.goTo(next, false)
}

// stepSection moves to the previous or next section left by the filter.
func (m *ShowcaseModel) stepSection(dir int) {
	visible := m.visibleSections()
	if len(visible) == 0 {
		return
	}
	idx := -1
	for i, s := range visible {
		if s.ID == m.current {
			idx = i
		}
	}
	next := idx + dir
	if idx < 0 {
		next = 0
	}
	if next < 0 || next >= len(visible) {
		return
	}
	m.goTo(visible[next].ID, true)
}

// openAlert presents a modal alert. Drags in progress are abandoned.
func (m *ShowcaseModel) openAlert(a components.Alert) {
	m.teardown()
	m.alert = &a
}

// relayout renders the sidebar, toolbar and page for the current size,
// places every widget on screen and registers the pointer regions.
func (m *ShowcaseModel) relayout() {
	if m.width <= 0 || m.height <= 1 {
		return
	}

	m.nav.SetDisabled("back", len(m.back) == 0)
	m.nav.SetDisabled("forward", len(m.forward) == 0)

	win := components.Window{
		Sidebar:      " ",
		SidebarWidth: m.sidebarWidth(),
		Width:        m.width,
		Height:       m.height - 1,
	}
	if m.hideSidebar {
		win.Sidebar = ""
	}
	m.layout = win.Layout()
	l := m.layout

	m.viewport.SetSize(l.Content.W, l.Content.H)
	m.viewport.SetOrigin(l.Content.X, l.Content.Y)
	content := m.page().Render(max(m.viewport.ContentWidth()-2, 1))
	m.viewport.SetContent(indent(content, " "))
	m.page().Place(l.Content.X+1, l.Content.Y-m.viewport.YOffset())

	m.renderSidebar()
	m.renderToolbar()

	if m.alert != nil {
		v := m.alert.View()
		x, y := components.Center(m.width, m.height, lipgloss.Width(v), lipgloss.Height(v))
		m.alert.SetOrigin(x, y)
	}

	m.registerRegions()
}

func (m *ShowcaseModel) registerRegions() {
	l := m.layout
	m.router.SetRegions(nil)
	if !m.hideSidebar {
		m.router.Register(SidebarID, l.Sidebar)
	}
	m.router.Register(NavID, m.nav.Bounds())
	m.router.Register(SearchID, m.search.Bounds())
	m.router.Register(ActionsID, m.actions.Bounds())
	m.router.Register(ContentID, pointer.Rect{X: l.Content.X, Y: l.Content.Y, W: l.Content.W - 1, H: l.Content.H})
	if m.viewport.Scrollable() {
		m.router.Register(m.viewport.ScrollbarID(), m.viewport.Scrollbar().Track())
	}
	m.router.Register(CloseID, l.Close)
	m.router.Register(MinimizeID, l.Minimize)
	m.router.Register(ZoomID, l.Zoom)
	if m.alert != nil {
		m.router.Register(AlertID, pointer.Rect{W: m.width, H: m.height})
	}
}

// renderSidebar draws the filtered section list and records which
// section each line shows.
func (m *ShowcaseModel) renderSidebar() {
	m.sidebarRows = m.sidebarRows[:0]
	if m.hideSidebar {
		m.sidebar = ""
		return
	}

	width := max(m.sidebarWidth()-1, 1)
	groups := FilterSections(Catalog(), m.query)
	if len(groups) == 0 {
		m.sidebar = styles.SubtleStyle.Render(" No results")
		m.sidebarRows = append(m.sidebarRows, "")
		return
	}

	var blocks []string
	for gi, g := range groups {
		sec := components.SidebarSection{Title: g.Title}
		for _, s := range g.Sections {
			state := components.StateDefault
			if s.ID == m.current {
				state = components.StateSelected
			}
			sec.Items = append(sec.Items, components.SidebarItem{
				ID: s.ID, Icon: s.Icon, Label: s.Title, State: state, Size: components.RowMedium,
			})
		}
		if gi > 0 {
			blocks = append(blocks, "")
			m.sidebarRows = append(m.sidebarRows, "")
		}
		blocks = append(blocks, sec.Render(width, m.focus == areaSidebar))
		m.sidebarRows = append(m.sidebarRows, "")
		for _, it := range sec.Items {
			m.sidebarRows = append(m.sidebarRows, it.ID)
		}
	}
	m.sidebar = strings.Join(blocks, "\n")
}

// renderToolbar lays out history buttons and title on the left, search
// and actions on the right. The title, then the search field, give way
// when the toolbar is narrow.
func (m *ShowcaseModel) renderToolbar() {
	t := m.layout.Toolbar
	if t.W <= 0 {
		m.toolbar = ""
		return
	}

	start := 1
	if m.hideSidebar {
		start = 8 // clear of the traffic lights
	}
	navX := t.X + start
	actionsX := t.X + t.W - m.actions.Width() - 1
	searchX := actionsX - 1 - m.search.Width()
	left := navX + m.nav.Width() + 2

	m.nav.SetOrigin(navX, t.Y)
	m.actions.SetOrigin(actionsX, t.Y)
	showSearch := searchX >= left
	if showSearch {
		m.search.SetBounds(pointer.Rect{X: searchX, Y: t.Y, W: m.search.Width(), H: 1})
	} else {
		m.search.SetBounds(pointer.Rect{})
		searchX = actionsX
	}

	line := strings.Repeat(" ", t.W)
	line = components.Overlay(line, m.nav.View(), navX-t.X, 0)
	room := searchX - 1 - left
	for _, title := range []string{WindowTitle, m.section().Title} {
		if ansi.StringWidth(title) <= room {
			line = components.Overlay(line, styles.TitleStyle.Render(title), left-t.X, 0)
			break
		}
	}
	if showSearch {
		line = components.Overlay(line, m.search.View(), searchX-t.X, 0)
	}
	m.toolbar = components.Overlay(line, m.actions.View(), actionsX-t.X, 0)
}

func (m ShowcaseModel) hints() []components.KeyHint {
	var hints []components.KeyHint
	switch {
	case m.alert != nil:
		hints = []components.KeyHint{{Key: "tab", Action: "Next"}, {Key: "enter", Action: "Choose"}, {Key: "esc", Action: "Cancel"}}
	case m.focus == areaSidebar:
		hints = []components.KeyHint{{Key: "↑↓", Action: "Section"}, {Key: "enter", Action: "Open"}}
	case m.focus == areaSearch:
		hints = []components.KeyHint{{Key: "type", Action: "Filter"}, {Key: "esc", Action: "Done"}}
	case m.focus == areaContent && m.contentStop >= m.page().Focusables():
		hints = []components.KeyHint{{Key: "↑↓", Action: "Scroll"}}
	case m.focus == areaContent:
		hints = m.page().Hints()
	default:
		hints = []components.KeyHint{{Key: "←→", Action: "Move"}, {Key: "enter", Action: "Press"}}
	}
	if m.alert == nil {
		hints = append(hints, components.KeyHint{Key: "tab", Action: "Focus"}, components.KeyHint{Key: "q", Action: "Quit"})
	}
	if m.status != "" {
		hints = append(hints, components.KeyHint{Action: m.status})
	}
	return hints
}

// View implements tea.Model.
func (m ShowcaseModel) View() string {
	if m.width <= 0 || m.height <= 1 {
		return ""
	}

	win := components.Window{
		Title:        WindowTitle,
		Toolbar:      m.toolbar,
		Sidebar:      m.sidebar,
		SidebarWidth: m.sidebarWidth(),
		Content:      m.viewport.View(),
		Width:        m.width,
		Height:       m.height - 1,
		Glass:        styles.Current().Glass,
	}
	if !m.hideSidebar && win.Sidebar == "" {
		win.Sidebar = " "
	}

	status := components.FitBlock(m.statusBar.RenderHints(m.width, m.hints()), m.width, 1)
	frame := win.View() + "\n" + status

	if m.alert != nil {
		b := m.alert.Bounds()
		frame = components.Overlay(components.Dim(frame), m.alert.View(), b.X, b.Y)
	}
	return frame
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
