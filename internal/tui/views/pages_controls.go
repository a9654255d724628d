package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/components"
	"github.com/pablasso/tahoe/internal/tui/msgs"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// noSync is embedded by pages without scrollbars.
type noSync struct{}

func (noSync) Sync(*pointer.Router) {}

// buttonsPage shows every button variant, size and state.
type buttonsPage struct {
	noSync
	section Section
	buttons []components.Button
	rects   []pointer.Rect
	focus   focusRing
	pressed string
}

func newButtonsPage(s Section) *buttonsPage {
	mk := func(id, label, variant, size string) components.Button {
		b := components.NewButton("buttons/"+id, label)
		b.Variant = variant
		b.Size = size
		return b
	}

	add := mk("add", "Add", styles.ButtonSecondary, styles.SizeIcon)
	add.Icon = "+"
	disabled := mk("disabled", "Disabled", styles.ButtonPrimary, styles.SizeDefault)
	disabled.Disabled = true

	return &buttonsPage{
		section: s,
		buttons: []components.Button{
			mk("primary", "Primary", styles.ButtonPrimary, styles.SizeDefault),
			mk("secondary", "Secondary", styles.ButtonSecondary, styles.SizeDefault),
			mk("destructive", "Delete", styles.ButtonDestructive, styles.SizeDefault),
			mk("ghost", "Learn More", styles.ButtonGhost, styles.SizeDefault),
			mk("small", "Small", styles.ButtonPrimary, styles.SizeSmall),
			mk("default", "Default", styles.ButtonPrimary, styles.SizeDefault),
			mk("large", "Large", styles.ButtonPrimary, styles.SizeLarge),
			add,
			disabled,
		},
		focus: focusRing{index: -1},
	}
}

func (p *buttonsPage) stops() []int {
	var out []int
	for i, b := range p.buttons {
		if !b.Disabled {
			out = append(out, i)
		}
	}
	return out
}

func (p *buttonsPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	views := make([]string, len(p.buttons))
	for i, b := range p.buttons {
		views[i] = b.View()
	}

	var rects []pointer.Rect
	c.label("Variants")
	rects = append(rects, c.flow(2, views[0:4]...)...)
	c.blank()
	c.label("Sizes")
	rects = append(rects, c.flow(2, views[4:8]...)...)
	c.blank()
	c.label("States")
	rects = append(rects, c.flow(2, views[8:]...)...)
	c.blank()

	pressed := p.pressed
	if pressed == "" {
		pressed = "none"
	}
	c.text(readout("Last pressed", pressed))

	p.rects = rects
	return c.String()
}

func (p *buttonsPage) Place(dx, dy int) {
	for i := range p.buttons {
		if i < len(p.rects) {
			p.buttons[i].SetBounds(p.rects[i].Offset(dx, dy))
		}
	}
}

func (p *buttonsPage) Focusables() int { return len(p.stops()) }

func (p *buttonsPage) SetFocus(i int) tea.Cmd {
	for j := range p.buttons {
		p.buttons[j].Blur()
	}
	stops := p.stops()
	if p.focus.set(i, len(stops)) {
		p.buttons[stops[i]].Focus()
	}
	return nil
}

func (p *buttonsPage) Typing() bool { return false }

func (p *buttonsPage) FocusIndex() int { return p.focus.index }

func (p *buttonsPage) Update(msg tea.Msg) tea.Cmd {
	if pressed, ok := msg.(components.ButtonPressedMsg); ok {
		for _, b := range p.buttons {
			if b.ID == pressed.ID {
				p.pressed = b.Label
				return func() tea.Msg { return msgs.StatusMsg{Text: "Pressed " + b.Label} }
			}
		}
		return nil
	}

	var cmds []tea.Cmd
	for i := range p.buttons {
		var cmd tea.Cmd
		p.buttons[i], cmd = p.buttons[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (p *buttonsPage) Teardown() {}

func (p *buttonsPage) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "enter", Action: "Press"}}
}

// groupsPage shows the three selection modes of ButtonGroup.
type groupsPage struct {
	noSync
	section Section
	groups  []components.ButtonGroup // align, format, actions
	rects   []pointer.Rect
	focus   focusRing
	action  string
}

func newGroupsPage(s Section) *groupsPage {
	align := components.NewButtonGroup("groups/align", components.SelectSingle,
		components.GroupItem{Value: "left", Label: "Left", Icon: "⇤"},
		components.GroupItem{Value: "center", Label: "Center", Icon: "↔"},
		components.GroupItem{Value: "right", Label: "Right", Icon: "⇥"},
	)
	align.SetSelected("left")

	format := components.NewButtonGroup("groups/format", components.SelectMultiple,
		components.GroupItem{Value: "bold", Label: "B"},
		components.GroupItem{Value: "italic", Label: "I"},
		components.GroupItem{Value: "underline", Label: "U"},
		components.GroupItem{Value: "strike", Label: "S"},
	)
	format.SetSelected("bold")

	actions := components.NewButtonGroup("groups/actions", components.SelectNone,
		components.GroupItem{Value: "share", Label: "Share", Icon: "⇪"},
		components.GroupItem{Value: "duplicate", Label: "Duplicate"},
		components.GroupItem{Value: "archive", Label: "Archive", Disabled: true},
	)
	actions.SetSize(components.GroupXL)

	return &groupsPage{
		section: s,
		groups:  []components.ButtonGroup{align, format, actions},
		focus:   focusRing{index: -1},
	}
}

// sample renders the preview text with the chosen alignment and formats.
func (p *groupsPage) sample(width int) string {
	style := lipgloss.NewStyle().Foreground(styles.Current().Palette.Text)
	format := p.groups[1]
	style = style.
		Bold(format.IsSelected("bold")).
		Italic(format.IsSelected("italic")).
		Underline(format.IsSelected("underline")).
		Strikethrough(format.IsSelected("strike"))

	pos := lipgloss.Left
	switch {
	case p.groups[0].IsSelected("center"):
		pos = lipgloss.Center
	case p.groups[0].IsSelected("right"):
		pos = lipgloss.Right
	}
	return lipgloss.PlaceHorizontal(max(width, 1), pos, style.Render("The quick brown fox"))
}

func (p *groupsPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	p.rects = p.rects[:0]
	titles := []string{"Single selection", "Multiple selection", "No selection"}
	for i, g := range p.groups {
		c.label(titles[i])
		p.rects = append(p.rects, c.text(g.View()))
		c.blank()
	}

	c.text(p.sample(min(width, 40)))
	c.blank()
	c.text(readout("Alignment", joined(p.groups[0].Selected())))
	c.text(readout("Formatting", joined(p.groups[1].Selected())))
	action := p.action
	if action == "" {
		action = "none"
	}
	c.text(readout("Last action", action))
	return c.String()
}

func (p *groupsPage) Place(dx, dy int) {
	for i := range p.groups {
		if i < len(p.rects) {
			r := p.rects[i].Offset(dx, dy)
			p.groups[i].SetOrigin(r.X, r.Y)
		}
	}
}

func (p *groupsPage) Focusables() int { return len(p.groups) }

func (p *groupsPage) SetFocus(i int) tea.Cmd {
	for j := range p.groups {
		p.groups[j].Blur()
	}
	if p.focus.set(i, len(p.groups)) {
		p.groups[i].Focus()
	}
	return nil
}

func (p *groupsPage) Typing() bool { return false }

func (p *groupsPage) FocusIndex() int { return p.focus.index }

func (p *groupsPage) Update(msg tea.Msg) tea.Cmd {
	if pressed, ok := msg.(components.ButtonPressedMsg); ok {
		if v, found := strings.CutPrefix(pressed.ID, p.groups[2].ID()+"/"); found {
			p.action = v
		}
		return nil
	}

	var cmds []tea.Cmd
	for i := range p.groups {
		var cmd tea.Cmd
		p.groups[i], cmd = p.groups[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (p *groupsPage) Teardown() {}

func (p *groupsPage) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "←→", Action: "Move"}, {Key: "enter", Action: "Toggle"}}
}

// togglesPage shows switches, checkboxes, radios, segmented controls and a
// disclosure button. The page owns every checked state.
type togglesPage struct {
	noSync
	section  Section
	toggles  []components.Toggle // switches 0-2, checkboxes 3-4, radios 5-7
	view     components.SegmentedControl
	period   components.SegmentedControl
	advanced components.DisclosureButton
	rects    []pointer.Rect
	focus    focusRing
}

func newTogglesPage(s Section) *togglesPage {
	wifi := components.NewSwitch("toggles/wifi", "Wi-Fi")
	wifi.Checked = true
	airdrop := components.NewSwitch("toggles/airdrop", "AirDrop")
	airdrop.Disabled = true
	remember := components.NewCheckbox("toggles/remember", "Remember me")
	remember.Checked = true
	auto := components.NewRadio("toggles/appearance/auto", "Auto")
	auto.Checked = true

	views := []components.Segment{
		{Value: "icons", Label: "Icons"},
		{Value: "list", Label: "List"},
		{Value: "columns", Label: "Columns"},
		{Value: "gallery", Label: "Gallery"},
	}
	periods := []components.Segment{
		{Value: "day", Label: "Day"},
		{Value: "week", Label: "Week"},
		{Value: "month", Label: "Month"},
	}

	return &togglesPage{
		section: s,
		toggles: []components.Toggle{
			wifi,
			components.NewSwitch("toggles/bluetooth", "Bluetooth"),
			airdrop,
			components.NewCheckbox("toggles/hidden", "Show hidden files"),
			remember,
			components.NewRadio("toggles/appearance/light", "Light"),
			components.NewRadio("toggles/appearance/dark", "Dark"),
			auto,
		},
		view:     components.NewSegmentedControl("toggles/view", views, components.WithValue("list")),
		period:   components.NewSegmentedControl("toggles/period", periods, components.WithDefaultValue("week"), components.WithGlass(true)),
		advanced: components.DisclosureButton{ID: "toggles/advanced", Label: "Advanced options"},
		focus:    focusRing{index: -1},
	}
}

// stops lists the enabled toggles followed by -1, -2 and -3 for the two
// segmented controls and the disclosure button.
func (p *togglesPage) stops() []int {
	var out []int
	for i, t := range p.toggles {
		if !t.Disabled {
			out = append(out, i)
		}
	}
	return append(out, -1, -2, -3)
}

func (p *togglesPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	views := make([]string, len(p.toggles))
	for i, t := range p.toggles {
		views[i] = t.View()
	}

	var rects []pointer.Rect
	c.label("Switches")
	rects = append(rects, c.flow(3, views[0:3]...)...)
	c.blank()
	c.label("Checkboxes")
	rects = append(rects, c.flow(3, views[3:5]...)...)
	c.blank()
	c.label("Appearance")
	rects = append(rects, c.flow(3, views[5:8]...)...)
	c.blank()
	c.label("Segmented control")
	rects = append(rects, c.text(p.view.View()))
	c.text(readout("View", p.view.Value()))
	c.blank()
	c.label("Glass segmented control")
	rects = append(rects, c.text(p.period.View()))
	c.blank()
	rects = append(rects, c.text(p.advanced.View()))
	if p.advanced.Expanded {
		c.text(styles.SubtleStyle.Render("    Sync every 15 minutes"))
		c.text(styles.SubtleStyle.Render("    Keep 30 days of history"))
	}

	p.rects = rects
	return c.String()
}

func (p *togglesPage) Place(dx, dy int) {
	n := len(p.toggles)
	if len(p.rects) < n+3 {
		return
	}
	for i := range p.toggles {
		p.toggles[i].SetBounds(p.rects[i].Offset(dx, dy))
	}
	r := p.rects[n].Offset(dx, dy)
	p.view.SetOrigin(r.X, r.Y)
	r = p.rects[n+1].Offset(dx, dy)
	p.period.SetOrigin(r.X, r.Y)
	p.advanced.SetBounds(p.rects[n+2].Offset(dx, dy))
}

func (p *togglesPage) Focusables() int { return len(p.stops()) }

func (p *togglesPage) SetFocus(i int) tea.Cmd {
	for j := range p.toggles {
		p.toggles[j].Blur()
	}
	p.view.Blur()
	p.period.Blur()
	p.advanced.Blur()

	stops := p.stops()
	if !p.focus.set(i, len(stops)) {
		return nil
	}
	switch s := stops[i]; s {
	case -1:
		p.view.Focus()
	case -2:
		p.period.Focus()
	case -3:
		p.advanced.Focus()
	default:
		p.toggles[s].Focus()
	}
	return nil
}

func (p *togglesPage) Typing() bool { return false }

func (p *togglesPage) FocusIndex() int { return p.focus.index }

func (p *togglesPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case components.CheckedChangeMsg:
		p.applyChecked(msg)
		return nil
	case components.ValueChangeMsg:
		if msg.ID == p.view.ID() {
			p.view.SetValue(msg.Value)
		}
		return nil
	}

	var cmds []tea.Cmd
	for i := range p.toggles {
		var cmd tea.Cmd
		p.toggles[i], cmd = p.toggles[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	p.view, cmd = p.view.Update(msg)
	cmds = append(cmds, cmd)
	p.period, cmd = p.period.Update(msg)
	cmds = append(cmds, cmd)
	p.advanced, cmd = p.advanced.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// applyChecked accepts a requested state. Radios are exclusive.
func (p *togglesPage) applyChecked(msg components.CheckedChangeMsg) {
	idx := -1
	for i, t := range p.toggles {
		if t.ID == msg.ID {
			idx = i
		}
	}
	if idx < 0 {
		return
	}
	if p.toggles[idx].Kind != components.KindRadio {
		p.toggles[idx].Checked = msg.Checked
		return
	}
	for i := range p.toggles {
		if p.toggles[i].Kind == components.KindRadio {
			p.toggles[i].Checked = i == idx
		}
	}
}

func (p *togglesPage) Teardown() {}

func (p *togglesPage) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "space", Action: "Toggle"}, {Key: "←→", Action: "Segment"}}
}

// fieldsPage shows text fields and window search fields.
type fieldsPage struct {
	noSync
	section  Section
	fields   []components.TextField // name, email, find, account
	searches []components.WindowSearch
	notes    textarea.Model
	rects    []pointer.Rect
	focus    focusRing

	notesBounds pointer.Rect
}

// maxFilterLen caps the controlled search field.
const maxFilterLen = 16

func newFieldsPage(s Section) *fieldsPage {
	account := components.NewTextField(
		components.WithFieldID("fields/account"),
		components.WithLabel("Account ID"),
		components.WithDisabled(true),
	)
	account.SetValue("TAHOE-0001")

	notes := textarea.New()
	notes.Placeholder = "Trip notes"
	notes.ShowLineNumbers = false
	notes.CharLimit = 280
	notes.SetWidth(notesWidth)
	notes.SetHeight(3)

	return &fieldsPage{
		section: s,
		fields: []components.TextField{
			components.NewTextField(
				components.WithFieldID("fields/name"),
				components.WithLabel("Full name"),
				components.WithPlaceholder("Jane Appleseed"),
			),
			components.NewTextField(
				components.WithFieldID("fields/email"),
				components.WithLabel("Email"),
				components.WithPlaceholder("jane@example.com"),
			),
			components.NewTextField(
				components.WithLabel("Find"),
				components.WithVariant(components.FieldSearch),
				components.WithPlaceholder("Search files"),
			),
			account,
		},
		searches: []components.WindowSearch{
			components.NewWindowSearch("fields/search-xl", components.WithSearchSize(components.SearchXL)),
			components.NewWindowSearch("fields/filter", components.WithSearchValue("")),
			components.NewWindowSearch("fields/search-off", components.WithSearchDisabled(true)),
		},
		notes: notes,
		focus: focusRing{index: -1},
	}
}

const notesWidth = 36

// Focus stops: name, email, find, the two enabled search fields, then the
// notes area.
var fieldStops = [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 0}}

func (p *fieldsPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	views := make([]string, 0, len(p.fields))
	for _, f := range p.fields {
		views = append(views, f.View())
	}

	var rects []pointer.Rect
	c.label("Text fields")
	rects = append(rects, c.flow(2, views...)...)
	c.blank()
	c.label("Window search")
	for i, s := range p.searches {
		if i > 0 {
			c.blank()
		}
		rects = append(rects, c.text(s.View()))
	}
	c.text(styles.SubtleStyle.Render(
		"The second field is controlled and keeps at most 16 characters."))
	c.blank()
	c.label("Notes")
	rects = append(rects, c.text(p.notes.View()))

	p.rects = rects
	return c.String()
}

func (p *fieldsPage) Place(dx, dy int) {
	n := len(p.fields) + len(p.searches)
	if len(p.rects) < n+1 {
		return
	}
	for i := range p.fields {
		p.fields[i].SetBounds(p.rects[i].Offset(dx, dy))
	}
	for i := range p.searches {
		p.searches[i].SetBounds(p.rects[len(p.fields)+i].Offset(dx, dy))
	}
	p.notesBounds = p.rects[n].Offset(dx, dy)
}

func (p *fieldsPage) Focusables() int { return len(fieldStops) }

func (p *fieldsPage) SetFocus(i int) tea.Cmd {
	for j := range p.fields {
		p.fields[j].Blur()
	}
	for j := range p.searches {
		p.searches[j].Blur()
	}
	p.notes.Blur()
	if !p.focus.set(i, len(fieldStops)) {
		return nil
	}
	switch stop := fieldStops[i]; stop[0] {
	case 0:
		return p.fields[stop[1]].Focus()
	case 1:
		return p.searches[stop[1]].Focus()
	}
	return p.notes.Focus()
}

func (p *fieldsPage) Typing() bool { return p.focus.index >= 0 }

func (p *fieldsPage) FocusIndex() int { return p.focus.index }

func (p *fieldsPage) Update(msg tea.Msg) tea.Cmd {
	if change, ok := msg.(components.ValueChangeMsg); ok {
		p.applyValue(change)
		return nil
	}

	var cmds []tea.Cmd
	for i := range p.fields {
		var cmd tea.Cmd
		p.fields[i], cmd = p.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	for i := range p.searches {
		var cmd tea.Cmd
		p.searches[i], cmd = p.searches[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	if _, ok := msg.(tea.MouseMsg); !ok {
		var cmd tea.Cmd
		p.notes, cmd = p.notes.Update(msg)
		cmds = append(cmds, cmd)
	}

	// A click may have focused a field; move the focus ring with it.
	if m, ok := msg.(tea.MouseMsg); ok && pointer.IsPress(m) {
		if p.notesBounds.Contains(m.X, m.Y) {
			return tea.Batch(append(cmds, p.SetFocus(len(fieldStops)-1))...)
		}
		for i, stop := range fieldStops {
			focused := false
			switch stop[0] {
			case 0:
				focused = p.fields[stop[1]].Focused()
			case 1:
				focused = p.searches[stop[1]].Focused()
			}
			if focused && !p.focus.is(i) {
				cmds = append(cmds, p.SetFocus(i))
				break
			}
		}
	}
	return tea.Batch(cmds...)
}

func (p *fieldsPage) applyValue(msg components.ValueChangeMsg) {
	switch msg.ID {
	case "fields/email":
		f := &p.fields[1]
		if msg.Value != "" && !strings.Contains(msg.Value, "@") {
			f.SetError("Enter a valid email address")
		} else {
			f.SetError("")
		}
	case "fields/filter":
		v := []rune(msg.Value)
		if len(v) > maxFilterLen {
			v = v[:maxFilterLen]
		}
		p.searches[1].SetValue(string(v))
	}
}

func (p *fieldsPage) Teardown() {
	p.SetFocus(-1)
}

func (p *fieldsPage) Hints() []components.KeyHint {
	if p.focus.is(len(fieldStops) - 1) {
		return []components.KeyHint{{Key: "enter", Action: "New line"}, {Key: "esc", Action: "Done"}}
	}
	return []components.KeyHint{{Key: "type", Action: "Edit"}, {Key: "esc", Action: "Done"}}
}
