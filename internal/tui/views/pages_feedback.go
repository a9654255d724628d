package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/components"
	"github.com/pablasso/tahoe/internal/tui/msgs"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// alertsPage opens modal alerts. The showcase presents them; the page
// only builds them and records the outcome.
type alertsPage struct {
	noSync
	section Section
	buttons []components.Button
	alerts  map[string]components.Alert
	rects   []pointer.Rect
	focus   focusRing
	result  string
	spin    spinner.Model
}

func newAlertsPage(s Section) *alertsPage {
	save := components.NewAlert("alerts/save",
		"Save changes to “Trail Map”?",
		"Your changes will be lost if you don't save them.",
		components.AlertAction{Label: "Save", Role: components.RolePrimary},
		components.AlertAction{Label: "Don't Save", Role: components.RoleSecondary},
		components.AlertAction{Label: "Cancel", Role: components.RoleCancel},
	)
	save.Icon = "⚠"

	del := components.NewAlert("alerts/delete",
		"Delete “Shoreline.mov”?",
		"This item will be deleted immediately. You can't undo this action.",
		components.AlertAction{Label: "Delete", Role: components.RolePrimary, Variant: styles.ButtonDestructive},
		components.AlertAction{Label: "Cancel", Role: components.RoleCancel},
	)
	del.Icon = "✖"

	notice := components.NewAlert("alerts/notice",
		"Software Update",
		"Tahoe UI is up to date.",
		components.AlertAction{Label: "OK", Role: components.RolePrimary},
	)

	open := components.NewButton("alerts/save", "Show Alert")
	destroy := components.NewButton("alerts/delete", "Delete Item…")
	destroy.Variant = styles.ButtonDestructive
	info := components.NewButton("alerts/notice", "Show Notice")
	info.Variant = styles.ButtonSecondary

	return &alertsPage{
		section: s,
		buttons: []components.Button{open, destroy, info},
		alerts: map[string]components.Alert{
			save.ID():   save,
			del.ID():    del,
			notice.ID(): notice,
		},
		focus: focusRing{index: -1},
		spin:  spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(styles.SubtleStyle)),
	}
}

// Init starts the activity indicator.
func (p *alertsPage) Init() tea.Cmd {
	return p.spin.Tick
}

func (p *alertsPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	views := make([]string, len(p.buttons))
	for i, b := range p.buttons {
		views[i] = b.View()
	}
	c.label("Alerts")
	p.rects = c.flow(2, views...)
	c.blank()
	c.text(styles.SubtleStyle.Render("Tab cycles the actions, Enter chooses, Esc cancels."))
	c.blank()

	result := p.result
	if result == "" {
		result = "none"
	}
	c.text(readout("Last result", result))
	c.blank()
	c.label("Activity indicator")
	c.text(p.spin.View() + " " + styles.SubtleStyle.Render("Checking for updates…"))
	return c.String()
}

func (p *alertsPage) Place(dx, dy int) {
	for i := range p.buttons {
		if i < len(p.rects) {
			p.buttons[i].SetBounds(p.rects[i].Offset(dx, dy))
		}
	}
}

func (p *alertsPage) Focusables() int { return len(p.buttons) }

func (p *alertsPage) SetFocus(i int) tea.Cmd {
	for j := range p.buttons {
		p.buttons[j].Blur()
	}
	if p.focus.set(i, len(p.buttons)) {
		p.buttons[i].Focus()
	}
	return nil
}

func (p *alertsPage) Typing() bool { return false }

func (p *alertsPage) FocusIndex() int { return p.focus.index }

func (p *alertsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case components.ButtonPressedMsg:
		a, ok := p.alerts[msg.ID]
		if !ok {
			return nil
		}
		return func() tea.Msg { return msgs.ShowAlertMsg{Alert: a} }

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return cmd

	case components.AlertResultMsg:
		if _, ok := p.alerts[msg.ID]; ok {
			label := msg.Label
			if label == "" {
				label = "dismissed"
			}
			p.result = label + " (" + string(msg.Role) + ")"
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

func (p *alertsPage) Teardown() {}

func (p *alertsPage) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "enter", Action: "Open"}}
}

// tooltipsPage shows tooltips beside buttons while they are focused or
// under the pointer.
type tooltipsPage struct {
	noSync
	section  Section
	buttons  []components.Button
	tips     []components.Tooltip
	hovered  []bool
	triggers []pointer.Rect
	focus    focusRing
}

func newTooltipsPage(s Section) *tooltipsPage {
	save := components.NewButton("tooltips/save", "Save")
	info := components.NewButton("tooltips/info", "Info")
	info.Variant = styles.ButtonSecondary
	info.Size = styles.SizeIcon
	info.Icon = "ⓘ"
	share := components.NewButton("tooltips/share", "Share")
	share.Variant = styles.ButtonSecondary

	return &tooltipsPage{
		section: s,
		buttons: []components.Button{save, info, share},
		tips: []components.Tooltip{
			{Text: "Save the document ⌘S", Placement: components.TooltipBelow},
			{Text: "Show details", Placement: components.TooltipRight},
			{Text: "Share with others", Placement: components.TooltipAbove},
		},
		hovered: make([]bool, 3),
		focus:   focusRing{index: -1},
	}
}

func (p *tooltipsPage) visible(i int) bool {
	return p.focus.is(i) || p.hovered[i]
}

func (p *tooltipsPage) Render(width int) string {
	c := newCanvas(width)
	c.heading(p.section)

	blocks := make([]string, len(p.buttons))
	sizes := make([]pointer.Rect, len(p.buttons))
	for i, b := range p.buttons {
		trigger := b.View()
		sizes[i] = pointer.Rect{W: lipgloss.Width(trigger), H: lipgloss.Height(trigger)}
		tip := p.tips[i]
		if tip.Placement == components.TooltipAbove {
			// Reserve the tooltip row so the trigger does not jump.
			sizes[i].Y = lipgloss.Height(tip.View())
			if !p.visible(i) {
				trigger = strings.Repeat("\n", sizes[i].Y) + trigger
			}
		}
		blocks[i] = tip.Attach(trigger, p.visible(i))
	}

	c.label("Tooltips")
	rects := c.flow(4, blocks...)
	p.triggers = make([]pointer.Rect, len(rects))
	for i, r := range rects {
		p.triggers[i] = pointer.Rect{X: r.X, Y: r.Y + sizes[i].Y, W: sizes[i].W, H: sizes[i].H}
	}
	c.blank()
	c.text(styles.SubtleStyle.Render("Focus a button or point at it to show its tooltip."))
	return c.String()
}

func (p *tooltipsPage) Place(dx, dy int) {
	for i := range p.buttons {
		if i < len(p.triggers) {
			p.buttons[i].SetBounds(p.triggers[i].Offset(dx, dy))
		}
	}
}

func (p *tooltipsPage) Focusables() int { return len(p.buttons) }

func (p *tooltipsPage) SetFocus(i int) tea.Cmd {
	for j := range p.buttons {
		p.buttons[j].Blur()
	}
	if p.focus.set(i, len(p.buttons)) {
		p.buttons[i].Focus()
	}
	return nil
}

func (p *tooltipsPage) Typing() bool { return false }

func (p *tooltipsPage) FocusIndex() int { return p.focus.index }

func (p *tooltipsPage) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.MouseMsg); ok {
		for i, b := range p.buttons {
			p.hovered[i] = b.Bounds().Contains(m.X, m.Y)
		}
	}

	var cmds []tea.Cmd
	for i := range p.buttons {
		var cmd tea.Cmd
		p.buttons[i], cmd = p.buttons[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (p *tooltipsPage) Teardown() {
	for i := range p.hovered {
		p.hovered[i] = false
	}
}

func (p *tooltipsPage) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "tab", Action: "Next"}}
}
