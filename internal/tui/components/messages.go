package components

import tea "github.com/charmbracelet/bubbletea"

// ButtonPressedMsg is sent when a button or a group item is activated.
type ButtonPressedMsg struct {
	ID string
}

// CheckedChangeMsg requests a new checked state for a switch, checkbox or
// radio. The owner decides whether to apply it.
type CheckedChangeMsg struct {
	ID      string
	Checked bool
}

// ValueChangeMsg reports a new value for a text field, search field,
// segmented control or pop-up button.
type ValueChangeMsg struct {
	ID    string
	Value string
}

// SelectionChangeMsg reports the selected values of a button group, in item
// order.
type SelectionChangeMsg struct {
	ID     string
	Values []string
}

// DisclosureToggleMsg reports a disclosure button's new expanded state.
type DisclosureToggleMsg struct {
	ID       string
	Expanded bool
}

// MenuSelectMsg is sent when a menu item is chosen.
type MenuSelectMsg struct {
	ID    string
	Value string
}

// MenuCloseMsg is sent when a menu is dismissed without a choice.
type MenuCloseMsg struct {
	ID string
}

// AlertResultMsg is sent when an alert is dismissed. Role is the role of
// the chosen action; Esc reports RoleCancel.
type AlertResultMsg struct {
	ID    string
	Label string
	Role  ActionRole
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
