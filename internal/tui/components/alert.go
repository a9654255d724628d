package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// ActionRole is the part an alert action plays.
type ActionRole string

const (
	RolePrimary   ActionRole = "primary"
	RoleSecondary ActionRole = "secondary"
	RoleCancel    ActionRole = "cancel"
)

// maxAlertActions is the number of buttons an alert shows.
const maxAlertActions = 3

const alertWidth = 36

// AlertAction is a button of an Alert. An empty Variant takes the role's
// default: primary for RolePrimary, destructive for RoleSecondary and
// secondary for RoleCancel.
type AlertAction struct {
	Label   string
	Role    ActionRole
	Variant string
}

func (a AlertAction) variant() string {
	if a.Variant != "" {
		return a.Variant
	}
	switch a.Role {
	case RoleSecondary:
		return styles.ButtonDestructive
	case RoleCancel:
		return styles.ButtonSecondary
	}
	return styles.ButtonPrimary
}

// Alert is a modal dialog with stacked full-width actions. Tab and
// Shift+Tab cycle the focused action, Enter chooses it and Esc cancels.
type Alert struct {
	id      string
	Icon    string
	Title   string
	Message string

	actions []AlertAction
	focus   int
	origin  pointer.Rect
}

// NewAlert creates an alert. Actions beyond the third are dropped.
func NewAlert(id, title, message string, actions ...AlertAction) Alert {
	if len(actions) > maxAlertActions {
		actions = actions[:maxAlertActions]
	}
	return Alert{id: id, Title: title, Message: message, actions: actions}
}

func (a Alert) ID() string             { return a.id }
func (a Alert) Actions() []AlertAction { return a.actions }
func (a Alert) Focused() int           { return a.focus }
func (a Alert) Bounds() pointer.Rect   { return a.origin }

// SetOrigin places the dialog's top-left corner on screen.
func (a *Alert) SetOrigin(x, y int) {
	v := a.View()
	a.origin = pointer.Rect{X: x, Y: y, W: lipgloss.Width(v), H: lipgloss.Height(v)}
}

func (a Alert) result(i int) tea.Cmd {
	act := a.actions[i]
	return send(AlertResultMsg{ID: a.id, Label: act.Label, Role: act.Role})
}

func (a Alert) cancel() tea.Cmd {
	for i, act := range a.actions {
		if act.Role == RoleCancel {
			return a.result(i)
		}
	}
	return send(AlertResultMsg{ID: a.id, Role: RoleCancel})
}

// Update handles keys and clicks on the action buttons.
func (a Alert) Update(msg tea.Msg) (Alert, tea.Cmd) {
	n := len(a.actions)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			if n > 0 {
				a.focus = (a.focus + 1) % n
			}
		case "shift+tab", "up":
			if n > 0 {
				a.focus = (a.focus - 1 + n) % n
			}
		case "enter", " ":
			if n > 0 {
				return a, a.result(a.focus)
			}
		case "esc":
			return a, a.cancel()
		}
	case tea.MouseMsg:
		if !pointer.IsPress(msg) {
			return a, nil
		}
		if i := a.actionAt(msg.Y); i >= 0 && a.origin.Contains(msg.X, msg.Y) {
			return a, a.result(i)
		}
	}
	return a, nil
}

// actionAt maps a screen row to an action index.
func (a Alert) actionAt(y int) int {
	// border + padding, then the header and one blank line
	first := a.origin.Y + 2 + lipgloss.Height(a.header()) + 1
	i := y - first
	if i < 0 || i >= len(a.actions) {
		return -1
	}
	return i
}

func (a Alert) inner() int {
	return alertWidth - 2 - 4 // border and padding
}

func (a Alert) header() string {
	var parts []string
	if a.Icon != "" {
		parts = append(parts, a.Icon, "")
	}
	w := a.inner()
	parts = append(parts, Typography{Variant: Headline}.Style().Width(w).Render(a.Title))
	if a.Message != "" {
		parts = append(parts, Typography{Variant: Subheadline}.Style().Width(w).Render(a.Message))
	}
	return strings.Join(parts, "\n")
}

// View renders the dialog box.
func (a Alert) View() string {
	p := styles.Current().Palette
	w := a.inner()
	variants := styles.ButtonVariants(p)

	buttons := make([]string, len(a.actions))
	for i, act := range a.actions {
		style := styles.Lookup(variants, act.variant(), styles.ButtonPrimary).
			Width(w).
			Align(lipgloss.Center)
		if i == a.focus {
			style = style.Underline(true)
		}
		buttons[i] = style.Render(act.Label)
	}

	body := a.header() + "\n\n" + strings.Join(buttons, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2).
		Render(body)
}
