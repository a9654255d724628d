package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// Dim re-renders a frame in the scrim color so an overlay stands out.
func Dim(frame string) string {
	style := lipgloss.NewStyle().Foreground(styles.Current().Palette.Dim)
	lines := strings.Split(frame, "\n")
	for i, l := range lines {
		lines[i] = style.Render(ansi.Strip(l))
	}
	return strings.Join(lines, "\n")
}

// Overlay draws fg over bg with its top-left corner at cell (x, y). Rows
// and columns of fg outside bg are clipped.
func Overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)

	for i, fl := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		line := bgLines[row]
		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(line, x+fgWidth, "")
		bgLines[row] = left + fl + strings.Repeat(" ", fgWidth-ansi.StringWidth(fl)) + right
	}
	return strings.Join(bgLines, "\n")
}

// Center returns the origin that centers a w×h box in a width×height area.
func Center(width, height, w, h int) (int, int) {
	return max((width-w)/2, 0), max((height-h)/2, 0)
}

// Tooltip placements.
const (
	TooltipBelow = "below"
	TooltipRight = "right"
	TooltipAbove = "above"
)

// Tooltip is a small inverted label shown next to a trigger.
type Tooltip struct {
	Text      string
	Placement string
}

// View renders the label on its own.
func (t Tooltip) View() string {
	p := styles.Current().Palette
	return lipgloss.NewStyle().
		Background(p.Tooltip).
		Foreground(p.TooltipFg).
		Padding(0, 1).
		Render(t.Text)
}

// Attach renders trigger with the tooltip beside it while visible.
func (t Tooltip) Attach(trigger string, visible bool) string {
	if !visible || t.Text == "" {
		return trigger
	}
	switch t.Placement {
	case TooltipRight:
		return lipgloss.JoinHorizontal(lipgloss.Center, trigger, " ", t.View())
	case TooltipAbove:
		return lipgloss.JoinVertical(lipgloss.Left, t.View(), trigger)
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, t.View())
}
