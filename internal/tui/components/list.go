package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// Row states.
const (
	StateDefault  = "default"
	StateSelected = "selected"
	StateDisabled = "disabled"
)

// Row sizes.
const (
	RowSmall  = "sm"
	RowMedium = "md"
	RowLarge  = "lg"
)

// fitRow lays out left and right on one line of exactly width cells,
// truncating left with an ellipsis when they do not fit.
func fitRow(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return runewidth.Truncate(right, width, "")
	}
	avail := width - rw
	if right != "" {
		avail--
	}
	left = runewidth.Truncate(left, avail, "…")
	row := runewidth.FillRight(left, width-rw)
	return row + right
}

// SidebarItem is a row of the window sidebar.
type SidebarItem struct {
	ID    string
	Icon  string
	Label string
	Badge string
	State string
	Size  string
	Level int
}

// Height returns the number of lines the row occupies.
func (it SidebarItem) Height() int {
	if it.Size == RowLarge {
		return 2
	}
	return 1
}

// Render draws the row width cells wide. A selected row uses the accent
// fill while the sidebar has focus and the inactive fill otherwise.
func (it SidebarItem) Render(width int, focused bool) string {
	p := styles.Current().Palette
	variants := styles.ListVariants(p)

	style := variants[styles.ListDefault]
	switch it.State {
	case StateSelected:
		if focused {
			style = variants[styles.ListSelected]
		} else {
			style = variants[styles.ListSelectedInactive]
		}
	case StateDisabled:
		style = style.Foreground(p.Disabled)
	}
	if it.Size == RowSmall {
		style = style.Faint(it.State != StateSelected)
	}

	label := it.Label
	if it.Icon != "" {
		label = it.Icon + " " + it.Label
	}
	indent := strings.Repeat(" ", styles.Indent(it.Level)+1)
	row := style.Render(fitRow(indent+label, it.Badge+" ", width))
	if it.Size == RowLarge {
		row += "\n" + style.Render(strings.Repeat(" ", max(width, 0)))
	}
	return row
}

// SidebarSection is a titled group of sidebar rows.
type SidebarSection struct {
	Title     string
	Items     []SidebarItem
	Collapsed bool
}

// Height returns the number of lines the section occupies.
func (s SidebarSection) Height() int {
	h := 0
	if s.Title != "" {
		h++
	}
	if s.Collapsed {
		return h
	}
	for _, it := range s.Items {
		h += it.Height()
	}
	return h
}

// Render draws the title and, unless collapsed, the rows.
func (s SidebarSection) Render(width int, focused bool) string {
	var lines []string
	if s.Title != "" {
		title := Typography{Variant: Caption2, Emphasis: true}.Render(s.Title)
		lines = append(lines, styles.SectionStyle.Render(" ")+title)
	}
	if !s.Collapsed {
		for _, it := range s.Items {
			lines = append(lines, it.Render(width, focused))
		}
	}
	return strings.Join(lines, "\n")
}

// ListItem is a row of a content list.
type ListItem struct {
	Title    string
	Subtitle string
	Icon     string
	Trailing string
	Variant  string
	Level    int
}

// Render draws the row width cells wide: the title line and, when set, a
// subtitle line.
func (li ListItem) Render(width int) string {
	p := styles.Current().Palette
	style := styles.Lookup(styles.ListVariants(p), li.Variant, styles.ListDefault)

	indent := strings.Repeat(" ", styles.Indent(li.Level)+1)
	title := li.Title
	if li.Icon != "" {
		title = li.Icon + " " + title
	}
	lines := []string{style.Render(fitRow(indent+title, li.Trailing+" ", width))}

	if li.Subtitle != "" {
		sub := style
		if li.Variant != styles.ListSelected {
			sub = sub.Foreground(p.Secondary)
		}
		pad := indent
		if li.Icon != "" {
			pad += strings.Repeat(" ", runewidth.StringWidth(li.Icon)+1)
		}
		lines = append(lines, sub.Render(fitRow(pad+li.Subtitle, "", width)))
	}
	return strings.Join(lines, "\n")
}

// List renders ListItems with zebra striping and a selected row.
type List struct {
	Items    []ListItem
	Zebra    bool
	Selected int // -1 for none
	Active   bool
}

// VariantAt resolves the variant of row i: selection wins over striping,
// striping wins over the row's own variant.
func (l List) VariantAt(i int) string {
	switch {
	case i == l.Selected && l.Active:
		return styles.ListSelected
	case i == l.Selected:
		return styles.ListSelectedInactive
	case l.Zebra && i%2 == 1:
		return styles.ListZebra
	case l.Items[i].Variant != "":
		return l.Items[i].Variant
	}
	return styles.ListDefault
}

// Render draws the rows width cells wide.
func (l List) Render(width int) string {
	rows := make([]string, len(l.Items))
	for i, it := range l.Items {
		it.Variant = l.VariantAt(i)
		rows[i] = it.Render(width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
