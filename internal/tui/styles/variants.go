package styles

import "github.com/charmbracelet/lipgloss"

// Button variants.
const (
	ButtonPrimary     = "primary"
	ButtonSecondary   = "secondary"
	ButtonDestructive = "destructive"
	ButtonGhost       = "ghost"
)

// Button sizes.
const (
	SizeDefault = "default"
	SizeSmall   = "sm"
	SizeLarge   = "lg"
	SizeIcon    = "icon"
)

// List row variants.
const (
	ListDefault          = "default"
	ListZebra            = "zebra"
	ListSelected         = "selected"
	ListSelectedInactive = "selectedInactive"
)

// ButtonVariants maps a button variant to its base style.
func ButtonVariants(p Palette) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		ButtonPrimary: lipgloss.NewStyle().
			Background(p.Accent).
			Foreground(p.AccentText).
			Bold(true),
		ButtonSecondary: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.Text),
		ButtonDestructive: lipgloss.NewStyle().
			Background(p.Red).
			Foreground(p.AccentText).
			Bold(true),
		ButtonGhost: lipgloss.NewStyle().
			Foreground(p.Link),
	}
}

// ButtonPadding maps a button size to its horizontal padding in cells.
var ButtonPadding = map[string]int{
	SizeDefault: 2,
	SizeSmall:   1,
	SizeLarge:   3,
	SizeIcon:    1,
}

// ListVariants maps a list row variant to its style.
func ListVariants(p Palette) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		ListDefault: lipgloss.NewStyle().
			Foreground(p.Text),
		ListZebra: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Zebra),
		ListSelected: lipgloss.NewStyle().
			Foreground(p.AccentText).
			Background(p.Accent),
		ListSelectedInactive: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Inactive),
	}
}

// LevelPadding is the left indentation of a nested row, indexed by level.
// Levels outside the table use level 0.
var LevelPadding = [...]int{0, 2, 4, 6}

// Indent returns the padding for level.
func Indent(level int) int {
	if level < 0 || level >= len(LevelPadding) {
		return LevelPadding[0]
	}
	return LevelPadding[level]
}

// Lookup returns table[key], falling back to table[fallback].
func Lookup(table map[string]lipgloss.Style, key, fallback string) lipgloss.Style {
	if s, ok := table[key]; ok {
		return s
	}
	return table[fallback]
}
