package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/tui/styles"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TextVariant is a type ramp entry.
type TextVariant string

const (
	LargeTitle  TextVariant = "large-title"
	Title1      TextVariant = "title-1"
	Title2      TextVariant = "title-2"
	Title3      TextVariant = "title-3"
	Headline    TextVariant = "headline"
	Body        TextVariant = "body"
	Callout     TextVariant = "callout"
	Subheadline TextVariant = "subheadline"
	Footnote    TextVariant = "footnote"
	Caption1    TextVariant = "caption-1"
	Caption2    TextVariant = "caption-2"
)

// TextVariants lists the type ramp from largest to smallest.
var TextVariants = []TextVariant{
	LargeTitle, Title1, Title2, Title3, Headline, Body,
	Callout, Subheadline, Footnote, Caption1, Caption2,
}

// textSpec is how a variant maps onto terminal attributes. Points is the
// desktop size, shown in the showcase.
type textSpec struct {
	Points    int
	Bold      bool
	Underline bool
	Secondary bool
	Faint     bool
	Upper     bool
}

var textSpecs = map[TextVariant]textSpec{
	LargeTitle:  {Points: 26, Bold: true, Underline: true},
	Title1:      {Points: 22, Bold: true},
	Title2:      {Points: 20, Bold: true},
	Title3:      {Points: 17, Bold: true},
	Headline:    {Points: 13, Bold: true},
	Body:        {Points: 13},
	Callout:     {Points: 12},
	Subheadline: {Points: 11, Secondary: true},
	Footnote:    {Points: 10, Secondary: true},
	Caption1:    {Points: 10, Secondary: true, Faint: true},
	Caption2:    {Points: 10, Secondary: true, Upper: true},
}

// Typography renders text in one of the type ramp variants. Emphasis makes
// the text bold. Unknown variants render as Body.
type Typography struct {
	Variant  TextVariant
	Emphasis bool
}

// Points returns the desktop point size of the variant.
func (t Typography) Points() int {
	return t.spec().Points
}

func (t Typography) spec() textSpec {
	if s, ok := textSpecs[t.Variant]; ok {
		return s
	}
	return textSpecs[Body]
}

// Style returns the lipgloss style for the variant in the current theme.
func (t Typography) Style() lipgloss.Style {
	p := styles.Current().Palette
	s := t.spec()

	style := lipgloss.NewStyle().Foreground(p.Text)
	if s.Secondary {
		style = style.Foreground(p.Secondary)
	}
	return style.
		Bold(s.Bold || t.Emphasis).
		Underline(s.Underline).
		Faint(s.Faint)
}

// Render styles text. Caption headers are upper-cased.
func (t Typography) Render(text string) string {
	if t.spec().Upper {
		text = cases.Upper(language.Und).String(text)
	}
	return t.Style().Render(text)
}
