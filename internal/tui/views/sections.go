package views

import (
	"strings"

	"github.com/pablasso/tahoe/internal/util"
)

// Section is one page of the showcase.
type Section struct {
	ID    string
	Title string
	Icon  string
	Group string
	Blurb string
}

// SectionGroup is a titled group of sections in the sidebar.
type SectionGroup struct {
	Title    string
	Sections []Section
}

func section(group, icon, title, blurb string) Section {
	return Section{ID: util.Slug(title), Title: title, Icon: icon, Group: group, Blurb: blurb}
}

// Catalog returns the showcase sections in sidebar order.
func Catalog() []SectionGroup {
	return []SectionGroup{
		{Title: "Controls", Sections: []Section{
			section("Controls", "▭", "Buttons", "Push buttons in four variants and four sizes."),
			section("Controls", "▤", "Button Groups", "Joined buttons with single, multiple or no selection."),
			section("Controls", "◉", "Toggles", "Switches, checkboxes, radios, segmented controls and disclosures."),
			section("Controls", "✎", "Text Fields", "Labelled inputs, validation errors and window search fields."),
		}},
		{Title: "Navigation", Sections: []Section{
			section("Navigation", "☰", "Menus", "Pop-up and pulldown buttons, context menus and popovers."),
			section("Navigation", "◧", "Sidebar & Lists", "Sidebar rows, list variants and indentation levels."),
		}},
		{Title: "Feedback", Sections: []Section{
			section("Feedback", "⚠", "Alerts", "Modal alerts with up to three actions."),
			section("Feedback", "◌", "Tooltips", "Short labels shown next to a focused or hovered control."),
		}},
		{Title: "Foundations", Sections: []Section{
			section("Foundations", "Aa", "Typography", "The type ramp from large title to caption."),
			section("Foundations", "┃", "Scrollbar", "Draggable scrollbars over position and visible ratio."),
		}},
	}
}

// AllSections returns every section in sidebar order.
func AllSections() []Section {
	var out []Section
	for _, g := range Catalog() {
		out = append(out, g.Sections...)
	}
	return out
}

// FindSection looks a section up by id or, failing that, by title.
func FindSection(key string) (Section, bool) {
	slug := util.Slug(key)
	for _, s := range AllSections() {
		if s.ID == key || s.ID == slug {
			return s, true
		}
	}
	return Section{}, false
}

// FilterSections keeps the sections whose title contains query, ignoring
// case. Groups left empty are dropped.
func FilterSections(groups []SectionGroup, query string) []SectionGroup {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return groups
	}

	var out []SectionGroup
	for _, g := range groups {
		var kept []Section
		for _, s := range g.Sections {
			if strings.Contains(strings.ToLower(s.Title), q) {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			out = append(out, SectionGroup{Title: g.Title, Sections: kept})
		}
	}
	return out
}
