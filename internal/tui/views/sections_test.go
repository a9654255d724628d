package views

import "testing"

func TestCatalog_EverySectionHasAPage(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range AllSections() {
		if seen[s.ID] {
			t.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
		if _, ok := pageBuilders[s.ID]; !ok {
			t.Errorf("section %q has no page", s.ID)
		}
	}
	if len(seen) != 10 {
		t.Errorf("expected 10 sections, got %d", len(seen))
	}
}

func TestFindSection(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"menus", "menus", true},
		{"Sidebar & Lists", "sidebar-lists", true},
		{"Button Groups", "button-groups", true},
		{"scrollbar", "scrollbar", true},
		{"nope", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s, ok := FindSection(tt.key)
			if ok != tt.ok || s.ID != tt.want {
				t.Errorf("FindSection(%q) = %q, %v; want %q, %v", tt.key, s.ID, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFilterSections(t *testing.T) {
	if got := FilterSections(Catalog(), "  "); len(got) != len(Catalog()) {
		t.Errorf("blank query should keep every group, got %d", len(got))
	}

	got := FilterSections(Catalog(), "BUTTON")
	if len(got) != 1 || got[0].Title != "Controls" {
		t.Fatalf("expected only Controls, got %+v", got)
	}
	if len(got[0].Sections) != 2 || got[0].Sections[0].ID != "buttons" || got[0].Sections[1].ID != "button-groups" {
		t.Errorf("unexpected sections: %+v", got[0].Sections)
	}

	if got := FilterSections(Catalog(), "zzz"); len(got) != 0 {
		t.Errorf("expected no groups, got %d", len(got))
	}
}
