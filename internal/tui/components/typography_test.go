package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTypography_Variants(t *testing.T) {
	tests := []struct {
		variant TextVariant
		points  int
		bold    bool
		text    string
	}{
		{LargeTitle, 26, true, "Tahoe"},
		{Title1, 22, true, "Tahoe"},
		{Headline, 13, true, "Tahoe"},
		{Body, 13, false, "Tahoe"},
		{Footnote, 10, false, "Tahoe"},
		{Caption2, 10, false, "TAHOE"},
		{"unknown", 13, false, "Tahoe"},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			ty := Typography{Variant: tt.variant}
			if ty.Points() != tt.points {
				t.Errorf("Points() = %d, want %d", ty.Points(), tt.points)
			}
			if ty.Style().GetBold() != tt.bold {
				t.Errorf("bold = %v, want %v", ty.Style().GetBold(), tt.bold)
			}
			if got := ansi.Strip(ty.Render("Tahoe")); got != tt.text {
				t.Errorf("Render() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestTypography_Emphasis(t *testing.T) {
	ty := Typography{Variant: Body, Emphasis: true}
	if !ty.Style().GetBold() {
		t.Error("expected emphasis to make body bold")
	}
}

func TestTypography_CaptionUpperCasesUnicode(t *testing.T) {
	ty := Typography{Variant: Caption2}
	if got := ansi.Strip(ty.Render("straße")); got != "STRASSE" {
		t.Errorf("expected full case mapping, got %q", got)
	}
}

func TestTextVariants_Complete(t *testing.T) {
	if len(TextVariants) != 11 {
		t.Fatalf("expected 11 variants, got %d", len(TextVariants))
	}
	for _, v := range TextVariants {
		if _, ok := textSpecs[v]; !ok {
			t.Errorf("variant %s has no size", v)
		}
	}
}
