package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/pablasso/tahoe/internal/config"
	"github.com/pablasso/tahoe/internal/tui/styles"
	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the theme the showcase would use",
		Long: `Resolve the configured appearance and glass mode against this terminal
and print the palette.`,
		Args: cobra.NoArgs,
		RunE: runTheme,
	}
}

func runTheme(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	term := styles.DetectTerminal()
	writeTheme(cmd.OutOrStdout(), cfg, styles.Resolve(cfg, term), profileName(term.ColorProfile()))
	return nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "TrueColor"
	case termenv.ANSI256:
		return "ANSI256"
	case termenv.ANSI:
		return "ANSI"
	}
	return "Ascii"
}

type swatch struct {
	name  string
	color lipgloss.Color
}

// writeTheme prints the resolved theme and a swatch per palette role.
func writeTheme(out io.Writer, cfg config.Config, t styles.Theme, profile string) {
	glass := "off"
	if t.Glass {
		glass = "on"
	}

	fmt.Fprintf(out, "Appearance  %s (config: %s)\n", t.Palette.Name, cfg.Appearance)
	fmt.Fprintf(out, "Glass       %s (config: %s)\n", glass, cfg.Glass)
	fmt.Fprintf(out, "Accent      %s\n", t.Palette.Accent)
	fmt.Fprintf(out, "Profile     %s\n", profile)
	fmt.Fprintln(out)

	p := t.Palette
	swatches := []swatch{
		{"Text", p.Text},
		{"Secondary", p.Secondary},
		{"Accent", p.Accent},
		{"Red", p.Red},
		{"Green", p.Green},
		{"Window", p.Window},
		{"Surface", p.Surface},
		{"Sidebar", p.Sidebar},
		{"Glass", p.Glass},
		{"Track", p.Track},
		{"Thumb", p.Thumb},
	}
	for _, s := range swatches {
		chip := lipgloss.NewStyle().Background(s.color).Render("    ")
		name := runewidth.FillRight(s.name, 12)
		fmt.Fprintf(out, "%s%s %s\n", name, chip, strings.ToUpper(string(s.color)))
	}
}
