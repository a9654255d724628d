package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pablasso/tahoe/internal/tui/views"
	"github.com/spf13/cobra"
)

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the showcase sections",
		Long:  `List the sections of the showcase. Either column works with --section.`,
		Args:  cobra.NoArgs,
		RunE:  runSections,
	}
}

func runSections(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tID\tTITLE")

	for _, g := range views.Catalog() {
		for _, s := range g.Sections {
			fmt.Fprintf(w, "%s\t%s\t%s\n", g.Title, s.ID, s.Title)
		}
	}
	return w.Flush()
}
