package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pablasso/tahoe/internal/cli"
	"github.com/pablasso/tahoe/internal/tui"
	"github.com/pablasso/tahoe/internal/version"
)

func main() {
	args := os.Args[1:]

	// A leading subcommand routes to the CLI; flags alone start the TUI.
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	res, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if res.ShowHelp {
		fmt.Print(res.HelpText)
		return
	}
	if res.ShowVersion {
		fmt.Println("tahoe " + version.String())
		return
	}

	opts, err := resolveOptions(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
