package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/tahoe/internal/config"
	"github.com/pablasso/tahoe/internal/tui"
	"github.com/pablasso/tahoe/internal/tui/views"
)

type parseResult struct {
	ConfigPath  string
	Appearance  string
	Glass       string
	Section     string
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("tahoe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", "", "Config file (default $XDG_CONFIG_HOME/tahoe/config.toml)")
	appearance := fs.String("appearance", "", "Appearance: light|dark|auto")
	glass := fs.String("glass", "", "Liquid glass sidebar: on|off|auto")
	section := fs.String("section", "", "Section shown at startup")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: tahoe [flags]")
		fmt.Fprintln(&b, "       tahoe <command>")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Tahoe UI is a terminal showcase of the Tahoe component library.")
		fmt.Fprintln(&b, "Run `tahoe help` for the commands.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	res := parseResult{
		ConfigPath: *configPath,
		Appearance: *appearance,
		Glass:      *glass,
		Section:    *section,
	}
	if res.Appearance != "" {
		if _, err := config.ParseAppearance(res.Appearance); err != nil {
			return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
		}
	}
	if res.Glass != "" {
		if _, err := config.ParseGlass(res.Glass); err != nil {
			return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
		}
	}
	if res.Section != "" {
		if _, ok := views.FindSection(res.Section); !ok {
			return parseResult{}, fmt.Errorf("unknown section %q (run `tahoe sections`)\n\n%s", res.Section, usage())
		}
	}
	return res, nil
}

// resolveOptions loads the config file and applies the flag overrides.
func resolveOptions(res parseResult) (tui.Options, error) {
	path := res.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return tui.Options{}, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return tui.Options{}, err
	}

	if res.Appearance != "" {
		a, err := config.ParseAppearance(res.Appearance)
		if err != nil {
			return tui.Options{}, err
		}
		cfg.Appearance = a
	}
	if res.Glass != "" {
		g, err := config.ParseGlass(res.Glass)
		if err != nil {
			return tui.Options{}, err
		}
		cfg.Glass = g
	}

	return tui.Options{Config: cfg, Section: res.Section}, nil
}
