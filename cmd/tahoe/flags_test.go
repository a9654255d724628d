package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pablasso/tahoe/internal/config"
)

func TestParseArgs_NoArgs(t *testing.T) {
	res, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.ShowHelp {
		t.Fatalf("expected ShowHelp=false")
	}
	if res.ShowVersion {
		t.Fatalf("expected ShowVersion=false")
	}
	if res != (parseResult{}) {
		t.Fatalf("expected no overrides, got %+v", res)
	}
}

func TestParseArgs_Overrides(t *testing.T) {
	res, err := parseArgs([]string{"--appearance=dark", "--glass", "off", "--section=Scrollbar", "--config=/tmp/x.toml"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Appearance != "dark" || res.Glass != "off" || res.Section != "Scrollbar" || res.ConfigPath != "/tmp/x.toml" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestParseArgs_Version(t *testing.T) {
	for _, arg := range []string{"--version", "-v"} {
		res, err := parseArgs([]string{arg})
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", arg, err)
		}
		if !res.ShowVersion {
			t.Fatalf("%s: expected ShowVersion", arg)
		}
	}
}

func TestParseArgs_Help(t *testing.T) {
	res, err := parseArgs([]string{"--help"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowHelp {
		t.Fatalf("expected ShowHelp")
	}
	if !strings.Contains(res.HelpText, "Usage: tahoe") || !strings.Contains(res.HelpText, "-section") {
		t.Fatalf("unexpected help text:\n%s", res.HelpText)
	}
}

func TestParseArgs_InvalidValues(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--appearance=sepia"}, "appearance"},
		{[]string{"--glass=maybe"}, "glass"},
		{[]string{"--section=nope"}, "unknown section"},
		{[]string{"--nope"}, "flag provided but not defined"},
		{[]string{"extra"}, "positional args are not supported"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := parseArgs(tt.args)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to mention %q, got: %s", tt.want, err.Error())
			}
		})
	}
}

func TestResolveOptions_MissingConfigUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	opts, err := resolveOptions(parseResult{ConfigPath: path})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if opts.Config != config.Default() {
		t.Fatalf("expected defaults, got %+v", opts.Config)
	}
}

func TestResolveOptions_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "appearance = \"light\"\nglass = \"on\"\nstart_section = \"menus\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := resolveOptions(parseResult{ConfigPath: path, Appearance: "dark", Section: "alerts"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if opts.Config.Appearance != config.AppearanceDark {
		t.Errorf("expected dark, got %q", opts.Config.Appearance)
	}
	if opts.Config.Glass != config.GlassOn {
		t.Errorf("expected glass from the file, got %q", opts.Config.Glass)
	}
	if opts.Config.StartSection != "menus" || opts.Section != "alerts" {
		t.Errorf("unexpected sections %q / %q", opts.Config.StartSection, opts.Section)
	}
}

func TestResolveOptions_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("appearance = \"sepia\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := resolveOptions(parseResult{ConfigPath: path})
	if !errors.Is(err, config.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}
