// Package config loads and writes the showcase configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	appName  = "tahoe"
	fileName = "config.toml"
)

// ErrInvalidValue is returned when a config field holds an unknown value.
var ErrInvalidValue = errors.New("invalid config value")

// Appearance selects the light or dark palette.
type Appearance string

const (
	AppearanceAuto  Appearance = "auto"
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// ParseAppearance validates an appearance name.
func ParseAppearance(value string) (Appearance, error) {
	switch a := Appearance(strings.ToLower(strings.TrimSpace(value))); a {
	case AppearanceAuto, AppearanceLight, AppearanceDark:
		return a, nil
	}
	return "", fmt.Errorf("%w: appearance %q (valid: auto, light, dark)", ErrInvalidValue, value)
}

// Glass controls the liquid-glass sidebar effect.
type Glass string

const (
	GlassAuto Glass = "auto"
	GlassOn   Glass = "on"
	GlassOff  Glass = "off"
)

// ParseGlass validates a glass mode.
func ParseGlass(value string) (Glass, error) {
	switch g := Glass(strings.ToLower(strings.TrimSpace(value))); g {
	case GlassAuto, GlassOn, GlassOff:
		return g, nil
	}
	return "", fmt.Errorf("%w: glass %q (valid: auto, on, off)", ErrInvalidValue, value)
}

// Config is the on-disk configuration.
type Config struct {
	Appearance   Appearance `toml:"appearance" comment:"light | dark | auto (auto asks the terminal background)"`
	Glass        Glass      `toml:"glass" comment:"on | off | auto (auto enables glass on TrueColor terminals)"`
	Accent       string     `toml:"accent" comment:"primary accent color"`
	StartSection string     `toml:"start_section" comment:"section shown at startup"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Appearance:   AppearanceAuto,
		Glass:        GlassAuto,
		Accent:       "#0088FF",
		StartSection: "buttons",
	}
}

// Validate checks enum fields and fills empty ones with defaults.
func (c *Config) Validate() error {
	def := Default()

	if c.Appearance == "" {
		c.Appearance = def.Appearance
	}
	a, err := ParseAppearance(string(c.Appearance))
	if err != nil {
		return err
	}
	c.Appearance = a

	if c.Glass == "" {
		c.Glass = def.Glass
	}
	g, err := ParseGlass(string(c.Glass))
	if err != nil {
		return err
	}
	c.Glass = g

	if c.Accent == "" {
		c.Accent = def.Accent
	}
	if !strings.HasPrefix(c.Accent, "#") || (len(c.Accent) != 4 && len(c.Accent) != 7) {
		return fmt.Errorf("%w: accent %q (expected #RGB or #RRGGBB)", ErrInvalidValue, c.Accent)
	}

	if c.StartSection == "" {
		c.StartSection = def.StartSection
	}
	return nil
}

// DefaultPath returns the config file location, honouring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, fileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories. An existing file is
// only replaced when overwrite is true.
func Save(path string, cfg Config, overwrite bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
