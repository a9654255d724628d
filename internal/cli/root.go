// Package cli implements the tahoe subcommands.
package cli

import (
	"github.com/pablasso/tahoe/internal/config"
	"github.com/pablasso/tahoe/internal/version"
	"github.com/spf13/cobra"
)

// configPath is the --config flag shared by every subcommand.
var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tahoe",
		Short: "Terminal showcase of the Tahoe UI component library",
		Long: `Tahoe UI renders a desktop-style window in the terminal with buttons,
toggles, menus, alerts, sidebars and draggable scrollbars.

Run tahoe without arguments to open the showcase.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tahoe/config.toml)")

	root.AddCommand(newSectionsCmd(), newThemeCmd(), newConfigCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}
