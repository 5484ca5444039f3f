package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airisdev/airis-agent/internal/plugin"
)

// NewInstallPluginCommand creates the install-plugin subcommand
func NewInstallPluginCommand() *cobra.Command {
	opts := plugin.Options{}

	cmd := &cobra.Command{
		Use:   "install-plugin",
		Short: "Register the Airis Agent plugin in Claude Code settings",
		Long: `Register the Airis Agent plugin in Claude Code settings.

Adds the plugin marketplace to extraKnownMarketplaces and enables the
plugin so Claude Code installs it on next launch. Existing settings are
preserved; the command is safe to re-run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, msg, err := plugin.Ensure(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			if changed {
				fmt.Fprintln(cmd.OutOrStdout(), "Restart Claude Code to pick up the plugin.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SettingsPath, "settings-path", "", "Claude settings file (default ~/.claude/settings.json)")
	cmd.Flags().StringVar(&opts.MarketplaceName, "marketplace", plugin.DefaultMarketplaceName, "marketplace name to register")
	cmd.Flags().StringVar(&opts.Repo, "repo", plugin.DefaultRepo, "GitHub repository hosting the marketplace")
	cmd.Flags().StringVar(&opts.PluginName, "plugin", plugin.DefaultPluginName, "plugin to enable")

	return cmd
}
