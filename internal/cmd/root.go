package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for airis
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "airis",
		Short: "Confidence gating and context tooling for AI coding agents",
		Long: `Airis assesses implementation readiness before work begins.

It scores a checklist of evidence signals into a confidence value and a
recommended action (proceed, present alternatives, or ask questions),
generates compact repository indexes for prompt context, and plans
multi-wave research sessions. The same capabilities are exposed as MCP
tools for host integration via "airis serve".`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewIndexCommand())
	cmd.AddCommand(NewResearchCommand())
	cmd.AddCommand(NewBudgetCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewDoctorCommand())
	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewInstallPluginCommand())

	return cmd
}
