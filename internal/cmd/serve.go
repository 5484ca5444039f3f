package cmd

import (
	"github.com/spf13/cobra"

	"github.com/airisdev/airis-agent/internal/budget"
	"github.com/airisdev/airis-agent/internal/server"
)

// NewServeCommand creates the serve subcommand, which runs the MCP tool
// server over stdio until the host disconnects.
func NewServeCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server over stdio",
		Long: `Run the MCP tool server over stdio.

Exposes confidence_check, repo_index, and deep_research as tools for an
MCP host such as Claude Code. Logs go to stderr; stdout carries the
protocol stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(logLevel)
			if err != nil {
				return err
			}

			store, err := rt.openHistory()
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			srv, err := server.New(server.Deps{
				Scorer:  rt.scorer,
				Tracker: budget.NewTracker(),
				History: store,
				Log:     rt.log,
			})
			if err != nil {
				return err
			}

			rt.log.Infof("airis MCP server listening on stdio")
			return server.ServeStdio(srv)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	return cmd
}
