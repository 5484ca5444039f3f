package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airisdev/airis-agent/internal/budget"
)

// NewBudgetCommand creates the budget subcommand
func NewBudgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Show the token budget allocation table",
		Long: `Budget prints the tokens allocated to a confidence check at each
complexity level. These are allocation ceilings for the check itself,
not for the implementation work being assessed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %s\n", "COMPLEXITY", "TOKENS")
			for _, alloc := range budget.Table() {
				fmt.Fprintf(out, "%-10s %d\n", alloc.Complexity, alloc.Tokens)
			}
			return nil
		},
	}
}
