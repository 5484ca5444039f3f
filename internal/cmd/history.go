package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airisdev/airis-agent/internal/confidence"
)

// historyOptions holds flag values for the history command
type historyOptions struct {
	limit      int
	stats      bool
	prune      bool
	jsonOutput bool
}

// NewHistoryCommand creates the history subcommand
func NewHistoryCommand() *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded confidence assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 20, "maximum assessments to show")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "show per-action counts instead of records")
	cmd.Flags().BoolVar(&opts.prune, "prune", false, "delete records older than the configured retention")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "emit results as JSON")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *historyOptions) error {
	rt, err := newRuntime("")
	if err != nil {
		return err
	}

	store, err := rt.openHistory()
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("assessment history is disabled in config")
	}
	defer store.Close()

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if opts.prune {
		deleted, err := store.Prune(ctx, rt.cfg.History.KeepDays)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "pruned %d assessment(s) older than %d days\n", deleted, rt.cfg.History.KeepDays)
		return nil
	}

	if opts.stats {
		counts, err := store.CountsByAction(ctx)
		if err != nil {
			return err
		}
		if opts.jsonOutput {
			data, err := json.MarshalIndent(counts, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		for _, action := range []confidence.Action{
			confidence.ActionProceed,
			confidence.ActionPresentAlternatives,
			confidence.ActionAskQuestions,
		} {
			fmt.Fprintf(out, "%-22s %d\n", action, counts[action])
		}
		return nil
	}

	records, err := store.Recent(ctx, opts.limit)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "no assessments recorded")
		return nil
	}
	for _, record := range records {
		fmt.Fprintf(out, "%s  %.2f  %-22s  %s\n",
			record.CreatedAt.Format("2006-01-02 15:04:05"), record.Score, record.Action, record.Task)
	}

	return nil
}
