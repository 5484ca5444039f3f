package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/airisdev/airis-agent/internal/research"
)

// researchOptions holds flag values for the research command
type researchOptions struct {
	depth       string
	constraints []string
	seedSources []string
	jsonOutput  bool
}

// NewResearchCommand creates the research subcommand
func NewResearchCommand() *cobra.Command {
	opts := &researchOptions{}

	cmd := &cobra.Command{
		Use:   "research <query>",
		Short: "Plan a multi-wave research session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.depth, "depth", "d", "standard", "research depth: quick, standard, deep, exhaustive")
	cmd.Flags().StringSliceVar(&opts.constraints, "constraint", nil, "constraint or focus area (repeatable)")
	cmd.Flags().StringSliceVar(&opts.seedSources, "seed", nil, "initial source to start from (repeatable)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "emit the plan as JSON")

	return cmd
}

func runResearch(cmd *cobra.Command, query string, opts *researchOptions) error {
	resp, err := research.Plan(research.Request{
		Query:       query,
		Depth:       research.Depth(opts.depth),
		Constraints: opts.constraints,
		SeedSources: opts.seedSources,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "%s\n", resp.Summary)
	fmt.Fprintf(out, "Confidence: %.2f\n\n", resp.Confidence)

	for _, wave := range resp.Plan {
		fmt.Fprintf(out, "Wave %d:\n", wave.Wave)
		for _, q := range wave.Queries {
			fmt.Fprintf(out, "  - %s\n", q)
		}
	}

	fmt.Fprintln(out, "\nFindings:")
	for _, finding := range resp.Findings {
		fmt.Fprintf(out, "  %s\n", finding)
	}

	fmt.Fprintln(out, "\nSources:")
	for _, src := range resp.Sources {
		fmt.Fprintf(out, "  [%s] %s\n", src.Type, src.Reference)
	}

	return nil
}
