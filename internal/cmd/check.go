package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/airisdev/airis-agent/internal/budget"
	"github.com/airisdev/airis-agent/internal/confidence"
	"github.com/airisdev/airis-agent/internal/history"
)

// checkOptions holds flag values for the check command
type checkOptions struct {
	task       string
	complexity string
	jsonOutput bool
	noHistory  bool
	logLevel   string

	duplicateCheckComplete    bool
	architectureCheckComplete bool
	officialDocsVerified      bool
	ossReferenceComplete      bool
	rootCauseIdentified       bool
	hasOfficialDocs           bool
	hasSimilarExamples        bool
}

// NewCheckCommand creates the check subcommand
func NewCheckCommand() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Assess implementation confidence for a task",
		Long: `Check scores the evidence checklist for a task and recommends an
action before any implementation effort is spent.

Exit codes: 0 for proceed and present_alternatives, 1 for ask_questions
(the gate is closed until clarifying questions are answered).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.task, "task", "t", "", "task description to assess (required)")
	cmd.Flags().StringVarP(&opts.complexity, "complexity", "c", "", "task complexity: simple, medium, complex (default medium)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "emit the response as JSON")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "skip recording this assessment")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log verbosity (trace, debug, info, warn, error)")

	cmd.Flags().BoolVar(&opts.duplicateCheckComplete, "duplicate-check", false, "duplicate work has been checked")
	cmd.Flags().BoolVar(&opts.architectureCheckComplete, "architecture-check", false, "architecture compliance has been verified")
	cmd.Flags().BoolVar(&opts.officialDocsVerified, "docs-verified", false, "official documentation has been reviewed")
	cmd.Flags().BoolVar(&opts.ossReferenceComplete, "oss-reference", false, "OSS references have been consulted")
	cmd.Flags().BoolVar(&opts.rootCauseIdentified, "root-cause", false, "root cause has been identified")
	cmd.Flags().BoolVar(&opts.hasOfficialDocs, "has-docs", false, "official documentation exists for this domain")
	cmd.Flags().BoolVar(&opts.hasSimilarExamples, "has-examples", false, "similar examples exist in the codebase")

	cmd.MarkFlagRequired("task")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	rt, err := newRuntime(opts.logLevel)
	if err != nil {
		return err
	}

	req := confidence.Request{
		Task:                      opts.task,
		Complexity:                confidence.Complexity(opts.complexity),
		DuplicateCheckComplete:    opts.duplicateCheckComplete,
		ArchitectureCheckComplete: opts.architectureCheckComplete,
		OfficialDocsVerified:      opts.officialDocsVerified,
		OSSReferenceComplete:      opts.ossReferenceComplete,
		RootCauseIdentified:       opts.rootCauseIdentified,
		HasOfficialDocs:           opts.hasOfficialDocs,
		HasSimilarExamples:        opts.hasSimilarExamples,
	}

	resp, err := rt.scorer.Assess(req)
	if err != nil {
		return err
	}

	tokens, err := budget.ForComplexity(req.Complexity)
	if err != nil {
		return err
	}

	if !opts.noHistory {
		if store, err := rt.openHistory(); err != nil {
			rt.log.Warnf("%v", err)
		} else if store != nil {
			defer store.Close()
			record := history.FromResponse(req, resp, tokens)
			if _, err := store.Record(context.Background(), record); err != nil {
				rt.log.Warnf("record assessment: %v", err)
			}
		}
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		payload := struct {
			confidence.Response
			TokensAllocated int `json:"tokens_allocated"`
		}{Response: resp, TokensAllocated: tokens}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		printCheckResult(out, resp, tokens)
	}

	switch resp.Action {
	case confidence.ActionPresentAlternatives:
		rt.log.Warnf("confidence %.2f: present alternatives before implementing", resp.Score)
	case confidence.ActionAskQuestions:
		return fmt.Errorf("confidence %.2f below threshold: ask clarifying questions before proceeding", resp.Score)
	}

	return nil
}

// printCheckResult renders the human-readable assessment.
func printCheckResult(out io.Writer, resp confidence.Response, tokens int) {
	fmt.Fprintf(out, "Score:  %.2f\n", resp.Score)
	fmt.Fprintf(out, "Action: %s\n", formatAction(resp.Action))
	fmt.Fprintf(out, "Budget: %d tokens\n\n", tokens)

	fmt.Fprintln(out, "Checklist:")
	for _, item := range resp.Checklist {
		mark := "[ ]"
		if item.Satisfied {
			mark = "[x]"
		}
		fmt.Fprintf(out, "  %s %-28s %.2f\n", mark, item.Name, item.Weight)
	}

	if len(resp.Questions) > 0 {
		fmt.Fprintln(out, "\nClarifying questions:")
		for _, q := range resp.Questions {
			fmt.Fprintf(out, "  - %s\n", q)
		}
	}
}

// formatAction colorizes the action for terminal output.
func formatAction(action confidence.Action) string {
	switch action {
	case confidence.ActionProceed:
		return color.GreenString(string(action))
	case confidence.ActionPresentAlternatives:
		return color.YellowString(string(action))
	default:
		return color.RedString(string(action))
	}
}
