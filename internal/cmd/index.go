package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airisdev/airis-agent/internal/repoindex"
)

// indexOptions holds flag values for the index command
type indexOptions struct {
	mode       string
	maxEntries int
	noDocs     bool
	noTests    bool
	outputDir  string
	jsonOutput bool
}

// NewIndexCommand creates the index subcommand
func NewIndexCommand() *cobra.Command {
	opts := &indexOptions{}

	cmd := &cobra.Command{
		Use:   "index [repo-path]",
		Short: "Generate a PROJECT_INDEX summary of a repository",
		Long: `Index walks a repository and produces a compact structure summary:
top-level layout, entry points, documentation, configuration, and tests.

The index prints as Markdown; with --output it is also written to
PROJECT_INDEX.md and PROJECT_INDEX.json in the given directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := "."
			if len(args) == 1 {
				repoPath = args[0]
			}
			return runIndex(cmd, repoPath, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "full", "indexing depth: quick, full, update")
	cmd.Flags().IntVar(&opts.maxEntries, "max-entries", repoindex.DefaultMaxEntries, "maximum entries in the structure snapshot")
	cmd.Flags().BoolVar(&opts.noDocs, "no-docs", false, "omit the documentation section")
	cmd.Flags().BoolVar(&opts.noTests, "no-tests", false, "omit the tests section")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "directory to write PROJECT_INDEX files")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "emit the structured index as JSON")

	return cmd
}

func runIndex(cmd *cobra.Command, repoPath string, opts *indexOptions) error {
	resp, err := repoindex.Generate(repoindex.Request{
		RepoPath:   repoPath,
		Mode:       repoindex.Mode(opts.mode),
		SkipDocs:   opts.noDocs,
		SkipTests:  opts.noTests,
		MaxEntries: opts.maxEntries,
		OutputDir:  opts.outputDir,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		data, err := json.MarshalIndent(resp.Index, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprint(out, resp.Markdown)
	}

	for _, path := range resp.OutputPaths {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	}

	return nil
}
