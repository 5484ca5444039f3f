package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/airisdev/airis-agent/internal/doctor"
)

// NewDoctorCommand creates the doctor subcommand
func NewDoctorCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the health of the airis installation",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := doctor.Run()
			out := cmd.OutOrStdout()

			if jsonOutput {
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			} else {
				for _, check := range results.Checks {
					status := color.GreenString("ok")
					if !check.Passed {
						status = color.RedString("fail")
					}
					fmt.Fprintf(out, "%-26s %s\n", check.Name, status)
					for _, detail := range check.Details {
						fmt.Fprintf(out, "    %s\n", detail)
					}
				}
			}

			if !results.Passed {
				return fmt.Errorf("one or more health checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit results as JSON")

	return cmd
}
