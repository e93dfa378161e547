package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View background job history",
		Long: "View the execution history of background jobs. Each run records\n" +
			"status, duration, row counts, and any errors.",
	}

	jobsRoot.AddCommand(jobsHistoryCmd())

	return jobsRoot
}

func jobsHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <job_name>",
		Short: "Show run history for a job",
		Args:  cobra.ExactArgs(1),
		Example: `  ips jobs history prepare
  ips jobs history prepare --limit 50 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			runs, err := c.GetJobHistory(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Printf("No runs found for job %q.\n", args[0])
				return nil
			}
			return printJobRunsTable(runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of runs (server default when 0)")

	return cmd
}
