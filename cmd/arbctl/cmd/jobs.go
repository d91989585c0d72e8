package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect background jobs",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsGetCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	var (
		jobType string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent jobs",
		Example: `  arbctl jobs list
  arbctl jobs list --type refresh_scores --limit 50`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			jobs, err := c.ListJobs(context.Background(), jobType, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(jobs)
			}
			if len(jobs) == 0 {
				fmt.Println("No jobs found.")
				return nil
			}
			return printJobsTable(jobs)
		},
	}
	cmd.Flags().StringVar(&jobType, "type", "", "filter by job type (refresh_scores, run_alert)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to return")

	return cmd
}

func jobsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show job details",
		Example: `  arbctl jobs get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			j, err := c.GetJob(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(j)
			}
			tw := newTabWriter(os.Stdout)
			tw.writef("ID:\t%s\n", j.ID)
			tw.writef("Type:\t%s\n", j.Type)
			tw.writef("Status:\t%s\n", j.Status)
			if len(j.Params) > 0 {
				tw.writef("Params:\t%s\n", string(j.Params))
			}
			if len(j.Result) > 0 {
				tw.writef("Result:\t%s\n", string(j.Result))
			}
			if j.Error != "" {
				tw.writef("Error:\t%s\n", j.Error)
			}
			if j.StartedAt != nil {
				tw.writef("Started:\t%s\n", j.StartedAt.Format("2006-01-02 15:04:05"))
			}
			if j.CompletedAt != nil {
				tw.writef("Completed:\t%s\n", j.CompletedAt.Format("2006-01-02 15:04:05"))
			}
			return tw.finish()
		},
	}
}
