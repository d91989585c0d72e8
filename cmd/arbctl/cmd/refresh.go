package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	var marketplace string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Queue a score refresh",
		Long: "Queue a background job that recomputes profitability scores from\n" +
			"the current offers, optionally restricted to one marketplace.",
		Example: `  arbctl refresh
  arbctl refresh --marketplace FR`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			job, err := c.Refresh(context.Background(), marketplace)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(job)
			}
			fmt.Printf("Refresh queued (job %s).\n", job.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&marketplace, "marketplace", "", "restrict to one marketplace")

	return cmd
}
