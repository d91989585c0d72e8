package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "arbitrack/internal/api/client"
)

func scoresCmd() *cobra.Command {
	scoresRoot := &cobra.Command{
		Use:   "scores",
		Short: "Browse profitability scores",
		Long: "Browse the profitability scores computed for each product and\n" +
			"marketplace, filter them by ROI, margin, rank, or competition, and\n" +
			"export them as CSV.",
	}

	scoresRoot.AddCommand(
		scoresListCmd(),
		scoresExportCmd(),
		scoresGetCmd(),
	)

	return scoresRoot
}

func scoreFilterFlags(cmd *cobra.Command, f *apiclient.ScoreFilters) {
	cmd.Flags().StringVar(&f.ROIMin, "roi-min", "", "minimum ROI percent")
	cmd.Flags().StringVar(&f.ROIMax, "roi-max", "", "maximum ROI percent")
	cmd.Flags().StringVar(&f.MarginMin, "margin-min", "", "minimum margin")
	cmd.Flags().StringVar(&f.MarginMax, "margin-max", "", "maximum margin")
	cmd.Flags().IntVar(&f.BSRMax, "bsr-max", 0, "maximum best sellers rank")
	cmd.Flags().IntVar(&f.SellersMax, "sellers-max", 0, "maximum competing sellers")
	cmd.Flags().StringVar(&f.Marketplace, "marketplace", "", "marketplace code (e.g. FR)")
	cmd.Flags().StringVar(&f.OrderBy, "order-by", "", "sort column (roi, margin, bsr, calculated_at)")
}

func scoresListCmd() *cobra.Command {
	var filters apiclient.ScoreFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scores",
		Example: `  arbctl scores list
  arbctl scores list --roi-min 30 --marketplace FR
  arbctl scores list --order-by margin --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			page, err := c.ListScores(context.Background(), &filters)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			if len(page.Scores) == 0 {
				fmt.Println("No scores found.")
				return nil
			}
			if err := printScoresTable(page.Scores); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d scores.\n", len(page.Scores), page.Total)
			return nil
		},
	}
	scoreFilterFlags(cmd, &filters)
	cmd.Flags().IntVar(&filters.Limit, "limit", 0, "maximum rows to return")
	cmd.Flags().IntVar(&filters.Offset, "offset", 0, "rows to skip")

	return cmd
}

func scoresExportCmd() *cobra.Command {
	var (
		filters apiclient.ScoreFilters
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export scores as CSV",
		Example: `  arbctl scores export
  arbctl scores export --roi-min 30 --out deals.csv`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			data, err := c.ExportScores(context.Background(), &filters)
			if err != nil {
				return err
			}
			if outFile == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(outFile, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outFile, err)
			}
			fmt.Printf("Exported to %s.\n", outFile)
			return nil
		},
	}
	scoreFilterFlags(cmd, &filters)
	cmd.Flags().StringVar(&outFile, "out", "", "write CSV to a file instead of stdout")

	return cmd
}

func scoresGetCmd() *cobra.Command {
	var marketplace string

	cmd := &cobra.Command{
		Use:     "get <product-id>",
		Short:   "Show the stored score for a product on one marketplace",
		Example: `  arbctl scores get 6a1f... --marketplace FR`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			s, err := c.GetScore(context.Background(), args[0], marketplace)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			tw := newTabWriter(os.Stdout)
			tw.writef("Product:\t%s\n", s.ProductID)
			tw.writef("Marketplace:\t%s\n", s.Marketplace)
			tw.writef("Landed cost:\t%s\n", s.LandedCost.StringFixed(2))
			tw.writef("Margin:\t%s\n", s.Margin.StringFixed(2))
			tw.writef("ROI:\t%s%%\n", s.ROIPercent.StringFixed(1))
			tw.writef("Calculated:\t%s\n", s.CalculatedAt.Format("2006-01-02 15:04:05"))
			return tw.finish()
		},
	}
	cmd.Flags().StringVar(&marketplace, "marketplace", "FR", "marketplace code")

	return cmd
}
