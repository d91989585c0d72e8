package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	domain "arbitrack/pkg/types"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Manage alerts",
		Long: "Manage saved alerts that filter the score table by ROI, margin,\n" +
			"rank, and competition. Running an alert sends every matching deal\n" +
			"to the configured notification channel.",
	}

	alertsRoot.AddCommand(
		alertListCmd(),
		alertGetCmd(),
		alertCreateCmd(),
		alertUpdateCmd(),
		alertEnableCmd(),
		alertDisableCmd(),
		alertDeleteCmd(),
		alertRunCmd(),
	)

	return alertsRoot
}

// alertFilterFlags holds the raw flag values for an alert's filter set.
// Decimal bounds stay strings until parse time so "30.5" round-trips exactly.
type alertFilterFlags struct {
	roiMin       string
	roiMax       string
	marginMin    string
	marginMax    string
	bsrMax       int
	sellersMax   int
	buyboxStable bool
	marketplace  string
}

func (ff *alertFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.roiMin, "roi-min", "", "minimum ROI percent")
	cmd.Flags().StringVar(&ff.roiMax, "roi-max", "", "maximum ROI percent")
	cmd.Flags().StringVar(&ff.marginMin, "margin-min", "", "minimum margin")
	cmd.Flags().StringVar(&ff.marginMax, "margin-max", "", "maximum margin")
	cmd.Flags().IntVar(&ff.bsrMax, "bsr-max", 0, "maximum best sellers rank")
	cmd.Flags().IntVar(&ff.sellersMax, "sellers-max", 0, "maximum competing sellers")
	cmd.Flags().BoolVar(&ff.buyboxStable, "buybox-stable", false, "require a stable buybox")
	cmd.Flags().StringVar(&ff.marketplace, "marketplace", "", "restrict to one marketplace")
}

func (ff *alertFilterFlags) build(cmd *cobra.Command) (domain.AlertFilters, error) {
	var filters domain.AlertFilters

	parse := func(flag, val string, dst **decimal.Decimal) error {
		if val == "" {
			return nil
		}
		d, err := decimal.NewFromString(val)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", flag, err)
		}
		*dst = &d
		return nil
	}
	if err := parse("roi-min", ff.roiMin, &filters.ROIMin); err != nil {
		return filters, err
	}
	if err := parse("roi-max", ff.roiMax, &filters.ROIMax); err != nil {
		return filters, err
	}
	if err := parse("margin-min", ff.marginMin, &filters.MarginMin); err != nil {
		return filters, err
	}
	if err := parse("margin-max", ff.marginMax, &filters.MarginMax); err != nil {
		return filters, err
	}
	if ff.bsrMax > 0 {
		filters.BSRMax = &ff.bsrMax
	}
	if ff.sellersMax > 0 {
		filters.SellersCountMax = &ff.sellersMax
	}
	if cmd.Flags().Changed("buybox-stable") {
		filters.BuyboxStable = &ff.buyboxStable
	}
	if ff.marketplace != "" {
		filters.Marketplace = &ff.marketplace
	}

	return filters, nil
}

func alertListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all alerts",
		Example: `  arbctl alerts list
  arbctl alerts list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			alerts, err := c.ListAlerts(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alerts)
			}
			if len(alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			return printAlertTable(alerts)
		},
	}
}

func alertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show alert details",
		Example: `  arbctl alerts get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.GetAlert(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printAlertDetail(a)
		},
	}
}

func alertCreateCmd() *cobra.Command {
	var (
		name        string
		description string
		ff          alertFilterFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new alert",
		Long: "Create a named alert from a set of score filters. The alert is\n" +
			"active by default and can be run immediately with 'arbctl alerts run'.",
		Example: `  # Alert on anything returning at least 30% ROI
  arbctl alerts create --name "High ROI" --roi-min 30

  # Alert on low-competition French deals
  arbctl alerts create --name "FR low comp" --marketplace FR \
    --sellers-max 3 --bsr-max 50000 --buybox-stable`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			filters, err := ff.build(cmd)
			if err != nil {
				return err
			}
			a := &domain.Alert{
				Name:        name,
				Description: description,
				Filters:     filters,
				Active:      true,
			}
			c := newClient()
			created, err := c.CreateAlert(context.Background(), a)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Alert created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "alert name")
	cmd.Flags().StringVar(&description, "description", "", "alert description")
	ff.register(cmd)

	return cmd
}

func alertUpdateCmd() *cobra.Command {
	var (
		name        string
		description string
		ff          alertFilterFlags
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an alert",
		Long: "Replace an alert's name, description, and filters. Flags that are\n" +
			"not set fall back to the alert's current values; filter flags replace\n" +
			"the whole filter set.",
		Example: `  arbctl alerts update abc123 --roi-min 40
  arbctl alerts update abc123 --name "Renamed"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.GetAlert(context.Background(), args[0])
			if err != nil {
				return err
			}
			if name != "" {
				a.Name = name
			}
			if cmd.Flags().Changed("description") {
				a.Description = description
			}
			filters, err := ff.build(cmd)
			if err != nil {
				return err
			}
			if !filters.IsZero() {
				a.Filters = filters
			}
			updated, err := c.UpdateAlert(context.Background(), a)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			fmt.Printf("Alert updated: %s (%s)\n", updated.Name, updated.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "alert name")
	cmd.Flags().StringVar(&description, "description", "", "alert description")
	ff.register(cmd)

	return cmd
}

func alertEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <id>",
		Short:   "Enable an alert",
		Example: `  arbctl alerts enable abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAlertSetActive(args[0], true)
		},
	}
}

func alertDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <id>",
		Short:   "Disable an alert",
		Example: `  arbctl alerts disable abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAlertSetActive(args[0], false)
		},
	}
}

func alertDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete an alert",
		Example: `  arbctl alerts delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteAlert(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Alert %s deleted.\n", args[0])
			return nil
		},
	}
}

func alertRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <id>",
		Short: "Run an alert now",
		Long: "Queue an immediate evaluation of an alert. Matching deals are sent\n" +
			"to the configured notification channel in the background.",
		Example: `  arbctl alerts run abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			job, err := c.RunAlert(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(job)
			}
			fmt.Printf("Alert run queued (job %s).\n", job.ID)
			return nil
		},
	}
}

func runAlertSetActive(id string, active bool) error {
	c := newClient()
	if err := c.SetAlertActive(context.Background(), id, active); err != nil {
		return err
	}

	action := "enabled"
	if !active {
		action = "disabled"
	}
	fmt.Printf("Alert %s %s.\n", id, action)
	return nil
}
