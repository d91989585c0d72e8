package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	settingsRoot := &cobra.Command{
		Use:   "settings",
		Short: "Manage calculation settings",
		Long: "Manage the stored calculation settings: vat_rate, prep_cost, and\n" +
			"fba_fees. Values are JSON documents.",
	}

	settingsRoot.AddCommand(
		settingsListCmd(),
		settingsGetCmd(),
		settingsSetCmd(),
	)

	return settingsRoot
}

func settingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settings",
		Example: `  arbctl settings list
  arbctl settings list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			settings, err := c.ListSettings(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(settings)
			}
			if len(settings) == 0 {
				fmt.Println("No settings stored; defaults apply.")
				return nil
			}
			return printSettingsTable(settings)
		},
	}
}

func settingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Show one setting",
		Example: `  arbctl settings get vat_rate`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			s, err := c.GetSetting(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			fmt.Printf("%s = %s\n", s.Key, string(s.Value))
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a setting",
		Long: "Store a setting value. The value must be a JSON document; quote it\n" +
			"in the shell as needed.",
		Example: `  arbctl settings set vat_rate '"0.19"'
  arbctl settings set prep_cost '"1.50"'
  arbctl settings set fba_fees '{"FR":{"fba_fee":"3.20","referral_rate":"0.15"}}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !json.Valid([]byte(value)) {
				return fmt.Errorf("value is not valid JSON: %s", value)
			}
			c := newClient()
			s, err := c.PutSetting(context.Background(), key, json.RawMessage(value))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			fmt.Printf("%s = %s\n", s.Key, string(s.Value))
			return nil
		},
	}
}
