package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "arbitrack/pkg/types"
)

func storesCmd() *cobra.Command {
	storesRoot := &cobra.Command{
		Use:   "stores",
		Short: "Manage retail stores",
		Long: "Manage the retail stores whose offers feed the scoring engine.\n" +
			"Inactive stores are excluded from scoring.",
	}

	storesRoot.AddCommand(
		storeListCmd(),
		storeGetCmd(),
		storeCreateCmd(),
		storeUpdateCmd(),
		storeEnableCmd(),
		storeDisableCmd(),
		storeDeleteCmd(),
	)

	return storesRoot
}

func storeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stores",
		Example: `  arbctl stores list
  arbctl stores list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stores, err := c.ListStores(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stores)
			}
			if len(stores) == 0 {
				fmt.Println("No stores found.")
				return nil
			}
			return printStoreTable(stores)
		},
	}
}

func storeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show store details",
		Example: `  arbctl stores get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			s, err := c.GetStore(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			tw := newTabWriter(os.Stdout)
			tw.writef("ID:\t%s\n", s.ID)
			tw.writef("Name:\t%s\n", s.Name)
			tw.writef("URL:\t%s\n", s.URL)
			tw.writef("Active:\t%v\n", s.Active)
			tw.writef("Selectors:\t%s\n", string(s.Selectors))
			return tw.finish()
		},
	}
}

func storeCreateCmd() *cobra.Command {
	var (
		name          string
		storeURL      string
		selectorsFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new store",
		Example: `  arbctl stores create --name "Fnac" --url https://www.fnac.com

  # With scraper selectors from a file
  arbctl stores create --name "Fnac" --url https://www.fnac.com \
    --selectors fnac.json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if name == "" || storeURL == "" {
				return fmt.Errorf("--name and --url are required")
			}
			selectors, err := readSelectors(selectorsFile)
			if err != nil {
				return err
			}
			s := &domain.RetailStore{
				Name:      name,
				URL:       storeURL,
				Selectors: selectors,
				Active:    true,
			}
			c := newClient()
			created, err := c.CreateStore(context.Background(), s)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Store created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "store name")
	cmd.Flags().StringVar(&storeURL, "url", "", "store base URL")
	cmd.Flags().StringVar(&selectorsFile, "selectors", "", "JSON file with scraper selectors")

	return cmd
}

func storeUpdateCmd() *cobra.Command {
	var (
		name          string
		storeURL      string
		selectorsFile string
	)

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Update a store",
		Example: `  arbctl stores update abc123 --url https://www.fnac.com/fr`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			s, err := c.GetStore(context.Background(), args[0])
			if err != nil {
				return err
			}
			if name != "" {
				s.Name = name
			}
			if storeURL != "" {
				s.URL = storeURL
			}
			if selectorsFile != "" {
				selectors, err := readSelectors(selectorsFile)
				if err != nil {
					return err
				}
				s.Selectors = selectors
			}
			updated, err := c.UpdateStore(context.Background(), s)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			fmt.Printf("Store updated: %s (%s)\n", updated.Name, updated.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "store name")
	cmd.Flags().StringVar(&storeURL, "url", "", "store base URL")
	cmd.Flags().StringVar(&selectorsFile, "selectors", "", "JSON file with scraper selectors")

	return cmd
}

func storeEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <id>",
		Short:   "Enable a store",
		Example: `  arbctl stores enable abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStoreSetActive(args[0], true)
		},
	}
}

func storeDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <id>",
		Short:   "Disable a store",
		Example: `  arbctl stores disable abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStoreSetActive(args[0], false)
		},
	}
}

func storeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a store",
		Example: `  arbctl stores delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteStore(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Store %s deleted.\n", args[0])
			return nil
		},
	}
}

func runStoreSetActive(id string, active bool) error {
	c := newClient()
	if err := c.SetStoreActive(context.Background(), id, active); err != nil {
		return err
	}

	action := "enabled"
	if !active {
		action = "disabled"
	}
	fmt.Printf("Store %s %s.\n", id, action)
	return nil
}

func readSelectors(path string) (json.RawMessage, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading selectors file: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("selectors file %s is not valid JSON", path)
	}
	return json.RawMessage(data), nil
}
