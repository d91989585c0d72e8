// Package cmd implements the arbctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "arbitrack/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "arbctl",
		Short: "CLI client for the arbitrack API",
		Long: "arbctl is a command-line client for the arbitrack API.\n" +
			"It lets you browse profitability scores, manage alerts, stores, and\n" +
			"products, tune settings, and trigger score refreshes from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.arbctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(scoresCmd())
	rootCmd.AddCommand(alertsCmd())
	rootCmd.AddCommand(storesCmd())
	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(jobsCmd())
	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(refreshCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".arbctl")
	}

	viper.SetEnvPrefix("ARBCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
