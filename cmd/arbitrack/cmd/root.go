// Package cmd implements the CLI commands for the arbitrack server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "arbitrack",
	Short: "Track retail-to-Amazon arbitrage opportunities",
	Long: "An API-first service that scores products by comparing retail offers\n" +
		"against Amazon prices, evaluates user-defined alerts over the scores,\n" +
		"and runs the heavy work through a persistent job queue.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
