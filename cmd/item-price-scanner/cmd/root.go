// Package cmd implements the CLI commands for the item-price-scanner server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "item-price-scanner",
	Short: "Price game items against a trained valuation model",
	Long:  "An API-first service that scans trade-index item listings, normalizes them into feature rows, queries a model server for price-bucket predictions, and flags underpriced deals.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
