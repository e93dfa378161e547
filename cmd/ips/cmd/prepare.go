package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func prepareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Trigger a dataset and schema refresh on the server",
		Long: "Asks the server to rescan the sold-item corpus, export fresh\n" +
			"training tables, and persist new column schemas. Runs synchronously\n" +
			"and may take a while on large leagues.",
		Example: `  ips prepare`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.TriggerPrepare(context.Background()); err != nil {
				return err
			}
			fmt.Println("Prepare completed.")
			return nil
		},
	}
}
