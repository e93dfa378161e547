package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func schemasCmd() *cobra.Command {
	schemasRoot := &cobra.Command{
		Use:   "schemas",
		Short: "Inspect column schemas",
		Long: "Inspect the per-category column schemas the scanner uses to\n" +
			"reconcile item feature rows against the trained model.",
	}

	schemasRoot.AddCommand(
		schemasListCmd(),
		schemasGetCmd(),
	)

	return schemasRoot
}

func schemasListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the latest schema per category",
		Example: `  ips schemas list
  ips schemas list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			schemas, err := c.ListSchemas(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(schemas)
			}
			if len(schemas) == 0 {
				fmt.Println("No schemas found. Run a prepare first.")
				return nil
			}
			return printSchemasTable(schemas)
		},
	}
}

func schemasGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <category>",
		Short:   "Show schema details for a category",
		Args:    cobra.ExactArgs(1),
		Example: `  ips schemas get "Fishing Rod"`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			rec, err := c.GetSchema(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rec)
			}
			return printSchemaDetail(rec)
		},
	}
}
