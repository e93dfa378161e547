package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/exilemarket/item-price-scanner/internal/config"
	"github.com/exilemarket/item-price-scanner/internal/store"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the latest column schema per category",
	Long:  "Reads the latest persisted column schema for every category straight from the database. Useful for checking what a running model server was trained against.",
	RunE:  runSchemas,
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}

func runSchemas(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	schemas, err := st.ListLatestColumnSchemas(ctx)
	if err != nil {
		return fmt.Errorf("listing column schemas: %w", err)
	}

	if len(schemas) == 0 {
		fmt.Println("No column schemas found. Run a prepare first.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tVERSION\tCOLUMNS\tCREATED")
	for i := range schemas {
		s := &schemas[i]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n",
			s.Category,
			s.Version,
			len(s.Columns),
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.Flush()
}
