package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

func scanCmd() *cobra.Command {
	var deals bool

	cmd := &cobra.Command{
		Use:   "scan <items.json>",
		Short: "Price a batch of raw items",
		Long: "Sends a JSON array of raw stash items to the scanner and prints\n" +
			"the per-item price estimates. Pass \"-\" to read from stdin.",
		Example: `  # Price items from a file
  ips scan items.json

  # Pipe a stash tab dump and flag deals
  cat stash.json | ips scan - --deals`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			items, err := readItems(args[0])
			if err != nil {
				return err
			}

			c := newClient()
			report, err := c.Scan(context.Background(), items, deals)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(report)
			}

			if len(report.Predictions) == 0 && len(report.Rejected) == 0 {
				fmt.Println("No items scanned.")
				return nil
			}

			if len(report.Predictions) > 0 {
				if err := printPredictionsTable(report.Predictions); err != nil {
					return err
				}
			}
			if len(report.Rejected) > 0 {
				fmt.Printf("\n%d item(s) rejected:\n", len(report.Rejected))
				return printRejectedTable(report.Rejected)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&deals, "deals", false, "flag underpriced items as deals")

	return cmd
}

func readItems(path string) ([]domain.RawItem, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // path from trusted CLI arg
	}
	if err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}

	var items []domain.RawItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing items JSON: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items in %s", path)
	}
	return items, nil
}
