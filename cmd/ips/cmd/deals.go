package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/exilemarket/item-price-scanner/internal/api/client"
)

func dealsCmd() *cobra.Command {
	dealsRoot := &cobra.Command{
		Use:   "deals",
		Short: "Query flagged deals",
		Long: "Query deal events the scanner has flagged, with optional filters\n" +
			"for category, minimum profit, and recency.",
	}

	dealsRoot.AddCommand(dealsListCmd())

	return dealsRoot
}

func dealsListCmd() *cobra.Command {
	var (
		category  string
		minProfit float64
		since     string
		limit     int
		offset    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flagged deals, newest first",
		Example: `  # All recent deals
  ips deals list

  # Daggers flagged in the last day with at least 30c profit
  ips deals list --category Dagger --min-profit 30 --since 24h`,
		RunE: func(_ *cobra.Command, _ []string) error {
			filters := apiclient.DealFilters{
				Category:  category,
				MinProfit: minProfit,
				Limit:     limit,
				Offset:    offset,
			}
			if since != "" {
				d, err := time.ParseDuration(since)
				if err != nil {
					return fmt.Errorf("parsing --since: %w", err)
				}
				filters.Since = time.Now().Add(-d)
			}

			c := newClient()
			page, err := c.ListDeals(context.Background(), filters)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(page)
			}

			if len(page.Deals) == 0 {
				fmt.Println("No deals found.")
				return nil
			}

			fmt.Printf("Showing %d of %d deals\n\n", len(page.Deals), page.Total)
			return printDealsTable(page.Deals)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "item category filter")
	cmd.Flags().Float64Var(&minProfit, "min-profit", 0, "minimum profit in chaos")
	cmd.Flags().StringVar(&since, "since", "", "only deals newer than this duration (e.g. 24h)")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}
