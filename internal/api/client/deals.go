package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// DealFilters narrows a deal event query. Zero values mean "no filter".
type DealFilters struct {
	Category  string
	MinProfit float64
	Since     time.Time
	Limit     int
	Offset    int
}

// DealPage is one page of deal events.
type DealPage struct {
	Deals  []domain.DealEvent `json:"deals"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// ListDeals returns flagged deal events, newest first.
func (c *Client) ListDeals(ctx context.Context, f DealFilters) (*DealPage, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MinProfit > 0 {
		q.Set("min_profit", strconv.FormatFloat(f.MinProfit, 'f', -1, 64))
	}
	if !f.Since.IsZero() {
		q.Set("since", f.Since.Format(time.RFC3339))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}

	path := "/api/v1/deals"
	if len(q) > 0 {
		path = fmt.Sprintf("%s?%s", path, q.Encode())
	}

	var page DealPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
