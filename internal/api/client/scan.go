package client

import (
	"context"

	"github.com/exilemarket/item-price-scanner/internal/engine"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// scanRequest is the scan endpoint's request body.
type scanRequest struct {
	Items []domain.RawItem `json:"items"`
}

// Scan prices a batch of raw items. With dealMode set, priced listings are
// also evaluated against the deal rule.
func (c *Client) Scan(ctx context.Context, items []domain.RawItem, dealMode bool) (*engine.ScanReport, error) {
	var headers map[string]string
	if dealMode {
		headers = map[string]string{"Deal-Mode": "true"}
	}

	var report engine.ScanReport
	if err := c.post(ctx, "/api/v1/scan", headers, scanRequest{Items: items}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// TriggerPrepare runs the dataset preparation pipeline on the server.
func (c *Client) TriggerPrepare(ctx context.Context) error {
	return c.post(ctx, "/api/v1/prepare", nil, nil, nil)
}
