package client

import (
	"context"
	"net/url"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// ListSchemas returns the latest column schema for every category.
func (c *Client) ListSchemas(ctx context.Context) ([]domain.ColumnSchemaRecord, error) {
	var schemas []domain.ColumnSchemaRecord
	if err := c.get(ctx, "/api/v1/schemas", &schemas); err != nil {
		return nil, err
	}
	return schemas, nil
}

// GetSchema returns the latest column schema for one category.
func (c *Client) GetSchema(ctx context.Context, category string) (*domain.ColumnSchemaRecord, error) {
	var rec domain.ColumnSchemaRecord
	if err := c.get(ctx, "/api/v1/schemas/"+url.PathEscape(category), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
