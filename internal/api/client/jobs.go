package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// GetJobHistory returns recent runs of the named background job, newest
// first. A limit of zero leaves the server default in effect.
func (c *Client) GetJobHistory(ctx context.Context, name string, limit int) ([]domain.JobRun, error) {
	path := "/api/v1/jobs/" + url.PathEscape(name)
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
