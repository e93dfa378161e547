package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
	"github.com/exilemarket/item-price-scanner/pkg/logger"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

const (
	defaultPageSize  = 10000
	defaultMaxPages  = 100
	defaultScrollTTL = 10 * time.Minute
	continueTTL      = 2 * time.Minute
)

// ScrollClient implements RecordSource against the search index's scroll API.
type ScrollClient struct {
	baseURL   string
	client    *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
	pageSize  int
	maxPages  int
	scrollTTL time.Duration
}

// ScrollOption configures the ScrollClient.
type ScrollOption func(*ScrollClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ScrollOption {
	return func(c *ScrollClient) {
		c.client = hc
	}
}

// WithRateLimit caps request rate against the index.
func WithRateLimit(perSecond float64, burst int) ScrollOption {
	return func(c *ScrollClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithPageSize overrides the default page size.
func WithPageSize(size int) ScrollOption {
	return func(c *ScrollClient) {
		c.pageSize = size
	}
}

// WithMaxPages caps the number of pages per scan.
func WithMaxPages(n int) ScrollOption {
	return func(c *ScrollClient) {
		c.maxPages = n
	}
}

// WithScrollTTL overrides how long the index keeps the cursor alive.
func WithScrollTTL(ttl time.Duration) ScrollOption {
	return func(c *ScrollClient) {
		c.scrollTTL = ttl
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ScrollOption {
	return func(c *ScrollClient) {
		c.logger = l
	}
}

// NewScrollClient creates a scroll client against baseURL.
func NewScrollClient(baseURL string, opts ...ScrollOption) *ScrollClient {
	c := &ScrollClient{
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 60 * time.Second},
		logger:    logger.NewNop(),
		pageSize:  defaultPageSize,
		maxPages:  defaultMaxPages,
		scrollTTL: defaultScrollTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type hit struct {
	ID     string         `json:"_id"`
	Source domain.RawItem `json:"_source"`
}

type searchResponse struct {
	ScrollID string `json:"_scroll_id"`
	Hits     struct {
		Total int   `json:"total"`
		Hits  []hit `json:"hits"`
	} `json:"hits"`
}

// Scan implements RecordSource. Pages are delivered in index order; the scan
// stops on an empty page, the page budget, or a callback error.
func (c *ScrollClient) Scan(ctx context.Context, q Query, fn PageFunc) (*ScanStats, error) {
	stats := &ScanStats{}

	resp, err := c.openScroll(ctx, q)
	if err != nil {
		metrics.SourceErrorsTotal.Inc()
		return nil, fmt.Errorf("opening scroll: %w", err)
	}

	for {
		if len(resp.Hits.Hits) == 0 {
			stats.StoppedAt = "no_more_results"
			return stats, nil
		}

		stats.Pages++
		stats.Items += len(resp.Hits.Hits)
		metrics.SourcePagesTotal.Inc()
		c.logger.Debug("scroll page", "page", stats.Pages, "hits", len(resp.Hits.Hits))

		items := make([]domain.RawItem, 0, len(resp.Hits.Hits))
		for _, h := range resp.Hits.Hits {
			item := h.Source
			if item.ID == "" {
				item.ID = h.ID
			}
			items = append(items, item)
		}

		if err := fn(items); err != nil {
			stats.StoppedAt = "callback"
			return stats, fmt.Errorf("page %d: %w", stats.Pages, err)
		}

		if stats.Pages >= c.maxPages {
			stats.StoppedAt = "max_pages"
			return stats, nil
		}

		resp, err = c.continueScroll(ctx, resp.ScrollID)
		if err != nil {
			metrics.SourceErrorsTotal.Inc()
			return stats, fmt.Errorf("continuing scroll after page %d: %w", stats.Pages, err)
		}
	}
}

func (c *ScrollClient) openScroll(ctx context.Context, q Query) (*searchResponse, error) {
	u := fmt.Sprintf("%s/items/_search?scroll=%s&size=%d",
		c.baseURL, c.scrollTTL, c.pageSize)
	return c.post(ctx, u, buildQuery(q))
}

func (c *ScrollClient) continueScroll(ctx context.Context, scrollID string) (*searchResponse, error) {
	body := map[string]any{
		"scroll":    continueTTL.String(),
		"scroll_id": scrollID,
	}
	return c.post(ctx, c.baseURL+"/_search/scroll", body)
}

func (c *ScrollClient) post(ctx context.Context, u string, body any) (*searchResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("index error (status %d): %s", resp.StatusCode, string(data))
	}

	var out searchResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return &out, nil
}

// buildQuery assembles the bool query for the scan.
func buildQuery(q Query) map[string]any {
	var must []any

	if q.PropertyName != "" {
		must = append(must, map[string]any{
			"match_phrase": map[string]any{"properties.name": q.PropertyName},
		})
	}
	if q.League != "" {
		must = append(must, map[string]any{
			"term": map[string]any{"league": q.League},
		})
	}
	if q.RequireRemoved {
		must = append(must, map[string]any{
			"script": map[string]any{
				"script": "doc['removed'].value >  doc['last_updated'].value",
			},
		})
	}

	if len(must) == 0 {
		return map[string]any{"query": map[string]any{"match_all": map[string]any{}}}
	}
	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{"must": must},
		},
	}
}
