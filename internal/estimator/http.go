package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
	"github.com/exilemarket/item-price-scanner/pkg/bucket"
)

// HTTPBackend implements Estimator against a model server's /predict
// endpoint.
type HTTPBackend struct {
	endpoint string
	client   *http.Client
}

// HTTPOption configures the HTTPBackend.
type HTTPOption func(*HTTPBackend)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(b *HTTPBackend) {
		b.client = c
	}
}

// NewHTTPBackend creates an HTTP estimator backend.
func NewHTTPBackend(endpoint string, opts ...HTTPOption) *HTTPBackend {
	b := &HTTPBackend{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*HTTPBackend) Name() string {
	return "http"
}

type predictRequest struct {
	Category string      `json:"category"`
	Rows     [][]float64 `json:"rows"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

// Predict posts the matrix to the model server.
func (b *HTTPBackend) Predict(
	ctx context.Context,
	category string,
	matrix [][]float64,
) ([][]float64, error) {
	start := time.Now()
	defer func() {
		metrics.EstimateDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(predictRequest{Category: category, Rows: matrix})
	if err != nil {
		return nil, fmt.Errorf("marshaling predict request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		b.endpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling model server: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"model server error (status %d): %s",
			resp.StatusCode,
			string(respBody),
		)
	}

	var out predictResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("parsing predictions: %w", err)
	}

	if err := validateShape(len(matrix), bucket.Count(), out.Predictions); err != nil {
		return nil, err
	}
	return out.Predictions, nil
}
