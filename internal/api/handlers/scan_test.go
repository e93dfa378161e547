package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/internal/api/handlers"
	"github.com/exilemarket/item-price-scanner/internal/engine"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// fakeScanner returns a canned report and records its inputs.
type fakeScanner struct {
	report   *engine.ScanReport
	err      error
	items    []domain.RawItem
	dealMode bool
}

func (f *fakeScanner) Scan(_ context.Context, items []domain.RawItem, dealMode bool) (*engine.ScanReport, error) {
	f.items = items
	f.dealMode = dealMode
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func scanBody() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{
				"typeLine": "Platinum Kris",
				"ilvl":     70,
				"price":    "b/o 5 chaos",
			},
		},
	}
}

func TestScan_Success(t *testing.T) {
	t.Parallel()

	fs := &fakeScanner{report: &engine.ScanReport{
		Predictions: []engine.Prediction{
			{
				Category: "Dagger",
				Estimate: 12.5,
				Top: []engine.BucketShare{
					{Label: "10.0-15.0 chaos", Percent: 84.5},
				},
			},
		},
	}}

	h := handlers.NewScanHandler(fs)
	_, api := humatest.New(t)
	handlers.RegisterScanRoutes(api, h)

	resp := api.Post("/api/v1/scan", scanBody())
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "10.0-15.0 chaos")
	assert.Contains(t, resp.Body.String(), "12.5")

	require.Len(t, fs.items, 1)
	assert.Equal(t, "Platinum Kris", fs.items[0].TypeLine)
	assert.False(t, fs.dealMode)
}

func TestScan_DealModeHeader(t *testing.T) {
	t.Parallel()

	fs := &fakeScanner{report: &engine.ScanReport{}}

	h := handlers.NewScanHandler(fs)
	_, api := humatest.New(t)
	handlers.RegisterScanRoutes(api, h)

	resp := api.Post("/api/v1/scan", "Deal-Mode: true", scanBody())
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, fs.dealMode)
}

func TestScan_MissingSchema(t *testing.T) {
	t.Parallel()

	fs := &fakeScanner{err: engine.ErrSchemaMissing}

	h := handlers.NewScanHandler(fs)
	_, api := humatest.New(t)
	handlers.RegisterScanRoutes(api, h)

	resp := api.Post("/api/v1/scan", scanBody())
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "no column schema")
}

func TestScan_EstimatorFailure(t *testing.T) {
	t.Parallel()

	fs := &fakeScanner{err: assert.AnError}

	h := handlers.NewScanHandler(fs)
	_, api := humatest.New(t)
	handlers.RegisterScanRoutes(api, h)

	resp := api.Post("/api/v1/scan", scanBody())
	require.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestScan_EmptyBatchRejected(t *testing.T) {
	t.Parallel()

	fs := &fakeScanner{report: &engine.ScanReport{}}

	h := handlers.NewScanHandler(fs)
	_, api := humatest.New(t)
	handlers.RegisterScanRoutes(api, h)

	resp := api.Post("/api/v1/scan", map[string]any{"items": []map[string]any{}})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
