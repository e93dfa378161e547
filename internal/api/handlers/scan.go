package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/exilemarket/item-price-scanner/internal/engine"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// Scanner defines the scan pipeline the handler delegates to.
type Scanner interface {
	Scan(ctx context.Context, items []domain.RawItem, dealMode bool) (*engine.ScanReport, error)
}

// ScanHandler handles batch price scan requests.
type ScanHandler struct {
	scanner Scanner
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(s Scanner) *ScanHandler {
	return &ScanHandler{scanner: s}
}

// --- Input/Output types ---

// ScanInput is the input for a batch scan.
type ScanInput struct {
	DealMode bool `header:"Deal-Mode" doc:"Evaluate priced listings against the deal rule"`
	Body     struct {
		Items []domain.RawItem `json:"items" minItems:"1" doc:"Raw item records to price"`
	}
}

// ScanOutput is the response for a batch scan.
type ScanOutput struct {
	Body engine.ScanReport
}

// --- Handlers ---

// Scan prices a batch of raw items. Each item gets its top probability
// bands and a point estimate; items the normalizer refuses are reported
// with their reject reason. With the Deal-Mode header set, priced listings
// far enough below their estimate are flagged as deals.
func (h *ScanHandler) Scan(ctx context.Context, input *ScanInput) (*ScanOutput, error) {
	report, err := h.scanner.Scan(ctx, input.Body.Items, input.DealMode)
	if err != nil {
		if errors.Is(err, engine.ErrSchemaMissing) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error502BadGateway("scan failed: " + err.Error())
	}

	return &ScanOutput{Body: *report}, nil
}

// RegisterScanRoutes registers the scan endpoint with the Huma API.
func RegisterScanRoutes(api huma.API, h *ScanHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "scan-items",
		Method:      http.MethodPost,
		Path:        "/api/v1/scan",
		Summary:     "Price a batch of items",
		Description: "Normalizes raw item records, reconciles them against the captured " +
			"column schemas, and returns per-item price band predictions and estimates.",
		Tags:   []string{"scan"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Scan)
}
