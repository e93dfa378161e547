package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/exilemarket/item-price-scanner/internal/store"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// DealsHandler handles deal event query endpoints.
type DealsHandler struct {
	store store.Store
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(s store.Store) *DealsHandler {
	return &DealsHandler{store: s}
}

// --- Input/Output types ---

// ListDealsInput is the input for listing deal events with optional filters.
type ListDealsInput struct {
	Category  string    `query:"category"   doc:"Filter by item category"`
	MinProfit float64   `query:"min_profit" doc:"Minimum profit in chaos"           minimum:"0"`
	Since     time.Time `query:"since"      doc:"Only deals flagged after this time"`
	Limit     int       `query:"limit"      doc:"Number of results (default 50)"    minimum:"1" maximum:"500"`
	Offset    int       `query:"offset"     doc:"Pagination offset"                 minimum:"0"`
}

// ListDealsOutput is the response for listing deal events.
type ListDealsOutput struct {
	Body struct {
		Deals  []domain.DealEvent `json:"deals"`
		Total  int                `json:"total"`
		Limit  int                `json:"limit"`
		Offset int                `json:"offset"`
	}
}

// --- Handlers ---

// ListDeals returns flagged deal events, newest first, with optional
// category, profit, and time filters.
func (h *DealsHandler) ListDeals(
	ctx context.Context,
	input *ListDealsInput,
) (*ListDealsOutput, error) {
	q := &store.DealQuery{
		Offset: input.Offset,
	}

	if input.Category != "" {
		q.Category = &input.Category
	}

	if input.MinProfit != 0 {
		q.MinProfit = &input.MinProfit
	}

	if !input.Since.IsZero() {
		q.Since = &input.Since
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	deals, total, err := h.store.ListDealEvents(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("deal query failed: " + err.Error())
	}

	if deals == nil {
		deals = []domain.DealEvent{}
	}

	resp := &ListDealsOutput{}
	resp.Body.Deals = deals
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// RegisterDealRoutes registers deal endpoints with the Huma API.
func RegisterDealRoutes(api huma.API, h *DealsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-deals",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals",
		Summary:     "List flagged deals",
		Description: "Returns deal events with optional category, profit, and time filters.",
		Tags:        []string{"deals"},
	}, h.ListDeals)
}
