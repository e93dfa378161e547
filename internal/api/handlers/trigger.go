package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Preparer defines the interface for triggering a dataset preparation run.
type Preparer interface {
	RunPrepare(ctx context.Context) error
}

// PrepareHandler handles manual prepare trigger requests.
type PrepareHandler struct {
	preparer Preparer
}

// NewPrepareHandler creates a new PrepareHandler.
func NewPrepareHandler(p Preparer) *PrepareHandler {
	return &PrepareHandler{preparer: p}
}

// PrepareOutput is the response body for the prepare endpoint.
type PrepareOutput struct {
	Body struct {
		Status string `json:"status" example:"prepare completed" doc:"Prepare status"`
	}
}

// Prepare runs the dataset preparation pipeline synchronously.
func (h *PrepareHandler) Prepare(ctx context.Context, _ *struct{}) (*PrepareOutput, error) {
	if err := h.preparer.RunPrepare(ctx); err != nil {
		return nil, huma.Error500InternalServerError("prepare failed: " + err.Error())
	}

	resp := &PrepareOutput{}
	resp.Body.Status = "prepare completed"
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *PrepareHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-prepare",
		Method:      http.MethodPost,
		Path:        "/api/v1/prepare",
		Summary:     "Trigger a dataset preparation run",
		Description: "Pulls the sold-item corpus from the record source, exports per-category " +
			"datasets, and captures fresh column schemas.",
		Tags:   []string{"jobs"},
		Errors: []int{http.StatusInternalServerError},
	}, h.Prepare)
}
