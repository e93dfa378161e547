package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/exilemarket/item-price-scanner/internal/store"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// SchemasHandler handles column schema read operations.
type SchemasHandler struct {
	store store.Store
}

// NewSchemasHandler creates a new SchemasHandler.
func NewSchemasHandler(s store.Store) *SchemasHandler {
	return &SchemasHandler{store: s}
}

// --- Input/Output types ---

// ListSchemasOutput is the response for listing the latest column schemas.
type ListSchemasOutput struct {
	Body []domain.ColumnSchemaRecord
}

// GetSchemaInput is the input for getting one category's latest schema.
type GetSchemaInput struct {
	Category string `path:"category" doc:"Item category"`
}

// GetSchemaOutput is the response for getting a single column schema.
type GetSchemaOutput struct {
	Body domain.ColumnSchemaRecord
}

// --- Handlers ---

// ListSchemas returns the latest column schema for every category.
func (h *SchemasHandler) ListSchemas(
	ctx context.Context,
	_ *struct{},
) (*ListSchemasOutput, error) {
	schemas, err := h.store.ListLatestColumnSchemas(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list schemas: " + err.Error())
	}

	if schemas == nil {
		schemas = []domain.ColumnSchemaRecord{}
	}

	return &ListSchemasOutput{Body: schemas}, nil
}

// GetSchema returns the latest column schema for one category.
func (h *SchemasHandler) GetSchema(
	ctx context.Context,
	input *GetSchemaInput,
) (*GetSchemaOutput, error) {
	rec, err := h.store.GetLatestColumnSchema(ctx, input.Category)
	if err != nil {
		return nil, huma.Error404NotFound("no schema for category " + input.Category)
	}

	return &GetSchemaOutput{Body: *rec}, nil
}

// RegisterSchemaRoutes registers column schema endpoints with the Huma API.
func RegisterSchemaRoutes(api huma.API, h *SchemasHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-schemas",
		Method:      http.MethodGet,
		Path:        "/api/v1/schemas",
		Summary:     "List column schemas",
		Description: "Returns the latest captured column schema for every item category.",
		Tags:        []string{"schemas"},
	}, h.ListSchemas)

	huma.Register(api, huma.Operation{
		OperationID: "get-schema",
		Method:      http.MethodGet,
		Path:        "/api/v1/schemas/{category}",
		Summary:     "Get a category's column schema",
		Description: "Returns the latest captured column schema for the given category.",
		Tags:        []string{"schemas"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSchema)
}
