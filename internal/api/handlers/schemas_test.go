package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/internal/api/handlers"
	"github.com/exilemarket/item-price-scanner/internal/store/mocks"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

func TestListSchemas_Success(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.On("ListLatestColumnSchemas", mock.Anything).Return([]domain.ColumnSchemaRecord{
		{ID: "s1", Category: "Dagger", Version: 3, Columns: []string{"ilvl", "prop_Quality"}},
	}, nil)

	h := handlers.NewSchemasHandler(ms)
	_, api := humatest.New(t)
	handlers.RegisterSchemaRoutes(api, h)

	resp := api.Get("/api/v1/schemas")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Dagger")
	assert.Contains(t, resp.Body.String(), "prop_Quality")
}

func TestListSchemas_Empty(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.On("ListLatestColumnSchemas", mock.Anything).Return(nil, nil)

	h := handlers.NewSchemasHandler(ms)
	_, api := humatest.New(t)
	handlers.RegisterSchemaRoutes(api, h)

	resp := api.Get("/api/v1/schemas")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "[]")
}

func TestGetSchema_Success(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.On("GetLatestColumnSchema", mock.Anything, "Dagger").Return(
		&domain.ColumnSchemaRecord{
			ID:       "s1",
			Category: "Dagger",
			Version:  3,
			Columns:  []string{"ilvl", "prop_Quality"},
			Means:    []float64{68.2, 14.1},
		}, nil,
	)

	h := handlers.NewSchemasHandler(ms)
	_, api := humatest.New(t)
	handlers.RegisterSchemaRoutes(api, h)

	resp := api.Get("/api/v1/schemas/Dagger")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Dagger")
	assert.Contains(t, resp.Body.String(), "68.2")
}

func TestGetSchema_NotFound(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.On("GetLatestColumnSchema", mock.Anything, "Fishing Rod").Return(
		nil, assert.AnError,
	)

	h := handlers.NewSchemasHandler(ms)
	_, api := humatest.New(t)
	handlers.RegisterSchemaRoutes(api, h)

	resp := api.Get("/api/v1/schemas/Fishing%20Rod")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
