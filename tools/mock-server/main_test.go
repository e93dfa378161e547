package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/pkg/bucket"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

func newTestMux(idx *mockIndex) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /items/_search", idx.openScroll(testLogger()))
	mux.HandleFunc("POST /_search/scroll", idx.continueScroll(testLogger()))
	mux.HandleFunc("POST /predict", predictHandler(testLogger()))
	return mux
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func TestScrollPagination(t *testing.T) {
	t.Parallel()

	idx := &mockIndex{items: generateItems(5), perPage: 2, scrolls: map[string]int{}}
	srv := httptest.NewServer(newTestMux(idx))
	defer srv.Close()

	resp := postJSON(t, srv, "/items/_search?scroll=10m&size=2", map[string]any{})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page searchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 5, page.Hits.Total)
	assert.Len(t, page.Hits.Hits, 2)
	assert.NotEmpty(t, page.ScrollID)
	assert.Equal(t, "mock-0000", page.Hits.Hits[0].ID)

	// Drain the remaining pages.
	sizes := []int{2, 1, 0}
	for _, want := range sizes {
		resp := postJSON(t, srv, "/_search/scroll", map[string]any{
			"scroll": "2m", "scroll_id": page.ScrollID,
		})
		var next searchResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&next))
		resp.Body.Close()
		assert.Len(t, next.Hits.Hits, want)
	}
}

func TestContinueUnknownScroll(t *testing.T) {
	t.Parallel()

	idx := &mockIndex{items: generateItems(2), perPage: 2, scrolls: map[string]int{}}
	srv := httptest.NewServer(newTestMux(idx))
	defer srv.Close()

	resp := postJSON(t, srv, "/_search/scroll", map[string]any{
		"scroll_id": "no-such-scroll",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPredictShapes(t *testing.T) {
	t.Parallel()

	idx := &mockIndex{items: nil, perPage: 1, scrolls: map[string]int{}}
	srv := httptest.NewServer(newTestMux(idx))
	defer srv.Close()

	resp := postJSON(t, srv, "/predict", predictRequest{
		Category: "Dagger",
		Rows:     [][]float64{{70, 20}, {60, 5}},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out predictResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Predictions, 2)
	for _, weights := range out.Predictions {
		assert.Len(t, weights, bucket.Count())
		var sum float64
		for _, w := range weights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestFakeWeightsDeterministic(t *testing.T) {
	t.Parallel()

	row := []float64{70, 20}
	assert.Equal(t, fakeWeights(row), fakeWeights(row))
}
