package source

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

type fakeIndex struct {
	pages    [][]domain.RawItem
	searches int
	scrolls  int
	queries  []map[string]any
}

func (f *fakeIndex) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var page int
		if strings.Contains(r.URL.Path, "/items/_search") {
			f.searches++
			f.queries = append(f.queries, body)
			page = 0
		} else {
			f.scrolls++
			page = f.scrolls
		}

		resp := map[string]any{"_scroll_id": "cursor-1"}
		hits := []map[string]any{}
		if page < len(f.pages) {
			for _, item := range f.pages[page] {
				hits = append(hits, map[string]any{"_id": item.ID, "_source": item})
			}
		}
		resp["hits"] = map[string]any{"total": 0, "hits": hits}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck,gosec // best-effort write in test server
	}
}

func TestScanPagesThrough(t *testing.T) {
	t.Parallel()

	index := &fakeIndex{pages: [][]domain.RawItem{
		{{ID: "a", TypeLine: "Platinum Kris"}, {ID: "b", TypeLine: "Agate Amulet"}},
		{{ID: "c", TypeLine: "Ambusher"}},
	}}
	srv := httptest.NewServer(index.handler())
	defer srv.Close()

	client := NewScrollClient(srv.URL, WithPageSize(2))

	var seen []string
	stats, err := client.Scan(context.Background(), Query{}, func(items []domain.RawItem) error {
		for _, item := range items {
			seen = append(seen, item.ID)
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.Equal(t, 2, stats.Pages)
	assert.Equal(t, 3, stats.Items)
	assert.Equal(t, "no_more_results", stats.StoppedAt)
	assert.Equal(t, 1, index.searches)
}

func TestScanQueryShape(t *testing.T) {
	t.Parallel()

	index := &fakeIndex{}
	srv := httptest.NewServer(index.handler())
	defer srv.Close()

	client := NewScrollClient(srv.URL)
	_, err := client.Scan(context.Background(), Query{
		PropertyName:   "Attacks per Second",
		RequireRemoved: true,
	}, func([]domain.RawItem) error { return nil })
	require.NoError(t, err)

	require.Len(t, index.queries, 1)
	raw, err := json.Marshal(index.queries[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), "match_phrase")
	assert.Contains(t, string(raw), "Attacks per Second")
	assert.Contains(t, string(raw), "doc['removed'].value")
}

func TestScanMatchAllWhenUnfiltered(t *testing.T) {
	t.Parallel()

	index := &fakeIndex{}
	srv := httptest.NewServer(index.handler())
	defer srv.Close()

	client := NewScrollClient(srv.URL)
	_, err := client.Scan(context.Background(), Query{}, func([]domain.RawItem) error { return nil })
	require.NoError(t, err)

	require.Len(t, index.queries, 1)
	raw, _ := json.Marshal(index.queries[0])
	assert.Contains(t, string(raw), "match_all")
}

func TestScanStopsAtPageBudget(t *testing.T) {
	t.Parallel()

	index := &fakeIndex{pages: [][]domain.RawItem{
		{{ID: "a"}}, {{ID: "b"}}, {{ID: "c"}},
	}}
	srv := httptest.NewServer(index.handler())
	defer srv.Close()

	client := NewScrollClient(srv.URL, WithMaxPages(2))

	stats, err := client.Scan(context.Background(), Query{}, func([]domain.RawItem) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Pages)
	assert.Equal(t, "max_pages", stats.StoppedAt)
}

func TestScanCallbackErrorStops(t *testing.T) {
	t.Parallel()

	index := &fakeIndex{pages: [][]domain.RawItem{
		{{ID: "a"}}, {{ID: "b"}},
	}}
	srv := httptest.NewServer(index.handler())
	defer srv.Close()

	client := NewScrollClient(srv.URL)

	boom := errors.New("boom")
	stats, err := client.Scan(context.Background(), Query{}, func([]domain.RawItem) error { return boom })
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "callback", stats.StoppedAt)
	assert.Equal(t, 1, stats.Pages)
}

func TestScanIndexError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "index down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewScrollClient(srv.URL)
	_, err := client.Scan(context.Background(), Query{}, func([]domain.RawItem) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestScanFillsMissingItemID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"_scroll_id": "cursor-1",
			"hits": map[string]any{
				"total": 1,
				"hits": []map[string]any{
					{"_id": "doc-9", "_source": map[string]any{"typeLine": "Platinum Kris"}},
				},
			},
		}
		if strings.Contains(r.URL.Path, "scroll") {
			resp["hits"] = map[string]any{"total": 0, "hits": []any{}}
		}
		json.NewEncoder(w).Encode(resp) //nolint:errcheck,gosec // best-effort write in test server
	}))
	defer srv.Close()

	client := NewScrollClient(srv.URL)

	var got []domain.RawItem
	_, err := client.Scan(context.Background(), Query{}, func(items []domain.RawItem) error {
		got = append(got, items...)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "doc-9", got[0].ID)
}
