// Package main implements a mock trade index and model server for local
// development. It serves scroll-search pages of stash items and deterministic
// bucket predictions so the scanner can run end to end without a real index
// or a trained model.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/exilemarket/item-price-scanner/pkg/bucket"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "path to an items fixture (JSON array of raw items); synthetic items when empty")
	pages := flag.Int("pages", 3, "number of scroll pages to serve")
	perPage := flag.Int("per-page", 50, "synthetic items per page")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	items, err := loadItems(*fixtureFile, *pages**perPage)
	if err != nil {
		logger.Error("failed to load items", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("serving items", "count", len(items), "pages", *pages)

	idx := &mockIndex{items: items, perPage: *perPage, scrolls: map[string]int{}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /items/_search", idx.openScroll(logger))
	mux.HandleFunc("POST /_search/scroll", idx.continueScroll(logger))
	mux.HandleFunc("POST /predict", predictHandler(logger))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock index and model server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadItems(path string, synthetic int) ([]domain.RawItem, error) {
	if path == "" {
		return generateItems(synthetic), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var items []domain.RawItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return items, nil
}

// generateItems fabricates sold dagger listings with varied prices and
// quality rolls.
func generateItems(n int) []domain.RawItem {
	items := make([]domain.RawItem, 0, n)
	for i := 0; i < n; i++ {
		price := float64(1 + i%60)
		items = append(items, domain.RawItem{
			ID:        fmt.Sprintf("mock-%04d", i),
			TypeLine:  "Platinum Kris",
			FrameType: 2,
			Ilvl:      60 + i%30,
			Properties: domain.Properties{
				{Name: "Quality", Values: [][1]string{{fmt.Sprintf("+%d%%", i%20+1)}}, DisplayMode: 0},
			},
			Price:       fmt.Sprintf("~price %g chaos", price),
			LastUpdated: 1000,
			Removed:     2000,
		})
	}
	return items
}

type mockIndex struct {
	items   []domain.RawItem
	perPage int

	mu      sync.Mutex
	scrolls map[string]int // scroll id -> next page offset
	nextID  int
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

func (m *mockIndex) page(offset int) searchResponse {
	var resp searchResponse
	resp.Hits.Total = len(m.items)
	if offset > len(m.items) {
		offset = len(m.items)
	}
	end := offset + m.perPage
	if end > len(m.items) {
		end = len(m.items)
	}
	for _, item := range m.items[offset:end] {
		resp.Hits.Hits = append(resp.Hits.Hits, hit{ID: item.ID, Source: item})
	}
	return resp
}

func (m *mockIndex) openScroll(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		m.mu.Lock()
		m.nextID++
		id := fmt.Sprintf("scroll-%d", m.nextID)
		resp := m.page(0)
		m.scrolls[id] = m.perPage
		m.mu.Unlock()

		resp.ScrollID = id
		logger.Debug("opened scroll", "id", id, "hits", len(resp.Hits.Hits))
		writeJSON(w, resp)
	}
}

func (m *mockIndex) continueScroll(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ScrollID string `json:"scroll_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		m.mu.Lock()
		offset, ok := m.scrolls[req.ScrollID]
		if ok {
			m.scrolls[req.ScrollID] = offset + m.perPage
		}
		m.mu.Unlock()

		if !ok {
			http.Error(w, "unknown scroll id", http.StatusNotFound)
			return
		}

		resp := m.page(offset)
		resp.ScrollID = req.ScrollID
		logger.Debug("continued scroll", "id", req.ScrollID, "offset", offset, "hits", len(resp.Hits.Hits))
		writeJSON(w, resp)
	}
}

type predictRequest struct {
	Category string      `json:"category"`
	Rows     [][]float64 `json:"rows"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

// predictHandler returns deterministic bucket weights derived from the row
// values so repeated runs produce stable estimates.
func predictHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		resp := predictResponse{Predictions: make([][]float64, 0, len(req.Rows))}
		for _, row := range req.Rows {
			resp.Predictions = append(resp.Predictions, fakeWeights(row))
		}

		logger.Debug("predicted", "category", req.Category, "rows", len(req.Rows))
		writeJSON(w, resp)
	}
}

func fakeWeights(row []float64) []float64 {
	var sum float64
	for _, v := range row {
		sum += v
	}
	peak := int(math.Abs(sum)) % bucket.Count()

	weights := make([]float64, bucket.Count())
	weights[peak] = 0.7
	weights[(peak+1)%bucket.Count()] = 0.3
	return weights
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding response", http.StatusInternalServerError)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
