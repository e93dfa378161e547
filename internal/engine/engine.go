// Package engine orchestrates the scan and prepare pipelines: normalization,
// feature extraction, schema reconciliation, estimation, and deal evaluation.
package engine

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/exilemarket/item-price-scanner/internal/dataset"
	"github.com/exilemarket/item-price-scanner/internal/estimator"
	"github.com/exilemarket/item-price-scanner/internal/notify"
	"github.com/exilemarket/item-price-scanner/internal/source"
	"github.com/exilemarket/item-price-scanner/internal/store"
	"github.com/exilemarket/item-price-scanner/pkg/catalog"
	"github.com/exilemarket/item-price-scanner/pkg/normalize"
	"github.com/exilemarket/item-price-scanner/pkg/schema"
)

// ErrSchemaMissing is returned when a scan batch contains an item category
// that has no captured column schema. Estimating against an unknown layout
// would produce garbage, so the whole request fails.
var ErrSchemaMissing = errors.New("no column schema for category")

// DealRule decides when an underpriced listing counts as a deal. Profit must
// clear both the absolute and the relative threshold.
type DealRule struct {
	MinProfitChaos float64
	MinProfitRatio float64
}

// DefaultDealRule flags listings priced at least 15 chaos and at least 100%
// below the estimate.
var DefaultDealRule = DealRule{MinProfitChaos: 15.0, MinProfitRatio: 1.0}

// Match reports whether the listed/estimate pair qualifies as a deal.
func (r DealRule) Match(listed, estimate float64) bool {
	profit := estimate - listed
	return profit >= r.MinProfitChaos && profit >= listed*r.MinProfitRatio
}

// Engine runs the serving scan pipeline and the scheduled prepare job.
type Engine struct {
	store      store.Store
	src        source.RecordSource
	estimator  estimator.Estimator
	notifier   notify.Notifier
	registry   *catalog.Registry
	normalizer *normalize.Normalizer
	log        *slog.Logger

	mu       sync.RWMutex
	artifact *schema.Artifact

	fill     schema.FillPolicy
	dealRule DealRule
	dealLog  io.Writer
	league   string

	exporter    *dataset.Exporter
	schemasPath string

	maxPriceChaos  float64
	skipFrameTypes map[int]bool

	now func() time.Time
}

// NewEngine creates an Engine with injected collaborators.
func NewEngine(
	s store.Store,
	src source.RecordSource,
	est estimator.Estimator,
	n notify.Notifier,
	registry *catalog.Registry,
	normalizer *normalize.Normalizer,
	opts ...Option,
) *Engine {
	eng := &Engine{
		store:      s,
		src:        src,
		estimator:  est,
		notifier:   n,
		registry:   registry,
		normalizer: normalizer,
		log:        slog.Default(),
		artifact:   schema.NewArtifact(nil),
		fill:       schema.FillZero,
		dealRule:   DefaultDealRule,
		dealLog:    io.Discard,
		// Unique items have hand-designed fixed mods; their prices do not
		// follow the rolled-mod distribution the model learns.
		skipFrameTypes: map[int]bool{3: true},
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithArtifact sets the column schema artifact used for reconciliation.
func WithArtifact(a *schema.Artifact) Option {
	return func(e *Engine) {
		e.artifact = a
	}
}

// WithFillPolicy sets how missing serving-time columns are filled.
func WithFillPolicy(p schema.FillPolicy) Option {
	return func(e *Engine) {
		e.fill = p
	}
}

// WithDealRule overrides the deal thresholds.
func WithDealRule(r DealRule) Option {
	return func(e *Engine) {
		e.dealRule = r
	}
}

// WithDealLog sets the writer flagged deals are appended to, one JSON
// record per line.
func WithDealLog(w io.Writer) Option {
	return func(e *Engine) {
		e.dealLog = w
	}
}

// WithLeague sets the league the prepare job queries for.
func WithLeague(league string) Option {
	return func(e *Engine) {
		e.league = league
	}
}

// WithExporter sets the dataset exporter and schema artifact path used by
// the prepare job.
func WithExporter(ex *dataset.Exporter, schemasPath string) Option {
	return func(e *Engine) {
		e.exporter = ex
		e.schemasPath = schemasPath
	}
}

// WithMaxPriceChaos caps the label value for prepare-time rows. Zero
// disables the cap.
func WithMaxPriceChaos(limit float64) Option {
	return func(e *Engine) {
		e.maxPriceChaos = limit
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Artifact returns the current column schema artifact.
func (e *Engine) Artifact() *schema.Artifact {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.artifact
}

// SwapArtifact replaces the column schema artifact. Called by the prepare
// job after a successful export so in-flight scans keep a consistent view.
func (e *Engine) SwapArtifact(a *schema.Artifact) {
	e.mu.Lock()
	e.artifact = a
	e.mu.Unlock()
}
