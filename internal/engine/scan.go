package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
	"github.com/exilemarket/item-price-scanner/internal/notify"
	"github.com/exilemarket/item-price-scanner/pkg/bucket"
	"github.com/exilemarket/item-price-scanner/pkg/feature"
	"github.com/exilemarket/item-price-scanner/pkg/normalize"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// topBuckets is how many probability bands a prediction reports.
const topBuckets = 5

// BucketShare is one band of a prediction's probability mass.
type BucketShare struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// Prediction is the per-item scan result.
type Prediction struct {
	ItemID         string        `json:"item_id,omitempty"`
	Category       string        `json:"category"`
	Estimate       float64       `json:"estimate"`
	Top            []BucketShare `json:"top"`
	DroppedColumns []string      `json:"dropped_columns,omitempty"`
	Deal           *DealResult   `json:"deal,omitempty"`
}

// DealResult is attached to a prediction when deal mode flagged the listing.
type DealResult struct {
	ListedChaos float64 `json:"listed_chaos"`
	Profit      float64 `json:"profit"`
}

// RejectedItem records one item the normalizer refused.
type RejectedItem struct {
	ItemID string `json:"item_id,omitempty"`
	Reason string `json:"reason"`
}

// ScanReport is the result of one scan batch.
type ScanReport struct {
	Predictions []Prediction   `json:"predictions"`
	Rejected    []RejectedItem `json:"rejected,omitempty"`
}

// pendingItem links a normalized item back to its batch position while the
// batch is regrouped per category for estimation.
type pendingItem struct {
	index   int
	raw     *domain.RawItem
	norm    *domain.NormalizedItem
	vector  []float64
	dropped []string
}

// Scan normalizes a batch of raw items, reconciles each against the captured
// column schema for its category, and estimates prices with one batched
// model call per category. With dealMode set, listings priced far enough
// below their estimate are flagged, logged, persisted, and notified.
//
// One bad item never aborts the batch; a missing column schema does.
func (e *Engine) Scan(ctx context.Context, items []domain.RawItem, dealMode bool) (*ScanReport, error) {
	start := time.Now()
	defer func() {
		metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.ScanBatchSize.Observe(float64(len(items)))

	artifact := e.Artifact()
	report := &ScanReport{}
	byCategory := make(map[string][]*pendingItem)

	for i := range items {
		raw := &items[i]

		norm, err := e.normalizer.Normalize(raw)
		if err != nil {
			reason := normalize.RejectReason(err)
			metrics.ItemsRejectedTotal.WithLabelValues(reason).Inc()
			report.Rejected = append(report.Rejected, RejectedItem{
				ItemID: raw.ID,
				Reason: reason,
			})
			continue
		}
		metrics.ItemsNormalizedTotal.Inc()

		sch, ok := artifact.Get(norm.ItemType)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSchemaMissing, norm.ItemType)
		}

		categoryID, _ := e.registry.CategoryID(norm.ItemType)
		row := feature.BuildRow(norm, categoryID)

		vector, dropped, err := sch.Reconcile(row, e.fill)
		if err != nil {
			return nil, fmt.Errorf("reconciling %q row: %w", norm.ItemType, err)
		}
		metrics.ReconcileDroppedColumnsTotal.Add(float64(len(dropped)))
		if len(dropped) > 0 {
			e.log.Debug("columns dropped at serving time",
				"category", norm.ItemType,
				"dropped", dropped,
			)
		}

		byCategory[norm.ItemType] = append(byCategory[norm.ItemType], &pendingItem{
			index:   i,
			raw:     raw,
			norm:    norm,
			vector:  vector,
			dropped: dropped,
		})
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var deals []notify.DealAlert
	ordered := make([]*Prediction, len(items))

	for _, cat := range categories {
		pending := byCategory[cat]

		matrix := make([][]float64, len(pending))
		for i, p := range pending {
			matrix[i] = p.vector
		}

		weights, err := e.estimator.Predict(ctx, cat, matrix)
		if err != nil {
			return nil, fmt.Errorf("estimating %q batch: %w", cat, err)
		}

		for i, p := range pending {
			pred := Prediction{
				ItemID:         p.raw.ID,
				Category:       cat,
				Estimate:       bucket.Estimate(weights[i]),
				Top:            topShares(weights[i]),
				DroppedColumns: p.dropped,
			}

			if dealMode && p.norm.PriceChaos > 0 {
				if deal := e.evaluateDeal(ctx, p, &pred); deal != nil {
					deals = append(deals, *deal)
				}
			}

			ordered[p.index] = &pred
		}
	}

	for _, pred := range ordered {
		if pred != nil {
			report.Predictions = append(report.Predictions, *pred)
		}
	}

	if len(deals) > 0 && e.notifier != nil {
		if err := e.notifier.SendDealBatch(ctx, deals); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			e.log.Error("deal notification failed", "count", len(deals), "error", err)
		}
	}

	return report, nil
}

// topShares returns the up-to-five heaviest probability bands, formatted as
// labels with percentages rounded to two decimals.
func topShares(weights []float64) []BucketShare {
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return weights[idx[a]] > weights[idx[b]]
	})

	n := min(topBuckets, len(idx))
	shares := make([]BucketShare, 0, n)
	for _, i := range idx[:n] {
		if weights[i] <= 0 {
			break
		}
		shares = append(shares, BucketShare{
			Label:   bucket.Label(i),
			Percent: roundPercent(weights[i]),
		})
	}
	return shares
}

func roundPercent(w float64) float64 {
	return math.Round(w*10000) / 100
}
