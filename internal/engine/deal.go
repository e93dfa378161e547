package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
	"github.com/exilemarket/item-price-scanner/internal/notify"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// dealLogRecord is the JSON line appended to the deal log for every flagged
// listing. The log is the operator-facing audit trail; the store row is the
// queryable one.
type dealLogRecord struct {
	Time        time.Time     `json:"time"`
	ItemID      string        `json:"item_id,omitempty"`
	TypeLine    string        `json:"type_line"`
	Category    string        `json:"category"`
	ListedChaos float64       `json:"listed_chaos"`
	Estimate    float64       `json:"estimate"`
	Profit      float64       `json:"profit"`
	Top         []BucketShare `json:"top,omitempty"`
}

// evaluateDeal applies the deal rule to one priced item. On a match it
// attaches the result to the prediction, appends a log record, persists a
// deal event, and returns the alert for batched notification. Persistence
// and logging failures are reported but never fail the scan.
func (e *Engine) evaluateDeal(ctx context.Context, p *pendingItem, pred *Prediction) *notify.DealAlert {
	listed := p.norm.PriceChaos
	if !e.dealRule.Match(listed, pred.Estimate) {
		return nil
	}

	profit := pred.Estimate - listed
	pred.Deal = &DealResult{ListedChaos: listed, Profit: profit}
	metrics.DealsFlaggedTotal.Inc()

	rec := dealLogRecord{
		Time:        e.now().UTC(),
		ItemID:      p.raw.ID,
		TypeLine:    p.raw.TypeLine,
		Category:    pred.Category,
		ListedChaos: listed,
		Estimate:    pred.Estimate,
		Profit:      profit,
		Top:         pred.Top,
	}
	if line, err := json.Marshal(rec); err == nil {
		//nolint:errcheck,gosec // best-effort write, the store row is authoritative
		e.dealLog.Write(append(line, '\n'))
	}

	event := &domain.DealEvent{
		ItemID:      p.raw.ID,
		Category:    pred.Category,
		ListedChaos: listed,
		Estimate:    pred.Estimate,
		Profit:      profit,
	}
	if err := e.store.InsertDealEvent(ctx, event); err != nil {
		e.log.Error("persisting deal event failed", "item_id", p.raw.ID, "error", err)
	}

	top := make([]notify.BucketWeight, 0, len(pred.Top))
	for _, s := range pred.Top {
		top = append(top, notify.BucketWeight{Label: s.Label, Percent: s.Percent})
	}

	return &notify.DealAlert{
		ItemID:      p.raw.ID,
		TypeLine:    p.raw.TypeLine,
		Category:    pred.Category,
		League:      e.league,
		ListedChaos: listed,
		Estimate:    pred.Estimate,
		Profit:      profit,
		TopBuckets:  top,
	}
}
