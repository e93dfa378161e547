package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/exilemarket/item-price-scanner/internal/dataset"
	"github.com/exilemarket/item-price-scanner/internal/metrics"
	"github.com/exilemarket/item-price-scanner/internal/source"
	"github.com/exilemarket/item-price-scanner/pkg/feature"
	"github.com/exilemarket/item-price-scanner/pkg/normalize"
	"github.com/exilemarket/item-price-scanner/pkg/schema"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

const prepareJobName = "prepare"

// RunPrepare pulls the sold-item corpus from the record source, builds one
// column-unioned table per category, exports every table through the
// configured exporter, captures the column schemas as a versioned store
// record plus a JSON artifact, and swaps the live artifact for subsequent
// scans. The run is tracked as a job_runs row.
func (e *Engine) RunPrepare(ctx context.Context) error {
	if e.exporter == nil {
		return fmt.Errorf("prepare requires an exporter")
	}

	start := time.Now()
	defer func() {
		metrics.PrepareDuration.Observe(time.Since(start).Seconds())
	}()

	jobID, err := e.store.InsertJobRun(ctx, prepareJobName)
	if err != nil {
		return fmt.Errorf("recording job start: %w", err)
	}

	rows, err := e.runPrepare(ctx)
	if err != nil {
		if cerr := e.store.CompleteJobRun(ctx, jobID, "failed", err.Error(), rows); cerr != nil {
			e.log.Error("recording job failure failed", "job_id", jobID, "error", cerr)
		}
		return err
	}

	if err := e.store.CompleteJobRun(ctx, jobID, "succeeded", "", rows); err != nil {
		e.log.Error("recording job completion failed", "job_id", jobID, "error", err)
	}
	return nil
}

func (e *Engine) runPrepare(ctx context.Context) (int, error) {
	tables := make(map[string]*dataset.Table)
	totalRows := 0

	q := source.Query{League: e.league, RequireRemoved: true}
	stats, err := e.src.Scan(ctx, q, func(items []domain.RawItem) error {
		for i := range items {
			if e.collect(tables, &items[i]) {
				totalRows++
			}
		}
		return nil
	})
	if err != nil {
		return totalRows, fmt.Errorf("scanning record source: %w", err)
	}

	e.log.Info("corpus scan complete",
		"pages", stats.Pages,
		"items", stats.Items,
		"rows", totalRows,
		"categories", len(tables),
		"stopped_at", stats.StoppedAt,
	)

	categories := make([]string, 0, len(tables))
	for cat := range tables {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	schemas := make([]*schema.Schema, 0, len(categories))
	for _, cat := range categories {
		t := tables[cat]

		path, err := e.exporter.Export(t)
		if err != nil {
			return totalRows, fmt.Errorf("exporting %q: %w", cat, err)
		}
		if path == "" {
			continue
		}

		sch, err := t.Schema(0)
		if err != nil {
			return totalRows, fmt.Errorf("capturing %q schema: %w", cat, err)
		}

		rec := &domain.ColumnSchemaRecord{
			Category: cat,
			Columns:  sch.Columns,
			Means:    sch.Means,
		}
		if err := e.store.SaveColumnSchema(ctx, rec); err != nil {
			return totalRows, fmt.Errorf("persisting %q schema: %w", cat, err)
		}
		sch.Version = rec.Version

		e.log.Info("dataset exported",
			"category", cat,
			"rows", t.Len(),
			"columns", sch.Len(),
			"version", sch.Version,
			"path", path,
		)
		schemas = append(schemas, sch)
	}

	artifact := schema.NewArtifact(schemas)
	if e.schemasPath != "" {
		if err := artifact.Save(e.schemasPath); err != nil {
			return totalRows, fmt.Errorf("saving schema artifact: %w", err)
		}
	}
	e.SwapArtifact(artifact)

	return totalRows, nil
}

// collect normalizes one raw record and appends its feature row to the
// category table. Returns false for records the training corpus excludes.
func (e *Engine) collect(tables map[string]*dataset.Table, raw *domain.RawItem) bool {
	norm, err := e.normalizer.Normalize(raw)
	if err != nil {
		metrics.ItemsRejectedTotal.WithLabelValues(normalize.RejectReason(err)).Inc()
		return false
	}
	metrics.ItemsNormalizedTotal.Inc()

	// Training rows need a label.
	if norm.PriceChaos <= 0 {
		return false
	}
	if e.maxPriceChaos > 0 && norm.PriceChaos > e.maxPriceChaos {
		return false
	}
	if e.skipFrameTypes[norm.FrameType] {
		return false
	}

	t, ok := tables[norm.ItemType]
	if !ok {
		t = dataset.NewTable(norm.ItemType)
		tables[norm.ItemType] = t
	}

	categoryID, _ := e.registry.CategoryID(norm.ItemType)
	t.Append(feature.BuildRow(norm, categoryID))
	return true
}
