package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
	"github.com/exilemarket/item-price-scanner/pkg/logger"
)

// Format selects the export file format.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Exporter writes per-category tables into a dataset directory.
type Exporter struct {
	dir    string
	format string
	logger *slog.Logger
}

// ExporterOption configures the Exporter.
type ExporterOption func(*Exporter)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ExporterOption {
	return func(e *Exporter) {
		e.logger = l
	}
}

// NewExporter creates an exporter writing format files under dir.
func NewExporter(dir, format string, opts ...ExporterOption) (*Exporter, error) {
	switch format {
	case FormatCSV, FormatParquet:
	default:
		return nil, fmt.Errorf("unknown dataset format %q", format)
	}

	e := &Exporter{dir: dir, format: format, logger: logger.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// FileStem returns the dataset file name stem for a category.
func FileStem(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "_")
}

// Export writes one table and returns the file path. Empty tables are
// skipped with an empty path.
func (e *Exporter) Export(t *Table) (string, error) {
	if t.Len() == 0 {
		e.logger.Warn("skipping empty dataset", "category", t.Category())
		return "", nil
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating dataset dir: %w", err)
	}

	path := filepath.Join(e.dir, FileStem(t.Category())+"."+e.format)

	switch e.format {
	case FormatParquet:
		if err := t.WriteParquet(path); err != nil {
			return "", fmt.Errorf("exporting %s: %w", t.Category(), err)
		}
	default:
		f, err := os.Create(path) //nolint:gosec // path derived from static catalog
		if err != nil {
			return "", fmt.Errorf("creating dataset file: %w", err)
		}
		if err := t.WriteCSV(f); err != nil {
			f.Close() //nolint:errcheck,gosec // already failing
			return "", fmt.Errorf("exporting %s: %w", t.Category(), err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("closing dataset file: %w", err)
		}
	}

	metrics.DatasetRowsExportedTotal.WithLabelValues(t.Category()).Add(float64(t.Len()))
	e.logger.Info("exported dataset",
		"category", t.Category(), "rows", t.Len(), "columns", len(t.Columns()), "path", path)
	return path, nil
}
