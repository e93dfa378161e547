// Package dataset accumulates feature rows into per-category tables and
// exports them as training datasets with their captured column schemas.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/exilemarket/item-price-scanner/pkg/feature"
	"github.com/exilemarket/item-price-scanner/pkg/schema"
)

// Table collects feature rows for one category. Rows stay sparse; the table
// owns the column union. Not safe for concurrent use.
type Table struct {
	category string
	rows     []*feature.Row
	colSet   map[string]struct{}
	columns  []string // valid while dirty is false
	dirty    bool
}

// NewTable creates an empty table for a category.
func NewTable(category string) *Table {
	return &Table{
		category: category,
		colSet:   make(map[string]struct{}),
	}
}

// Category returns the table's category.
func (t *Table) Category() string {
	return t.category
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Append adds a row, widening the column union as needed.
func (t *Table) Append(row *feature.Row) {
	t.rows = append(t.rows, row)
	for _, col := range row.Columns() {
		if _, ok := t.colSet[col]; !ok {
			t.colSet[col] = struct{}{}
			t.dirty = true
		}
	}
}

// Columns returns the sorted column union with the label column moved to the
// end.
func (t *Table) Columns() []string {
	if !t.dirty && t.columns != nil {
		return t.columns
	}

	cols := make([]string, 0, len(t.colSet))
	hasLabel := false
	for col := range t.colSet {
		if col == feature.ColPriceChaos {
			hasLabel = true
			continue
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)
	if hasLabel {
		cols = append(cols, feature.ColPriceChaos)
	}

	t.columns = cols
	t.dirty = false
	return cols
}

// Means returns the per-column mean over all rows, missing values counting
// as zero. Aligned with Columns().
func (t *Table) Means() []float64 {
	cols := t.Columns()
	means := make([]float64, len(cols))
	if len(t.rows) == 0 {
		return means
	}

	for _, row := range t.rows {
		for i, col := range cols {
			if v, ok := row.Get(col); ok {
				means[i] += v
			}
		}
	}
	for i := range means {
		means[i] /= float64(len(t.rows))
	}
	return means
}

// Schema captures the table's feature columns (label excluded) with their
// training means.
func (t *Table) Schema(version int) (*schema.Schema, error) {
	cols := t.Columns()
	means := t.Means()

	features := make([]string, 0, len(cols))
	featureMeans := make([]float64, 0, len(cols))
	for i, col := range cols {
		if col == feature.ColPriceChaos {
			continue
		}
		features = append(features, col)
		featureMeans = append(featureMeans, means[i])
	}

	return schema.New(t.category, version, features, featureMeans)
}

// WriteCSV writes the table with a header row. Missing values export as 0.
func (t *Table) WriteCSV(w io.Writer) error {
	cols := t.Columns()

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	record := make([]string, len(cols))
	for _, row := range t.rows {
		for i, col := range cols {
			v, _ := row.Get(col)
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
