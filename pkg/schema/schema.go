// Package schema captures the feature column set of a trained category and
// reconciles incoming feature rows against it at serving time.
//
// A model only understands the columns it was trained on. Incoming items
// carry whatever mods the market invented since training, so serving drops
// the columns the schema has never seen (reporting them, they are the signal
// that the schema is going stale) and fills the columns the item lacks.
package schema

import (
	"errors"
	"fmt"

	"github.com/exilemarket/item-price-scanner/pkg/feature"
)

// FillPolicy selects the value used for schema columns absent from a row.
type FillPolicy string

const (
	// FillZero fills missing columns with 0. The safe default: absent mods
	// really are zero-magnitude.
	FillZero FillPolicy = "zero"
	// FillMean fills missing columns with the per-column training mean.
	// Requires the schema to carry means.
	FillMean FillPolicy = "mean"
)

var (
	ErrNoColumns      = errors.New("schema has no columns")
	ErrMeansMismatch  = errors.New("means length does not match columns")
	ErrMeansUnset     = errors.New("mean fill requested but schema has no means")
	ErrDuplicateCol   = errors.New("duplicate column")
	ErrLabelInColumns = errors.New("label column must not be part of a schema")
)

// Schema is the ordered feature column set of one item category, captured at
// training time. Immutable once built.
type Schema struct {
	Category string    `json:"category"`
	Version  int       `json:"version"`
	Columns  []string  `json:"columns"`
	Means    []float64 `json:"means,omitempty"`

	index map[string]int
}

// New builds a Schema over the given columns. The label column must already
// be excluded; means are optional and, when present, parallel to columns.
func New(category string, version int, columns []string, means []float64) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: category %s", ErrNoColumns, category)
	}
	if len(means) > 0 && len(means) != len(columns) {
		return nil, fmt.Errorf("%w: %d means, %d columns", ErrMeansMismatch, len(means), len(columns))
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col == feature.ColPriceChaos {
			return nil, fmt.Errorf("%w: %s", ErrLabelInColumns, col)
		}
		if _, ok := index[col]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCol, col)
		}
		index[col] = i
	}

	return &Schema{
		Category: category,
		Version:  version,
		Columns:  columns,
		Means:    means,
		index:    index,
	}, nil
}

// Len returns the number of feature columns.
func (s *Schema) Len() int {
	return len(s.Columns)
}

// Contains reports whether the schema knows the column.
func (s *Schema) Contains(col string) bool {
	_, ok := s.lookup(col)
	return ok
}

func (s *Schema) lookup(col string) (int, bool) {
	if s.index == nil {
		s.index = make(map[string]int, len(s.Columns))
		for i, c := range s.Columns {
			s.index[c] = i
		}
	}
	i, ok := s.index[col]
	return i, ok
}

// Reconcile projects a feature row onto the schema's column order. Columns
// the schema has never seen are dropped and returned; the label column is
// dropped silently since serving-time rows never carry a usable price.
// Missing schema columns are filled per policy. Reconciling the output of a
// previous reconcile yields the same vector.
func (s *Schema) Reconcile(row *feature.Row, policy FillPolicy) ([]float64, []string, error) {
	if policy == FillMean && len(s.Means) == 0 {
		return nil, nil, fmt.Errorf("%w: category %s", ErrMeansUnset, s.Category)
	}

	var dropped []string
	for _, col := range row.Columns() {
		if col == feature.ColPriceChaos {
			continue
		}
		if !s.Contains(col) {
			dropped = append(dropped, col)
		}
	}

	vector := make([]float64, len(s.Columns))
	for i, col := range s.Columns {
		if v, ok := row.Get(col); ok {
			vector[i] = v
			continue
		}
		if policy == FillMean {
			vector[i] = s.Means[i]
		}
	}

	return vector, dropped, nil
}
