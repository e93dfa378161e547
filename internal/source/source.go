// Package source pulls item records out of the trade search index. The index
// speaks a scroll-style protocol: an initial search opens a cursor, and each
// continuation request returns the next page until a page comes back empty.
package source

import (
	"context"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// Query narrows a scan over the index.
type Query struct {
	// League restricts results to one league when set.
	League string
	// PropertyName requires items to carry the named property, e.g.
	// "Attacks per Second" to select weapons.
	PropertyName string
	// RequireRemoved keeps only delisted items, the ones whose removal time
	// makes them usable as sale observations.
	RequireRemoved bool
}

// PageFunc receives one page of records. Returning an error stops the scan.
type PageFunc func(items []domain.RawItem) error

// ScanStats summarizes a completed scan.
type ScanStats struct {
	Pages     int
	Items     int
	StoppedAt string // "no_more_results", "max_pages", "callback"
}

// RecordSource streams item records page by page.
type RecordSource interface {
	Scan(ctx context.Context, q Query, fn PageFunc) (*ScanStats, error)
}
