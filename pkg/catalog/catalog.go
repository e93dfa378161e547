// Package catalog holds the static item type registry: the mapping from
// free-text type lines to item categories, per-category subtype indexes, and
// the dense integer category ids shared by training and serving.
//
// The registry is built once from the static base-name catalog and never
// mutated afterward, so it is safe for unsynchronized concurrent reads.
// Category ids are assigned from the alphabetically sorted category list,
// never from item arrival order; training and serving deployments built from
// the same catalog therefore always agree on the id mapping.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownItemType is returned when a type line is not in the catalog.
// It usually means the catalog is stale and needs a new base name appended.
var ErrUnknownItemType = errors.New("unknown item type")

// qualityPrefix is the decorative prefix on quality-bearing type lines,
// stripped before lookup.
const qualityPrefix = "Superior "

// Registry resolves type lines to categories, subtype indexes, and stable
// category ids.
type Registry struct {
	categories  []string       // sorted
	categoryIDs map[string]int // category -> position in sorted list
	itemTypes   map[string]string
	subTypes    map[string]int
}

// New builds a Registry from the static base-name catalog.
func New() *Registry {
	return newFromBases(baseNames)
}

func newFromBases(bases map[string][]string) *Registry {
	r := &Registry{
		categoryIDs: make(map[string]int, len(bases)),
		itemTypes:   make(map[string]string),
		subTypes:    make(map[string]int),
	}

	for category := range bases {
		r.categories = append(r.categories, category)
	}
	sort.Strings(r.categories)
	for i, category := range r.categories {
		r.categoryIDs[category] = i
	}

	for category, names := range bases {
		for i, name := range names {
			r.itemTypes[name] = category
			r.subTypes[name] = i
		}
	}

	return r
}

// CleanTypeLine strips known decorative prefixes from a raw type line.
func CleanTypeLine(typeLine string) string {
	return strings.TrimPrefix(typeLine, qualityPrefix)
}

// Resolve maps a cleaned type line to its category and subtype index.
func (r *Registry) Resolve(typeLine string) (category string, subType int, err error) {
	category, ok := r.itemTypes[typeLine]
	if !ok {
		if suggestion := r.Suggest(typeLine); suggestion != "" {
			return "", 0, fmt.Errorf(
				"%w: %q (closest catalog entry: %q)",
				ErrUnknownItemType, typeLine, suggestion,
			)
		}
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownItemType, typeLine)
	}
	return category, r.subTypes[typeLine], nil
}

// CategoryID returns the dense integer id for a category, derived from the
// alphabetically sorted category list.
func (r *Registry) CategoryID(category string) (int, bool) {
	id, ok := r.categoryIDs[category]
	return id, ok
}

// Categories returns the sorted category list. The returned slice must not
// be modified.
func (r *Registry) Categories() []string {
	return r.categories
}

// BaseCount returns how many base names a category has, 0 for unknown
// categories.
func (r *Registry) BaseCount(category string) int {
	return len(baseNames[category])
}
