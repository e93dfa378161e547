package catalog

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Suggest returns the closest catalog base name to an unknown type line, or
// "" when nothing is remotely similar. Used to make stale-catalog warnings
// actionable.
func (r *Registry) Suggest(typeLine string) string {
	names := make([]string, 0, len(r.itemTypes))
	for name := range r.itemTypes {
		names = append(names, name)
	}
	sort.Strings(names)

	matches := fuzzy.Find(typeLine, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
