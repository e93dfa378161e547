// Package feature turns normalized items into flat numeric feature rows.
//
// Every property, requirement, and modifier becomes one column; sockets
// collapse into count, largest link group, and per-color counts. Column
// names carry a prefix identifying their source group so that "Level" the
// requirement never collides with "Level" the property.
package feature

import (
	"sort"
	"strconv"
	"strings"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// Standard scalar columns present on every row.
const (
	ColIlvl        = "ilvl"
	ColCorrupted   = "corrupted"
	ColFrameType   = "frameType"
	ColItemType    = "itemType"
	ColItemSubType = "itemSubType"
	ColDay         = "day"
	ColPriceChaos  = "priceChaos"
)

// Column prefixes by source group.
const (
	PrefixProperty   = "prop_"
	PrefixRequire    = "req_"
	PrefixAddProp    = "add_prop_"
	PrefixImplicit   = "implicit_"
	PrefixExplicit   = "explicit_"
	PrefixCrafted    = "crafted_"
	ColSocketCount   = "socket_count"
	ColSocketLinks   = "socket_links"
	PrefixSocketAttr = "sockets_"
)

// AggregateProperties reduces a wire-format property group to a name -> value
// map. Sub-entries are summed so that split values like elemental damage
// ranges land in one column. Value text is cleaned of display decoration
// first; ranges take their midpoint, fractions like experience counters take
// the numerator, and sub-values that still fail to parse are skipped.
func AggregateProperties(group domain.Properties) map[string]float64 {
	out := make(map[string]float64, len(group))
	for _, prop := range group {
		values := prop.FlatValues()
		if len(values) == 0 {
			continue
		}

		total := 0.0
		for _, v := range values {
			v = strings.ReplaceAll(v, "%", "")
			v = strings.ReplaceAll(v, "+", "")
			v = strings.ReplaceAll(v, " sec", "")
			v = strings.ReplaceAll(v, " (Max)", "")

			switch {
			case strings.Contains(v, "-"):
				halves := strings.SplitN(v, "-", 2)
				lo, errLo := strconv.ParseFloat(halves[0], 64)
				hi, errHi := strconv.ParseFloat(halves[1], 64)
				if errLo != nil || errHi != nil {
					continue
				}
				total += (lo + hi) / 2
			case strings.Contains(v, "/"):
				// Counters like experience read "23/23923"; only the
				// current value matters.
				num, err := strconv.ParseFloat(strings.SplitN(v, "/", 2)[0], 64)
				if err != nil {
					continue
				}
				total += num
			default:
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					continue
				}
				total += f
			}
		}

		out[prop.Name] = total
	}
	return out
}

// BuildRow flattens a normalized item into a feature row. categoryID is the
// numeric id of the item's category; the row carries it instead of the
// category name so the output is fully numeric.
func BuildRow(item *domain.NormalizedItem, categoryID int) *Row {
	row := NewRow()

	for _, name := range sortedKeys(item.Properties) {
		row.Set(PrefixProperty+name, item.Properties[name])
	}

	// Requirement names are unreliable: "Str" and "Strength" both occur, so
	// the first three characters are the stable key.
	for _, name := range sortedKeys(item.Requirements) {
		key := name
		if len(key) > 3 {
			key = key[:3]
		}
		row.Set(PrefixRequire+key, item.Requirements[name])
	}

	for _, name := range sortedKeys(item.AdditionalProperties) {
		row.Set(PrefixAddProp+name, item.AdditionalProperties[name])
	}

	if item.Sockets != nil {
		row.Set(ColSocketCount, float64(len(item.Sockets)))
		row.Set(ColSocketLinks, float64(largestLinkGroup(item.Sockets)))
		for _, socket := range item.Sockets {
			key := PrefixSocketAttr + socket.Attr
			current, _ := row.Get(key)
			row.Set(key, current+1)
		}
	}

	setMods(row, PrefixImplicit, item.ImplicitMods)
	setMods(row, PrefixExplicit, item.ExplicitMods)
	setMods(row, PrefixCrafted, item.CraftedMods)

	row.Set(ColIlvl, float64(item.Ilvl))
	row.Set(ColCorrupted, boolToFloat(item.Corrupted))
	row.Set(ColFrameType, float64(item.FrameType))
	row.Set(ColItemType, float64(categoryID))
	row.Set(ColItemSubType, float64(item.ItemSubType))
	row.Set(ColDay, float64(item.Day))
	row.Set(ColPriceChaos, item.PriceChaos)

	return row
}

// setMods writes one column per modifier template. Duplicate templates keep
// the last magnitude.
func setMods(row *Row, prefix string, mods []domain.Modifier) {
	for _, mod := range mods {
		row.Set(prefix+mod.Template, mod.Magnitude)
	}
}

// largestLinkGroup returns the size of the biggest socket link cluster.
func largestLinkGroup(sockets []domain.Socket) int {
	counts := make(map[int]int, len(sockets))
	best := 0
	for _, s := range sockets {
		counts[s.Group]++
		if counts[s.Group] > best {
			best = counts[s.Group]
		}
	}
	return best
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// sortedKeys keeps column order deterministic for rows built from the same
// item.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
