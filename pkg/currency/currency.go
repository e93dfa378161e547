// Package currency converts in-game currency quantities to their canonical
// chaos-equivalent value.
//
// The rate table is static: it maps every currency token spelling observed in
// the wild (including the popular typos) to a chaos multiplier fixed at
// process start. The same token always yields the same rate within a process
// lifetime; unknown tokens fail loudly instead of defaulting, because they
// almost always mean a genuine gap in the table.
package currency

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownCurrency is returned for currency tokens absent from the rate
// table.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrUnparsablePrice is returned when a listing note does not contain a
// recognizable "<listing> <amount> <currency>" price.
var ErrUnparsablePrice = errors.New("unparsable price")

// Unpriced is the sentinel callers may use to filter items without a usable
// price.
const Unpriced = -1.0

// Chaos-equivalent rates for the base currencies.
const (
	ValueChaos      = 1.0
	ValueVaal       = 1.1
	ValueRegret     = 1.0
	ValueChance     = 1.0 / 8.0
	ValueDivine     = 9.0
	ValueExalted    = 70.0
	ValueAlteration = 1.0 / 21.0
	ValueAlchemy    = 1.0 / 4.6
	ValueChisel     = 1.0 / 6.0
	ValueFusing     = 1.0 / 2.9
	ValueJeweller   = 1.0 / 12.0
)

// rates maps lowercase currency tokens to chaos multipliers. Several entries
// are deliberate misspellings that show up in real listing notes.
var rates = map[string]float64{
	"chaos":       ValueChaos,
	"chaoss":      ValueChaos,
	"chaosgg":     ValueChaos,
	"choas":       ValueChaos,
	"chaos3":      ValueChaos,
	"chas":        ValueChaos,
	"chaos_crab3": ValueChaos, // yes, this is a real one
	"chaos1":      ValueChaos,
	"chaos2":      ValueChaos,
	"c":           ValueChaos,
	"vaal":        ValueVaal,
	"regret":      ValueRegret,
	"exa":         ValueExalted,
	"exalted":     ValueExalted,
	"exalteds":    ValueExalted,
	"ex":          ValueExalted,
	"exalt":       ValueExalted,
	"exalts":      ValueExalted,
	"chance":      ValueChance,
	"divine":      ValueDivine,
	"alt":         ValueAlteration,
	"alts":        ValueAlteration,
	"altq":        ValueAlteration,
	"alteration":  ValueAlteration,
	"alch":        ValueAlchemy,
	"alch2":       ValueAlchemy,
	"alch3":       ValueAlchemy,
	"alchemy":     ValueAlchemy,
	"alc":         ValueAlchemy,
	"chisel":      ValueChisel,
	"fuse":        ValueFusing,
	"fusing":      ValueFusing,
	"fus":         ValueFusing,
	"jew":         ValueJeweller,
	"jewellers":   ValueJeweller,
	"scour":       1.0 / 1.6,
	"regal":       1.5,
	"chrom":       1.0 / 12.0,
	"gcp":         1.5,
	"pris":        1.0,
	"blessed":     1.0 / 1.5,
	"bless":       1.0 / 1.5,

	"5":      0.0,
	"mirror": 80 * ValueExalted,
}

// buyoutFormat matches "<listing kind> <amount> <currency>", e.g.
// "b/o 5 chaos" or "~price 1.2 exa".
var buyoutFormat = regexp.MustCompile(`\S+ (\d+(?:\.\d+)?) (\w+)`)

// Rate returns the chaos multiplier for a currency token. The lookup is
// case-insensitive.
func Rate(token string) (float64, error) {
	rate, ok := rates[strings.ToLower(token)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, token)
	}
	return rate, nil
}

// Convert returns quantity * rate(token) in chaos orbs.
func Convert(quantity float64, token string) (float64, error) {
	rate, err := Rate(token)
	if err != nil {
		return 0, err
	}
	return quantity * rate, nil
}

// ParseListedPrice parses a raw listing note such as "b/o 5 chaos" and
// returns its chaos-equivalent value.
func ParseListedPrice(raw string) (float64, error) {
	m := buyoutFormat.FindStringSubmatch(strings.ToLower(raw))
	if len(m) < 3 {
		return 0, fmt.Errorf("%w: %q", ErrUnparsablePrice, raw)
	}

	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsablePrice, raw)
	}

	return Convert(amount, m[2])
}
