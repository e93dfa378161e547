// Package bucket maps chaos prices onto a fixed ladder of price bands and
// turns model weight vectors back into point estimates and display labels.
package bucket

import (
	"fmt"
	"math"

	"github.com/exilemarket/item-price-scanner/pkg/currency"
)

// Bins are the lower boundaries of the price bands, in chaos orbs, ascending.
// The top bands are spaced in half-exalted steps.
var Bins = []float64{
	0, 2.5, 5, 10, 15, 20, 25, 30, 40, 55,
	1.0 * currency.ValueExalted,
	1.5 * currency.ValueExalted,
	2.0 * currency.ValueExalted,
	2.5 * currency.ValueExalted,
	3.0 * currency.ValueExalted,
}

// NoiseFloor is the minimum weight a band must carry to contribute to the
// point estimate.
const NoiseFloor = 0.05

// Count returns the number of price bands.
func Count() int {
	return len(Bins)
}

// Bucketize returns the index of the band containing price. Prices below the
// first boundary land in band 0; prices at or above the last boundary land in
// the terminal band.
func Bucketize(price float64) int {
	for i := range Bins {
		if i == len(Bins)-1 || price < Bins[i+1] {
			return i
		}
	}
	return len(Bins) - 1
}

// OneHot returns a weight vector with all mass on the band containing price.
func OneHot(price float64) []float64 {
	weights := make([]float64, len(Bins))
	weights[Bucketize(price)] = 1.0
	return weights
}

// Estimate collapses a per-band weight vector into a single chaos value. Each
// band contributes its midpoint scaled by its weight; the terminal band has
// no upper boundary and contributes its lower boundary instead. Bands below
// NoiseFloor are ignored. The result is rounded to one decimal.
func Estimate(weights []float64) float64 {
	price := 0.0
	for i := 0; i < len(weights) && i < len(Bins); i++ {
		if weights[i] < NoiseFloor {
			continue
		}
		mid := Bins[i]
		if i < len(Bins)-1 {
			mid = (Bins[i] + Bins[i+1]) / 2
		}
		price += mid * weights[i]
	}
	return math.Round(price*10) / 10
}

// Label renders band i for display. Bands at or above one exalted are
// rescaled into exalted units.
func Label(i int) string {
	price := Bins[i]
	denom := 1.0
	unit := "chaos"
	if price >= currency.ValueExalted {
		denom = currency.ValueExalted
		unit = "exa"
	}
	if i == len(Bins)-1 {
		return fmt.Sprintf(">= %d %s", int(price/denom), unit)
	}
	return fmt.Sprintf("%0.1f-%0.1f %s", price/denom, Bins[i+1]/denom, unit)
}
