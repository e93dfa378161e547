package estimator

import (
	"context"

	"github.com/exilemarket/item-price-scanner/pkg/bucket"
)

// Baseline is a self-contained estimator that spreads probability uniformly
// over the price bands. It carries no signal; it exists so the full pipeline
// can run without a model server, in development and in tests.
type Baseline struct{}

// NewBaseline creates a Baseline estimator.
func NewBaseline() *Baseline {
	return &Baseline{}
}

// Name returns the backend name.
func (*Baseline) Name() string {
	return "baseline"
}

// Predict returns a uniform probability vector per row.
func (*Baseline) Predict(_ context.Context, _ string, matrix [][]float64) ([][]float64, error) {
	bands := bucket.Count()
	uniform := 1.0 / float64(bands)

	out := make([][]float64, len(matrix))
	for i := range matrix {
		vec := make([]float64, bands)
		for j := range vec {
			vec[j] = uniform
		}
		out[i] = vec
	}
	return out, nil
}
