// Package estimator is the boundary to the price model. The pipeline hands a
// category and a matrix of reconciled feature vectors across it and receives
// one probability vector per row, spanning the price bands.
package estimator

import (
	"context"
	"errors"
	"fmt"
)

// ErrBadPrediction is returned when the backend answers with the wrong
// number of vectors or a vector of the wrong width.
var ErrBadPrediction = errors.New("malformed prediction")

// Estimator predicts per-band price probabilities for feature vectors.
type Estimator interface {
	// Predict returns one probability vector per input row. Implementations
	// must preserve row order.
	Predict(ctx context.Context, category string, matrix [][]float64) ([][]float64, error)
	// Name identifies the backend.
	Name() string
}

// validateShape checks a backend response against the request.
func validateShape(rows int, bands int, predictions [][]float64) error {
	if len(predictions) != rows {
		return fmt.Errorf("%w: %d rows in, %d vectors out", ErrBadPrediction, rows, len(predictions))
	}
	for i, p := range predictions {
		if len(p) != bands {
			return fmt.Errorf("%w: row %d has %d bands, want %d", ErrBadPrediction, i, len(p), bands)
		}
	}
	return nil
}
