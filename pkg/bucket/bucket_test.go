package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price float64
		want  int
	}{
		{name: "zero", price: 0, want: 0},
		{name: "below first boundary", price: 2.4, want: 0},
		{name: "on boundary goes up", price: 2.5, want: 1},
		{name: "mid ladder", price: 12, want: 3},
		{name: "one exalted", price: 70, want: 10},
		{name: "above terminal", price: 100000, want: 14},
		{name: "negative clamps to first", price: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Bucketize(tt.price))
		})
	}
}

func TestBucketizeMonotonic(t *testing.T) {
	t.Parallel()

	last := 0
	for price := 0.0; price < 300; price += 0.5 {
		b := Bucketize(price)
		require.GreaterOrEqual(t, b, last, "price %v", price)
		last = b
	}
}

func TestOneHot(t *testing.T) {
	t.Parallel()

	weights := OneHot(12)
	require.Len(t, weights, Count())
	for i, w := range weights {
		if i == 3 {
			assert.Equal(t, 1.0, w)
		} else {
			assert.Zero(t, w)
		}
	}
}

func TestEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights []float64
		want    float64
	}{
		{
			name:    "all mass in one band uses midpoint",
			weights: OneHot(12),
			want:    12.5, // (10+15)/2
		},
		{
			name:    "noise floor drops small weights",
			weights: []float64{0.04, 0.96, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			want:    3.6, // 3.75 * 0.96
		},
		{
			name: "terminal band uses lower boundary",
			weights: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 1.0},
			want: 210.0,
		},
		{
			name:    "empty vector",
			weights: make([]float64, 15),
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Estimate(tt.weights))
		})
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		i    int
		want string
	}{
		{name: "first band", i: 0, want: "0.0-2.5 chaos"},
		{name: "chaos band", i: 3, want: "10.0-15.0 chaos"},
		{name: "rescales to exalted", i: 10, want: "1.0-1.5 exa"},
		{name: "terminal band", i: 14, want: ">= 3 exa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Label(tt.i))
		})
	}
}
