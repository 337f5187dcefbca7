package generator

import (
	"math"
	"math/rand/v2"
	"sort"
)

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// cumulate turns weights into a running-sum table for weightedIndex.
// Weights need not sum to one.
func cumulate(weights []float64) []float64 {
	cum := make([]float64, len(weights))
	acc := 0.0
	for i, w := range weights {
		acc += w
		cum[i] = acc
	}
	return cum
}

// weightedIndex samples an index with probability proportional to its weight.
func weightedIndex(rng *rand.Rand, cumulative []float64) int {
	total := cumulative[len(cumulative)-1]
	return searchCumulative(cumulative, rng.Float64()*total)
}

// searchCumulative finds the first bucket whose cumulative weight strictly
// exceeds x. A zero-weight bucket is never chosen, even when x lands exactly
// on its boundary.
func searchCumulative(cumulative []float64, x float64) int {
	i := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > x })
	if i >= len(cumulative) {
		i = len(cumulative) - 1
	}
	return i
}
