package testutil

import (
	"math/rand"
	"sort"
)

// UniformTimes returns n spike times drawn uniformly from [0, duration) with
// a fixed seed. The times are not sorted.
func UniformTimes(seed int64, n int, duration float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64() * duration
	}
	return out
}

// SortedUniformTimes is UniformTimes sorted ascending.
func SortedUniformTimes(seed int64, n int, duration float64) []float64 {
	out := UniformTimes(seed, n, duration)
	sort.Float64s(out)
	return out
}

// PoissonTimes returns the sorted spike times of a homogeneous Poisson
// process with the given rate on [0, duration).
func PoissonTimes(seed int64, rate, duration float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	var out []float64
	t := rng.ExpFloat64() / rate
	for t < duration {
		out = append(out, t)
		t += rng.ExpFloat64() / rate
	}
	return out
}

// RegularTimes returns n spike times spaced by interval, starting at offset.
func RegularTimes(n int, offset, interval float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + float64(i)*interval
	}
	return out
}
