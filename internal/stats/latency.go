// Package stats summarizes request latencies for the verbose log.
package stats

import (
	"math"
	"slices"
	"time"
)

// Latency is a nearest-rank summary of a set of request latencies.
type Latency struct {
	Count         int
	Min, P50, P95 time.Duration
	Max           time.Duration
}

// Summarize computes the summary of samples. Zero samples give a zero Latency;
// with few samples P95 equals Max.
func Summarize(samples []time.Duration) Latency {
	if len(samples) == 0 {
		return Latency{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	return Latency{
		Count: len(sorted),
		Min:   sorted[0],
		P50:   Percentile(sorted, 0.50),
		P95:   Percentile(sorted, 0.95),
		Max:   sorted[len(sorted)-1],
	}
}

// Percentile returns the value at the given percentile using the nearest-rank
// method, so with few samples high percentiles equal the maximum.
//
// Parameters:
//   - sorted: latencies in ascending order (Summarize sorts a copy first)
//   - p: percentile as a fraction, e.g. 0.95 for p95
//
// Returns:
//   - time.Duration: the sample at the requested rank, or 0 for no samples
//
// Formula: index = ceil(n * p) - 1, clamped to [0, n-1].
func Percentile(sorted []time.Duration, p float64) time.Duration {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	index := int(math.Ceil(float64(n)*p)) - 1
	index = max(0, min(index, n-1))
	return sorted[index]
}
