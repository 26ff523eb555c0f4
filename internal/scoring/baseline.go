// Package scoring converts finished routes into 0-10 safety, reliability
// and efficiency scores, normalized against population statistics so a
// score means "better than X% of the network" rather than an absolute
// threshold.
package scoring

import (
	"math"
	"sort"
)

// Baseline holds the population statistics derived from a reference
// dataset. Computed once per engine construction or data refresh; used only
// as normalization context, never mutated.
type Baseline struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	P25    float64
	P50    float64
	P75    float64
}

// neutralCrimeBaseline applies when no crime data is available.
var neutralCrimeBaseline = Baseline{
	Mean:   5,
	Median: 5,
	StdDev: 2,
	Min:    0,
	Max:    20,
	P25:    3,
	P50:    5,
	P75:    8,
}

// neutralReliabilityBaseline applies when no line performance data is
// available. The spread mirrors observed MTA on-time percentages.
var neutralReliabilityBaseline = Baseline{
	Mean:   85,
	Median: 85,
	StdDev: 3,
	Min:    77,
	Max:    92,
	P25:    82,
	P50:    85,
	P75:    88,
}

// computeBaseline derives population statistics from a dataset. Percentiles
// use the nearest-rank index floor(n*fraction) on the sorted values, which
// is biased for small n but kept as the scoring contract.
func computeBaseline(values []float64, fallback Baseline) Baseline {
	n := len(values)
	if n == 0 {
		return fallback
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	return Baseline{
		Mean:   mean(values),
		Median: median(sorted),
		StdDev: populationStdDev(values),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P25:    sorted[int(float64(n)*0.25)],
		P50:    sorted[int(float64(n)*0.50)],
		P75:    sorted[int(float64(n)*0.75)],
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func populationStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
