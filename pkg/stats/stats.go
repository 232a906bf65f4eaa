// Package stats provides statistical utility functions for analyzers.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentile calculates the p-th percentile of a sorted slice.
// The slice must already be sorted in ascending order.
// Returns 0 if the slice is empty.
func Percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (p * len(sorted)) / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// StdDev returns the population standard deviation, 0 for fewer than
// two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := stat.Mean(xs, nil)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// Quantile returns the q-th quantile (0-1) using linear interpolation.
// The input does not need to be sorted. Returns 0 for an empty slice.
func Quantile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return stat.Quantile(q, stat.LinInterp, sorted, nil)
}

// Median returns the 50th quantile, 0 for an empty slice.
func Median(xs []float64) float64 {
	return Quantile(xs, 0.5)
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Round3 rounds to three decimal places.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// FiveNumber is a descriptive summary of a numeric sample.
type FiveNumber struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	P25   float64 `json:"p25"`
	P50   float64 `json:"p50"`
	P75   float64 `json:"p75"`
	Max   float64 `json:"max"`
}

// Summarize computes the five-number summary of xs. The zero value is
// returned for an empty slice.
func Summarize(xs []float64) FiveNumber {
	if len(xs) == 0 {
		return FiveNumber{}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return FiveNumber{
		Count: len(sorted),
		Mean:  stat.Mean(sorted, nil),
		Min:   sorted[0],
		P25:   stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		P50:   stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		P75:   stat.Quantile(0.75, stat.LinInterp, sorted, nil),
		Max:   sorted[len(sorted)-1],
	}
}

// LinearSlope fits a least-squares line to ys indexed by position and
// returns its slope. Returns 0 for fewer than two points.
func LinearSlope(ys []float64) float64 {
	if len(ys) < 2 {
		return 0
	}
	xs := make([]float64, len(ys))
	for i := range ys {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}
