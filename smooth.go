package chartpath

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// DefaultPeriod is the averaging period used by [MovingAverageLine].
const DefaultPeriod = 7

// Real is the set of numeric types a series may hold.
type Real interface {
	constraints.Integer | constraints.Float
}

// Floats converts a series to float64.
func Floats[T Real](series []T) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = float64(v)
	}
	return out
}

// MovingAverages smooths series with a trailing mean of width period. The
// result always has the same length as series.
//
// Element i is the mean of series[max(0, i+1-period):i+1]. The first period-1
// outputs therefore average over a window that grows from one element up to
// period elements. A period of 1 or less returns series unchanged, converted
// to float64.
//
// Non-finite inputs propagate through the affected windows.
func MovingAverages[T Real](series []T, period int) []float64 {
	values := Floats(series)
	if len(values) == 0 || period <= 1 {
		return values
	}
	out := make([]float64, len(values))
	for i := range values {
		window := values[max(0, i+1-period) : i+1]
		out[i] = floats.Sum(window) / float64(len(window))
	}
	return out
}
