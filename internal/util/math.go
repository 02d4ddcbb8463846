package util

import (
	"golang.org/x/exp/constraints"
)

// Coerce returns a value that is at least min and at most max, otherwise value
func Coerce[T constraints.Integer | constraints.Float](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// Ratio calculates the ration that target has in comparison to rangeMin and rangeMax
// Make sure that:
// rangeMin <= target <= rangeMax
// rangeMax - rangeMin != 0
func Ratio(target float64, rangeMin float64, rangeMax float64) float64 {
	return (target - rangeMin) / (rangeMax - rangeMin)
}

// ScaleToPercent maps a raw value within [rawMin..rawMax] linearly onto [0..100].
// Values outside of the raw range are extrapolated, not clamped.
func ScaleToPercent(raw float64, rawMin float64, rawMax float64) float64 {
	if rawMax == rawMin {
		return raw
	}
	return Ratio(raw, rawMin, rawMax) * 100
}
