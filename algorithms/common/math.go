package common

import (
	"math/bits"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1)
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// IsStrictlyIncreasing reports whether every element is greater than the one before it
func IsStrictlyIncreasing(data []float64) bool {
	for i := 1; i < len(data); i++ {
		if !(data[i] > data[i-1]) {
			return false
		}
	}
	return true
}

// Span returns max-min of data, or 0 for an empty slice
func Span(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data) - floats.Min(data)
}
