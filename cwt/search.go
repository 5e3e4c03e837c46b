package cwt

import "sort"

// FloorIndex returns the index of the largest value in the increasing slice
// values that is <= x. An exact match returns its own index. It returns -1
// when x is below values[0] and len(values)-1 when x is above the last value.
func FloorIndex(values []float64, x float64) int {
	i := sort.SearchFloat64s(values, x)
	if i < len(values) && values[i] == x {
		return i
	}
	// values[i] is the first element greater than x (or i == len), so step back.
	return i - 1
}

// CeilIndex returns the index of the smallest value in the increasing slice
// values that is >= x, or len(values) when every value is below x.
func CeilIndex(values []float64, x float64) int {
	return sort.SearchFloat64s(values, x)
}
