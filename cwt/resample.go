package cwt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-cwt/algorithms/common"
)

// blockBounds partitions n columns into width contiguous blocks and returns
// the width+1 boundaries. Leading blocks hold ceil(n/width) columns, shrinking
// only when fewer columns remain than blocks; the last block takes what is left.
// For n=10, width=3 the blocks are [0,4) [4,8) [8,10).
func blockBounds(n, width int) []int {
	size := (n + width - 1) / width
	bounds := make([]int, width+1)
	start := 0
	for k := range width - 1 {
		remaining := width - k - 1
		sz := min(size, n-start-remaining)
		start += sz
		bounds[k+1] = start
	}
	bounds[width] = n
	return bounds
}

func checkWidth(n, width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidWidth, width)
	}
	if width > n {
		return fmt.Errorf("%w: width %d exceeds column count %d", ErrInvalidWidth, width, n)
	}
	return nil
}

// CompressMatrix reduces the column count of m to width by replacing each
// block of columns with its mean, row by row.
func CompressMatrix(m mat.Matrix, width int) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if err := checkWidth(cols, width); err != nil {
		return nil, err
	}
	src := asDense(m)
	bounds := blockBounds(cols, width)
	out := mat.NewDense(rows, width, nil)
	for i := range rows {
		row := src.RawRowView(i)
		for k := range width {
			out.Set(i, k, common.Mean(row[bounds[k]:bounds[k+1]]))
		}
	}
	return out, nil
}

// CompressAxis reduces axis to width entries, each the mean of one block.
// Blocks match those used by CompressMatrix for the same length and width.
func CompressAxis(axis []float64, width int) ([]float64, error) {
	if err := checkWidth(len(axis), width); err != nil {
		return nil, err
	}
	bounds := blockBounds(len(axis), width)
	out := make([]float64, width)
	for k := range width {
		out[k] = common.Mean(axis[bounds[k]:bounds[k+1]])
	}
	return out, nil
}

// WindowTime cuts the columns of m covering [start, end] on the time axis.
//
// The window is widened outward to whole samples: the first column is the last
// timestamp <= start and the last column is the first timestamp >= end.
func WindowTime(start, end float64, axis []float64, m mat.Matrix) ([]float64, *mat.Dense, error) {
	if math.IsNaN(start) || math.IsNaN(end) {
		return nil, nil, fmt.Errorf("%w: NaN in window [%v, %v]", ErrInvalidParameters, start, end)
	}
	if start >= end {
		return nil, nil, fmt.Errorf("%w: start %v >= end %v", ErrInvertedWindow, start, end)
	}
	rows, cols := m.Dims()
	if len(axis) != cols {
		return nil, nil, fmt.Errorf("%w: time axis has %d entries, matrix has %d columns",
			ErrAxisLengthMismatch, len(axis), cols)
	}
	if !common.IsStrictlyIncreasing(axis) {
		return nil, nil, fmt.Errorf("%w: time axis is not strictly increasing", ErrInvalidParameters)
	}
	if start < axis[0] {
		return nil, nil, fmt.Errorf("%w: start %v < axis minimum %v", ErrOutOfRange, start, axis[0])
	}
	if end > axis[len(axis)-1] {
		return nil, nil, fmt.Errorf("%w: end %v > axis maximum %v", ErrOutOfRange, end, axis[len(axis)-1])
	}

	first := FloorIndex(axis, start)
	last := CeilIndex(axis, end)

	times := make([]float64, last-first+1)
	copy(times, axis[first:last+1])
	view := asDense(m).Slice(0, rows, first, last+1)
	return times, mat.DenseCopyOf(view), nil
}
