package cwt

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Result holds the deinterleaved transform output.
// Row i of both matrices belongs to the same analyzing-wavelet scale and
// column j to the same time sample.
type Result struct {
	real *mat.Dense
	imag *mat.Dense
}

// NewResult builds a Result from same-shaped real and imaginary matrices.
// The matrices are copied so the Result owns its data.
func NewResult(real, imag mat.Matrix) (*Result, error) {
	if err := sameDims(real, imag); err != nil {
		return nil, err
	}
	return &Result{
		real: mat.DenseCopyOf(real),
		imag: mat.DenseCopyOf(imag),
	}, nil
}

// Real returns the real component. The returned matrix must not be modified.
func (r *Result) Real() mat.Matrix { return r.real }

// Imag returns the imaginary component. The returned matrix must not be modified.
func (r *Result) Imag() mat.Matrix { return r.imag }

// Dims returns the number of rows (scales) and columns (samples).
func (r *Result) Dims() (rows, cols int) { return r.real.Dims() }

// FromRows converts row slices into a rectangular matrix.
// Every row must have the same non-zero length.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: matrix must have at least one row and one column", ErrInvalidParameters)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrDimensionMismatch, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// ToRows copies a matrix into row slices.
func ToRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range r {
		rows[i] = make([]float64, c)
		for j := range c {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

func sameDims(a, b mat.Matrix) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil matrix", ErrNotComputed)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, ar, ac, br, bc)
	}
	return nil
}

// asDense returns m as a *mat.Dense, copying only when m is some other implementation.
func asDense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}
