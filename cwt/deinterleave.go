package cwt

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Deinterleave splits a flat transform buffer of alternating real and imaginary
// values into a Result with one row per scale and signalLength columns.
//
// Even buffer positions feed the real component and odd positions the imaginary
// one. Row i of each component is the segment [i*signalLength, (i+1)*signalLength)
// of the corresponding linear buffer.
func Deinterleave(buf []float64, signalLength int) (*Result, error) {
	if signalLength <= 0 {
		return nil, fmt.Errorf("%w: signal length %d must be positive", ErrInvalidLayout, signalLength)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidLayout)
	}
	if len(buf)%(2*signalLength) != 0 {
		return nil, fmt.Errorf("%w: buffer length %d is not a multiple of 2*%d",
			ErrInvalidLayout, len(buf), signalLength)
	}

	half := len(buf) / 2
	real1D := make([]float64, half)
	imag1D := make([]float64, half)
	for i := range half {
		real1D[i] = buf[2*i]
		imag1D[i] = buf[2*i+1]
	}

	rows := half / signalLength
	return &Result{
		real: mat.NewDense(rows, signalLength, real1D),
		imag: mat.NewDense(rows, signalLength, imag1D),
	}, nil
}

// Interleave is the inverse of Deinterleave. It writes the components row by row
// as real/imaginary pairs.
func Interleave(real, imag mat.Matrix) ([]float64, error) {
	if err := sameDims(real, imag); err != nil {
		return nil, err
	}
	rows, cols := real.Dims()
	buf := make([]float64, 2*rows*cols)
	k := 0
	for i := range rows {
		for j := range cols {
			buf[k] = real.At(i, j)
			buf[k+1] = imag.At(i, j)
			k += 2
		}
	}
	return buf, nil
}
