package cwt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Feature selects one of the matrices a session can produce.
type Feature int

const (
	Real Feature = iota
	Imaginary
	Modulus
	Phase
)

func (f Feature) String() string {
	switch f {
	case Real:
		return "real"
	case Imaginary:
		return "imaginary"
	case Modulus:
		return "modulus"
	case Phase:
		return "phase"
	default:
		return "unknown"
	}
}

// ParseFeature maps a feature name back to its Feature.
func ParseFeature(name string) (Feature, error) {
	for _, f := range []Feature{Real, Imaginary, Modulus, Phase} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown feature %q", ErrInvalidParameters, name)
}

// ComputeModulus returns sqrt(re^2 + im^2) elementwise.
func ComputeModulus(real, imag mat.Matrix) (*mat.Dense, error) {
	return elementwise(real, imag, func(re, im float64) float64 {
		return math.Sqrt(re*re + im*im)
	})
}

// ComputePhase returns atan(re/im) elementwise.
//
// The ratio is real over imaginary, not the usual imaginary over real. A zero
// imaginary part yields ±Pi/2 or NaN following IEEE arithmetic.
func ComputePhase(real, imag mat.Matrix) (*mat.Dense, error) {
	return elementwise(real, imag, func(re, im float64) float64 {
		return math.Atan(re / im)
	})
}

func elementwise(real, imag mat.Matrix, fn func(re, im float64) float64) (*mat.Dense, error) {
	if err := sameDims(real, imag); err != nil {
		return nil, err
	}
	rows, cols := real.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrNotComputed)
	}
	out := mat.NewDense(rows, cols, nil)
	out.Apply(func(i, j int, _ float64) float64 {
		return fn(real.At(i, j), imag.At(i, j))
	}, out)
	return out, nil
}
