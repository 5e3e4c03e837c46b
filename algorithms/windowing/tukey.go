package windowing

import (
	"fmt"
	"math"
)

// Tukey is a tapered-cosine window. It is flat in the middle and ramps to zero
// with a half cosine over alpha/2 of the length at each end, so alpha=0 is
// rectangular and alpha=1 is a Hann window.
type Tukey struct {
	alpha        float64
	coefficients []float64
}

// NewTukey creates a Tukey window of the given size
func NewTukey(size int, alpha float64) (*Tukey, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return nil, fmt.Errorf("tukey alpha must be within [0, 1], got %v", alpha)
	}

	coeffs := make([]float64, size)
	ramp := int(alpha * float64(size) / 2.0)
	for i := range coeffs {
		switch {
		case i < ramp:
			coeffs[i] = 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(ramp)))
		case i >= size-ramp:
			coeffs[i] = 0.5 * (1 + math.Cos(math.Pi*float64(i-(size-ramp))/float64(ramp)))
		default:
			coeffs[i] = 1.0
		}
	}

	return &Tukey{alpha: alpha, coefficients: coeffs}, nil
}

// Size returns the window length
func (t *Tukey) Size() int {
	return len(t.coefficients)
}

// Alpha returns the tapered fraction of the window
func (t *Tukey) Alpha() float64 {
	return t.alpha
}

// Apply returns a windowed copy of signal
func (t *Tukey) Apply(signal []float64) ([]float64, error) {
	if len(signal) != len(t.coefficients) {
		return nil, fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(t.coefficients))
	}

	windowed := make([]float64, len(signal))
	for i, c := range t.coefficients {
		windowed[i] = signal[i] * c
	}
	return windowed, nil
}

// Coefficients returns a copy of the window coefficients
func (t *Tukey) Coefficients() []float64 {
	out := make([]float64, len(t.coefficients))
	copy(out, t.coefficients)
	return out
}
