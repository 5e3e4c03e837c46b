package spectral

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/sonido-cwt/algorithms/common"
)

// FFT provides Fast Fourier Transform functionality
type FFT struct {
	// padPow2 zero-pads inputs to the next power of two before transforming
	padPow2 bool
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// NewPaddedFFT creates an FFT calculator that zero-pads to a power-of-two length,
// which keeps go-dsp on its radix-2 path
func NewPaddedFFT() *FFT {
	return &FFT{padPow2: true}
}

// Size returns the transform length used for an input of n samples
func (f *FFT) Size(n int) int {
	if f.padPow2 {
		return common.NextPowerOfTwo(n)
	}
	return n
}

// Compute computes the forward FFT of a real signal using mjibson/go-dsp.
// The output has Size(len(x)) bins.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	size := f.Size(len(x))
	if size == len(x) {
		return fft.FFTReal(x)
	}

	padded := make([]float64, size)
	copy(padded, x)
	return fft.FFTReal(padded)
}

// ComputeInverse computes inverse FFT
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.IFFT(x)
}
