package cwt

import (
	"context"
	"fmt"
	"math"
)

// Params describes one transform invocation.
type Params struct {
	StartOctave      int     `json:"start_octave"`
	EndOctave        int     `json:"end_octave"`
	VoicesPerOctave  int     `json:"voices_per_octave"`
	CentralFrequency float64 `json:"central_frequency"`
	Threads          int     `json:"threads"`  // <= 0 lets the transformer decide
	Optimize         bool    `json:"optimize"` // enables the transformer's optimization scheme
	SamplingRate     *int    `json:"sampling_rate,omitempty"`
}

// Octaves returns the number of octaves covered by the transform.
func (p Params) Octaves() int {
	return p.EndOctave - p.StartOctave + 1
}

// Rows returns the number of scales (matrix rows) the transform produces.
func (p Params) Rows() int {
	return p.Octaves() * p.VoicesPerOctave
}

// BufferLen returns the size of the interleaved buffer for a signal of n samples.
func (p Params) BufferLen(n int) int {
	return 2 * p.Rows() * n
}

// Validate checks the octave range, voice count and central frequency.
func (p Params) Validate() error {
	if p.VoicesPerOctave <= 0 {
		return fmt.Errorf("%w: voices per octave %d must be positive", ErrInvalidParameters, p.VoicesPerOctave)
	}
	if p.EndOctave < p.StartOctave {
		return fmt.Errorf("%w: end octave %d is below start octave %d", ErrInvalidParameters, p.EndOctave, p.StartOctave)
	}
	if !(p.CentralFrequency > 0) || math.IsInf(p.CentralFrequency, 0) {
		return fmt.Errorf("%w: central frequency %v must be positive and finite", ErrInvalidParameters, p.CentralFrequency)
	}
	return nil
}

// Rate returns a pointer to n, for filling Params.SamplingRate.
func Rate(n int) *int {
	return &n
}

// Transformer computes a continuous wavelet transform.
//
// Transform returns a flat buffer of p.BufferLen(len(signal)) values holding
// real/imaginary pairs row by row, with row i matching position i of the
// frequency axis built from the same Params.
type Transformer interface {
	Transform(ctx context.Context, signal []float64, p Params) ([]float64, error)
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(ctx context.Context, signal []float64, p Params) ([]float64, error)

// Transform calls f.
func (f TransformerFunc) Transform(ctx context.Context, signal []float64, p Params) ([]float64, error) {
	return f(ctx, signal, p)
}
