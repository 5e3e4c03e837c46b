package cwt

import "fmt"

// NewTimeAxis returns n timestamps k/samplingRate for k = 0..n-1, in seconds.
func NewTimeAxis(samplingRate, n int) ([]float64, error) {
	if samplingRate <= 0 {
		return nil, fmt.Errorf("%w: sampling rate %d must be positive", ErrInvalidSamplingRate, samplingRate)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample count %d must be positive", ErrInvalidParameters, n)
	}
	times := make([]float64, n)
	rate := float64(samplingRate)
	for k := range times {
		times[k] = float64(k) / rate
	}
	return times, nil
}
