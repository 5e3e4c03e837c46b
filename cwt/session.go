package cwt

import (
	"context"
	"fmt"
	"slices"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-cwt/logging"
)

// Session owns one transform result and every artifact derived from it.
// A Session is meant for a single owner; artifacts it hands out are never
// mutated afterwards and may be read concurrently.
type Session struct {
	signal      []float64
	params      Params
	transformer Transformer
	logger      logging.Logger

	result   optional[*Result]
	freqAxis optional[*FrequencyAxis]
	timeAxis optional[[]float64]
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used by the session.
func WithLogger(logger logging.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession prepares a session for signal. Nothing is computed until Run.
func NewSession(signal []float64, params Params, transformer Transformer, opts ...Option) (*Session, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: empty signal", ErrInvalidParameters)
	}
	if transformer == nil {
		return nil, fmt.Errorf("%w: nil transformer", ErrInvalidParameters)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		signal:      slices.Clone(signal),
		params:      params,
		transformer: transformer,
		logger: logging.WithFields(logging.Fields{
			"component": "cwt_session",
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Params returns the transform parameters of the session.
func (s *Session) Params() Params {
	return s.params
}

// Run performs the transform and stores the deinterleaved result.
func (s *Session) Run(ctx context.Context) error {
	started := time.Now()
	s.logger.Info("Starting wavelet transform", logging.Fields{
		"samples":           len(s.signal),
		"start_octave":      s.params.StartOctave,
		"end_octave":        s.params.EndOctave,
		"voices_per_octave": s.params.VoicesPerOctave,
		"threads":           s.params.Threads,
	})

	buf, err := s.transformer.Transform(ctx, s.signal, s.params)
	if err != nil {
		s.logger.Error(err, "Wavelet transform failed")
		return fmt.Errorf("transform: %w", err)
	}
	if want := s.params.BufferLen(len(s.signal)); len(buf) != want {
		err := fmt.Errorf("%w: transform returned %d values, want %d", ErrInvalidLayout, len(buf), want)
		s.logger.Error(err, "Transform buffer has the wrong size")
		return err
	}

	result, err := Deinterleave(buf, len(s.signal))
	if err != nil {
		return err
	}
	s.result = some(result)

	rows, cols := result.Dims()
	s.logger.Info("Wavelet transform completed", logging.Fields{
		"rows":     rows,
		"cols":     cols,
		"duration": time.Since(started).String(),
	})
	return nil
}

// Result returns the transform result.
func (s *Session) Result() (*Result, error) {
	result, ok := s.result.get()
	if !ok {
		return nil, ErrNotComputed
	}
	return result, nil
}

// Modulus computes the modulus of the transform result.
func (s *Session) Modulus() (*mat.Dense, error) {
	result, err := s.Result()
	if err != nil {
		return nil, err
	}
	return ComputeModulus(result.real, result.imag)
}

// Phase computes the phase of the transform result using the real/imaginary ratio.
func (s *Session) Phase() (*mat.Dense, error) {
	result, err := s.Result()
	if err != nil {
		return nil, err
	}
	return ComputePhase(result.real, result.imag)
}

// Feature returns a fresh copy of the selected matrix.
func (s *Session) Feature(f Feature) (*mat.Dense, error) {
	result, err := s.Result()
	if err != nil {
		return nil, err
	}
	switch f {
	case Real:
		return mat.DenseCopyOf(result.real), nil
	case Imaginary:
		return mat.DenseCopyOf(result.imag), nil
	case Modulus:
		return s.Modulus()
	case Phase:
		return s.Phase()
	default:
		return nil, fmt.Errorf("%w: unknown feature %d", ErrInvalidParameters, int(f))
	}
}

// CalculateFrequencyAxis builds the frequency axis from the session parameters.
// It does not depend on the transform result.
func (s *Session) CalculateFrequencyAxis() error {
	axis, err := NewFrequencyAxis(s.params)
	if err != nil {
		return err
	}
	s.freqAxis = some(axis)
	s.logger.Debug("Frequency axis calculated", logging.Fields{
		"positions": axis.Len(),
		"min":       axis.Min(),
		"max":       axis.Max(),
	})
	return nil
}

// FrequencyAxis returns the frequency axis.
func (s *Session) FrequencyAxis() (*FrequencyAxis, error) {
	axis, ok := s.freqAxis.get()
	if !ok {
		return nil, ErrAxisNotReady
	}
	return axis, nil
}

// CalculateTimeAxis builds the time axis from the sampling rate and the
// column count of the transform result.
func (s *Session) CalculateTimeAxis() error {
	if s.params.SamplingRate == nil {
		return ErrMissingSamplingRate
	}
	rate := *s.params.SamplingRate
	if rate <= 0 {
		return fmt.Errorf("%w: sampling rate %d must be positive", ErrInvalidSamplingRate, rate)
	}
	result, ok := s.result.get()
	if !ok {
		return ErrResultNotReady
	}
	_, cols := result.Dims()
	times, err := NewTimeAxis(rate, cols)
	if err != nil {
		return err
	}
	s.timeAxis = some(times)
	s.logger.Debug("Time axis calculated", logging.Fields{
		"samples":       cols,
		"sampling_rate": rate,
	})
	return nil
}

// TimeAxis returns a copy of the time axis.
func (s *Session) TimeAxis() ([]float64, error) {
	times, ok := s.timeAxis.get()
	if !ok {
		return nil, ErrTimeAxisNotReady
	}
	return slices.Clone(times), nil
}

// IndicesForFrequencyRange resolves [start, end) to an inclusive row range.
func (s *Session) IndicesForFrequencyRange(start, end float64) (IndexRange, error) {
	axis, err := s.FrequencyAxis()
	if err != nil {
		return IndexRange{}, err
	}
	return axis.IndicesForRange(start, end)
}

// RowForFrequency returns the row whose frequency is the largest one <= f.
func (s *Session) RowForFrequency(f float64) (int, error) {
	axis, err := s.FrequencyAxis()
	if err != nil {
		return 0, err
	}
	return axis.IndexForFrequency(f)
}

// View bundles a feature matrix with both axes for presentation.
// The frequency and time axes must have been calculated.
func (s *Session) View(f Feature) (*View, error) {
	data, err := s.Feature(f)
	if err != nil {
		return nil, err
	}
	axis, err := s.FrequencyAxis()
	if err != nil {
		return nil, err
	}
	times, ok := s.timeAxis.get()
	if !ok {
		return nil, ErrTimeAxisNotReady
	}
	return NewView(f, data, axis.Values(), times)
}
