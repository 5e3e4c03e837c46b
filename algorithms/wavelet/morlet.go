package wavelet

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/RyanBlaney/sonido-cwt/algorithms/spectral"
	"github.com/RyanBlaney/sonido-cwt/algorithms/windowing"
	"github.com/RyanBlaney/sonido-cwt/cwt"
	"github.com/RyanBlaney/sonido-cwt/logging"
)

// DefaultOmega0 is the Morlet centre angular frequency in radians per unit scale
const DefaultOmega0 = 6.0

// Morlet computes an analytic Morlet continuous wavelet transform in the
// frequency domain: the signal spectrum is computed once and each row is the
// inverse FFT of that spectrum times a Gaussian band centred on the row's
// frequency-axis value (in cycles per sample).
type Morlet struct {
	omega0 float64
	taper  float64
	logger logging.Logger
}

// MorletOption configures a Morlet transformer
type MorletOption func(*Morlet)

// WithOmega0 sets the wavelet centre angular frequency. Larger values narrow the
// frequency band of each row and widen it in time.
func WithOmega0(omega0 float64) MorletOption {
	return func(m *Morlet) {
		m.omega0 = omega0
	}
}

// WithEdgeTaper applies a Tukey window with the given alpha to the signal
// before transforming, which damps edge artifacts. Zero disables it.
func WithEdgeTaper(alpha float64) MorletOption {
	return func(m *Morlet) {
		m.taper = alpha
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) MorletOption {
	return func(m *Morlet) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMorlet creates a new Morlet transformer
func NewMorlet(opts ...MorletOption) *Morlet {
	m := &Morlet{
		omega0: DefaultOmega0,
		logger: logging.WithFields(logging.Fields{
			"component": "morlet_transform",
		}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ cwt.Transformer = (*Morlet)(nil)

// Transform implements cwt.Transformer. Rows are computed by a pool of
// p.Threads workers (runtime.NumCPU() when p.Threads <= 0). When p.Optimize is
// set the spectrum is computed at the next power-of-two length.
func (m *Morlet) Transform(ctx context.Context, signal []float64, p cwt.Params) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: empty signal", cwt.ErrInvalidParameters)
	}
	if !(m.omega0 > 0) {
		return nil, fmt.Errorf("%w: omega0 %v must be positive", cwt.ErrInvalidParameters, m.omega0)
	}
	axis, err := cwt.NewFrequencyAxis(p)
	if err != nil {
		return nil, err
	}
	if axis.Max() > 0.5 {
		m.logger.Warn("Frequency axis extends above Nyquist, upper rows will be near zero", logging.Fields{
			"max_frequency": axis.Max(),
		})
	}

	input := signal
	if m.taper > 0 {
		tukey, err := windowing.NewTukey(len(signal), m.taper)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cwt.ErrInvalidParameters, err)
		}
		if input, err = tukey.Apply(signal); err != nil {
			return nil, err
		}
	}

	fftCalc := spectral.NewFFT()
	if p.Optimize {
		fftCalc = spectral.NewPaddedFFT()
	}
	spectrum := fftCalc.Compute(input)

	n := len(signal)
	rows := axis.Len()
	out := make([]float64, p.BufferLen(n))
	numWorkers := workerCount(p.Threads, rows)

	m.logger.Debug("Morlet transform configuration", logging.Fields{
		"samples":  n,
		"fft_size": len(spectrum),
		"rows":     rows,
		"workers":  numWorkers,
	})

	jobs := make(chan int, rows)
	var wg sync.WaitGroup

	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Reuse the filtered spectrum buffer for this worker
			filtered := make([]complex128, len(spectrum))

			for row := range jobs {
				if ctx.Err() != nil {
					continue
				}
				m.filter(filtered, spectrum, axis.At(row))
				coeffs := fftCalc.ComputeInverse(filtered)

				offset := 2 * row * n
				for k := range n {
					out[offset+2*k] = real(coeffs[k])
					out[offset+2*k+1] = imag(coeffs[k])
				}
			}
		}()
	}

	for row := range rows {
		jobs <- row
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// filter writes spectrum times the analytic Morlet band for centre frequency f
// (cycles per sample) into dst. Negative frequencies and DC are zeroed and the
// positive side is doubled, so a unit tone at f has unit modulus.
func (m *Morlet) filter(dst, spectrum []complex128, f float64) {
	size := len(spectrum)
	scale := m.omega0 / (2 * math.Pi * f)
	for k := range dst {
		dst[k] = 0
	}
	for k := 1; k <= size/2; k++ {
		w := 2 * math.Pi * float64(k) / float64(size)
		d := scale*w - m.omega0
		gain := 2 * math.Exp(-0.5*d*d)
		dst[k] = spectrum[k] * complex(gain, 0)
	}
}

// workerCount picks the number of row workers
func workerCount(threads, rows int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return max(1, min(threads, rows))
}
