package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/RyanBlaney/sonido-cwt/cwt"
)

// TransformConfig configures one wavelet analysis run
type TransformConfig struct {
	// Transform parameters
	StartOctave      int     `json:"start_octave"`
	EndOctave        int     `json:"end_octave"`
	VoicesPerOctave  int     `json:"voices_per_octave"`
	CentralFrequency float64 `json:"central_frequency"`
	Threads          int     `json:"threads"`  // 0 = one worker per CPU
	Optimize         bool    `json:"optimize"` // pad the FFT to a power of two
	SamplingRate     *int    `json:"sampling_rate,omitempty"`

	// Morlet wavelet shape
	Omega0    float64 `json:"omega0"`
	EdgeTaper float64 `json:"edge_taper"` // Tukey alpha, 0 disables

	LogLevel string `json:"log_level"` // "debug", "info", "warn", "error"
}

// DefaultTransformConfig returns a config covering six octaves at 16 voices
func DefaultTransformConfig() *TransformConfig {
	return &TransformConfig{
		StartOctave:      1,
		EndOctave:        6,
		VoicesPerOctave:  16,
		CentralFrequency: 1.0,
		Threads:          0,
		Optimize:         true,
		Omega0:           6.0,
		EdgeTaper:        0.1,
		LogLevel:         "info",
	}
}

// Load reads a JSON config file on top of the defaults
func Load(path string) (*TransformConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes JSON from r on top of the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (*TransformConfig, error) {
	cfg := DefaultTransformConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the transform parameters and the wavelet shape
func (c *TransformConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.SamplingRate != nil && *c.SamplingRate <= 0 {
		return fmt.Errorf("%w: sampling rate %d must be positive", cwt.ErrInvalidSamplingRate, *c.SamplingRate)
	}
	if !(c.Omega0 > 0) {
		return fmt.Errorf("%w: omega0 %v must be positive", cwt.ErrInvalidParameters, c.Omega0)
	}
	if c.EdgeTaper < 0 || c.EdgeTaper > 1 {
		return fmt.Errorf("%w: edge taper %v must be within [0, 1]", cwt.ErrInvalidParameters, c.EdgeTaper)
	}
	return nil
}

// Params converts the config into transform parameters
func (c *TransformConfig) Params() cwt.Params {
	p := cwt.Params{
		StartOctave:      c.StartOctave,
		EndOctave:        c.EndOctave,
		VoicesPerOctave:  c.VoicesPerOctave,
		CentralFrequency: c.CentralFrequency,
		Threads:          c.Threads,
		Optimize:         c.Optimize,
	}
	if c.SamplingRate != nil {
		p.SamplingRate = cwt.Rate(*c.SamplingRate)
	}
	return p
}
