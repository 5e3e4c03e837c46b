package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-cwt/cwt"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := DefaultTransformConfig()
	if cfg.StartOctave != want.StartOctave || cfg.EndOctave != want.EndOctave ||
		cfg.VoicesPerOctave != want.VoicesPerOctave || cfg.Omega0 != want.Omega0 {
		t.Fatalf("got %+v, want defaults %+v", cfg, want)
	}
	if cfg.SamplingRate != nil {
		t.Fatalf("sampling rate = %v, want nil", *cfg.SamplingRate)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`{"voices_per_octave": 8, "end_octave": 3, "sampling_rate": 1000, "optimize": false}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.VoicesPerOctave != 8 || cfg.EndOctave != 3 || cfg.Optimize {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.StartOctave != 1 || cfg.CentralFrequency != 1.0 {
		t.Fatalf("defaults lost: %+v", cfg)
	}

	p := cfg.Params()
	if p.Rows() != 24 {
		t.Fatalf("Rows() = %d, want 24", p.Rows())
	}
	if p.SamplingRate == nil || *p.SamplingRate != 1000 {
		t.Fatalf("SamplingRate = %v, want 1000", p.SamplingRate)
	}
	// Params must not alias the config's pointer
	*p.SamplingRate = 5
	if *cfg.SamplingRate != 1000 {
		t.Fatal("Params() aliases the config sampling rate")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		json string
		kind error
	}{
		{"unknown field", `{"voices": 8}`, nil},
		{"malformed", `{"end_octave": }`, nil},
		{"zero voices", `{"voices_per_octave": 0}`, cwt.ErrInvalidParameters},
		{"inverted octaves", `{"start_octave": 4, "end_octave": 2}`, cwt.ErrInvalidParameters},
		{"negative c0", `{"central_frequency": -1}`, cwt.ErrInvalidParameters},
		{"zero rate", `{"sampling_rate": 0}`, cwt.ErrInvalidSamplingRate},
		{"zero omega0", `{"omega0": 0}`, cwt.ErrInvalidParameters},
		{"taper above one", `{"edge_taper": 1.5}`, cwt.ErrInvalidParameters},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.kind != nil && !errors.Is(err, tt.kind) {
				t.Fatalf("error = %v, want %v", err, tt.kind)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cwt.json")
	if err := os.WriteFile(path, []byte(`{"voices_per_octave": 4, "log_level": "debug"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VoicesPerOctave != 4 || cfg.LogLevel != "debug" {
		t.Fatalf("got %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
