package common

import (
	"math"
	"math/rand"
)

// Tone generates amplitude*cos(2*pi*f*n) with f in cycles per sample
func Tone(f, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * f
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i))
	}
	return out
}

// Chirp generates a linear sweep from f0 to f1 (cycles per sample) over length samples
func Chirp(f0, f1, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	if length == 0 {
		return out
	}
	rate := (f1 - f0) / float64(length)
	for i := range out {
		n := float64(i)
		out[i] = amplitude * math.Cos(2*math.Pi*(f0*n+0.5*rate*n*n))
	}
	return out
}

// Noise generates white noise in [-amplitude, amplitude) with a fixed seed
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
