package cwt

import (
	"fmt"
	"math"
	"slices"
)

// stepTolerance absorbs rounding in the log2 step count so that a frequency
// that lands exactly on an axis value does not round up to the next voice.
const stepTolerance = 1e-9

// FrequencyAxis holds the centre frequency of the analyzing wavelet for every
// transform row. Position i corresponds to row i. Values are strictly increasing.
type FrequencyAxis struct {
	frequencies      []float64
	voicesPerOctave  int
	centralFrequency float64
}

// IndexRange is an inclusive pair of row indices.
type IndexRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of rows spanned by the range.
func (r IndexRange) Len() int {
	return r.End - r.Start + 1
}

// NewFrequencyAxis builds the axis for the given transform parameters.
//
// For i = 1..rows the wavelet frequency is c0 / 2^(1 + (i+1)/voices). The
// values are stored in reverse order of i, so the axis rises from the lowest
// frequency at position 0 to the highest at the end, matching the row order
// of the transform output.
func NewFrequencyAxis(p Params) (*FrequencyAxis, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.Rows()
	deltaA := 1 / float64(p.VoicesPerOctave)
	freqs := make([]float64, n)
	for i := 1; i <= n; i++ {
		freqs[n-i] = p.CentralFrequency / math.Pow(2, 1+float64(i+1)*deltaA)
	}
	return &FrequencyAxis{
		frequencies:      freqs,
		voicesPerOctave:  p.VoicesPerOctave,
		centralFrequency: p.CentralFrequency,
	}, nil
}

// NewFrequencyAxisFromValues wraps an existing increasing frequency sequence.
func NewFrequencyAxisFromValues(frequencies []float64, voicesPerOctave int, centralFrequency float64) (*FrequencyAxis, error) {
	if voicesPerOctave <= 0 {
		return nil, fmt.Errorf("%w: voices per octave %d must be positive", ErrInvalidParameters, voicesPerOctave)
	}
	if len(frequencies) == 0 {
		return nil, fmt.Errorf("%w: empty frequency axis", ErrInvalidParameters)
	}
	for i := 1; i < len(frequencies); i++ {
		if !(frequencies[i] > frequencies[i-1]) {
			return nil, fmt.Errorf("%w: frequency axis not strictly increasing at position %d (%v after %v)",
				ErrInvalidParameters, i, frequencies[i], frequencies[i-1])
		}
	}
	return &FrequencyAxis{
		frequencies:      slices.Clone(frequencies),
		voicesPerOctave:  voicesPerOctave,
		centralFrequency: centralFrequency,
	}, nil
}

// Len returns the number of axis positions.
func (a *FrequencyAxis) Len() int { return len(a.frequencies) }

// At returns the frequency at position i.
func (a *FrequencyAxis) At(i int) float64 { return a.frequencies[i] }

// Values returns a copy of the frequencies.
func (a *FrequencyAxis) Values() []float64 { return slices.Clone(a.frequencies) }

// Min returns the lowest frequency.
func (a *FrequencyAxis) Min() float64 { return a.frequencies[0] }

// Max returns the highest frequency.
func (a *FrequencyAxis) Max() float64 { return a.frequencies[len(a.frequencies)-1] }

// VoicesPerOctave returns the voice count the axis was generated with.
func (a *FrequencyAxis) VoicesPerOctave() int { return a.voicesPerOctave }

// CentralFrequency returns the wavelet constant the axis was generated with.
func (a *FrequencyAxis) CentralFrequency() float64 { return a.centralFrequency }

// IndexForFrequency returns the row whose frequency is the largest one <= f.
func (a *FrequencyAxis) IndexForFrequency(f float64) (int, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: frequency is NaN", ErrInvalidParameters)
	}
	if f < a.Min() {
		return 0, fmt.Errorf("%w: frequency %v < axis minimum %v", ErrBelowRange, f, a.Min())
	}
	if f > a.Max() {
		return 0, fmt.Errorf("%w: frequency %v > axis maximum %v", ErrAboveRange, f, a.Max())
	}
	return FloorIndex(a.frequencies, f), nil
}

// IndicesForRange resolves [start, end) to the inclusive row range bounding it.
//
// The start row is the floor match of start. The end row is reached from there
// analytically: on a log axis with 1/voices octaves per row, end lies
// ceil(log2(end/axisStart) * voices) rows above the start row.
func (a *FrequencyAxis) IndicesForRange(start, end float64) (IndexRange, error) {
	n := len(a.frequencies)
	if n < 2 {
		return IndexRange{}, fmt.Errorf("%w: frequency axis needs at least 2 positions, has %d", ErrInvalidParameters, n)
	}
	if math.IsNaN(start) || math.IsNaN(end) {
		return IndexRange{}, fmt.Errorf("%w: NaN frequency in range [%v, %v)", ErrInvalidParameters, start, end)
	}
	if start < a.Min() {
		return IndexRange{}, fmt.Errorf("%w: startFrequency %v < axis minimum %v", ErrBelowRange, start, a.Min())
	}
	if start >= end {
		return IndexRange{}, fmt.Errorf("%w: startFrequency %v >= endFrequency %v", ErrInvertedRange, start, end)
	}
	if end > a.Max() {
		return IndexRange{}, fmt.Errorf("%w: endFrequency %v > axis maximum %v", ErrAboveRange, end, a.Max())
	}

	if start >= a.frequencies[n-2] {
		return IndexRange{Start: n - 2, End: n - 1}, nil
	}

	startIdx := FloorIndex(a.frequencies, start)
	axisStart := a.frequencies[startIdx]
	deltaA := 1 / float64(a.voicesPerOctave)
	steps := int(math.Ceil(math.Log2(end/axisStart)/deltaA - stepTolerance))
	endIdx := startIdx + steps
	// end <= Max() was checked above, so overshoot here can only be rounding.
	if endIdx > n-1 {
		endIdx = n - 1
	}
	return IndexRange{Start: startIdx, End: endIdx}, nil
}

// SpreadIndices picks count row indices across r. The first is r.Start, the
// last is r.End and the interior ones advance by a floored fractional step.
// When count covers the whole range every index in r is returned.
func SpreadIndices(r IndexRange, count int) ([]int, error) {
	if r.Start < 0 || r.End < r.Start {
		return nil, fmt.Errorf("%w: index range (%d, %d)", ErrInvalidParameters, r.Start, r.End)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count %d must be positive", ErrInvalidParameters, count)
	}
	if count >= r.Len() {
		out := make([]int, r.Len())
		for i := range out {
			out[i] = r.Start + i
		}
		return out, nil
	}
	if count == 1 {
		return []int{r.Start}, nil
	}
	out := make([]int, count)
	step := float64(r.End-r.Start) / float64(count-1)
	for i := range count - 1 {
		out[i] = r.Start + int(math.Floor(float64(i)*step))
	}
	out[count-1] = r.End
	return out, nil
}
