package cwt

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// View is what gets handed to plotting and export: a feature matrix with rows
// along Frequencies and columns along Times. Dimensions always agree.
type View struct {
	Feature     Feature
	Data        *mat.Dense
	Frequencies []float64
	Times       []float64
}

// NewView checks that both axes match data and copies everything it keeps.
func NewView(f Feature, data mat.Matrix, frequencies, times []float64) (*View, error) {
	rows, cols := data.Dims()
	if len(frequencies) != rows {
		return nil, fmt.Errorf("%w: frequency axis has %d entries, matrix has %d rows",
			ErrAxisLengthMismatch, len(frequencies), rows)
	}
	if len(times) != cols {
		return nil, fmt.Errorf("%w: time axis has %d entries, matrix has %d columns",
			ErrAxisLengthMismatch, len(times), cols)
	}
	return &View{
		Feature:     f,
		Data:        mat.DenseCopyOf(data),
		Frequencies: slices.Clone(frequencies),
		Times:       slices.Clone(times),
	}, nil
}

// Compress averages the time dimension down to width columns.
func (v *View) Compress(width int) (*View, error) {
	data, err := CompressMatrix(v.Data, width)
	if err != nil {
		return nil, err
	}
	times, err := CompressAxis(v.Times, width)
	if err != nil {
		return nil, err
	}
	return &View{
		Feature:     v.Feature,
		Data:        data,
		Frequencies: slices.Clone(v.Frequencies),
		Times:       times,
	}, nil
}

// Window keeps the columns covering [start, end].
func (v *View) Window(start, end float64) (*View, error) {
	times, data, err := WindowTime(start, end, v.Times, v.Data)
	if err != nil {
		return nil, err
	}
	return &View{
		Feature:     v.Feature,
		Data:        data,
		Frequencies: slices.Clone(v.Frequencies),
		Times:       times,
	}, nil
}

// Rows returns the matrix rows at the given frequency indices, e.g. from SpreadIndices.
func (v *View) Rows(indices []int) ([][]float64, error) {
	rows, _ := v.Data.Dims()
	out := make([][]float64, len(indices))
	for k, i := range indices {
		if i < 0 || i >= rows {
			return nil, fmt.Errorf("%w: row index %d outside [0, %d)", ErrInvalidParameters, i, rows)
		}
		out[k] = slices.Clone(v.Data.RawRowView(i))
	}
	return out, nil
}

// Transpose returns the data with time along rows and frequency along columns,
// the orientation heat-map renderers expect.
func (v *View) Transpose() *mat.Dense {
	return mat.DenseCopyOf(v.Data.T())
}
