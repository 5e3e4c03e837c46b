package cwt

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-cwt/algorithms/common"
)

func TestDeinterleaveSegmentsRows(t *testing.T) {
	buf := make([]float64, 12)
	for i := range buf {
		buf[i] = float64(i)
	}
	res, err := Deinterleave(buf, 3)
	if err != nil {
		t.Fatalf("Deinterleave() error = %v", err)
	}
	rows, cols := res.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", rows, cols)
	}
	wantReal := [][]float64{{0, 2, 4}, {6, 8, 10}}
	wantImag := [][]float64{{1, 3, 5}, {7, 9, 11}}
	gotReal := ToRows(res.Real())
	gotImag := ToRows(res.Imag())
	for i := range wantReal {
		if !floats.Equal(gotReal[i], wantReal[i]) {
			t.Fatalf("real row %d = %v, want %v", i, gotReal[i], wantReal[i])
		}
		if !floats.Equal(gotImag[i], wantImag[i]) {
			t.Fatalf("imag row %d = %v, want %v", i, gotImag[i], wantImag[i])
		}
	}
}

func TestDeinterleaveRoundTrip(t *testing.T) {
	tests := []struct {
		rows, length int
	}{
		{1, 1},
		{1, 7},
		{4, 5},
		{16, 33},
	}
	for _, tc := range tests {
		buf := common.Noise(int64(tc.rows*100+tc.length), 3, 2*tc.rows*tc.length)
		res, err := Deinterleave(buf, tc.length)
		if err != nil {
			t.Fatalf("Deinterleave(%dx%d) error = %v", tc.rows, tc.length, err)
		}
		if r, c := res.Dims(); r != tc.rows || c != tc.length {
			t.Fatalf("dims = %dx%d, want %dx%d", r, c, tc.rows, tc.length)
		}
		back, err := Interleave(res.Real(), res.Imag())
		if err != nil {
			t.Fatalf("Interleave() error = %v", err)
		}
		if !floats.Equal(back, buf) {
			t.Fatalf("%dx%d: round trip does not reproduce the buffer", tc.rows, tc.length)
		}
	}
}

func TestDeinterleaveInvalidLayout(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		length int
	}{
		{"not a multiple", 10, 3},
		{"odd length", 7, 1},
		{"empty", 0, 4},
		{"zero signal length", 8, 0},
		{"negative signal length", 8, -2},
	}
	for _, tc := range tests {
		_, err := Deinterleave(make([]float64, tc.n), tc.length)
		if !errors.Is(err, ErrInvalidLayout) {
			t.Fatalf("%s: err = %v, want ErrInvalidLayout", tc.name, err)
		}
	}
}

func TestFromRowsRejectsRaggedRows(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2, 3}, {4, 5}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := FromRows(nil); !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("empty rows: err = %v, want ErrInvalidParameters", err)
	}
}

func TestNewResultDimensionMismatch(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if _, err := NewResult(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestNewResultCopiesInput(t *testing.T) {
	re, _ := FromRows([][]float64{{1, 2}})
	im, _ := FromRows([][]float64{{3, 4}})
	res, err := NewResult(re, im)
	if err != nil {
		t.Fatalf("NewResult() error = %v", err)
	}
	re.Set(0, 0, 99)
	if got := res.Real().At(0, 0); got != 1 {
		t.Fatalf("result changed with its input: got %v, want 1", got)
	}
}
