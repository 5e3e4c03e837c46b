package cwt

import (
	"errors"
	"slices"
	"testing"

	"github.com/RyanBlaney/sonido-cwt/internal/testutil"
)

func rampRows(t *testing.T) [][]float64 {
	t.Helper()
	row := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	return [][]float64{slices.Clone(row), slices.Clone(row), slices.Clone(row)}
}

func TestCompressMatrix(t *testing.T) {
	data, err := FromRows(rampRows(t))
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}

	perfectDivision, err := CompressMatrix(data, 5)
	if err != nil {
		t.Fatalf("CompressMatrix(5) error = %v", err)
	}
	rem2Division, err := CompressMatrix(data, 3)
	if err != nil {
		t.Fatalf("CompressMatrix(3) error = %v", err)
	}

	testutil.RequireDims(t, perfectDivision, 3, 5)
	testutil.RequireDims(t, rem2Division, 3, 3)
	if got := perfectDivision.At(0, 1); got != (3.0+4.0)/2.0 {
		t.Fatalf("perfectDivision[0,1] = %v, want 3.5", got)
	}
	if got := rem2Division.At(0, 2); got != (9.0+10.0)/2.0 {
		t.Fatalf("rem2Division[0,2] = %v, want 9.5", got)
	}
	if got := rem2Division.At(0, 1); got != (5.0+6.0+7.0+8.0)/4.0 {
		t.Fatalf("rem2Division[0,1] = %v, want 6.5", got)
	}
	if got := rem2Division.At(2, 0); got != 2.5 {
		t.Fatalf("rem2Division[2,0] = %v, want 2.5", got)
	}
}

func TestCompressMatrixInvalidWidth(t *testing.T) {
	data, _ := FromRows(rampRows(t))
	for _, w := range []int{-5, 0, 11} {
		out, err := CompressMatrix(data, w)
		if !errors.Is(err, ErrInvalidWidth) {
			t.Fatalf("width %d: err = %v, want ErrInvalidWidth", w, err)
		}
		if out != nil {
			t.Fatalf("width %d: got output alongside an error", w)
		}
	}
}

func TestCompressAxis(t *testing.T) {
	axis := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	rem2, err := CompressAxis(axis, 3)
	if err != nil {
		t.Fatalf("CompressAxis(3) error = %v", err)
	}
	perfect, err := CompressAxis(axis, 5)
	if err != nil {
		t.Fatalf("CompressAxis(5) error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, rem2, []float64{2.5, 6.5, 9.5}, 0)
	testutil.RequireSliceNearlyEqual(t, perfect, []float64{1.5, 3.5, 5.5, 7.5, 9.5}, 0)

	if _, err := CompressAxis(axis, -5); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("err = %v, want ErrInvalidWidth", err)
	}
}

func TestBlockBoundsCoverEveryColumn(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for w := 1; w <= n; w++ {
			b := blockBounds(n, w)
			if len(b) != w+1 || b[0] != 0 || b[w] != n {
				t.Fatalf("n=%d w=%d: bounds %v do not span [0,%d]", n, w, b, n)
			}
			size := (n + w - 1) / w
			for k := range w {
				sz := b[k+1] - b[k]
				if sz < 1 || sz > size {
					t.Fatalf("n=%d w=%d: block %d has %d columns (bounds %v)", n, w, k, sz, b)
				}
			}
		}
	}
}

func TestCompressMatrixAndAxisAgree(t *testing.T) {
	axis := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	data, _ := FromRows([][]float64{axis})
	for w := 1; w <= len(axis); w++ {
		m, err := CompressMatrix(data, w)
		if err != nil {
			t.Fatalf("CompressMatrix(%d) error = %v", w, err)
		}
		a, err := CompressAxis(axis, w)
		if err != nil {
			t.Fatalf("CompressAxis(%d) error = %v", w, err)
		}
		testutil.RequireSliceNearlyEqual(t, ToRows(m)[0], a, 1e-12)
	}
}

func windowFixture(t *testing.T) ([]float64, [][]float64) {
	t.Helper()
	return []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, [][]float64{
		{1, 2, 3, 4, 5, 6},
		{7, 8, 9, 10, 11, 12},
		{13, 14, 15, 16, 17, 18},
	}
}

func TestWindowTime(t *testing.T) {
	timeAxis, rows := windowFixture(t)
	testData, _ := FromRows(rows)

	windowedTimeAxis, windowedData, err := WindowTime(0.2, 0.38, timeAxis, testData)
	if err != nil {
		t.Fatalf("WindowTime() error = %v", err)
	}
	testutil.RequireDims(t, windowedData, 3, 3)
	if len(windowedTimeAxis) != 3 {
		t.Fatalf("len(windowedTimeAxis) = %d, want 3", len(windowedTimeAxis))
	}
	if got, want := windowedData.At(1, 2), testData.At(1, 3); got != want {
		t.Fatalf("windowedData[1,2] = %v, want %v", got, want)
	}
	testutil.RequireSliceNearlyEqual(t, windowedTimeAxis, []float64{0.2, 0.3, 0.4}, 0)

	// The window is a copy
	windowedData.Set(0, 0, -1)
	if testData.At(0, 1) != 2 {
		t.Fatal("writing to the window changed the source matrix")
	}
}

func TestWindowTimeFailures(t *testing.T) {
	timeAxis, rows := windowFixture(t)
	testData, _ := FromRows(rows)
	tests := []struct {
		name       string
		start, end float64
		axis       []float64
		want       error
	}{
		{"inverted", 0.42, 0.2, timeAxis, ErrInvertedWindow},
		{"empty", 0.3, 0.3, timeAxis, ErrInvertedWindow},
		{"start below axis", 0.01, 0.2, timeAxis, ErrOutOfRange},
		{"end above axis", 0.2, 0.9, timeAxis, ErrOutOfRange},
		{"axis too short", 0.2, 0.5, []float64{0.1, 0.2, 0.3, 0.4, 0.5}, ErrAxisLengthMismatch},
	}
	for _, tc := range tests {
		times, data, err := WindowTime(tc.start, tc.end, tc.axis, testData)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
		if times != nil || data != nil {
			t.Fatalf("%s: got output alongside an error", tc.name)
		}
	}
	if _, _, err := WindowTime(0.2, 0.5, []float64{0.1, 0.2, 0.3, 0.4, 0.5}, testData); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch kind", err)
	}
}
