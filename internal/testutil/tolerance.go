package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireMatrixNearlyEqual fails t if the matrices differ in shape or any
// element pair exceeds eps.
func RequireMatrixNearlyEqual(t *testing.T, got, want mat.Matrix, eps float64) {
	t.Helper()
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", gr, gc, wr, wc)
	}
	for i := range gr {
		for j := range gc {
			if diff := math.Abs(got.At(i, j) - want.At(i, j)); diff > eps {
				t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)", i, j, got.At(i, j), want.At(i, j), diff, eps)
			}
		}
	}
}

// RequireDims fails t unless m is rows x cols.
func RequireDims(t *testing.T, m mat.Matrix, rows, cols int) {
	t.Helper()
	r, c := m.Dims()
	if r != rows || c != cols {
		t.Fatalf("dims = %dx%d, want %dx%d", r, c, rows, cols)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
