package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2.5, 2}

	if got := MaxAbsDiff(a, b); got != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", got)
	}
	if got := MaxAbsDiff(a, a); got != 0 {
		t.Fatalf("MaxAbsDiff of identical slices = %v, want 0", got)
	}
}

func TestMaxAbsDiffPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	MaxAbsDiff([]float64{1}, []float64{1, 2})
}

func TestRequireSliceNearlyEqualWithinTolerance(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1.0005, 1.9995}, 1e-3)
}

func TestRequireNearlyEqualWithinTolerance(t *testing.T) {
	RequireNearlyEqual(t, 3.14159, 3.1416, 1e-4)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1.5, 1e300})
}
