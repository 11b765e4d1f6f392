package quality

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func TestSNRIdenticalSignals(t *testing.T) {
	x := testutil.DeterministicSine(0.05, 1, 128)
	if got := SNR(x, x); got != 100.0 {
		t.Fatalf("SNR(x, x) = %v, want 100", got)
	}
}

func TestSNRDegenerateInputs(t *testing.T) {
	if got := SNR(nil, nil); got != 0 {
		t.Fatalf("SNR(nil, nil) = %v, want 0", got)
	}
	if got := SNR([]float64{1, 2}, []float64{1}); got != 0 {
		t.Fatalf("SNR on mismatched lengths = %v, want 0", got)
	}
}

func TestSNRKnownValue(t *testing.T) {
	clean := []float64{1, 1, 1, 1}
	processed := []float64{1, 1, 1, 2}

	// Signal power 1, noise power 0.25: 10*log10(4) dB.
	want := 10 * math.Log10(4)
	testutil.RequireNearlyEqual(t, SNR(clean, processed), want, 1e-9)
}

func TestMSE(t *testing.T) {
	original := []float64{1, 1, 1, 1}
	processed := []float64{1, 1, 1, 2}

	testutil.RequireNearlyEqual(t, MSE(original, processed), 0.25, 1e-12)
	testutil.RequireNearlyEqual(t, MSE(original, original), 0, 0)

	if got := MSE(nil, nil); got != 0 {
		t.Fatalf("MSE(nil, nil) = %v, want 0", got)
	}
	if got := MSE([]float64{1}, []float64{1, 2}); got != 0 {
		t.Fatalf("MSE on mismatched lengths = %v, want 0", got)
	}
}

func TestCorrelationPerfect(t *testing.T) {
	x := testutil.Ramp(0.5, 64)
	testutil.RequireNearlyEqual(t, Correlation(x, x), 1, 1e-12)
}

func TestCorrelationScaleInvariant(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 128)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 3
	}

	testutil.RequireNearlyEqual(t, Correlation(x, y), 1, 1e-12)
}

func TestCorrelationAntiCorrelated(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{3, 2, 1}
	testutil.RequireNearlyEqual(t, Correlation(a, b), -1, 1e-12)
}

func TestCorrelationSymmetric(t *testing.T) {
	a := testutil.DeterministicNoise(1, 1, 100)
	b := testutil.DeterministicNoise(2, 1, 100)
	testutil.RequireNearlyEqual(t, Correlation(a, b), Correlation(b, a), 1e-15)
}

func TestCorrelationDegenerateInputs(t *testing.T) {
	if got := Correlation(nil, nil); got != 0 {
		t.Fatalf("Correlation(nil, nil) = %v, want 0", got)
	}
	if got := Correlation([]float64{1, 2}, []float64{1}); got != 0 {
		t.Fatalf("Correlation on mismatched lengths = %v, want 0", got)
	}

	// Zero variance on either side degrades to 0 instead of dividing by
	// zero.
	flat := testutil.Constant(4, 16)
	varied := testutil.Ramp(1, 16)
	if got := Correlation(flat, varied); got != 0 {
		t.Fatalf("Correlation with zero variance = %v, want 0", got)
	}
}
