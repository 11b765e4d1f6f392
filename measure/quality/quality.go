// Package quality provides the signal-quality metrics used to score
// denoising results against a reference: SNR, MSE and Pearson correlation.
//
// All functions are pure and total. Malformed input (empty or mismatched
// lengths) and numerically degenerate cases degrade silently to defined
// neutral values instead of panicking or returning errors, so downstream
// reports never crash on degenerate test cases.
package quality

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// powerEpsilon is the noise-power floor below which SNR saturates.
	powerEpsilon = 1e-10

	// snrCeiling is the sentinel returned when noise is numerically
	// absent, instead of an unbounded value.
	snrCeiling = 100.0
)

// SNR returns the signal-to-noise ratio in dB between a clean reference and
// a processed signal, treating their difference as noise. Returns 100.0
// when the noise power is numerically negligible and 0.0 for empty or
// mismatched-length inputs.
func SNR(clean, processed []float64) float64 {
	if len(clean) == 0 || len(clean) != len(processed) {
		return 0
	}

	n := len(clean)

	signalSq := make([]float64, n)
	vecmath.MulBlock(signalSq, clean, clean)

	// noise = processed - clean, then squared in place.
	noise := make([]float64, n)
	vecmath.ScaleBlock(noise, clean, -1)
	vecmath.AddBlockInPlace(noise, processed)
	vecmath.MulBlockInPlace(noise, noise)

	signalPower := kahanSum(signalSq) / float64(n)
	noisePower := kahanSum(noise) / float64(n)

	if noisePower < powerEpsilon {
		return snrCeiling
	}

	return 10 * math.Log10(signalPower/noisePower)
}

// MSE returns the mean squared difference between two signals, or 0.0 for
// empty or mismatched-length inputs.
func MSE(original, processed []float64) float64 {
	if len(original) == 0 || len(original) != len(processed) {
		return 0
	}

	diff := make([]float64, len(original))
	vecmath.ScaleBlock(diff, original, -1)
	vecmath.AddBlockInPlace(diff, processed)
	vecmath.MulBlockInPlace(diff, diff)

	return kahanSum(diff) / float64(len(original))
}

// Correlation returns the Pearson correlation coefficient between two
// signals. Returns 0.0 for empty or mismatched-length inputs and when
// either series has near-zero variance.
func Correlation(signal1, signal2 []float64) float64 {
	if len(signal1) == 0 || len(signal1) != len(signal2) {
		return 0
	}

	n := float64(len(signal1))
	mean1 := kahanSum(signal1) / n
	mean2 := kahanSum(signal2) / n

	var numerator, sumSq1, sumSq2 float64
	for i := range signal1 {
		d1 := signal1[i] - mean1
		d2 := signal2[i] - mean2
		numerator += d1 * d2
		sumSq1 += d1 * d1
		sumSq2 += d2 * d2
	}

	denominator := math.Sqrt(sumSq1 * sumSq2)
	if denominator < powerEpsilon {
		return 0
	}

	return numerator / denominator
}

// kahanSum sums x with compensated accumulation.
func kahanSum(x []float64) float64 {
	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}
