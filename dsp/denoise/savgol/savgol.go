// Package savgol implements Savitzky-Golay polynomial smoothing. Filter
// taps are derived once per configuration by a constrained least-squares
// fit and then applied as a fixed convolution with reflective boundaries.
package savgol

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// ErrSingularSystem reports a near-zero pivot during the least-squares
// coefficient derivation.
var ErrSingularSystem = errors.New("savgol: singular system")

// Filter is a fixed-tap Savitzky-Golay smoothing filter.
type Filter struct {
	windowSize int
	polyOrder  int
	taps       []float64
}

// New creates a filter. The window size must be a positive odd integer and
// the polynomial order non-negative and strictly less than the window size.
func New(windowSize, polyOrder int) (*Filter, error) {
	f := &Filter{}
	if err := f.SetParameters(windowSize, polyOrder); err != nil {
		return nil, err
	}
	return f, nil
}

// SetParameters reconfigures the filter and re-derives the taps.
// Validation and derivation happen before any field is mutated; on error
// the previous configuration stays in effect.
func (f *Filter) SetParameters(windowSize, polyOrder int) error {
	if windowSize <= 0 || windowSize%2 == 0 {
		return fmt.Errorf("%w: window size must be positive and odd: %d",
			denoise.ErrInvalidParameter, windowSize)
	}
	if polyOrder < 0 || polyOrder >= windowSize {
		return fmt.Errorf("%w: polynomial order must be non-negative and less than window size: %d",
			denoise.ErrInvalidParameter, polyOrder)
	}

	taps, err := deriveTaps(windowSize, polyOrder)
	if err != nil {
		return err
	}

	f.windowSize = windowSize
	f.polyOrder = polyOrder
	f.taps = taps
	return nil
}

// WindowSize returns the configured window size.
func (f *Filter) WindowSize() int {
	return f.windowSize
}

// PolyOrder returns the configured polynomial order.
func (f *Filter) PolyOrder() int {
	return f.polyOrder
}

// Taps returns a copy of the derived filter taps.
func (f *Filter) Taps() []float64 {
	taps := make([]float64, len(f.taps))
	copy(taps, f.taps)
	return taps
}

// Name returns the canonical configuration label.
func (f *Filter) Name() string {
	return fmt.Sprintf("SavgolFilter_%d_%d", f.windowSize, f.polyOrder)
}

// Process applies the fixed taps as a weighted sum around every index.
// Out-of-range sample indices are mirrored back into the signal.
func (f *Filter) Process(input []float64) []float64 {
	output := make([]float64, len(input))
	if len(input) == 0 {
		return output
	}

	half := f.windowSize / 2
	for i := range input {
		var acc float64
		for j, tap := range f.taps {
			acc += tap * reflected(input, i-half+j)
		}
		output[i] = acc
	}

	return output
}

// reflected resolves an out-of-range index by mirroring: -index below the
// start, 2n-2-index past the end. Mirrors that still land out of range
// (windows wider than the signal) clamp to the nearest edge sample.
func reflected(input []float64, index int) float64 {
	n := len(input)
	switch {
	case index < 0:
		index = -index
		if index >= n {
			index = n - 1
		}
	case index >= n:
		index = 2*n - 2 - index
		if index < 0 {
			index = 0
		}
	}
	return input[index]
}

// deriveTaps fits, in the least-squares sense, a polynomial of the given
// order over the integer offsets -half..+half and extracts the weights that
// reproduce the window's center sample.
func deriveTaps(windowSize, polyOrder int) ([]float64, error) {
	half := windowSize / 2
	n := polyOrder + 1

	// Moment matrix: entry (i, j) holds sum_k k^(i+j).
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			var sum float64
			for k := -half; k <= half; k++ {
				sum += math.Pow(float64(k), float64(i+j))
			}
			matrix[i][j] = sum
		}
	}

	// The right-hand side selects the 0th-degree coefficient: the fitted
	// polynomial evaluated at the center offset k=0.
	rhs := make([]float64, n)
	rhs[0] = 1

	coeffs, err := solve(matrix, rhs)
	if err != nil {
		return nil, err
	}

	taps := make([]float64, windowSize)
	for i := range taps {
		k := float64(i - half)
		var tap float64
		for j, c := range coeffs {
			tap += c * math.Pow(k, float64(j))
		}
		taps[i] = tap
	}

	return taps, nil
}
