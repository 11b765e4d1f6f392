// Package median implements a fixed-width sliding-window median filter.
package median

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// Filter is a moving-window median filter. Windows that would run past
// either signal edge are padded by replicating the nearest edge sample, so
// every output value is the median of exactly WindowSize samples.
type Filter struct {
	windowSize int
}

// New creates a median filter. The window size must be a positive odd
// integer.
func New(windowSize int) (*Filter, error) {
	f := &Filter{}
	if err := f.SetWindowSize(windowSize); err != nil {
		return nil, err
	}
	return f, nil
}

// SetWindowSize reconfigures the window size. On error the previous window
// size is kept.
func (f *Filter) SetWindowSize(windowSize int) error {
	if windowSize <= 0 || windowSize%2 == 0 {
		return fmt.Errorf("%w: window size must be positive and odd: %d",
			denoise.ErrInvalidParameter, windowSize)
	}
	f.windowSize = windowSize
	return nil
}

// WindowSize returns the configured window size.
func (f *Filter) WindowSize() int {
	return f.windowSize
}

// Name returns the canonical configuration label.
func (f *Filter) Name() string {
	return fmt.Sprintf("MedianFilter_%d", f.windowSize)
}

// Process returns the windowed median of input at every index.
// The output always has the same length as the input.
func (f *Filter) Process(input []float64) []float64 {
	output := make([]float64, len(input))
	if len(input) == 0 {
		return output
	}

	half := f.windowSize / 2
	window := make([]float64, f.windowSize)

	for i := range input {
		// Clamp-to-edge: out-of-range window slots replicate the
		// nearest edge sample instead of shrinking the window.
		for j := range window {
			idx := i - half + j
			if idx < 0 {
				idx = 0
			} else if idx >= len(input) {
				idx = len(input) - 1
			}
			window[j] = input[idx]
		}
		output[i] = denoise.Median(window)
	}

	return output
}
