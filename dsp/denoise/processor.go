package denoise

import (
	"errors"
	"time"
)

// ErrInvalidParameter reports a numeric constraint violation at filter
// construction or reconfiguration. Concrete filters wrap it with the
// offending value.
var ErrInvalidParameter = errors.New("denoise: invalid parameter")

// Processor is the capability set shared by all denoising filters.
type Processor interface {
	// Process returns a filtered copy of input with the same length.
	// The input is never mutated. Stateful filters (the adaptive
	// predictor) update their own internal state as a side effect.
	Process(input []float64) []float64

	// Name returns a canonical label encoding the filter class and its
	// parameter values, unique per distinct configuration.
	Name() string
}

// Measure runs p.Process under a monotonic clock and returns the filtered
// signal together with the elapsed time in microseconds.
func Measure(p Processor, input []float64) ([]float64, int64) {
	start := time.Now()
	output := p.Process(input)
	return output, time.Since(start).Microseconds()
}
