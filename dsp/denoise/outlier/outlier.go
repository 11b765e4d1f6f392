package outlier

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// Detection selects the outlier detection policy.
type Detection int

const (
	// DetectMAD flags samples deviating from the windowed median by more
	// than threshold times the window's median absolute deviation.
	DetectMAD Detection = iota
	// DetectStatistical flags samples whose global z-score exceeds the
	// threshold.
	DetectStatistical
	// DetectAdaptive flags samples deviating from the local mean by more
	// than threshold times the local standard deviation, both computed
	// over a window excluding the sample itself.
	DetectAdaptive
)

// String returns the detection label used in filter names.
func (d Detection) String() string {
	switch d {
	case DetectMAD:
		return "MAD"
	case DetectStatistical:
		return "Statistical"
	case DetectAdaptive:
		return "Adaptive"
	default:
		return "Unknown"
	}
}

// Interpolation selects the replacement policy for flagged samples.
type Interpolation int

const (
	InterpLinear Interpolation = iota
	InterpSpline
	InterpMedian
	InterpAutoregressive
)

// String returns the interpolation label used in filter names.
func (p Interpolation) String() string {
	switch p {
	case InterpLinear:
		return "Linear"
	case InterpSpline:
		return "Spline"
	case InterpMedian:
		return "Median"
	case InterpAutoregressive:
		return "AR"
	default:
		return "Unknown"
	}
}

// arOrder is the fixed number of predecessors the autoregressive
// interpolator may use.
const arOrder = 5

// Filter detects and replaces impulsive outliers.
type Filter struct {
	detection     Detection
	interpolation Interpolation
	threshold     float64
	windowSize    int
}

// New creates an outlier filter. The threshold must be positive and the
// window size a positive odd integer.
func New(detection Detection, interpolation Interpolation, threshold float64, windowSize int) (*Filter, error) {
	f := &Filter{}
	if err := f.SetParameters(detection, interpolation, threshold, windowSize); err != nil {
		return nil, err
	}
	return f, nil
}

// SetParameters reconfigures the filter. Validation is all-or-nothing: on
// error no field is changed.
func (f *Filter) SetParameters(detection Detection, interpolation Interpolation, threshold float64, windowSize int) error {
	if threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive: %g",
			denoise.ErrInvalidParameter, threshold)
	}
	if windowSize <= 0 || windowSize%2 == 0 {
		return fmt.Errorf("%w: window size must be positive and odd: %d",
			denoise.ErrInvalidParameter, windowSize)
	}

	f.detection = detection
	f.interpolation = interpolation
	f.threshold = threshold
	f.windowSize = windowSize
	return nil
}

// Threshold returns the configured detection threshold.
func (f *Filter) Threshold() float64 {
	return f.threshold
}

// WindowSize returns the configured window size.
func (f *Filter) WindowSize() int {
	return f.windowSize
}

// Name returns the canonical configuration label.
func (f *Filter) Name() string {
	return fmt.Sprintf("OutlierDetection_%s_%s_%d_%d",
		f.detection, f.interpolation, int(f.threshold*100), f.windowSize)
}

// Process detects outliers and replaces the flagged samples according to
// the configured interpolation. Unflagged samples pass through unchanged.
func (f *Filter) Process(input []float64) []float64 {
	if len(input) == 0 {
		return []float64{}
	}

	mask := f.DetectOutliers(input)

	switch f.interpolation {
	case InterpLinear, InterpSpline:
		// Spline aliases the linear path.
		return f.interpolateLinear(input, mask)
	case InterpMedian:
		return f.interpolateMedian(input, mask)
	case InterpAutoregressive:
		return f.interpolateAutoregressive(input, mask)
	default:
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}
}
