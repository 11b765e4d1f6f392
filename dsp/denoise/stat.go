package denoise

import (
	"math"
	"sort"
)

// lerpEpsilon guards against division blow-up on degenerate x spans.
const lerpEpsilon = 1e-10

// Median returns the median of values, averaging the two central values for
// even counts. The input is not modified. Returns 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

// MAD returns the median absolute deviation of values from center.
func MAD(values []float64, center float64) float64 {
	if len(values) == 0 {
		return 0
	}

	deviations := make([]float64, len(values))
	for i, v := range values {
		deviations[i] = math.Abs(v - center)
	}

	return Median(deviations)
}

// Lerp interpolates linearly between (x1, y1) and (x2, y2) at x.
// Returns y1 unchanged when |x2-x1| is below 1e-10.
func Lerp(x1, y1, x2, y2, x float64) float64 {
	if math.Abs(x2-x1) < lerpEpsilon {
		return y1
	}

	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}
