package outlier

import (
	"math"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// DetectOutliers returns a boolean mask of the same length as input with
// true at every index the configured detector flags as an outlier.
func (f *Filter) DetectOutliers(input []float64) []bool {
	switch f.detection {
	case DetectMAD:
		return f.detectMAD(input)
	case DetectStatistical:
		return f.detectStatistical(input)
	case DetectAdaptive:
		return f.detectAdaptive(input)
	default:
		return make([]bool, len(input))
	}
}

func (f *Filter) detectMAD(input []float64) []bool {
	mask := make([]bool, len(input))
	half := f.windowSize / 2
	window := make([]float64, 0, f.windowSize)

	for i := range input {
		start := max(i-half, 0)
		end := min(i+half+1, len(input))

		window = window[:0]
		window = append(window, input[start:end]...)

		// Too few samples for a robust estimate.
		if len(window) < 3 {
			continue
		}

		med := denoise.Median(window)
		madVal := denoise.MAD(window, med)

		if madVal > 0 && math.Abs(input[i]-med) > f.threshold*madVal {
			mask[i] = true
		}
	}

	return mask
}

func (f *Filter) detectStatistical(input []float64) []bool {
	mask := make([]bool, len(input))
	n := float64(len(input))

	var sum float64
	for _, v := range input {
		sum += v
	}
	mean := sum / n

	var variance float64
	for _, v := range input {
		d := v - mean
		variance += d * d
	}
	variance /= n

	stddev := math.Sqrt(variance)
	if stddev == 0 {
		return mask
	}

	for i, v := range input {
		if math.Abs(v-mean)/stddev > f.threshold {
			mask[i] = true
		}
	}

	return mask
}

func (f *Filter) detectAdaptive(input []float64) []bool {
	mask := make([]bool, len(input))
	half := f.windowSize / 2

	for i := range input {
		start := max(i-half, 0)
		end := min(i+half+1, len(input))

		// Local statistics exclude the sample under test.
		var sum float64
		count := 0
		for j := start; j < end; j++ {
			if j == i {
				continue
			}
			sum += input[j]
			count++
		}
		if count == 0 {
			continue
		}
		localMean := sum / float64(count)

		var localVar float64
		for j := start; j < end; j++ {
			if j == i {
				continue
			}
			d := input[j] - localMean
			localVar += d * d
		}
		localVar /= float64(count)
		localStddev := math.Sqrt(localVar)

		adaptive := f.threshold * localStddev
		if localStddev == 0 {
			adaptive = f.threshold
		}

		if math.Abs(input[i]-localMean) > adaptive {
			mask[i] = true
		}
	}

	return mask
}
