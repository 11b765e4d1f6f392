package outlier

import "github.com/cwbudde/algo-denoise/dsp/denoise"

// interpolateLinear replaces each flagged sample with the linear
// interpolation between its nearest unflagged neighbors. With a neighbor on
// one side only, that neighbor's value is copied; with none, the original
// value stays.
func (f *Filter) interpolateLinear(input []float64, mask []bool) []float64 {
	result := make([]float64, len(input))
	copy(result, input)

	for i, flagged := range mask {
		if !flagged {
			continue
		}

		left, right := nearestClean(mask, i)
		switch {
		case left >= 0 && right >= 0:
			result[i] = denoise.Lerp(float64(left), input[left],
				float64(right), input[right], float64(i))
		case left >= 0:
			result[i] = input[left]
		case right >= 0:
			result[i] = input[right]
		}
	}

	return result
}

// interpolateMedian replaces each flagged sample with the median of the
// unflagged neighbors inside a half-window capped at 5 samples. With no
// such neighbor the original value stays.
func (f *Filter) interpolateMedian(input []float64, mask []bool) []float64 {
	result := make([]float64, len(input))
	copy(result, input)

	half := min(f.windowSize/2, 5)
	neighbors := make([]float64, 0, 2*half)

	for i, flagged := range mask {
		if !flagged {
			continue
		}

		neighbors = neighbors[:0]
		for j := max(i-half, 0); j < min(i+half+1, len(input)); j++ {
			if j != i && !mask[j] {
				neighbors = append(neighbors, input[j])
			}
		}

		if len(neighbors) > 0 {
			result[i] = denoise.Median(neighbors)
		}
	}

	return result
}

// interpolateAutoregressive replaces each flagged sample with a 1/distance
// weighted average of up to arOrder preceding unflagged samples, reading
// already-corrected values. With no usable predecessor it falls back to the
// linear interpolation result for that index.
func (f *Filter) interpolateAutoregressive(input []float64, mask []bool) []float64 {
	result := make([]float64, len(input))
	copy(result, input)

	var linear []float64 // computed on first fallback

	for i, flagged := range mask {
		if !flagged {
			continue
		}

		var sum, weightSum float64
		for j := 1; j <= arOrder && j <= i; j++ {
			idx := i - j
			if mask[idx] {
				continue
			}
			w := 1.0 / float64(j)
			sum += w * result[idx]
			weightSum += w
		}

		if weightSum > 0 {
			result[i] = sum / weightSum
		} else {
			if linear == nil {
				linear = f.interpolateLinear(input, mask)
			}
			result[i] = linear[i]
		}
	}

	return result
}

// nearestClean returns the indices of the closest unflagged samples to the
// left and right of index, or -1 when a side has none.
func nearestClean(mask []bool, index int) (left, right int) {
	left, right = -1, -1

	for i := index - 1; i >= 0; i-- {
		if !mask[i] {
			left = i
			break
		}
	}
	for i := index + 1; i < len(mask); i++ {
		if !mask[i] {
			right = i
			break
		}
	}

	return left, right
}
