package adaptive

// rlsDelta regularizes the initial inverse correlation matrix.
const rlsDelta = 0.001

// processRLS runs the recursive-least-squares loop. The desired reference
// is a 5-point moving average in the signal interior and the raw sample
// near the boundaries.
func (f *Filter) processRLS(input []float64) []float64 {
	output := make([]float64, len(input))

	p := make([][]float64, f.order)
	for i := range p {
		p[i] = make([]float64, f.order)
		p[i][i] = 1 / rlsDelta
	}

	delay := make([]float64, f.order) // most recent first
	gain := make([]float64, f.order)

	for n, x := range input {
		copy(delay[1:], delay)
		delay[0] = x

		var y float64
		for i, w := range f.weights {
			y += w * delay[i]
		}

		desired := x
		if n > 2 && n < len(input)-2 {
			desired = (input[n-2] + input[n-1] + x + input[n+1] + input[n+2]) / 5
		}
		e := desired - y

		denom := f.lambda
		for i := range p {
			for j := range p[i] {
				denom += delay[i] * p[i][j] * delay[j]
			}
		}

		for i := range gain {
			var g float64
			for j := range p[i] {
				g += p[i][j] * delay[j]
			}
			gain[i] = g / denom
		}

		for i := range f.weights {
			f.weights[i] += gain[i] * e
		}

		next := make([][]float64, f.order)
		for i := range next {
			next[i] = make([]float64, f.order)
			for j := range next[i] {
				next[i][j] = (p[i][j] - gain[i]*delay[j]) / f.lambda
			}
		}
		p = next

		output[n] = y
	}

	return output
}
