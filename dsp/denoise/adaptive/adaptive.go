// Package adaptive implements an adaptive predictive filter for impulsive
// noise suppression. The default update rule is LMS; an RLS variant is
// selectable through [WithAlgorithm].
//
// The filter is stateful: its weight vector persists across Process calls,
// so replaying the same input through one instance yields different output
// until Reset is called. Instances must not be shared between goroutines.
package adaptive

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// Algorithm selects the weight update rule.
type Algorithm int

const (
	// LMS updates weights proportionally to the instantaneous error and
	// the delay line.
	LMS Algorithm = iota
	// RLS updates weights through an inverse correlation matrix with the
	// configured forgetting factor.
	RLS
)

// Filter is an adaptive linear predictor.
type Filter struct {
	order  int
	mu     float64
	lambda float64
	algo   Algorithm
	seed   int64

	rng     *rand.Rand
	weights []float64
}

// Option configures optional filter behavior.
type Option func(*Filter)

// WithSeed sets the seed for the weight-initialization noise, making
// construction and Reset reproducible. The default seed is 1.
func WithSeed(seed int64) Option {
	return func(f *Filter) {
		f.seed = seed
	}
}

// WithAlgorithm selects the adaptation rule. The default is LMS.
func WithAlgorithm(algo Algorithm) Option {
	return func(f *Filter) {
		f.algo = algo
	}
}

// New creates an adaptive filter. The order must be positive, mu must lie
// in (0, 1) and lambda in (0, 1].
func New(order int, mu, lambda float64, opts ...Option) (*Filter, error) {
	if err := validate(order, mu, lambda); err != nil {
		return nil, err
	}

	f := &Filter{order: order, mu: mu, lambda: lambda, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	f.Reset()

	return f, nil
}

func validate(order int, mu, lambda float64) error {
	if order <= 0 {
		return fmt.Errorf("%w: filter order must be positive: %d",
			denoise.ErrInvalidParameter, order)
	}
	if mu <= 0 || mu >= 1 {
		return fmt.Errorf("%w: adaptation step mu must be in (0, 1): %g",
			denoise.ErrInvalidParameter, mu)
	}
	if lambda <= 0 || lambda > 1 {
		return fmt.Errorf("%w: forgetting factor lambda must be in (0, 1]: %g",
			denoise.ErrInvalidParameter, lambda)
	}
	return nil
}

// SetParameters reconfigures the filter and resets its weights. On error
// the previous configuration and state are kept.
func (f *Filter) SetParameters(order int, mu, lambda float64) error {
	if err := validate(order, mu, lambda); err != nil {
		return err
	}

	f.order = order
	f.mu = mu
	f.lambda = lambda
	f.Reset()
	return nil
}

// Reset reinitializes the weight vector with small perturbations around
// zero drawn from the configured seed, restoring the fresh-instance state.
func (f *Filter) Reset() {
	f.rng = rand.New(rand.NewSource(f.seed))
	if len(f.weights) != f.order {
		f.weights = make([]float64, f.order)
	}
	for i := range f.weights {
		f.weights[i] = 0.001 * (f.rng.Float64() - 0.5)
	}
}

// Order returns the configured filter order.
func (f *Filter) Order() int {
	return f.order
}

// Weights returns a copy of the current weight vector.
func (f *Filter) Weights() []float64 {
	w := make([]float64, len(f.weights))
	copy(w, f.weights)
	return w
}

// Name returns the canonical configuration label.
func (f *Filter) Name() string {
	return fmt.Sprintf("WienerFilter_%d_%d_%d",
		f.order, int(f.mu*1000), int(f.lambda*1000))
}

// Process filters input with the selected adaptation rule, mutating the
// weight vector once per sample. The input itself is never modified.
func (f *Filter) Process(input []float64) []float64 {
	if len(input) == 0 {
		return []float64{}
	}

	if f.algo == RLS {
		return f.processRLS(input)
	}
	return f.processLMS(input)
}

// processLMS runs the least-mean-squares loop. The desired reference is a
// local smoothness proxy, not the unavailable clean signal: the average of
// the neighboring raw samples, degrading to the current sample at the
// signal boundaries.
func (f *Filter) processLMS(input []float64) []float64 {
	output := make([]float64, len(input))
	delay := make([]float64, f.order) // most recent first

	for n, x := range input {
		copy(delay[1:], delay)
		delay[0] = x

		var y float64
		for i, w := range f.weights {
			y += w * delay[i]
		}

		desired := x
		if n > 0 {
			next := x
			if n < len(input)-1 {
				next = input[n+1]
			}
			desired = 0.5 * (input[n-1] + next)
		}

		e := desired - y
		for i := range f.weights {
			f.weights[i] += f.mu * e * delay[i]
		}

		output[n] = y
	}

	return output
}
