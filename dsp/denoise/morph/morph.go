// Package morph implements 1-D mathematical-morphology filtering: erosion,
// dilation and their compositions opening and closing.
package morph

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// Op selects the morphological operation.
type Op int

const (
	Erosion Op = iota
	Dilation
	Opening
	Closing
)

// String returns the operation label used in filter names.
func (o Op) String() string {
	switch o {
	case Erosion:
		return "Erosion"
	case Dilation:
		return "Dilation"
	case Opening:
		return "Opening"
	case Closing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Filter applies a morphological operation with a structuring element.
type Filter struct {
	op      Op
	element []float64
}

// New creates a filter with a flat (all-zero) structuring element of the
// given size.
func New(op Op, elementSize int) (*Filter, error) {
	if elementSize <= 0 {
		return nil, fmt.Errorf("%w: element size must be positive: %d",
			denoise.ErrInvalidParameter, elementSize)
	}
	return &Filter{op: op, element: make([]float64, elementSize)}, nil
}

// NewWithElement creates a filter with an explicit structuring element.
// The element is copied and must not be empty.
func NewWithElement(op Op, element []float64) (*Filter, error) {
	f := &Filter{op: op}
	if err := f.SetElement(element); err != nil {
		return nil, err
	}
	return f, nil
}

// SetOperation switches the morphological operation.
func (f *Filter) SetOperation(op Op) {
	f.op = op
}

// SetElement replaces the structuring element. On error the previous
// element is kept.
func (f *Filter) SetElement(element []float64) error {
	if len(element) == 0 {
		return fmt.Errorf("%w: structuring element must not be empty",
			denoise.ErrInvalidParameter)
	}
	elem := make([]float64, len(element))
	copy(elem, element)
	f.element = elem
	return nil
}

// Element returns a copy of the structuring element.
func (f *Filter) Element() []float64 {
	elem := make([]float64, len(f.element))
	copy(elem, f.element)
	return elem
}

// Name returns the canonical configuration label.
func (f *Filter) Name() string {
	return fmt.Sprintf("MorphologicalFilter_%s_%d", f.op, len(f.element))
}

// Process applies the configured operation. Opening and closing run the two
// base operations in sequence through sub-filters sharing the same element.
func (f *Filter) Process(input []float64) []float64 {
	if len(input) == 0 {
		return []float64{}
	}

	switch f.op {
	case Erosion:
		return f.erode(input)
	case Dilation:
		return f.dilate(input)
	case Opening:
		sub := Filter{op: Dilation, element: f.element}
		return sub.dilate(f.erode(input))
	case Closing:
		sub := Filter{op: Erosion, element: f.element}
		return sub.erode(f.dilate(input))
	default:
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}
}

// erode takes the minimum of signal-minus-element over all element offsets
// that land inside the signal. Indices with no in-range offset keep the
// input value.
func (f *Filter) erode(input []float64) []float64 {
	out := make([]float64, len(input))
	half := len(f.element) / 2

	for i := range input {
		minVal := math.Inf(1)
		for j, e := range f.element {
			idx := i - half + j
			if idx < 0 || idx >= len(input) {
				continue
			}
			if v := input[idx] - e; v < minVal {
				minVal = v
			}
		}
		if math.IsInf(minVal, 1) {
			minVal = input[i]
		}
		out[i] = minVal
	}

	return out
}

// dilate is the max-plus dual of erode.
func (f *Filter) dilate(input []float64) []float64 {
	out := make([]float64, len(input))
	half := len(f.element) / 2

	for i := range input {
		maxVal := math.Inf(-1)
		for j, e := range f.element {
			idx := i - half + j
			if idx < 0 || idx >= len(input) {
				continue
			}
			if v := input[idx] + e; v > maxVal {
				maxVal = v
			}
		}
		if math.IsInf(maxVal, -1) {
			maxVal = input[i]
		}
		out[i] = maxVal
	}

	return out
}
