package lexcloud

import (
	"errors"
	"fmt"
)

// DegenerateRangeError reports a source range with zero width: every sample
// in the source collection had the same value, so the linear projection's
// denominator would be zero.
type DegenerateRangeError struct {
	// Value is the single value every source sample collapsed to.
	Value float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate source range: every sample equals %g", e.Value)
}

// Rescale returns a function that resizes values from the range spanned by
// source to the range spanned by target.
//
// Both arguments are sample collections, not (min, max) pairs: the endpoints
// are derived as min and max over each collection. The returned function is
// affine and exact at the endpoints — f(srcMin) == tgtMin and
// f(srcMax) == tgtMax — and extrapolates linearly for values outside the
// source range rather than clamping, so outliers keep scaling
// proportionally.
//
// If every source sample has the same value the projection is undefined and
// Rescale returns a *DegenerateRangeError instead of dividing by zero.
func Rescale(source, target []float64) (func(float64) float64, error) {
	if len(source) == 0 || len(target) == 0 {
		return nil, errors.New("rescale: source and target must be non-empty")
	}
	srcMin, srcMax := minMax(source)
	tgtMin, tgtMax := minMax(target)
	if srcMin == srcMax {
		return nil, &DegenerateRangeError{Value: srcMin}
	}
	return func(value float64) float64 {
		return ((value-srcMin)*(tgtMax-tgtMin))/(srcMax-srcMin) + tgtMin
	}, nil
}

func minMax(samples []float64) (lo, hi float64) {
	lo, hi = samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
