// Package window generates cosine taper ramps and applies them to sample
// blocks.
//
// A rising ramp fades a block in from zero; a falling ramp fades it out
// towards zero. Masking code uses them to smooth the edges next to zeroed
// sample runs.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Slope selects the direction of a ramp.
type Slope int

const (
	// SlopeRising ramps from 0 at the first sample towards 1.
	SlopeRising Slope = iota
	// SlopeFalling ramps from near 1 down to 0 at the last sample.
	SlopeFalling
)

// Ramp returns length half-cosine taper coefficients. For SlopeRising,
// w[i] = 0.5*(1 - cos(pi*i/length)); SlopeFalling is its mirror image.
func Ramp(length int, slope Slope) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(length)))
		if slope == SlopeFalling {
			out[length-1-i] = w
		} else {
			out[i] = w
		}
	}

	return out
}

// Taper multiplies samples in place by the leading part of a rising ramp of
// the given length (SlopeRising), or by the trailing part of a falling ramp
// (SlopeFalling). When samples is shorter than length the ramp is clipped,
// so the samples nearest the taper origin receive the same weights they
// would with an unclipped ramp.
func Taper(samples []float64, length int, slope Slope) error {
	if err := validateLength(length); err != nil {
		return err
	}

	n := min(len(samples), length)
	if n == 0 {
		return nil
	}

	coeffs := Ramp(length, slope)
	if slope == SlopeFalling {
		coeffs = coeffs[length-n:]
	} else {
		coeffs = coeffs[:n]
	}

	return ApplyCoefficientsInPlace(samples[:n], coeffs)
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}
