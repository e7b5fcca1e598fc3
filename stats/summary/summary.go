// Package summary computes descriptive statistics over the unmasked parts
// of a series.
//
// Samples arrive run by run through an Accumulator, so masked samples never
// enter the moments and zero crossings are not counted across a masked gap.
// Positions are reported in series coordinates.
package summary

import (
	"math"

	"github.com/cwbudde/algo-qc/qc/segment"
)

// Summary describes the samples an Accumulator has seen.
type Summary struct {
	Count         int
	Mean          float64
	RMS           float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|Max|, |Min|)
	Variance      float64
	Skewness      float64
	Kurtosis      float64 // excess
	ZeroCrossings int
}

// Accumulator gathers moments with Welford's online update. The zero value
// is ready to use.
type Accumulator struct {
	n     int
	mean  float64
	m2    float64
	m3    float64
	m4    float64
	sumSq float64

	maxVal, minVal float64
	maxPos, minPos int

	zeroCrossings int
}

// AddRun adds one contiguous run of samples whose first sample sits at
// index offset of the series.
func (a *Accumulator) AddRun(samples []float64, offset int) {
	for i, x := range samples {
		if a.n == 0 || x > a.maxVal {
			a.maxVal, a.maxPos = x, offset+i
		}
		if a.n == 0 || x < a.minVal {
			a.minVal, a.minPos = x, offset+i
		}

		if i > 0 && samples[i-1]*x < 0 {
			a.zeroCrossings++
		}

		a.n++
		ni := float64(a.n)
		delta := x - a.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * (ni - 1)

		// M4 before M3 before M2.
		a.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*a.m2 - 4*deltaN*a.m3
		a.m3 += term1*deltaN*(ni-2) - 3*deltaN*a.m2
		a.m2 += term1
		a.mean += deltaN

		a.sumSq += x * x
	}
}

// Summary returns the statistics of everything added so far. An empty
// accumulator yields the zero Summary.
func (a *Accumulator) Summary() Summary {
	if a.n == 0 {
		return Summary{}
	}

	nf := float64(a.n)
	s := Summary{
		Count:         a.n,
		Mean:          a.mean,
		RMS:           math.Sqrt(a.sumSq / nf),
		Max:           a.maxVal,
		MaxPos:        a.maxPos,
		Min:           a.minVal,
		MinPos:        a.minPos,
		Peak:          math.Max(math.Abs(a.maxVal), math.Abs(a.minVal)),
		Variance:      a.m2 / nf,
		ZeroCrossings: a.zeroCrossings,
	}

	if s.Variance > 0 {
		s.Skewness = (a.m3 / nf) / (s.Variance * math.Sqrt(s.Variance))
		s.Kurtosis = (a.m4/nf)/(s.Variance*s.Variance) - 3
	}

	return s
}

// Runs summarises the samples of data inside runs, which must lie within
// data and be ascending.
func Runs(data []float64, runs segment.Set) Summary {
	var a Accumulator
	for _, r := range runs {
		a.AddRun(data[r.Start:r.End+1], r.Start)
	}
	return a.Summary()
}

// Of summarises all of data.
func Of(data []float64) Summary {
	var a Accumulator
	a.AddRun(data, 0)
	return a.Summary()
}
