package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of a sine with the given period
// in samples.
func DeterministicSine(period float64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Steps concatenates constant runs: runs[i] samples of values[i].
func Steps(values []float64, runs []int) []float64 {
	var out []float64
	for i, v := range values {
		for range runs[i] {
			out = append(out, v)
		}
	}
	return out
}

// WithSpikes returns a copy of data with amplitude added at each index.
func WithSpikes(data []float64, amplitude float64, indices ...int) []float64 {
	out := append([]float64(nil), data...)
	for _, i := range indices {
		if i >= 0 && i < len(out) {
			out[i] += amplitude
		}
	}
	return out
}
