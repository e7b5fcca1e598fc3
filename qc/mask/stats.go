package mask

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Mean returns the mean of the unmasked samples of data. A fully masked
// series has mean 0.
func (m *Mask) Mean(data []float64) float64 {
	n := len(data)
	if n == 0 || m.AllMasked(n) {
		return 0
	}

	if m.AllValid() {
		return vecmath.Sum(data) / float64(n)
	}

	var (
		sum   float64
		count int
	)
	for _, run := range m.Unmasked(n) {
		sum += vecmath.Sum(data[run.Start : run.End+1])
		count += run.Len()
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// Demean subtracts mean from the unmasked samples of data in place.
// Masked samples keep their values.
func (m *Mask) Demean(data []float64, mean float64) {
	n := len(data)
	if n == 0 || m.AllMasked(n) {
		return
	}

	if m.AllValid() {
		floats.AddConst(-mean, data)
		return
	}

	for _, run := range m.Unmasked(n) {
		floats.AddConst(-mean, data[run.Start:run.End+1])
	}
}
