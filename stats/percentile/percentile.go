// Package percentile computes order statistics of sample blocks.
//
// Sorting is done with an iterative bottom-up merge sort over a copy padded
// to the next power of two with +Inf, so results (including the handling of
// ties) are identical on every platform and do not depend on the standard
// library's sort implementation.
package percentile

import (
	"math"

	"github.com/cwbudde/algo-qc/dsp/buffer"
)

// stackSize is the largest padded length sorted in fixed-size local arrays.
// Longer inputs borrow their scratch space from a pool.
const stackSize = 512

var scratch = buffer.NewPool()

// Percentile returns the value below or at which roughly p percent of data
// lies: element Rank(p, len(data)) of the ascending sorted data. p is clamped
// to [0, 100]. An empty input returns 0.
func Percentile(p float64, data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	k := Rank(p, n)

	size := nextPow2(n)
	if size <= stackSize {
		var a, b [stackSize]float64
		return sortPadded(a[:size], b[:size], data)[k]
	}

	ba := scratch.Get(size)
	bb := scratch.Get(size)
	v := sortPadded(ba.Samples(), bb.Samples(), data)[k]
	scratch.Put(ba)
	scratch.Put(bb)

	return v
}

// Rank returns the index into an ascending sorted block of n samples that
// Percentile reads: round(p*n/100) - 1, clamped to [0, n-1].
func Rank(p float64, n int) int {
	if n <= 0 {
		return 0
	}

	p = math.Max(0, math.Min(100, p))

	k := int(math.Round(p*float64(n)/100)) - 1
	if k < 0 {
		return 0
	}

	if k > n-1 {
		return n - 1
	}

	return k
}

// Sorted returns an ascending copy of data, sorted the same way Percentile
// sorts internally.
func Sorted(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	size := nextPow2(len(data))
	out := sortPadded(make([]float64, size), make([]float64, size), data)

	return append([]float64(nil), out[:len(data)]...)
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
