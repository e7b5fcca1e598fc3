package detect

import (
	"math"

	"github.com/cwbudde/algo-qc/qc/segment"
)

// ZeroTolerance is the magnitude below which a sample counts as zero when
// looking for zero gaps.
const ZeroTolerance = 1e-3

// FindPoints flags single-sample defects.
//
// A zero gap is an interior sample within ZeroTolerance of zero whose two
// neighbours share a sign. A point spike is a sample at least two away
// from either end whose backward and forward differences have opposite
// signs, the smaller of the two exceeding thresh times the larger of the
// differences one step further out.
func FindPoints(data []float64, thresh float64) segment.Set {
	n := len(data)
	if n < 3 {
		return nil
	}

	var idx []int
	for i := 1; i <= n-2; i++ {
		if math.Abs(data[i]) < ZeroTolerance && data[i+1]*data[i-1] > 0 {
			idx = append(idx, i)
			continue
		}

		if i < 2 || i > n-3 {
			continue
		}

		before := data[i] - data[i-1]
		after := data[i+1] - data[i]
		if before*after >= 0 {
			continue
		}

		outer := math.Max(math.Abs(data[i-1]-data[i-2]), math.Abs(data[i+2]-data[i+1]))
		if math.Min(math.Abs(before), math.Abs(after)) > thresh*outer {
			idx = append(idx, i)
		}
	}

	return segment.FromSortedIndices(idx)
}
