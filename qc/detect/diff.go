package detect

import (
	"math"

	"github.com/cwbudde/algo-qc/qc/segment"
)

// neighbourDiffs returns, for every sample inside runs, the smaller of its
// absolute differences to the previous and next sample of the same run. The
// first and last sample of a run use their only neighbour; a one-sample run
// gets 0. valid marks the samples inside runs.
func neighbourDiffs(data []float64, runs segment.Set) (diff []float64, valid []bool) {
	diff = make([]float64, len(data))
	valid = make([]bool, len(data))

	for _, run := range runs {
		a, b := run.Start, run.End
		for i := a; i <= b; i++ {
			valid[i] = true
		}

		if a == b {
			continue
		}

		diff[a] = math.Abs(data[a] - data[a+1])
		diff[b] = math.Abs(data[b] - data[b-1])
		for i := a + 1; i < b; i++ {
			diff[i] = math.Min(math.Abs(data[i]-data[i-1]), math.Abs(data[i]-data[i+1]))
		}
	}

	return diff, valid
}
