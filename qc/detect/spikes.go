package detect

import (
	"github.com/cwbudde/algo-qc/qc/mask"
	"github.com/cwbudde/algo-qc/stats/percentile"
)

// FindSingleSeriesSpikes returns the ascending indices of unmasked samples
// whose neighbour difference stands out within data.
//
// A reference level is the def.SpikeVal percentile of the positive neighbour
// differences of a block, times def.SpikeThr. A sample is flagged when its
// difference exceeds both the level of the whole series and a local level.
// The first and the last def.SpikeNPWin samples are each tested against one
// level computed for that block. Every sample in between is tested against
// a level recomputed for the def.SpikeNPWin samples centred on it, its own
// difference included.
func FindSingleSeriesSpikes(data []float64, m *mask.Mask, def mask.Def) []int {
	n := len(data)
	if n < 2 {
		return nil
	}

	runs := m.Unmasked(n)
	if len(runs) == 0 {
		return nil
	}

	diff, valid := neighbourDiffs(data, runs)
	scratch := make([]float64, 0, n)

	level := func(lo, hi int) (float64, bool) {
		vals := scratch[:0]
		for i := lo; i <= hi; i++ {
			if valid[i] && diff[i] > 0 {
				vals = append(vals, diff[i])
			}
		}

		if len(vals) == 0 {
			return 0, false
		}

		return percentile.Percentile(def.SpikeVal, vals) * def.SpikeThr, true
	}

	global, ok := level(0, n-1)
	if !ok {
		return nil
	}

	flagged := make([]bool, n)
	scanBlock := func(lo, hi int) {
		local, ok := level(lo, hi)
		if !ok {
			return
		}

		for i := lo; i <= hi; i++ {
			if valid[i] && diff[i] > global && diff[i] > local {
				flagged[i] = true
			}
		}
	}

	w := min(max(def.SpikeNPWin, 1), n)
	half := w / 2

	scanBlock(0, w-1)

	for c := w; c < n-w; c++ {
		if !valid[c] || diff[c] <= global {
			continue
		}

		lo := c - half
		if local, ok := level(lo, lo+w-1); ok && diff[c] > local {
			flagged[c] = true
		}
	}

	scanBlock(n-w, n-1)

	var out []int
	for i, f := range flagged {
		if f {
			out = append(out, i)
		}
	}

	return out
}
