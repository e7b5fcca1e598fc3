package detect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-qc/qc/mask"
	"github.com/cwbudde/algo-qc/stats/percentile"
)

// minSeries returns how many series the aggregation of def needs.
func minSeries(def mask.Def) int {
	if def.SpikeStat == mask.StatAverage {
		return 2
	}
	return 3
}

// FindMultiArraySpikes flags samples that are large compared with the other
// series. For every series with at least two samples and some unmasked data,
// the largest absolute sample and the largest neighbour difference over its
// unmasked runs are taken. Those maxima are aggregated across series, by the
// def.SpikeVal percentile or by the mean of their magnitudes, and scaled by
// def.SpikeThr. Unmasked samples above the resulting level, on the dataset
// def.SpikeDataset selects, are returned per series in ascending order.
//
// masks[i] belongs to data[i]; a missing or nil mask means no masked data.
// When fewer series are given than the aggregation needs, the result is
// empty and the error wraps ErrTooFewSeries.
func FindMultiArraySpikes(data [][]float64, masks []*mask.Mask, def mask.Def) ([][]int, error) {
	out := make([][]int, len(data))

	if need := minSeries(def); len(data) < need {
		return out, fmt.Errorf("%w: %s aggregation needs %d, have %d",
			ErrTooFewSeries, def.SpikeStat, need, len(data))
	}

	type prepared struct {
		diff  []float64
		valid []bool
	}

	prep := make([]*prepared, len(data))

	var maxData, maxDiff []float64
	for i, d := range data {
		if len(d) < 2 {
			continue
		}

		var m *mask.Mask
		if i < len(masks) {
			m = masks[i]
		}

		runs := m.Unmasked(len(d))
		if len(runs) == 0 {
			continue
		}

		diff, valid := neighbourDiffs(d, runs)

		var md, mf float64
		for _, r := range runs {
			md = math.Max(md, vecmath.MaxAbs(d[r.Start:r.End+1]))
			mf = math.Max(mf, floats.Max(diff[r.Start:r.End+1]))
		}

		maxData = append(maxData, md)
		maxDiff = append(maxDiff, mf)
		prep[i] = &prepared{diff: diff, valid: valid}
	}

	if len(maxData) == 0 {
		return out, nil
	}

	dataLevel := aggregate(def, maxData) * def.SpikeThr
	diffLevel := aggregate(def, maxDiff) * def.SpikeThr

	for i, p := range prep {
		if p == nil {
			continue
		}

		for j, ok := range p.valid {
			if !ok {
				continue
			}

			diffHit := p.diff[j] > diffLevel
			dataHit := math.Abs(data[i][j]) > dataLevel

			var hit bool
			switch def.SpikeDataset {
			case mask.DatasetDiff:
				hit = diffHit
			case mask.DatasetData:
				hit = dataHit
			case mask.DatasetAll:
				hit = diffHit || dataHit
			}

			if hit {
				out[i] = append(out[i], j)
			}
		}
	}

	return out, nil
}

func aggregate(def mask.Def, maxima []float64) float64 {
	if def.SpikeStat == mask.StatAverage {
		mags := make([]float64, len(maxima))
		for i, v := range maxima {
			mags[i] = math.Abs(v)
		}
		return stat.Mean(mags, nil)
	}

	return percentile.Percentile(def.SpikeVal, maxima)
}
