package detect

import "github.com/cwbudde/algo-qc/qc/segment"

// FindSequences flags dropouts: runs of at least thresh identical samples.
//
// Runs are tracked on the first differences of data, so a run of L equal
// samples starting at s is reported as [s, s+L-2], one short of its last
// sample, unless it reaches the end of data, where it is reported as
// [s, len(data)-1]. Reported runs that touch are joined.
func FindSequences(data []float64, thresh int) segment.Set {
	n := len(data)
	if n < 2 {
		return nil
	}

	var out segment.Set
	emit := func(seg segment.Segment) {
		if k := len(out) - 1; k >= 0 && out[k].End+1 == seg.Start {
			out[k].End = seg.End
			return
		}
		out = append(out, seg)
	}

	start := -1
	for i := 0; i < n-1; i++ {
		if data[i+1] == data[i] {
			if start < 0 {
				start = i
			}
			continue
		}

		if start >= 0 && i-start+1 >= thresh {
			emit(segment.Segment{Start: start, End: i - 1})
		}
		start = -1
	}

	if start >= 0 && n-start >= thresh {
		emit(segment.Segment{Start: start, End: n - 1})
	}

	return out
}
