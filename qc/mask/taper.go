package mask

import (
	"github.com/cwbudde/algo-qc/dsp/window"
	"github.com/cwbudde/algo-qc/qc/segment"
)

// Taper zeroes every segment of at least Def.DropThr samples and fades the
// Def.NTaper samples following it back in with a cosine ramp. With
// zeroPhase the NTaper samples preceding the segment are faded out as well.
// Ramps are clipped at the ends of data. With grow the tapered ranges are
// merged into the mask.
func (m *Mask) Taper(data []float64, zeroPhase, grow bool) error {
	n := len(data)
	if m.AllValid() || n == 0 {
		return nil
	}

	ntaper := m.Def.NTaper

	var tapered segment.Set
	for _, seg := range m.Segs {
		if seg.Len() < m.Def.DropThr {
			continue
		}

		s := max(seg.Start, 0)
		e := min(seg.End, n-1)
		if s > e {
			continue
		}

		clear(data[s : e+1])

		if ntaper <= 0 {
			continue
		}

		if e+1 < n {
			hi := min(e+ntaper, n-1)
			if err := window.Taper(data[e+1:hi+1], ntaper, window.SlopeRising); err != nil {
				return err
			}
			tapered = append(tapered, segment.Segment{Start: e + 1, End: hi})
		}

		if zeroPhase && s > 0 {
			lo := max(s-ntaper, 0)
			if err := window.Taper(data[lo:s], ntaper, window.SlopeFalling); err != nil {
				return err
			}
			tapered = append(tapered, segment.Segment{Start: lo, End: s - 1})
		}
	}

	if grow {
		for _, r := range tapered {
			m.Add(segment.Set{r})
		}
	}

	return nil
}
