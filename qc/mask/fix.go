package mask

import (
	"fmt"

	"github.com/cwbudde/algo-qc/dsp/interp"
	"github.com/cwbudde/algo-qc/qc/segment"
)

// FixSegments repairs the samples of data covered by segs. With a positive
// policy, segments shorter than thresh are bridged linearly between the
// samples just outside them (held flat when only one side exists, zeroed
// when neither does); every other segment is zeroed.
//
// Each segment is range-checked before it is repaired. On the first one
// reaching outside data an error wrapping ErrIndexRange is returned; the
// segments before it have already been repaired.
func FixSegments(data []float64, thresh int, policy FixPolicy, segs segment.Set) error {
	n := len(data)
	for i, seg := range segs {
		if seg.Start < 0 || seg.End >= n || seg.Start > seg.End {
			return fmt.Errorf("%w: segment %d [%d,%d] outside [0,%d]",
				ErrIndexRange, i, seg.Start, seg.End, n-1)
		}

		gap := data[seg.Start : seg.End+1]
		if policy <= 0 || seg.Len() >= thresh {
			clear(gap)
			continue
		}

		left := seg.Start > 0
		right := seg.End < n-1
		switch {
		case left && right:
			interp.FillLinear(gap, data[seg.Start-1], data[seg.End+1])
		case left:
			interp.FillFlat(gap, data[seg.Start-1])
		case right:
			interp.FillFlat(gap, data[seg.End+1])
		default:
			clear(gap)
		}
	}

	return nil
}

// Fix repairs data with the mask's own threshold and policy. FixNone
// leaves data untouched.
func (m *Mask) Fix(data []float64) error {
	if m.AllValid() || m.Def.Fix == FixNone {
		return nil
	}

	return FixSegments(data, m.Def.DropThr, m.Def.Fix, m.Segs)
}
