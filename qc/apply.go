package qc

import (
	"fmt"

	"github.com/cwbudde/algo-qc/qc/mask"
)

// Apply repairs every series in place with its mask and then tapers it:
// masked segments are fixed according to the mask's policy, segments of at
// least DropThr samples are zeroed and faded back in over NTaper samples,
// also faded out before the segment with zeroPhase. With grow the tapered
// ranges are added to the masks. A nil mask leaves its series untouched.
func (p *Processor) Apply(series [][]float64, masks []*mask.Mask, zeroPhase, grow bool) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	if len(masks) != len(series) {
		return fmt.Errorf("%w: %d masks for %d series", ErrLengthMismatch, len(masks), len(series))
	}

	return p.forEach(len(series), func(i int) error {
		m := masks[i]
		if m == nil {
			return nil
		}

		if err := m.Fix(series[i]); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}

		if err := m.Taper(series[i], zeroPhase, grow); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}

		return nil
	})
}
