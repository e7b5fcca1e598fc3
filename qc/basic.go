package qc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-qc/qc/detect"
	"github.com/cwbudde/algo-qc/qc/mask"
	"github.com/cwbudde/algo-qc/qc/segment"
)

// Basic masks the zero gaps, lone-point spikes and dropouts of every series.
//
// defs holds one definition per series, or a single definition shared by
// all of them. Every returned mask carries the definition it was built
// with. An empty series is reported as a warning and gets an empty mask.
func (p *Processor) Basic(series [][]float64, defs []mask.Def) ([]*mask.Mask, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	if len(defs) != 1 && len(defs) != len(series) {
		return nil, fmt.Errorf("%w: %d definitions for %d series", ErrLengthMismatch, len(defs), len(series))
	}

	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
	}

	masks := make([]*mask.Mask, len(series))
	err := p.forEach(len(series), func(i int) error {
		def := defs[0]
		if len(defs) > 1 {
			def = defs[i]
		}

		masks[i] = p.basic(i, series[i], def)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return masks, nil
}

func (p *Processor) basic(index int, data []float64, def mask.Def) *mask.Mask {
	if len(data) == 0 {
		p.logger.Warn("empty series left unmasked", zap.Int("series", index))
		return mask.New(def)
	}

	points := detect.FindPoints(data, def.SingleTraceSpikeThr)
	dropouts := detect.FindSequences(data, def.DropThr)

	return &mask.Mask{Def: def, Segs: segment.Merge(points, dropouts)}
}
