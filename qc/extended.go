package qc

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-qc/dsp/buffer"
	"github.com/cwbudde/algo-qc/qc/detect"
	"github.com/cwbudde/algo-qc/qc/mask"
	"github.com/cwbudde/algo-qc/qc/segment"
)

// extendedRun is the state of one Extended call.
type extendedRun struct {
	series [][]float64
	def    mask.Def
	mode   Mode
	plans  []windowPlan
	masks  []*mask.Mask
	means  []float64

	crossSkipped bool
}

// Extended masks statistical spikes on top of Basic.
//
// Each series is cut into sliding windows of def.NSamp samples overlapping
// by def.NOver. In each of def.NIter passes every window of every series is
// copied, demeaned with the series' current mean while leaving masked
// samples alone, and searched for spikes by the detectors mode selects.
// Detections are merged into the running masks window by window, and the
// means are recomputed from the updated masks after each pass.
//
// ModeCross on series of different lengths fails with ErrLengthMismatch;
// ModeBoth falls back to ModeSingle with a warning. Too few series for the
// cross-series statistic is a warning, not an error.
func (p *Processor) Extended(series [][]float64, def mask.Def, mode Mode) ([]*mask.Mask, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	if mode != ModeSingle && !sameLength(series) {
		if mode == ModeCross {
			return nil, fmt.Errorf("%w: cross-series detection needs series of equal length", ErrLengthMismatch)
		}

		p.logger.Warn("series lengths differ, detecting spikes per series only",
			zap.Stringer("requested", mode))
		mode = ModeSingle
	}

	masks, err := p.Basic(series, []mask.Def{def})
	if err != nil {
		return nil, err
	}

	run := &extendedRun{
		series: series,
		def:    def,
		mode:   mode,
		plans:  make([]windowPlan, len(series)),
		masks:  masks,
		means:  make([]float64, len(series)),
	}

	nwin := 0
	clamped := false
	for i, data := range series {
		plan, c := planWindows(len(data), def)
		run.plans[i] = plan
		nwin = max(nwin, plan.nwin)
		clamped = clamped || c
		run.means[i] = masks[i].Mean(data)
	}

	if clamped {
		p.logger.Warn("window overlap clamped",
			zap.Int("nover", def.NOver), zap.Int("nsamp", def.NSamp), zap.Int("drop_thr", def.DropThr))
	}

	for pass := range def.NIter {
		for k := range nwin {
			if err := p.scanWindow(run, k); err != nil {
				return nil, err
			}
		}

		masked := 0
		for i, data := range series {
			run.means[i] = run.masks[i].Mean(data)
			masked += run.masks[i].Count()
		}

		p.logger.Debug("extended qc pass done",
			zap.Int("pass", pass+1), zap.Int("windows", nwin), zap.Int("masked", masked))
	}

	return run.masks, nil
}

// scanWindow runs the selected detectors over window k of every series
// that reaches it and merges the detections into the running masks.
func (p *Processor) scanWindow(run *extendedRun, k int) error {
	n := len(run.series)

	work := make([][]float64, n)
	local := make([]*mask.Mask, n)
	starts := make([]int, n)
	bufs := make([]*buffer.Buffer, n)

	defer func() {
		for _, b := range bufs {
			p.scratch.Put(b)
		}
	}()

	for i, data := range run.series {
		if k >= run.plans[i].nwin {
			continue
		}

		ws, we := run.plans[i].bounds(k)

		b := p.scratch.Get(we - ws + 1)
		copy(b.Samples(), data[ws:we+1])
		bufs[i] = b

		local[i] = run.masks[i].Interval(len(data), ws, we, false)
		local[i].Demean(b.Samples(), run.means[i])

		work[i] = b.Samples()
		starts[i] = ws
	}

	found := make([]segment.Set, n)

	if run.mode.single() {
		err := p.forEach(n, func(i int) error {
			if work[i] != nil {
				found[i] = segment.FromSortedIndices(detect.FindSingleSeriesSpikes(work[i], local[i], run.def))
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if run.mode.cross() {
		hits, err := detect.FindMultiArraySpikes(work, local, run.def)
		switch {
		case errors.Is(err, detect.ErrTooFewSeries):
			if !run.crossSkipped {
				p.logger.Warn("cross-series spike detection skipped", zap.Error(err))
				run.crossSkipped = true
			}
		case err != nil:
			return err
		}

		for i, idx := range hits {
			found[i] = segment.Merge(found[i], segment.FromSortedIndices(idx))
		}
	}

	for i, segs := range found {
		if len(segs) == 0 {
			continue
		}

		hit := &mask.Mask{Def: run.def, Segs: segs}
		hit.Offset(starts[i])
		run.masks[i] = mask.Merge(run.masks[i], hit)
	}

	return nil
}

func sameLength(series [][]float64) bool {
	for _, s := range series[1:] {
		if len(s) != len(series[0]) {
			return false
		}
	}
	return true
}
