package mask

import "fmt"

// FixPolicy selects how FixSegments repairs masked samples.
type FixPolicy int

const (
	// FixNone leaves masked samples untouched.
	FixNone FixPolicy = -1
	// FixZero zeroes every masked segment.
	FixZero FixPolicy = 0
	// FixInterpolate bridges segments shorter than the dropout threshold
	// linearly and zeroes the longer ones.
	FixInterpolate FixPolicy = 1
)

// SpikeStat selects how statistical spike detectors aggregate samples into
// a reference level.
type SpikeStat int

const (
	// StatPercentile uses the SpikeVal percentile.
	StatPercentile SpikeStat = iota
	// StatAverage uses the mean of absolute values.
	StatAverage
)

// SpikeDataset selects which signal cross-series spike detection thresholds.
type SpikeDataset int

const (
	// DatasetDiff thresholds the smaller of the backward and forward
	// first differences.
	DatasetDiff SpikeDataset = iota
	// DatasetData thresholds absolute sample values.
	DatasetData
	// DatasetAll flags a sample when either test fires.
	DatasetAll
)

// Def holds the QC parameters for one run. It is copied into every mask
// built from it.
type Def struct {
	// SingleTraceSpikeThr is the ratio a lone-point spike must exceed
	// relative to the neighbouring differences.
	SingleTraceSpikeThr float64 `yaml:"single_trace_spike_thr"`
	// DropThr is the minimum run length of a dropout and the segment length
	// separating interpolated from zeroed repairs and tapered segments.
	DropThr int       `yaml:"drop_thr"`
	Fix     FixPolicy `yaml:"fix"`
	// NTaper is the cosine taper length in samples.
	NTaper int `yaml:"ntaper"`

	SpikeThr     float64      `yaml:"spike_thr"`
	SpikeVal     float64      `yaml:"spike_val"`
	SpikeNPWin   int          `yaml:"spike_npwin"`
	SpikeStat    SpikeStat    `yaml:"spike_stat"`
	SpikeDataset SpikeDataset `yaml:"spike_dset"`

	// NSamp, NOver and NIter control the sliding windows of extended QC.
	// NSamp of 0 processes each series as a single window.
	NSamp int `yaml:"nsamp"`
	NOver int `yaml:"nover"`
	NIter int `yaml:"niter"`
}

// DefaultDef returns the parameter set used when no definition file is given.
func DefaultDef() Def {
	return Def{
		SingleTraceSpikeThr: 10,
		DropThr:             4,
		Fix:                 FixInterpolate,
		NTaper:              10,
		SpikeThr:            10,
		SpikeVal:            50,
		SpikeNPWin:          50,
		SpikeStat:           StatPercentile,
		SpikeDataset:        DatasetDiff,
		NSamp:               1000,
		NOver:               50,
		NIter:               1,
	}
}

// Validate reports the first malformed parameter, wrapped in ErrInvalidDef.
func (d Def) Validate() error {
	switch {
	case d.SingleTraceSpikeThr <= 0:
		return fmt.Errorf("%w: single_trace_spike_thr must be > 0: %g", ErrInvalidDef, d.SingleTraceSpikeThr)
	case d.DropThr < 1:
		return fmt.Errorf("%w: drop_thr must be >= 1: %d", ErrInvalidDef, d.DropThr)
	case !d.Fix.valid():
		return fmt.Errorf("%w: unknown fix policy %d", ErrInvalidDef, int(d.Fix))
	case d.NTaper < 0:
		return fmt.Errorf("%w: ntaper must be >= 0: %d", ErrInvalidDef, d.NTaper)
	case d.SpikeThr <= 0:
		return fmt.Errorf("%w: spike_thr must be > 0: %g", ErrInvalidDef, d.SpikeThr)
	case d.SpikeVal < 0 || d.SpikeVal > 100:
		return fmt.Errorf("%w: spike_val must be in [0,100]: %g", ErrInvalidDef, d.SpikeVal)
	case d.SpikeNPWin < 1:
		return fmt.Errorf("%w: spike_npwin must be >= 1: %d", ErrInvalidDef, d.SpikeNPWin)
	case !d.SpikeStat.valid():
		return fmt.Errorf("%w: unknown spike_stat %d", ErrInvalidDef, int(d.SpikeStat))
	case !d.SpikeDataset.valid():
		return fmt.Errorf("%w: unknown spike_dset %d", ErrInvalidDef, int(d.SpikeDataset))
	case d.NSamp < 0 || d.NOver < 0 || d.NIter < 0:
		return fmt.Errorf("%w: nsamp, nover and niter must be >= 0: %d/%d/%d",
			ErrInvalidDef, d.NSamp, d.NOver, d.NIter)
	}

	return nil
}
