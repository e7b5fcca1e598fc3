package qc

import "github.com/cwbudde/algo-qc/qc/mask"

// windowPlan splits npts samples into nwin windows of nsamp samples, one
// starting every ndiff samples. The last window may be short.
type windowPlan struct {
	npts  int
	nsamp int
	ndiff int
	nwin  int
}

// planWindows derives the sliding windows for a series of npts samples.
// NSamp of 0 or above npts gives a single window. The overlap is raised to
// at least DropThr and kept below the window length; clamped reports
// whether that changed it on a series needing more than one window.
func planWindows(npts int, def mask.Def) (plan windowPlan, clamped bool) {
	if npts <= 0 {
		return windowPlan{}, false
	}

	nsamp := def.NSamp
	if nsamp <= 0 || nsamp > npts {
		nsamp = npts
	}

	nover := max(def.NOver, def.DropThr)
	if nover >= nsamp {
		nover = nsamp - 1
	}

	ndiff := nsamp - nover
	nwin := 1
	if rest := npts - nsamp; rest > 0 {
		nwin += (rest + ndiff - 1) / ndiff
	}

	plan = windowPlan{npts: npts, nsamp: nsamp, ndiff: ndiff, nwin: nwin}
	return plan, nwin > 1 && nover != def.NOver
}

// bounds returns the inclusive sample range of window k.
func (w windowPlan) bounds(k int) (start, end int) {
	start = k * w.ndiff
	return start, min(start+w.nsamp, w.npts) - 1
}
