package mask

import (
	"fmt"

	"github.com/cwbudde/algo-qc/qc/segment"
)

// Mask marks the bad sample ranges of one series. A nil *Mask behaves like
// an empty mask in every read-only method.
type Mask struct {
	Def  Def
	Segs segment.Set
}

// New returns an empty mask carrying def.
func New(def Def) *Mask {
	return &Mask{Def: def}
}

// FromSet returns a mask carrying def and a copy of segs.
func FromSet(def Def, segs segment.Set) *Mask {
	return &Mask{Def: def, Segs: segs.Clone()}
}

func (m *Mask) segs() segment.Set {
	if m == nil {
		return nil
	}
	return m.Segs
}

// NSeg returns the number of masked segments.
func (m *Mask) NSeg() int {
	return len(m.segs())
}

// AllValid reports whether no sample is masked.
func (m *Mask) AllValid() bool {
	return m.NSeg() < 1
}

// AllMasked reports whether a single segment covers all npts samples.
func (m *Mask) AllMasked(npts int) bool {
	s := m.segs()
	return npts > 0 && len(s) == 1 && s[0].Start <= 0 && s[0].End >= npts-1
}

// Count returns the number of masked samples.
func (m *Mask) Count() int {
	return m.segs().Count()
}

// Copy returns a deep copy of m, including its definition.
func (m *Mask) Copy() *Mask {
	if m == nil {
		return nil
	}
	return &Mask{Def: m.Def, Segs: m.Segs.Clone()}
}

// Validate reports whether the segments are ascending, non-empty and
// separated by at least one unmasked sample.
func (m *Mask) Validate() error {
	if err := m.segs().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMask, err)
	}
	return nil
}

// Add merges segs into m in place.
func (m *Mask) Add(segs segment.Set) {
	m.Segs = segment.Merge(m.Segs, segs)
}

// Offset shifts every segment bound by delta.
func (m *Mask) Offset(delta int) {
	if m == nil {
		return
	}
	for i := range m.Segs {
		m.Segs[i].Start += delta
		m.Segs[i].End += delta
	}
}

// Interval returns the masked parts of [istart, iend], with the window
// first clipped to [0, npts-1]. When relative is false the result is
// expressed in window coordinates, the clipped istart becoming index 0;
// otherwise the series' own indices are kept.
func (m *Mask) Interval(npts, istart, iend int, relative bool) *Mask {
	out := &Mask{}
	if m != nil {
		out.Def = m.Def
	}

	istart = max(istart, 0)
	iend = min(iend, npts-1)
	if iend < istart {
		return out
	}

	out.Segs = segment.Clip(m.segs(), istart, iend)
	if !relative {
		out.Offset(-istart)
	}

	return out
}

// CheckSegment reports whether any masked segment overlaps [istart, iend]
// by at least minLen samples.
func (m *Mask) CheckSegment(istart, iend, minLen int) bool {
	return segment.ContainsRun(m.segs(), istart, iend, minLen)
}

// Unmasked returns the runs of [0, npts-1] that m leaves unmasked.
func (m *Mask) Unmasked(npts int) segment.Set {
	return segment.Complement(m.segs(), npts)
}

// Merge returns the union of a and b as a new mask. When both are empty the
// result carries a's definition; when only one has segments it is copied;
// otherwise the result carries b's definition.
func Merge(a, b *Mask) *Mask {
	switch {
	case a.AllValid() && b.AllValid():
		if a == nil {
			a = b
		}
		if a == nil {
			return &Mask{}
		}
		return New(a.Def)
	case b.AllValid():
		return a.Copy()
	case a.AllValid():
		return b.Copy()
	}

	return &Mask{Def: b.Def, Segs: segment.Merge(a.Segs, b.Segs)}
}
