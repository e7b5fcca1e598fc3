package segment

import (
	"fmt"
	"slices"
)

// Segment is an inclusive range of sample indices.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of samples covered by s.
func (s Segment) Len() int {
	return s.End - s.Start + 1
}

// Overlap returns the number of samples shared by s and the inclusive
// range [start, end]. Non-intersecting ranges yield 0.
func (s Segment) Overlap(start, end int) int {
	lo := max(s.Start, start)
	hi := min(s.End, end)
	if hi < lo {
		return 0
	}

	return hi - lo + 1
}

// Set is an ordered collection of segments. A valid Set has ascending
// starts and no two segments that overlap or touch.
type Set []Segment

// Count returns the total number of samples covered by the set.
func (s Set) Count() int {
	n := 0
	for _, seg := range s {
		n += seg.Len()
	}

	return n
}

// Clone returns a copy of s that shares no storage with it.
func (s Set) Clone() Set {
	if len(s) == 0 {
		return nil
	}

	return slices.Clone(s)
}

// Validate reports the first violated ordering invariant, or nil.
func (s Set) Validate() error {
	for i, seg := range s {
		if seg.Start > seg.End {
			return fmt.Errorf("segment %d: start %d > end %d", i, seg.Start, seg.End)
		}

		if i > 0 && seg.Start <= s[i-1].End+1 {
			return fmt.Errorf("segment %d [%d,%d] touches or overlaps [%d,%d]",
				i, seg.Start, seg.End, s[i-1].Start, s[i-1].End)
		}
	}

	return nil
}

// Merge returns the union of a and b. Both inputs must already be valid
// sets; the result is valid and shares no storage with either input.
// Segments separated by no gap are coalesced.
func Merge(a, b Set) Set {
	if len(a) == 0 {
		return b.Clone()
	}

	if len(b) == 0 {
		return a.Clone()
	}

	out := make(Set, len(a), len(a)+len(b))
	copy(out, a)

	for _, probe := range b {
		i := insertionIndex(out, 0, len(out), probe.Start)
		if i > 0 && out[i-1].End+1 >= probe.Start {
			i--
		}

		ins := probe
		j := i
		for j < len(out) && ins.End+1 >= out[j].Start {
			ins.Start = min(ins.Start, out[j].Start)
			ins.End = max(ins.End, out[j].End)
			j++
		}

		out = slices.Replace(out, i, j, ins)
	}

	return slices.Clip(out)
}

// insertionIndex returns the first index in s[lo:hi] whose start is at
// least start-1, or hi when there is none.
func insertionIndex(s Set, lo, hi, start int) int {
	if lo >= hi {
		return lo
	}

	mid := lo + (hi-lo)/2
	if s[mid].Start >= start-1 {
		return insertionIndex(s, lo, mid, start)
	}

	return insertionIndex(s, mid+1, hi, start)
}

// firstEndingAtOrAfter returns the first index in s[lo:hi] whose end is
// at least pos, or hi when there is none.
func firstEndingAtOrAfter(s Set, lo, hi, pos int) int {
	if lo >= hi {
		return lo
	}

	mid := lo + (hi-lo)/2
	if s[mid].End >= pos {
		return firstEndingAtOrAfter(s, lo, mid, pos)
	}

	return firstEndingAtOrAfter(s, mid+1, hi, pos)
}

// ContainsRun reports whether some segment of s overlaps [start, end] by at
// least minLen samples. The overlap is clipped to the query range, so a long
// segment that only grazes the query does not count. minLen below 1 is
// treated as 1.
func ContainsRun(s Set, start, end, minLen int) bool {
	if len(s) == 0 || end < start {
		return false
	}

	minLen = max(minLen, 1)
	if end-start+1 < minLen {
		return false
	}

	for i := firstEndingAtOrAfter(s, 0, len(s), start); i < len(s) && s[i].Start <= end; i++ {
		if s[i].Overlap(start, end) >= minLen {
			return true
		}
	}

	return false
}

// FromSortedIndices collapses an ascending list of sample indices into a
// set, joining indices that follow each other directly.
func FromSortedIndices(indices []int) Set {
	if len(indices) == 0 {
		return nil
	}

	var out Set

	cur := Segment{Start: indices[0], End: indices[0]}
	for _, idx := range indices[1:] {
		if idx == cur.End+1 {
			cur.End = idx
			continue
		}

		if idx <= cur.End {
			continue
		}

		out = append(out, cur)
		cur = Segment{Start: idx, End: idx}
	}

	return append(out, cur)
}

// Complement returns the runs of [0, npts-1] not covered by s. Segments
// reaching outside the range are clipped.
func Complement(s Set, npts int) Set {
	if npts <= 0 {
		return nil
	}

	var out Set

	next := 0
	for _, seg := range s {
		if seg.End < next {
			continue
		}

		if seg.Start >= npts {
			break
		}

		if seg.Start > next {
			out = append(out, Segment{Start: next, End: seg.Start - 1})
		}

		next = seg.End + 1
	}

	if next < npts {
		out = append(out, Segment{Start: next, End: npts - 1})
	}

	return out
}

// Clip returns the parts of s that fall inside [lo, hi]. Segments of a
// valid set are disjoint, so their clipped parts are too and need no
// merging.
func Clip(s Set, lo, hi int) Set {
	if len(s) == 0 || hi < lo {
		return nil
	}

	var out Set
	for i := firstEndingAtOrAfter(s, 0, len(s), lo); i < len(s) && s[i].Start <= hi; i++ {
		out = append(out, Segment{Start: max(s[i].Start, lo), End: min(s[i].End, hi)})
	}

	return out
}
