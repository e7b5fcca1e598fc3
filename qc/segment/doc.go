// Package segment implements ordered sets of inclusive sample-index ranges.
//
// A [Set] is kept sorted by start index, and no two of its segments overlap
// or touch: adjacent ranges are always coalesced into one. Sets are the
// building block of quality-control masks, where every segment marks a run
// of bad samples.
//
// # Usage
//
//	bad := segment.FromSortedIndices([]int{3, 4, 5, 9})   // [3,5] [9,9]
//	all := segment.Merge(bad, segment.Set{{Start: 6, End: 8}}) // [3,9]
//	hit := segment.ContainsRun(all, 0, 4, 2)                // true
//
// [Merge] locates insertion points by binary search, so merging a small set
// into a large one costs O(|b| log |a|) comparisons plus the tail shifts.
package segment
