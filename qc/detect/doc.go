// Package detect finds bad samples in sampled series.
//
// The detectors are pure functions over sample slices:
//
//   - [FindPoints]: zero gaps and lone-point spikes
//   - [FindSequences]: dropouts, runs of identical samples
//   - [FindSingleSeriesSpikes]: differences that exceed percentile-based
//     local and global thresholds of one series
//   - [FindMultiArraySpikes]: samples that exceed a level aggregated over
//     several series
//
// Segment-producing detectors return a [segment.Set]; the statistical ones
// return ascending sample indices, which [segment.FromSortedIndices] turns
// into a set.
package detect
