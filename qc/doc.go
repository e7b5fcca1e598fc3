// Package qc runs the quality-control pipeline over one or more uniformly
// sampled series.
//
// Basic masks zero gaps, lone-point spikes and dropouts of every series.
// Extended builds on Basic and re-detects statistical spikes in sliding
// windows of the demeaned series, either within each series, across all
// series, or both. Apply repairs and tapers series with their masks.
//
// A Processor carries the logger used for warnings and the degree of
// per-series parallelism:
//
//	p := qc.New(qc.WithLogger(logger))
//	masks, err := p.Extended(series, mask.DefaultDef(), qc.ModeBoth)
package qc
