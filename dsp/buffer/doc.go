// Package buffer provides pooled float64 scratch buffers.
//
// Order statistics sort a padded copy of their input, and windowed QC passes
// work on demeaned copies of each window; both borrow their storage from a
// [Pool] instead of allocating per call.
package buffer
