package qc

import "errors"

var (
	// ErrNoSeries is returned when a pipeline stage is called without series.
	ErrNoSeries = errors.New("qc: no series")
	// ErrLengthMismatch is returned when series, definitions or masks do not
	// line up, or when cross-series detection is requested on series of
	// different lengths.
	ErrLengthMismatch = errors.New("qc: length mismatch")
	// ErrInvalidMode is returned for an unknown detection mode.
	ErrInvalidMode = errors.New("qc: invalid mode")
)
