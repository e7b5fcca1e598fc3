package mask

import "errors"

var (
	// ErrInvalidDef reports a malformed QC definition.
	ErrInvalidDef = errors.New("invalid qc definition")
	// ErrIndexRange reports a segment reaching outside its series.
	ErrIndexRange = errors.New("segment index out of range")
	// ErrInvalidMask reports a mask whose segments are unordered, overlap or touch.
	ErrInvalidMask = errors.New("invalid mask")
)
