package detect

import "errors"

// ErrTooFewSeries reports that cross-series statistics need more series
// than were given. It is a warning: the accompanying result is valid and
// holds no detections.
var ErrTooFewSeries = errors.New("too few series for cross-series statistics")
