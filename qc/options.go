package qc

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger receiving pipeline warnings and per-pass
// debug output. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithConcurrency bounds the number of series processed in parallel.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func defaultConcurrency() int {
	return runtime.GOMAXPROCS(0)
}
