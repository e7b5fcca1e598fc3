package qc

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-qc/dsp/buffer"
)

// Processor runs the QC pipeline. It holds no per-call state and is safe
// for concurrent use.
type Processor struct {
	logger      *zap.Logger
	concurrency int
	scratch     *buffer.Pool
}

// New returns a Processor with a no-op logger and one worker per
// available CPU, adjusted by opts.
func New(opts ...Option) *Processor {
	p := &Processor{
		logger:      zap.NewNop(),
		concurrency: defaultConcurrency(),
		scratch:     buffer.NewPool(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// Logger returns the logger the processor reports to.
func (p *Processor) Logger() *zap.Logger {
	return p.logger
}

// forEach runs fn for every index in [0, n) on at most p.concurrency
// goroutines and returns the first error.
func (p *Processor) forEach(n int, fn func(i int) error) error {
	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i := range n {
		g.Go(func() error {
			return fn(i)
		})
	}

	return g.Wait()
}
