package buffer

// Buffer wraps a float64 slice that can be resized without reallocating
// while its capacity suffices.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// The contents after Resize are unspecified; callers overwrite them.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
		return
	}
	b.samples = make([]float64, n)
}

// Fill sets every sample to v.
func (b *Buffer) Fill(v float64) {
	for i := range b.samples {
		b.samples[i] = v
	}
}

// CopyFrom resizes b to len(src) and copies src into it.
func (b *Buffer) CopyFrom(src []float64) {
	b.Resize(len(src))
	copy(b.samples, src)
}
