package segment

import (
	"strconv"
	"testing"
)

func makeBenchSet(n, stride int, offset int) Set {
	out := make(Set, n)
	for i := range out {
		out[i] = Segment{Start: i*stride + offset, End: i*stride + offset + 1}
	}

	return out
}

func BenchmarkMerge(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		a := makeBenchSet(n, 8, 0)
		c := makeBenchSet(n/4, 32, 4)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				Merge(a, c)
			}
		})
	}
}

func BenchmarkContainsRun(b *testing.B) {
	s := makeBenchSet(4096, 8, 0)

	b.ReportAllocs()

	for i := range b.N {
		pos := (i * 7) % (4096 * 8)
		ContainsRun(s, pos, pos+3, 2)
	}
}
