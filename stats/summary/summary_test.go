package summary

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-qc/internal/testutil"
	"github.com/cwbudde/algo-qc/qc/segment"
)

func TestOfAlternating(t *testing.T) {
	s := Of([]float64{1, -1, 1, -1})

	if s.Count != 4 || s.ZeroCrossings != 3 {
		t.Fatalf("count=%d zc=%d", s.Count, s.ZeroCrossings)
	}

	testutil.RequireNearlyEqual(t, s.Mean, 0, 1e-15)
	testutil.RequireNearlyEqual(t, s.RMS, 1, 1e-15)
	testutil.RequireNearlyEqual(t, s.Peak, 1, 0)
	testutil.RequireNearlyEqual(t, s.Variance, 1, 1e-15)
	testutil.RequireNearlyEqual(t, s.Kurtosis, -2, 1e-12)

	if s.MaxPos != 0 || s.MinPos != 1 {
		t.Fatalf("positions max=%d min=%d", s.MaxPos, s.MinPos)
	}
}

func TestOfMatchesDirectMoments(t *testing.T) {
	data := testutil.DeterministicNoise(3, 2, 513)
	s := Of(data)

	var mean float64
	for _, x := range data {
		mean += x
	}
	mean /= float64(len(data))

	var m2, m3, m4, sq float64
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
		sq += x * x
	}

	n := float64(len(data))
	variance := m2 / n

	testutil.RequireNearlyEqual(t, s.Mean, mean, 1e-12)
	testutil.RequireNearlyEqual(t, s.Variance, variance, 1e-12)
	testutil.RequireNearlyEqual(t, s.Skewness, (m3/n)/math.Pow(variance, 1.5), 1e-9)
	testutil.RequireNearlyEqual(t, s.Kurtosis, (m4/n)/(variance*variance)-3, 1e-9)
	testutil.RequireNearlyEqual(t, s.RMS, math.Sqrt(sq/n), 1e-12)
}

func TestRunsSkipsMaskedSamples(t *testing.T) {
	data := []float64{1, -1, 100, -100, 2, -2}
	runs := segment.Complement(segment.Set{{Start: 2, End: 3}}, len(data))

	s := Runs(data, runs)

	if s.Count != 4 {
		t.Fatalf("Count = %d, want 4", s.Count)
	}
	if s.Max != 2 || s.MaxPos != 4 || s.Min != -2 || s.MinPos != 5 {
		t.Fatalf("extrema %+v", s)
	}
	// -1 -> 2 spans the masked gap and is not a crossing.
	if s.ZeroCrossings != 2 {
		t.Fatalf("ZeroCrossings = %d, want 2", s.ZeroCrossings)
	}

	testutil.RequireNearlyEqual(t, s.Mean, 0, 1e-15)
	testutil.RequireNearlyEqual(t, s.Peak, 2, 0)
}

func TestEmpty(t *testing.T) {
	if s := Of(nil); s != (Summary{}) {
		t.Fatalf("Of(nil) = %+v", s)
	}
	if s := Runs([]float64{1, 2}, nil); s != (Summary{}) {
		t.Fatalf("Runs with no runs = %+v", s)
	}
}

func TestStreamingMatchesWhole(t *testing.T) {
	data := testutil.DeterministicSine(37, 1.5, 300)

	var a Accumulator
	a.AddRun(data[:100], 0)
	a.AddRun(data[100:], 100)
	got := a.Summary()
	want := Of(data)

	// The split hides one crossing at most when it falls between samples
	// 99 and 100.
	if d := want.ZeroCrossings - got.ZeroCrossings; d < 0 || d > 1 {
		t.Fatalf("zero crossings %d vs %d", got.ZeroCrossings, want.ZeroCrossings)
	}

	got.ZeroCrossings = want.ZeroCrossings
	if got != want {
		t.Fatalf("split %+v\nwhole %+v", got, want)
	}
}
