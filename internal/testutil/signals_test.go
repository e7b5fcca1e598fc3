package testutil

import "testing"

func TestDeterministicNoiseRepeatable(t *testing.T) {
	a := DeterministicNoise(42, 1, 64)
	b := DeterministicNoise(42, 1, 64)
	RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if v < -1 || v > 1 {
			t.Fatalf("index %d: %v outside [-1, 1]", i, v)
		}
	}
}

func TestDeterministicSinePeriod(t *testing.T) {
	s := DeterministicSine(8, 2, 17)
	RequireNearlyEqual(t, s[2], 2, 1e-12)
	RequireNearlyEqual(t, s[6], -2, 1e-12)
	RequireNearlyEqual(t, s[8], s[16], 1e-12)
}

func TestStepsAndSpikes(t *testing.T) {
	s := Steps([]float64{0, 5}, []int{2, 3})
	RequireSliceNearlyEqual(t, s, []float64{0, 0, 5, 5, 5}, 0)

	sp := WithSpikes(s, 10, 1, 4, 99)
	RequireSliceNearlyEqual(t, sp, []float64{0, 10, 5, 5, 15}, 0)
	RequireSliceNearlyEqual(t, s, []float64{0, 0, 5, 5, 5}, 0)
}
