package window

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-qc/internal/testutil"
)

func TestRampRising(t *testing.T) {
	w := Ramp(4, SlopeRising)
	want := []float64{0, 0.5 * (1 - math.Sqrt2/2), 0.5, 0.5 * (1 + math.Sqrt2/2)}
	testutil.RequireSliceNearlyEqual(t, w, want, 1e-12)
}

func TestRampFallingMirrorsRising(t *testing.T) {
	up := Ramp(7, SlopeRising)
	down := Ramp(7, SlopeFalling)
	for i := range up {
		if up[i] != down[len(down)-1-i] {
			t.Fatalf("index %d: rising %v, mirrored falling %v", i, up[i], down[len(down)-1-i])
		}
	}

	if down[len(down)-1] != 0 {
		t.Fatalf("falling ramp must end at 0, got %v", down[len(down)-1])
	}
}

func TestRampMonotonic(t *testing.T) {
	w := Ramp(32, SlopeRising)
	for i := 1; i < len(w); i++ {
		if w[i] < w[i-1] {
			t.Fatalf("rising ramp decreases at %d: %v < %v", i, w[i], w[i-1])
		}
	}

	if Ramp(0, SlopeRising) != nil {
		t.Fatal("Ramp(0) should be nil")
	}
}

func TestTaperClipped(t *testing.T) {
	full := Ramp(6, SlopeRising)

	buf := testutil.DC(1, 3)
	if err := Taper(buf, 6, SlopeRising); err != nil {
		t.Fatalf("Taper: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf, full[:3], 1e-15)

	fall := Ramp(6, SlopeFalling)

	buf = testutil.DC(2, 2)
	if err := Taper(buf, 6, SlopeFalling); err != nil {
		t.Fatalf("Taper: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf, []float64{2 * fall[4], 2 * fall[5]}, 1e-15)
}

func TestTaperInvalidLength(t *testing.T) {
	if err := Taper([]float64{1}, 0, SlopeRising); err == nil {
		t.Fatal("expected error for zero taper length")
	}
}

func TestApplyCoefficientsMismatch(t *testing.T) {
	if err := ApplyCoefficientsInPlace([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
