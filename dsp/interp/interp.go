package interp

// Linear2 interpolates between x0 (t=0) and x1 (t=1).
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// FillLinear overwrites gap with a straight line between left, the sample
// just before the gap, and right, the sample just after it. Neither end
// point is part of gap, so a gap of n samples is split into n+1 steps.
func FillLinear(gap []float64, left, right float64) {
	steps := float64(len(gap) + 1)
	for i := range gap {
		gap[i] = Linear2(float64(i+1)/steps, left, right)
	}
}

// FillFlat overwrites gap with v.
func FillFlat(gap []float64, v float64) {
	for i := range gap {
		gap[i] = v
	}
}
