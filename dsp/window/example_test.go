package window

import "fmt"

func ExampleRamp() {
	w := Ramp(4, SlopeRising)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.15 0.50 0.85
}

func ExampleTaper() {
	buf := []float64{1, 1, 1, 1}
	_ = Taper(buf, 4, SlopeFalling)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", buf[0], buf[1], buf[2], buf[3])
	// Output:
	// 0.85 0.50 0.15 0.00
}
