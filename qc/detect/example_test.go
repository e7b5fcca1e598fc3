package detect_test

import (
	"fmt"

	"github.com/cwbudde/algo-qc/qc/detect"
)

func ExampleFindSequences() {
	data := []float64{0, 0, 0, 0, 0, 5, 5, 5, 5, 5}
	fmt.Println(detect.FindSequences(data, 4))

	// Output:
	// [{0 3} {5 9}]
}

func ExampleFindPoints() {
	data := []float64{0, 1, 2, 3, 50, 5, 6, 7, 8}
	fmt.Println(detect.FindPoints(data, 10))

	// Output:
	// [{4 4}]
}
