package percentile

import "math"

// sortPadded copies data into src, pads the remainder of src with +Inf and
// sorts it with bottom-up two-way merges of width 1, 2, 4, ... . src and tmp
// must have the same power-of-two length, at least len(data). The returned
// slice is whichever of the two holds the sorted result.
func sortPadded(src, tmp, data []float64) []float64 {
	copy(src, data)

	inf := math.Inf(1)
	for i := len(data); i < len(src); i++ {
		src[i] = inf
	}

	size := len(src)
	for width := 1; width < size; width *= 2 {
		for lo := 0; lo < size; lo += 2 * width {
			mid := lo + width
			hi := lo + 2*width
			mergeRuns(tmp[lo:hi], src[lo:mid], src[mid:hi])
		}

		src, tmp = tmp, src
	}

	return src
}

// mergeRuns merges the sorted runs left and right into dst. Equal values
// are taken from left first.
func mergeRuns(dst, left, right []float64) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}

	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
