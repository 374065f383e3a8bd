package milhdbk217f

import "math"

// at returns the 1-based id-th entry of list, or 0 when id is out of range.
func at(list []float64, id int) float64 {
	if id < 1 || id > len(list) {
		return 0
	}
	return list[id-1]
}

// ratio divides num by den and yields 1.0 when den is zero.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 1.0
	}
	return num / den
}

// finite replaces NaN and infinities with zero.
func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// upperBound returns the index of the first breakpoint >= v, clamped to the
// last breakpoint.
func upperBound(breaks []float64, v float64) int {
	for i, b := range breaks {
		if v <= b {
			return i
		}
	}
	if len(breaks) == 0 {
		return 0
	}
	return len(breaks) - 1
}

// bucket returns the number of breakpoints strictly below v.
func bucket(breaks []float64, v float64) int {
	n := 0
	for _, b := range breaks {
		if v > b {
			n++
		}
	}
	return n
}
