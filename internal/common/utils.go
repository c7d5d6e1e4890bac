package common

import "strconv"

// Round1 rounds v to one decimal place. The exact binary value is rounded
// with ties to even, so 14.35 becomes 14.3 and 0.25 becomes 0.2.
func Round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Uniform maps a unit sample u in [0,1) onto [lo, hi).
func Uniform(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}
