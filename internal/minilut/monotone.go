package minilut

// IsMonotoneIncreasing reports whether every consecutive pair of values
// satisfies xs[i+1] > xs[i] (strict). Empty and single-element inputs are
// vacuously monotone.
//
// A fitted rse = f(rtoa) curve is expected to increase strictly with rtoa
// at fixed AOT, altitude and band; a slice failing this check signals a
// data-quality problem in the LUT, not a program error.
func IsMonotoneIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		// Require the positive condition so NaN pairs, which compare
		// false either way, are reported as non-monotone.
		if !(xs[i] > xs[i-1]) {
			return false
		}
	}
	return true
}
