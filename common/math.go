package common

// Clamp constrains v to the inclusive range [min, max].
// If min > max the result is unspecified; callers validate their bounds up front.
//
// Parameters:
//   - v: the value to constrain
//   - min: lower bound
//   - max: upper bound
//
// Returns:
//   - float64: v limited to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
