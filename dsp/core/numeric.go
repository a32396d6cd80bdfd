package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// RatioToDB returns the attenuation from before to after in dB, positive
// when after is smaller. Returns +Inf when after is zero and 0 when both
// are zero.
func RatioToDB(before, after float64) float64 {
	switch {
	case before == 0 && after == 0:
		return 0
	case after == 0:
		return math.Inf(1)
	}

	return 20 * math.Log10(math.Abs(before)/math.Abs(after))
}
