package mathutil

// ClampFloat constrains a value to the range [min, max]
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns |v|.
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
