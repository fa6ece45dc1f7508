package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMagnitude caps the length of the vector (x, y) at max while
// preserving its direction. Zero vectors are returned unchanged.
func ClampMagnitude(x, y, max float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag <= max || mag == 0 {
		return x, y
	}
	return x / mag * max, y / mag * max
}
