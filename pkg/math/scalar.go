package math

import "math"

// Pi as float32.
const Pi = float32(math.Pi)

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * Pi / 180
}

// Clamp limits x to [lo, hi]. The boundary itself is returned when x
// overshoots, never an approximation of it.
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
