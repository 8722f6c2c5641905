package gamemath

import "math"

// Lerp interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampHorizontalSpeed rescales the X/Z pair uniformly so its magnitude does
// not exceed max. The direction of travel is preserved.
func ClampHorizontalSpeed(x, z, max float64) (float64, float64) {
	speed := math.Hypot(x, z)
	if speed <= max || speed == 0 {
		return x, z
	}
	scale := max / speed
	return x * scale, z * scale
}

// ClampLength2 limits a 2D vector to a maximum length of max.
func ClampLength2(x, y, max float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= max || l == 0 {
		return x, y
	}
	return x / l * max, y / l * max
}

// ApproachVelocity returns the velocity that moves from toward to at speed.
// Coincident points produce a zero velocity.
func ApproachVelocity(from, to Vec3, speed float64) Vec3 {
	return to.Sub(from).Normalized().Scale(speed)
}

// Rate converts a per-second interpolation rate into a per-tick factor in [0, 1].
func Rate(perSecond, dt float64) float64 {
	return ClampFloat(perSecond*dt, 0, 1)
}
