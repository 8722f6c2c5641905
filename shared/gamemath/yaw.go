package gamemath

import "math"

// Forward is the -Z axis rotated about +Y by yaw.
func Forward(yaw float64) Vec3 {
	return Vec3{X: -math.Sin(yaw), Z: -math.Cos(yaw)}
}

// Right is the +X axis rotated about +Y by yaw.
func Right(yaw float64) Vec3 {
	return Vec3{X: math.Cos(yaw), Z: -math.Sin(yaw)}
}

// YawFacing returns the yaw that turns the +Z axis onto dir's horizontal
// projection. ok is false when dir has no horizontal component.
func YawFacing(dir Vec3) (yaw float64, ok bool) {
	if dir.X == 0 && dir.Z == 0 {
		return 0, false
	}
	return math.Atan2(dir.X, dir.Z), true
}

// WrapAngle maps a to (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// SlerpYaw rotates from toward to along the shorter arc by fraction t.
func SlerpYaw(from, to, t float64) float64 {
	delta := WrapAngle(to - from)
	return WrapAngle(from + delta*ClampFloat(t, 0, 1))
}
