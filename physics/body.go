package physics

import (
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Body is the transform and velocity shared by every actor-movement strategy.
type Body struct {
	Position gamemath.Vec3 // feet position
	Velocity gamemath.Vec3
	Yaw      float64
	Radius   float64
	Height   float64

	Footprint *resolv.Object
}

// SetVelocity replaces the desired velocity.
func (b *Body) SetVelocity(v gamemath.Vec3) {
	b.Velocity = v
}

// Transform returns the current position and yaw.
func (b *Body) Transform() (gamemath.Vec3, float64) {
	return b.Position, b.Yaw
}

// syncFootprint moves the resolv footprint under the body.
func (b *Body) syncFootprint() {
	if b.Footprint == nil {
		return
	}
	b.Footprint.X = b.Position.X - b.Radius
	b.Footprint.Y = b.Position.Z - b.Radius
	b.Footprint.Update()
}
