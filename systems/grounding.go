package systems

import (
	"math"

	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrounding casts each kinematic actor's footprint downward and derives
// IsGrounded for this tick.
func UpdateGrounding(ecs *ecs.ECS) {
	space, ok := components.Space.First(ecs.World)
	var world *physics.World
	if ok {
		world = components.Space.Get(space).World
	}

	components.Kinematic.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		ResolveGrounding(world, &components.Body.Get(e).Body, components.Kinematic.Get(e))
	})
}

// ResolveGrounding records the ground cast and classifies the actor as
// grounded when it is not moving vertically. The cast hit is kept for
// inspection but does not decide the flag, so an actor at its jump apex can
// read as grounded.
func ResolveGrounding(world *physics.World, body *physics.Body, kin *components.KinematicData) {
	if world != nil {
		kin.Ground = world.CastDown(body, cfg.Physics.GroundCastShrink, cfg.Physics.GroundCastDistance)
	}
	kin.IsGrounded = math.Abs(body.Velocity.Y) < cfg.Physics.GroundedEpsilon
}
