package systems

import (
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies integrates every body with its mover. This is where written
// velocities turn into positions.
func UpdateBodies(ecs *ecs.ECS) {
	var world *physics.World
	if space, ok := components.Space.First(ecs.World); ok {
		world = components.Space.Get(space).World
	}
	dt := cfg.C.DeltaSeconds()

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		mover := body.Mover
		if mover == nil {
			mover = physics.KinematicMover{}
		}
		mover.Integrate(world, &body.Body, dt)
	})
}
