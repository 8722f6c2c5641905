package factory

import (
	"github.com/automoto/elysium/archetypes"
	"github.com/automoto/elysium/components"
	"github.com/automoto/elysium/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid adds a block the dynamic mover cannot step over.
func CreateSolid(ecs *ecs.ECS, b leveldata.Block) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)
	if world := spaceWorld(ecs); world != nil {
		link(solid, world.AddSolid(b.X, b.Z, b.W, b.D, b.Top))
	}
	return solid
}

// CreateStep adds a low block the dynamic mover climbs onto.
func CreateStep(ecs *ecs.ECS, b leveldata.Block) *donburi.Entry {
	step := archetypes.Step.Spawn(ecs)
	if world := spaceWorld(ecs); world != nil {
		link(step, world.AddStep(b.X, b.Z, b.W, b.D, b.Top))
	}
	return step
}

func link(e *donburi.Entry, obj *resolv.Object) {
	components.Object.SetValue(e, components.ObjectData{Object: obj})
}
