package factory

import (
	"github.com/automoto/elysium/archetypes"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, depth, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	world := physics.NewWorld(width, depth, cellSize, cfg.Physics.FloorHeight)
	components.Space.SetValue(space, components.SpaceData{World: world})
	return space
}

// spaceWorld returns the arena's physics adapter, if one was created.
func spaceWorld(ecs *ecs.ECS) *physics.World {
	if entry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(entry).World
	}
	return nil
}
