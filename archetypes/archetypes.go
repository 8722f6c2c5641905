package archetypes

import (
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Kinematic,
		components.Input,
		components.Intents,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Animation,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	Step = newArchetype(
		tags.Step,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
