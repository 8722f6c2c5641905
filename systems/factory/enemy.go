package factory

import (
	"github.com/automoto/elysium/archetypes"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/physics"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a kinematic enemy at pos, pinned to the ground level.
func CreateEnemy(ecs *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	pos.Y = cfg.Enemy.GroundLevel
	body := components.BodyData{
		Body: physics.Body{
			Position: pos,
			Radius:   cfg.Enemy.Radius,
			Height:   cfg.Enemy.Height,
		},
		Mover: physics.KinematicMover{},
	}
	if world := spaceWorld(ecs); world != nil {
		world.Attach(&body.Body)
		body.Footprint.Data = enemy
	}
	components.Body.SetValue(enemy, body)

	components.Enemy.SetValue(enemy, components.EnemyData{
		AttackRange: cfg.Enemy.AttackRange,
		MoveSpeed:   cfg.Enemy.MoveSpeed,
	})

	components.Animation.Set(enemy, GenerateAnimations("enemy", cfg.EnemyAnim.Idle))

	return enemy
}
