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

// CreatePlayer spawns the dynamic player actor at pos.
func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := components.BodyData{
		Body: physics.Body{
			Position: pos,
			Radius:   cfg.Movement.CapsuleRadius,
			Height:   cfg.Movement.CapsuleLength + 2*cfg.Movement.CapsuleRadius,
		},
		Mover: physics.DynamicMover{
			MaxStepHeight:     cfg.Physics.MaxStepHeight,
			ClimbSpeed:        cfg.Physics.StairClimbSpeed,
			DetectionDistance: cfg.Physics.StairDetectionDistance,
		},
	}
	if world := spaceWorld(ecs); world != nil {
		world.Attach(&body.Body)
		body.Footprint.Data = player
	}
	components.Body.SetValue(player, body)

	components.Kinematic.SetValue(player, components.KinematicData{
		Acceleration:  cfg.Movement.Acceleration,
		DampingFactor: cfg.Movement.DampingFactor,
		JumpImpulse:   cfg.Movement.JumpImpulse,
		MaxSpeed:      cfg.Movement.MaxSpeed,
		TurnRate:      cfg.Movement.TurnRate,
		TickScale:     cfg.Movement.TickScale,
	})
	components.Player.SetValue(player, components.PlayerData{})

	components.Animation.Set(player, GenerateAnimations("player", cfg.PlayerAnim.InitialIdle))

	return player
}
