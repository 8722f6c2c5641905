package systems

import (
	"github.com/automoto/elysium/combat"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/physics"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/automoto/elysium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyApproach steers every enemy toward the player, or holds it in
// place while an encounter is active. No player means no update.
func UpdateEnemyApproach(state *combat.State) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		player, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}
		target := components.Body.Get(player).Position
		dt := cfg.C.DeltaSeconds()

		tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
			ApproachPlayer(&components.Body.Get(e).Body, components.Enemy.Get(e), target, state, dt)
		})
	}
}

// ApproachPlayer runs one tick of the approach AI for a kinematic enemy.
func ApproachPlayer(body *physics.Body, enemy *components.EnemyData, target gamemath.Vec3, state *combat.State, dt float64) {
	pos, yaw := body.Transform()
	if enemy.HasLastPosition {
		moved := pos.Sub(enemy.LastPosition).HorizontalLength()
		enemy.IsMoving = moved > cfg.Enemy.MovingThreshold
	}
	enemy.LastPosition = pos
	enemy.HasLastPosition = true

	toPlayer := target.Sub(pos)
	faceYaw, canFace := gamemath.YawFacing(toPlayer)

	switch {
	case state.Active():
		// The arbiter owns the encounter: freeze, only keep facing the player.
		body.SetVelocity(gamemath.Vec3{})
		enemy.IsMoving = false
		if canFace {
			body.Yaw = gamemath.SlerpYaw(yaw, faceYaw, gamemath.Rate(cfg.Enemy.TurnLerpRate, dt))
		}
	case toPlayer.Length() > enemy.AttackRange:
		desired := gamemath.ApproachVelocity(
			gamemath.NewVec3(pos.X, 0, pos.Z),
			gamemath.NewVec3(target.X, 0, target.Z),
			enemy.MoveSpeed,
		)
		t := gamemath.Rate(cfg.Enemy.ApproachLerpRate, dt)
		body.SetVelocity(gamemath.NewVec3(
			gamemath.Lerp(body.Velocity.X, desired.X, t),
			0,
			gamemath.Lerp(body.Velocity.Z, desired.Z, t),
		))
		if canFace {
			body.Yaw = gamemath.SlerpYaw(yaw, faceYaw, gamemath.Rate(cfg.Enemy.TurnLerpRate, dt))
		}
		body.Position.Y = cfg.Enemy.GroundLevel
	default:
		body.SetVelocity(gamemath.Vec3{})
		enemy.IsMoving = false
	}
}
