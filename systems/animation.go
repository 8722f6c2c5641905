package systems

import (
	"github.com/automoto/elysium/combat"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation picks each actor's clip from movement and combat state and
// advances its animation player. Runs after UpdateCombat so the enemy attack
// clip starts on the tick its turn begins.
func UpdateAnimation(state *combat.State) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		dt := cfg.C.DeltaSeconds()

		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			anim := components.Animation.Get(e)
			player := components.Player.Get(e)
			speed := components.Body.Get(e).Velocity.HorizontalLength()

			anim.Desired = PlayerAnimation(player, anim, speed)
			anim.SetAnimation(anim.Desired)
			anim.Advance(dt)

			// The attack flags drop when their clip completes.
			if player.FightMove1 && anim.IsPlaying(cfg.PlayerAnim.Attack1) && anim.IsFinished() {
				player.FightMove1 = false
			}
			if player.FightMove2 && anim.IsPlaying(cfg.PlayerAnim.Attack2) && anim.IsFinished() {
				player.FightMove2 = false
			}
		})

		tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
			anim := components.Animation.Get(e)
			anim.Desired = EnemyAnimation(components.Enemy.Get(e), state)
			anim.SetAnimation(anim.Desired)
			anim.Advance(dt)
		})
	}
}

// PlayerAnimation selects the player clip. The spawn idle stays until the
// player first does something else.
func PlayerAnimation(player *components.PlayerData, anim *components.AnimationData, speed float64) int {
	switch {
	case player.FightMove2:
		return cfg.PlayerAnim.Attack2
	case player.FightMove1:
		return cfg.PlayerAnim.Attack1
	case speed > cfg.Movement.MovingSpeedThreshold:
		if player.ForwardHoldTime >= cfg.Movement.RunAfter {
			return cfg.PlayerAnim.Run
		}
		return cfg.PlayerAnim.Walk
	case anim.Current == cfg.PlayerAnim.InitialIdle:
		return cfg.PlayerAnim.InitialIdle
	default:
		return cfg.PlayerAnim.Idle
	}
}

// EnemyAnimation selects the enemy clip. The attack clip is only chosen
// during the enemy's own turn.
func EnemyAnimation(enemy *components.EnemyData, state *combat.State) int {
	switch {
	case combat.CanAttack(state, combat.TurnEnemy):
		return cfg.EnemyAnim.Attack
	case enemy.IsMoving:
		return cfg.EnemyAnim.Walk
	default:
		return cfg.EnemyAnim.Idle
	}
}
