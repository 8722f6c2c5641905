package systems

import (
	"log"

	"github.com/automoto/elysium/combat"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// animationProbe answers arbiter queries from the actors' Animation components.
type animationProbe struct {
	world donburi.World
}

// NewAnimationProbe exposes the animation players in world to the arbiter.
func NewAnimationProbe(world donburi.World) combat.AnimationProbe {
	return animationProbe{world: world}
}

func (p animationProbe) animation(actor donburi.Entity) (*components.AnimationData, bool) {
	if !p.world.Valid(actor) {
		return nil, false
	}
	e := p.world.Entry(actor)
	if !e.HasComponent(components.Animation) {
		return nil, false
	}
	return components.Animation.Get(e), true
}

func (p animationProbe) IsPlaying(actor donburi.Entity, index int) bool {
	anim, ok := p.animation(actor)
	return ok && anim.IsPlaying(index)
}

func (p animationProbe) IsFinished(actor donburi.Entity) bool {
	anim, ok := p.animation(actor)
	return ok && anim.IsFinished()
}

// NewArbiter builds the turn arbiter from the combat configuration.
func NewArbiter(probe combat.AnimationProbe) *combat.Arbiter {
	return &combat.Arbiter{
		AttackRange:          cfg.Combat.AttackRange,
		Policy:               combat.ParsePolicy(string(cfg.Combat.TurnPolicy)),
		EnemyTurnDuration:    cfg.Combat.EnemyTurnSeconds,
		EnemyAttackAnimation: cfg.EnemyAnim.Attack,
		Probe:                probe,
	}
}

// UpdateCombat advances the encounter state once per tick.
func UpdateCombat(arbiter *combat.Arbiter, state *combat.State) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		tr := arbiter.Tick(state, Observe(ecs.World), cfg.C.DeltaSeconds())
		if tr.Changed() {
			log.Printf("[combat] %s -> %s (%s)", tr.From, tr.To, tr.Reason)
		}
	}
}

// Observe collects what the arbiter needs from the world this tick.
func Observe(world donburi.World) combat.Observation {
	var obs combat.Observation

	if player, ok := tags.Player.First(world); ok {
		obs.HasPlayer = true
		obs.Player = player.Entity()
		obs.PlayerPos = components.Body.Get(player).Position
		if player.HasComponent(components.Player) {
			obs.PlayerAttacking = components.Player.Get(player).Attacking()
		}
	}
	if enemy, ok := tags.Enemy.First(world); ok {
		obs.HasEnemy = true
		obs.Enemy = enemy.Entity()
		obs.EnemyPos = components.Body.Get(enemy).Position
	}
	return obs
}
