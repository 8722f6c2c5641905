package combat

import (
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Policy decides when the enemy's turn is over.
type Policy int

const (
	// PolicyAnimation ends the enemy turn when its attack clip has finished.
	PolicyAnimation Policy = iota
	// PolicyTimer ends the enemy turn after a fixed duration.
	PolicyTimer
)

func (p Policy) String() string {
	if p == PolicyTimer {
		return "timer"
	}
	return "animation"
}

// ParsePolicy maps a config value to a Policy. Unknown values fall back to
// PolicyAnimation.
func ParsePolicy(s string) Policy {
	if s == "timer" {
		return PolicyTimer
	}
	return PolicyAnimation
}

// AnimationProbe answers read-only questions about an actor's animation player.
type AnimationProbe interface {
	IsPlaying(actor donburi.Entity, index int) bool
	IsFinished(actor donburi.Entity) bool
}

// Observation is what the arbiter sees of the world in one tick.
type Observation struct {
	HasPlayer bool
	HasEnemy  bool

	Player    donburi.Entity
	Enemy     donburi.Entity
	PlayerPos gamemath.Vec3
	EnemyPos  gamemath.Vec3

	// PlayerAttacking mirrors the player's attack-intent flags.
	PlayerAttacking bool
}

// Transition describes the outcome of one tick.
type Transition struct {
	From, To Turn
	Reason   string
}

// Changed reports whether the turn owner changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

const (
	ReasonNone           = ""
	ReasonEnteredRange   = "entered range"
	ReasonLeftRange      = "left range"
	ReasonEnemyFinished  = "enemy attack finished"
	ReasonPlayerFinished = "player attack finished"
	ReasonPlayerAttacked = "player attack started"
	ReasonMissingActor   = "missing actor"
)

// Arbiter advances a State once per tick.
type Arbiter struct {
	AttackRange          float64
	Policy               Policy
	EnemyTurnDuration    float64 // seconds, PolicyTimer
	EnemyAttackAnimation int
	Probe                AnimationProbe // nil forces PolicyTimer
}

// EffectivePolicy is the policy actually applied given the installed probe.
func (a *Arbiter) EffectivePolicy() Policy {
	if a.Probe == nil {
		return PolicyTimer
	}
	return a.Policy
}

// Tick evaluates the transition rules in order. Missing actors leave the
// state untouched.
func (a *Arbiter) Tick(s *State, obs Observation, dt float64) Transition {
	tr := Transition{From: s.CurrentTurn, To: s.CurrentTurn}
	if !obs.HasPlayer || !obs.HasEnemy {
		tr.Reason = ReasonMissingActor
		return tr
	}

	wasInRange := s.InRange
	s.InRange = obs.PlayerPos.Distance(obs.EnemyPos) <= a.AttackRange

	switch {
	case s.InRange && !wasInRange:
		s.enterEnemyTurn(a.EnemyTurnDuration)
		tr.Reason = ReasonEnteredRange
	case !s.InRange:
		if s.CurrentTurn != TurnOutOfRange {
			tr.Reason = ReasonLeftRange
		}
		s.leaveRange()
	case s.CurrentTurn == TurnEnemy:
		if a.enemyAttackDone(s, obs, dt) {
			s.enterPlayerTurn()
			tr.Reason = ReasonEnemyFinished
		}
	case s.CurrentTurn == TurnPlayer:
		switch {
		case obs.PlayerAttacking && s.PlayerWaitingForInput:
			s.PlayerWaitingForInput = false
			s.playerAttackSeen = true
			tr.Reason = ReasonPlayerAttacked
		case !obs.PlayerAttacking && s.playerAttackSeen:
			s.enterEnemyTurn(a.EnemyTurnDuration)
			tr.Reason = ReasonPlayerFinished
		}
	default:
		// In range but still marked out of range; restart the cycle.
		s.enterEnemyTurn(a.EnemyTurnDuration)
		tr.Reason = ReasonEnteredRange
	}

	tr.To = s.CurrentTurn
	return tr
}

func (a *Arbiter) enemyAttackDone(s *State, obs Observation, dt float64) bool {
	if a.EffectivePolicy() == PolicyAnimation {
		return a.Probe.IsPlaying(obs.Enemy, a.EnemyAttackAnimation) && a.Probe.IsFinished(obs.Enemy)
	}
	s.enemyTurnLeft -= dt
	return s.enemyTurnLeft <= 0
}
