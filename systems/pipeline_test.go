package systems

import (
	"testing"

	"github.com/automoto/elysium/combat"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/ledger"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/automoto/elysium/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type arena struct {
	ecs       *ecs.ECS
	devices   *fakeDevices
	encounter *combat.State
	player    *donburi.Entry
	enemy     *donburi.Entry
}

func newArena(t *testing.T, playerPos, enemyPos gamemath.Vec3, attackRange float64) *arena {
	t.Helper()
	restoreConfig(t)
	cfg.Combat.AttackRange = attackRange
	cfg.Enemy.AttackRange = attackRange
	cfg.Combat.TurnPolicy = cfg.TurnPolicyAnimation

	e := ecs.NewECS(donburi.NewWorld())
	a := &arena{ecs: e, devices: &fakeDevices{}, encounter: combat.NewState()}
	Pipeline{
		Devices:   a.devices,
		Encounter: a.encounter,
		Arbiter:   NewArbiter(NewAnimationProbe(e.World)),
		Ledger:    &ledger.Nop{},
	}.Register(e)

	factory.CreateSpace(e, 64, 64, 2)
	a.player = factory.CreatePlayer(e, playerPos)
	a.enemy = factory.CreateEnemy(e, enemyPos)
	factory.CreateCamera(e, playerPos)
	return a
}

func (a *arena) distance() float64 {
	return components.Body.Get(a.player).Position.Distance(components.Body.Get(a.enemy).Position)
}

func (a *arena) checkInvariants(t *testing.T) {
	t.Helper()
	s := a.encounter
	require.Equal(t, !s.InRange, s.CurrentTurn == combat.TurnOutOfRange, "turn %s with in_range=%v", s.CurrentTurn, s.InRange)
	require.False(t, s.PlayerWaitingForInput && s.CurrentTurn == combat.TurnEnemy, "player waiting for input during the enemy turn")
	if s.Active() {
		require.Equal(t, gamemath.Vec3{}, components.Body.Get(a.enemy).Velocity, "enemy moving during the encounter")
	}
}

func TestPipelineEntersEncounterAtAttackRange(t *testing.T) {
	a := newArena(t, gamemath.NewVec3(20, 0, 30), gamemath.NewVec3(20, 0, 20), 3)
	a.devices.press(cfg.ActionMoveForward)

	for i := 0; i < 600; i++ {
		// The arbiter sees the positions integrated at the end of the last tick.
		before := a.distance()
		a.ecs.Update()
		a.checkInvariants(t)

		if before > 3 {
			require.Equal(t, combat.TurnOutOfRange, a.encounter.CurrentTurn, "tick %d at distance %v", i, before)
			continue
		}
		require.Equal(t, combat.TurnEnemy, a.encounter.CurrentTurn, "tick %d at distance %v", i, before)
		return
	}
	t.Fatal("player never reached the enemy")
}

func TestPipelineFullTurnCycle(t *testing.T) {
	a := newArena(t, gamemath.NewVec3(20, 0, 22), gamemath.NewVec3(20, 0, 20), 3)

	a.ecs.Update()
	require.Equal(t, combat.TurnEnemy, a.encounter.CurrentTurn)

	// Attacking during the enemy turn is rejected.
	a.devices.press(cfg.ActionAttackPrimary)
	a.ecs.Update()
	require.False(t, components.Player.Get(a.player).Attacking(), "attack accepted during the enemy turn")
	a.devices.press()

	// The enemy attack clip runs to completion, then the player is up.
	for i := 0; i < 600 && a.encounter.CurrentTurn == combat.TurnEnemy; i++ {
		a.ecs.Update()
		a.checkInvariants(t)
	}
	require.Equal(t, combat.TurnPlayer, a.encounter.CurrentTurn)
	require.True(t, a.encounter.PlayerWaitingForInput)

	// No timeout while the player waits.
	for i := 0; i < 300; i++ {
		a.ecs.Update()
	}
	require.Equal(t, combat.TurnPlayer, a.encounter.CurrentTurn, "player turn timed out")

	a.devices.press(cfg.ActionAttackPrimary)
	a.ecs.Update()
	a.devices.press()
	require.True(t, components.Player.Get(a.player).FightMove1, "attack not accepted on the player's turn")

	for i := 0; i < 600 && a.encounter.CurrentTurn == combat.TurnPlayer; i++ {
		a.ecs.Update()
		a.checkInvariants(t)
	}
	require.Equal(t, combat.TurnEnemy, a.encounter.CurrentTurn)
	assert.False(t, components.Player.Get(a.player).Attacking(), "attack flag still raised after the clip finished")
}

func TestPipelineLeavesEncounter(t *testing.T) {
	a := newArena(t, gamemath.NewVec3(20, 0, 22), gamemath.NewVec3(20, 0, 20), 3)
	a.ecs.Update()
	require.True(t, a.encounter.Active(), "encounter not started")

	components.Body.Get(a.player).Position = gamemath.NewVec3(20, 0, 40)
	a.ecs.Update()
	a.checkInvariants(t)

	assert.Equal(t, combat.TurnOutOfRange, a.encounter.CurrentTurn)
	assert.False(t, a.encounter.PlayerWaitingForInput, "waiting flag left set")
}

func TestPipelineGroundedPlayerStaysOnFloor(t *testing.T) {
	a := newArena(t, gamemath.NewVec3(20, 0, 40), gamemath.NewVec3(20, 0, 10), 3)

	for i := 0; i < 120; i++ {
		a.ecs.Update()
	}
	body := components.Body.Get(a.player)
	assert.True(t, components.Kinematic.Get(a.player).IsGrounded, "resting player not grounded")
	assert.InDelta(t, 0, body.Position.Y, 1e-9)
}

func TestPipelineJump(t *testing.T) {
	a := newArena(t, gamemath.NewVec3(20, 0, 40), gamemath.NewVec3(20, 0, 10), 3)
	a.ecs.Update()

	a.devices.press(cfg.ActionJump)
	a.ecs.Update()
	a.devices.press()

	body := components.Body.Get(a.player)
	require.Greater(t, body.Position.Y, 0.0, "player left the floor")

	landed := false
	for i := 0; i < 300 && !landed; i++ {
		a.ecs.Update()
		landed = body.Position.Y < 1e-9 && components.Kinematic.Get(a.player).IsGrounded
	}
	assert.True(t, landed, "player never landed, y = %v", body.Position.Y)
}
