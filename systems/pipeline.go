package systems

import (
	"github.com/automoto/elysium/combat"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/ledger"
	"github.com/yohamta/donburi/ecs"
)

// Pipeline holds the per-scene collaborators the systems close over.
type Pipeline struct {
	Devices   DeviceReader
	Encounter *combat.State
	Arbiter   *combat.Arbiter
	Ledger    ledger.Ledger
}

// Register adds the systems in their fixed tick order. Each phase is the
// only writer of the state it owns, so the order must be preserved.
func (p Pipeline) Register(e *ecs.ECS) {
	e.AddSystem(UpdateInput(p.Devices))
	e.AddSystem(UpdateAttackIntents(p.Encounter))
	e.AddSystem(UpdateGrounding)
	e.AddSystem(UpdateMovement)
	e.AddSystem(UpdateDamping)
	e.AddSystem(UpdateCombat(p.Arbiter, p.Encounter))
	e.AddSystem(UpdateEnemyApproach(p.Encounter))
	e.AddSystem(UpdateAnimation(p.Encounter))
	e.AddSystem(UpdateBodies)
	e.AddSystem(UpdateCollectibles(p.Ledger))
	e.AddSystem(UpdateObjectives)
	e.AddSystem(UpdateCamera)
}

// RegisterRenderers adds the arena view, HUD and debug overlay.
func (p Pipeline) RegisterRenderers(e *ecs.ECS) {
	e.AddRenderer(cfg.Default, DrawArena)
	e.AddRenderer(cfg.Default, DrawHUD(p.Encounter))
	e.AddRenderer(cfg.Default, DrawDebug(p.Encounter))
}
