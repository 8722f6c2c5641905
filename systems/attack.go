package systems

import (
	"log"

	"github.com/automoto/elysium/combat"
	"github.com/automoto/elysium/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttackIntents turns attack triggers into attack-intent flags. Attacks
// outside the player's turn are rejected here; the arbiter never gates input.
func UpdateAttackIntents(state *combat.State) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		components.Player.Each(ecs.World, func(e *donburi.Entry) {
			if !e.HasComponent(components.Intents) {
				return
			}
			RequestAttack(components.Player.Get(e), components.Intents.Get(e), state)
		})
	}
}

// RequestAttack raises FightMove1, or FightMove2 for the secondary or
// shift-modified attack, when the player may attack now.
func RequestAttack(player *components.PlayerData, intents *components.IntentsData, state *combat.State) bool {
	if !intents.AttackPrimary && !intents.AttackSecondary {
		return false
	}
	switch {
	case !combat.CanAttack(state, combat.TurnPlayer):
		log.Printf("[combat] attack rejected: not the player's turn")
		return false
	case !state.PlayerWaitingForInput:
		log.Printf("[combat] attack rejected: already attacked this turn")
		return false
	case player.Attacking():
		return false
	}

	if intents.AttackSecondary || intents.Shift {
		player.FightMove2 = true
	} else {
		player.FightMove1 = true
	}
	return true
}
