package systems

import (
	"errors"
	"log"

	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/ledger"
	"github.com/automoto/elysium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles animates the hover, applies ledger results that arrived
// since the last tick and submits pickups the player has reached.
func UpdateCollectibles(l ledger.Ledger) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		dt := cfg.C.DeltaSeconds()

		components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
			UpdateHover(components.Collectible.Get(e), dt)
		})

		for _, res := range l.Drain() {
			ApplyPickupResult(ecs.World, res)
		}

		player, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}
		playerPos := components.Body.Get(player).Position
		interact := player.HasComponent(components.Intents) && components.Intents.Get(player).Interact

		var reached []*donburi.Entry
		components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
			c := components.Collectible.Get(e)
			inRange := playerPos.Distance(c.Position) <= cfg.Collectible.Radius
			entered := inRange && !c.InRange
			c.InRange = inRange
			if c.Pending || !inRange {
				return
			}
			if entered || interact {
				reached = append(reached, e)
			}
		})

		// Despawning is deferred until iteration is over.
		for _, e := range reached {
			Collect(ecs.World, l, e, player)
		}
	}
}

// Collect dispatches on the collectible's behavior.
func Collect(world donburi.World, l ledger.Ledger, e *donburi.Entry, player *donburi.Entry) {
	c := components.Collectible.Get(e)
	pickup := ledger.Pickup{Kind: c.Kind.String(), ItemID: c.ItemID, Entity: e.Entity()}

	switch c.Behavior {
	case components.CollectDespawnImmediately:
		l.Submit(pickup)
		if player.HasComponent(components.Player) {
			components.Player.Get(player).AddCollected(c.Kind)
		}
		log.Printf("[collect] picked up %s (%s)", c.ItemID, c.Kind)
		world.Remove(e.Entity())
	case components.CollectDespawnOnConfirmation:
		if l.Submit(pickup) {
			c.Pending = true
		}
	}
}

// ApplyPickupResult despawns a confirmed collectible. A failed pickup leaves
// it in the world so the player can try again.
func ApplyPickupResult(world donburi.World, res ledger.Result) {
	if !world.Valid(res.Pickup.Entity) {
		return
	}
	e := world.Entry(res.Pickup.Entity)
	if !e.HasComponent(components.Collectible) {
		return
	}
	c := components.Collectible.Get(e)
	if !c.Pending {
		return
	}

	switch {
	case res.Err == nil:
		if player, ok := tags.Player.First(world); ok {
			components.Player.Get(player).AddCollected(c.Kind)
		}
		log.Printf("[collect] picked up %s (%s)", c.ItemID, c.Kind)
		world.Remove(e.Entity())
	case errors.Is(res.Err, ledger.ErrAlreadyCollected):
		world.Remove(e.Entity())
	default:
		log.Printf("Warning: pickup of %s failed, leaving it in place: %v", c.ItemID, res.Err)
		c.Pending = false
	}
}

// UpdateHover bobs the collectible between its base height and the
// configured amplitude using two alternating tweens.
func UpdateHover(c *components.CollectibleData, dt float64) {
	if c.Rise == nil || c.Fall == nil {
		return
	}
	tw := c.Fall
	if c.Rising {
		tw = c.Rise
	}
	v, done := tw.Update(float32(dt))
	c.Position.Y = float64(v)
	if done {
		tw.Reset()
		c.Rising = !c.Rising
	}
}
