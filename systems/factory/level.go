package factory

import (
	"log"

	"github.com/automoto/elysium/archetypes"
	"github.com/automoto/elysium/assets"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/ledger"
	"github.com/automoto/elysium/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadCampaign loads the embedded levels, falling back to a campaign of
// just the built-in arena when they cannot be read.
func LoadCampaign() *leveldata.Campaign {
	c, err := assets.LoadCampaign()
	if err == nil {
		return c
	}
	log.Printf("Warning: Could not load levels, using built-in arena: %v", err)
	c, err = leveldata.NewCampaign(leveldata.Builtin())
	if err != nil {
		log.Fatalf("Failed to build fallback campaign: %v", err)
	}
	return c
}

// StartLayout picks the layout named by name, then the first layout of the
// campaign.
func StartLayout(c *leveldata.Campaign, name string) *leveldata.Layout {
	if layout, ok := c.Get(name); ok {
		return layout
	}
	log.Printf("Warning: Could not find level %s, starting at %s", name, c.First().Name)
	return c.First()
}

// CreateLevel spawns the level entity and its static geometry. Collectibles
// already recorded by the ledger are skipped.
func CreateLevel(ecs *ecs.ECS, layout *leveldata.Layout, l ledger.Ledger) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:     layout.Name,
		Layout:   layout,
		Progress: make([]components.ObjectiveProgress, len(layout.Objectives)),
	})
	for _, obj := range layout.Objectives {
		if obj.Kind != leveldata.ObjectiveCollect {
			continue
		}
		if _, ok := components.ParseItemKind(obj.Target); !ok {
			log.Printf("Warning: objective %s collects unknown kind %q and cannot complete", obj.ID, obj.Target)
		}
	}

	for _, b := range layout.Solids {
		CreateSolid(ecs, b)
	}
	for _, b := range layout.Steps {
		CreateStep(ecs, b)
	}

	behavior := components.ParseCollectBehavior(cfg.Collectible.Behavior)
	for _, spawn := range layout.Collectibles {
		if l != nil && l.Collected(spawn.ItemID) {
			continue
		}
		kind, ok := components.ParseItemKind(spawn.Kind)
		if !ok {
			log.Printf("Warning: unknown collectible kind %q for %s", spawn.Kind, spawn.ItemID)
			continue
		}
		CreateCollectible(ecs, spawn, kind, behavior)
	}

	return level
}
