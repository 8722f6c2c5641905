package factory

import (
	"github.com/automoto/elysium/archetypes"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollectible spawns a pickup that hovers above its spawn point.
func CreateCollectible(ecs *ecs.ECS, spawn leveldata.CollectibleSpawn, kind components.ItemKind, behavior components.CollectBehavior) *donburi.Entry {
	item := archetypes.Collectible.Spawn(ecs)

	base := spawn.Y
	top := base + cfg.Collectible.HoverAmplitude
	secs := float32(cfg.Collectible.HoverSeconds)

	// The hover alternates between a rising and a falling tween.
	components.Collectible.SetValue(item, components.CollectibleData{
		Kind:       kind,
		ItemID:     spawn.ItemID,
		Behavior:   behavior,
		Position:   spawn.Point.Vec3(),
		BaseHeight: base,
		Rise:       gween.New(float32(base), float32(top), secs, ease.InOutSine),
		Fall:       gween.New(float32(top), float32(base), secs, ease.InOutSine),
		Rising:     true,
	})

	return item
}
