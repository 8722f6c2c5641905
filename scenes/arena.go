package scenes

import (
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/automoto/elysium/combat"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/ledger"
	"github.com/automoto/elysium/shared/leveldata"
	"github.com/automoto/elysium/systems"
	"github.com/automoto/elysium/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the exploration and combat scene. It owns the encounter
// state for its lifetime.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	devices   systems.DeviceReader
	campaign  *leveldata.Campaign
	layout    *leveldata.Layout
	encounter *combat.State
	ledger    ledger.Ledger
	advanced  bool
}

// NewArenaScene creates the arena scene at the saved level, or the
// configured one when there is no saved progress.
func NewArenaScene(sc SceneChanger) *ArenaScene {
	campaign := factory.LoadCampaign()
	start := cfg.C.Level
	if progress, err := systems.LoadGameProgress(); err == nil && progress != nil {
		if _, ok := campaign.Get(progress.Level); ok {
			start = progress.Level
		}
	}
	return NewArenaSceneWith(sc, &systems.EbitenDevices{}, campaign, factory.StartLayout(campaign, start), nil)
}

// NewArenaSceneWith creates the arena scene with explicit collaborators. A
// nil ledger is opened from the configuration on the first Update.
func NewArenaSceneWith(sc SceneChanger, devices systems.DeviceReader, campaign *leveldata.Campaign, layout *leveldata.Layout, l ledger.Ledger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, devices: devices, campaign: campaign, layout: layout, ledger: l}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
	as.advanceIfComplete()
}

// advanceIfComplete moves on to the next layout once the level's objectives
// are done. The last layout stays in place.
func (as *ArenaScene) advanceIfComplete() {
	if as.advanced {
		return
	}
	levelEntry, ok := components.Level.First(as.ecs.World)
	if !ok || !components.Level.Get(levelEntry).Complete {
		return
	}
	as.advanced = true

	next, ok := as.campaign.Next(as.layout)
	if !ok {
		log.Printf("[level] %s was the last level", as.layout.Name)
		return
	}
	_ = systems.SaveGameProgress(next.Name)
	log.Printf("[level] advancing from %s to %s", as.layout.Name, next.Name)
	as.sceneChanger.ChangeScene(NewArenaSceneWith(as.sceneChanger, as.devices, as.campaign, next, nil))
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// ECS exposes the scene's world, nil before the first Update.
func (as *ArenaScene) ECS() *ecs.ECS {
	return as.ecs
}

// Layout is the layout the scene plays.
func (as *ArenaScene) Layout() *leveldata.Layout {
	return as.layout
}

// Encounter exposes the scene's combat state, nil before the first Update.
func (as *ArenaScene) Encounter() *combat.State {
	return as.encounter
}

// Exit resets the encounter and stops the ledger worker.
func (as *ArenaScene) Exit() {
	if as.encounter != nil {
		as.encounter.Reset()
	}
	if as.ledger != nil {
		if err := as.ledger.Close(); err != nil {
			log.Printf("Warning: Could not close ledger: %v", err)
		}
	}
}

func (as *ArenaScene) configure() {
	if as.campaign == nil {
		as.campaign = factory.LoadCampaign()
	}
	if as.layout == nil {
		as.layout = factory.StartLayout(as.campaign, cfg.C.Level)
	}
	if as.ledger == nil {
		as.ledger = openLedger()
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	as.encounter = combat.NewState()

	arbiter := systems.NewArbiter(systems.NewAnimationProbe(ecs.World))
	if arbiter.EffectivePolicy() != arbiter.Policy {
		log.Printf("[combat] no animation probe, using %s policy", arbiter.EffectivePolicy())
	}

	pipeline := systems.Pipeline{
		Devices:   as.devices,
		Encounter: as.encounter,
		Arbiter:   arbiter,
		Ledger:    as.ledger,
	}
	pipeline.Register(ecs)
	pipeline.RegisterRenderers(ecs)

	as.ecs = ecs

	// The space must exist before any body or solid is created.
	factory.CreateSpace(ecs, arenaSize(as.layout.Width, cfg.Physics.ArenaWidth), arenaSize(as.layout.Depth, cfg.Physics.ArenaDepth), cfg.Physics.CellSize)
	factory.CreateLevel(ecs, as.layout, as.ledger)

	player := as.layout.PlayerSpawn.Vec3()
	factory.CreatePlayer(ecs, player)
	factory.CreateEnemy(ecs, as.layout.EnemySpawn.Vec3())
	factory.CreateCamera(ecs, player)

	log.Printf("[arena] loaded %s: %d solids, %d steps, %d collectibles, policy %s",
		as.layout.Name, len(as.layout.Solids), len(as.layout.Steps), len(as.layout.Collectibles), arbiter.EffectivePolicy())
}

// openLedger picks the pickup sink from the configuration.
func openLedger() ledger.Ledger {
	if cfg.Debug.SkipPersistence || cfg.Ledger.Mode == "none" {
		return &ledger.Nop{}
	}
	l, err := ledger.OpenLocal(cfg.Ledger.AppName, cfg.Ledger.QueueSize)
	if err != nil {
		log.Printf("Warning: Could not open pickup ledger, pickups will not be saved: %v", err)
		return &ledger.Nop{}
	}
	return l
}

// arenaSize rounds a layout extent up to whole units, using fallback for
// layouts without one.
func arenaSize(extent float64, fallback int) int {
	if extent <= 0 {
		return fallback
	}
	return int(math.Ceil(extent))
}
