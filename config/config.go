package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the arena uses.
const Default ecs.LayerID = 0

// MovementConfig tunes the player character controller.
type MovementConfig struct {
	Acceleration  float64
	DampingFactor float64
	JumpImpulse   float64
	MaxSpeed      float64 // horizontal cap, units per second
	TurnRate      float64 // radians per second at full sideways input
	TickScale     float64 // multiplier applied to acceleration*dt on Move

	// Animation selection
	MovingSpeedThreshold float64 // horizontal speed above which the actor counts as moving
	RunAfter             float64 // seconds of continuous movement before walk becomes run

	// Collider (capsule footprint)
	CapsuleRadius float64
	CapsuleLength float64
}

// PhysicsConfig holds integration and ground handling constants.
type PhysicsConfig struct {
	Gravity          float64
	GroundStickSpeed float64 // downward bias applied while grounded
	GroundedEpsilon  float64 // |vy| below this counts as grounded

	// Ground shape-cast
	GroundCastDistance float64
	GroundCastShrink   float64 // caster footprint scale relative to the collider

	// Steps
	StairHeight            float64 // default height for step objects without one
	MaxStepHeight          float64 // tallest ledge the dynamic mover climbs
	StairClimbSpeed        float64 // units per second the body rises onto a step, 0 pops instantly
	StairDetectionDistance float64 // look-ahead along the horizontal velocity for steps
	FloorHeight            float64

	// Spatial grid
	ArenaWidth  int
	ArenaDepth  int
	CellSize    int
	SolidHeight float64 // default height for solids without one
}

// EnemyConfig contains the approach AI tuning for the arena enemy.
type EnemyConfig struct {
	AttackRange      float64
	MoveSpeed        float64
	ApproachLerpRate float64 // per second
	TurnLerpRate     float64 // per second
	GroundLevel      float64
	MovingThreshold  float64 // per-tick displacement that counts as moving
	Radius           float64
	Height           float64
}

// TurnPolicy selects how the enemy turn is completed.
type TurnPolicy string

const (
	TurnPolicyAnimation TurnPolicy = "animation"
	TurnPolicyTimer     TurnPolicy = "timer"
)

// CombatConfig contains the turn arbiter configuration.
type CombatConfig struct {
	AttackRange      float64
	TurnPolicy       TurnPolicy
	EnemyTurnSeconds float64 // timer policy only
}

// CollectibleConfig contains collectible pickup and hover settings.
type CollectibleConfig struct {
	Radius         float64
	HoverAmplitude float64
	HoverSeconds   float64 // duration of one rise or fall
	Behavior       string  // "immediate" or "confirm"
}

// CameraConfig contains follow-rig settings.
type CameraConfig struct {
	Distance   float64
	Height     float64
	FollowRate float64 // per second
}

// LedgerConfig selects the pickup notification sink.
type LedgerConfig struct {
	Mode      string // "local" or "none"
	AppName   string
	QueueSize int
}

// DebugConfig contains debug toggles.
type DebugConfig struct {
	Enabled         bool
	SkipPersistence bool
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
	Level    string
	Scale    float64 // screen pixels per world unit in the arena view
}

// DeltaSeconds is the fixed simulation step.
func (c *Config) DeltaSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Physics PhysicsConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Collectible CollectibleConfig
var Camera CameraConfig
var Ledger LedgerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightGrey  = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Floor      = color.RGBA{R: 24, G: 28, B: 36, A: 255}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
		Level:    "arena.tmx",
		Scale:    8,
	}

	Movement = MovementConfig{
		Acceleration:  100.0,
		DampingFactor: 0.6,
		JumpImpulse:   3.0,
		MaxSpeed:      54.0,
		TurnRate:      2.5,
		TickScale:     10.0,

		MovingSpeedThreshold: 0.1,
		RunAfter:             1.0,

		CapsuleRadius: 0.3,
		CapsuleLength: 1.4,
	}

	Physics = PhysicsConfig{
		Gravity:          9.8,
		GroundStickSpeed: 1.0,
		GroundedEpsilon:  0.1,

		GroundCastDistance: 0.2,
		GroundCastShrink:   0.99,

		StairHeight:            0.3,
		MaxStepHeight:          0.5,
		StairClimbSpeed:        2.0,
		StairDetectionDistance: 0.4,
		FloorHeight:            0,

		ArenaWidth:  128,
		ArenaDepth:  128,
		CellSize:    2,
		SolidHeight: 3.0,
	}

	Enemy = EnemyConfig{
		AttackRange:      3.5,
		MoveSpeed:        3.0,
		ApproachLerpRate: 5.0,
		TurnLerpRate:     3.0,
		GroundLevel:      0,
		MovingThreshold:  0.01,
		Radius:           0.5,
		Height:           2.5,
	}

	Combat = CombatConfig{
		AttackRange:      3.5,
		TurnPolicy:       TurnPolicyAnimation,
		EnemyTurnSeconds: 2.0,
	}

	Collectible = CollectibleConfig{
		Radius:         5.0,
		HoverAmplitude: 0.2,
		HoverSeconds:   0.8,
		Behavior:       "confirm",
	}

	Camera = CameraConfig{
		Distance:   18.0,
		Height:     4.0,
		FollowRate: 5.0,
	}

	Ledger = LedgerConfig{
		Mode:      "local",
		AppName:   "elysium",
		QueueSize: 16,
	}

	// Debug Config (defaults, can be overridden by environment)
	Debug = DebugConfig{
		Enabled:         false,
		SkipPersistence: false,
	}
}
