// Package leveldata parses arena layouts from TMX files.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "github.com/automoto/elysium/shared/gamemath"

// PixelsPerUnit converts TMX pixel coordinates into world units.
const PixelsPerUnit = 8.0

// Layout is an arena in world units. TMX X maps to world X, TMX Y to world Z.
type Layout struct {
	Name         string
	Width, Depth float64
	PlayerSpawn  Point
	EnemySpawn   Point
	Solids       []Block
	Steps        []Block
	Collectibles []CollectibleSpawn
	Objectives   []Objective
	Next         string // layout played after this one, empty for the last
}

// Point is a world-space position; Y is elevation.
type Point struct {
	X, Y, Z float64
}

func (p Point) Vec3() gamemath.Vec3 {
	return gamemath.NewVec3(p.X, p.Y, p.Z)
}

// Block is an axis-aligned solid rising from the floor to Top.
type Block struct {
	X, Z, W, D float64
	Top        float64
}

// CollectibleSpawn places one pickup.
type CollectibleSpawn struct {
	Point
	Kind   string
	ItemID string
}

// ObjectiveKind names what completes an objective.
type ObjectiveKind string

const (
	ObjectiveCollect ObjectiveKind = "collect"
	ObjectiveReach   ObjectiveKind = "reach_location"
)

// Defaults applied to objectives without explicit values.
const (
	DefaultObjectiveCount  = 1
	DefaultObjectiveRadius = 5.0
)

// Objective is one goal of a level. A level is complete when all of its
// objectives are.
type Objective struct {
	ID    string
	Title string
	Kind  ObjectiveKind

	// Collect: Count items of kind Target.
	Target string
	Count  int

	// Reach: come within Radius of Position on the X/Z plane.
	Position Point
	Radius   float64
}
