package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

// Resolv tags used by the adapter.
const (
	TagSolid = "solid"
	TagStep  = "step"
	TagActor = "actor"
)

// Surface is attached to every solid through resolv.Object.Data.
type Surface struct {
	Top  float64
	Step bool
}

// World is the physics adapter: a resolv.Space over the arena's X/Z plane
// with a height attached to each solid. World X maps to resolv X and world Z
// maps to resolv Y.
type World struct {
	Space *resolv.Space
	Floor float64

	width, depth float64
	solids       []*resolv.Object
}

// NewWorld creates an empty arena of the given footprint.
func NewWorld(width, depth, cellSize int, floor float64) *World {
	return &World{
		Space: resolv.NewSpace(width, depth, cellSize, cellSize),
		Floor: floor,
		width: float64(width),
		depth: float64(depth),
	}
}

// Bounds returns the arena footprint in world units.
func (w *World) Bounds() (width, depth float64) {
	return w.width, w.depth
}

// AddSolid adds an axis-aligned block whose footprint starts at (x, z).
func (w *World) AddSolid(x, z, width, depth, top float64) *resolv.Object {
	obj := resolv.NewObject(x, z, width, depth, TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, depth))
	obj.Data = &Surface{Top: top}
	w.Space.Add(obj)
	w.solids = append(w.solids, obj)
	return obj
}

// AddStep adds a low block the dynamic mover can step onto.
func (w *World) AddStep(x, z, width, depth, top float64) *resolv.Object {
	obj := resolv.NewObject(x, z, width, depth, TagSolid, TagStep)
	obj.SetShape(resolv.NewRectangle(0, 0, width, depth))
	obj.Data = &Surface{Top: top, Step: true}
	w.Space.Add(obj)
	w.solids = append(w.solids, obj)
	return obj
}

// Solids returns every solid registered with the world.
func (w *World) Solids() []*resolv.Object {
	return w.solids
}

// Attach creates the actor's footprint object and registers it with the space.
func (w *World) Attach(b *Body) {
	if b.Footprint != nil {
		w.Space.Remove(b.Footprint)
	}
	size := b.Radius * 2
	b.Footprint = resolv.NewObject(b.Position.X-b.Radius, b.Position.Z-b.Radius, size, size, TagActor)
	b.Footprint.SetShape(resolv.NewRectangle(0, 0, size, size))
	w.Space.Add(b.Footprint)
}

// CastResult is the outcome of a downward shape-cast.
type CastResult struct {
	Hit      bool
	Distance float64 // from the feet to the surface below
	Surface  float64 // height of the surface below
}

// CastDown sweeps a copy of the body's footprint, scaled by shrink, along -Y
// for up to maxDistance and reports the highest surface it meets.
func (w *World) CastDown(b *Body, shrink, maxDistance float64) CastResult {
	half := b.Radius * shrink
	ground := w.supportHeight(b, b.Position.X, b.Position.Z, half, b.Position.Y)
	dist := b.Position.Y - ground
	return CastResult{
		Hit:      dist >= -surfaceEpsilon && dist <= maxDistance,
		Distance: math.Max(dist, 0),
		Surface:  ground,
	}
}

// GroundHeight reports the height the body would rest on at its current
// footprint, the floor when nothing is under it.
func (w *World) GroundHeight(b *Body) float64 {
	return w.supportHeight(b, b.Position.X, b.Position.Z, b.Radius, b.Position.Y)
}

const surfaceEpsilon = 1e-6

// supportHeight returns the highest solid top at or below feet that overlaps a
// square footprint of the given half extent centred on (x, z).
func (w *World) supportHeight(b *Body, x, z, half, feet float64) float64 {
	ground := w.Floor
	for _, obj := range w.candidates(b, x, z) {
		if !overlaps(obj, x, z, half) {
			continue
		}
		top := surfaceOf(obj).Top
		if top <= feet+surfaceEpsilon && top > ground {
			ground = top
		}
	}
	return ground
}

// candidates uses the resolv grid as a broad phase when the body has a
// footprint in the space, and falls back to every solid otherwise.
func (w *World) candidates(b *Body, x, z float64) []*resolv.Object {
	if b == nil || b.Footprint == nil || b.Footprint.Space == nil {
		return w.solids
	}
	dx := x - b.Radius - b.Footprint.X
	dz := z - b.Radius - b.Footprint.Y
	check := b.Footprint.Check(dx, dz, TagSolid)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(TagSolid)
}

func overlaps(obj *resolv.Object, x, z, half float64) bool {
	return x+half > obj.X && x-half < obj.X+obj.W &&
		z+half > obj.Y && z-half < obj.Y+obj.H
}

func surfaceOf(obj *resolv.Object) *Surface {
	if s, ok := obj.Data.(*Surface); ok {
		return s
	}
	return &Surface{}
}
