package physics

import "math"

// Mover integrates a body's velocity into its position for one tick.
type Mover interface {
	Integrate(w *World, b *Body, dt float64)
}

// DynamicMover responds to solids: it slides along walls, climbs ledges no
// taller than MaxStepHeight and lands on the highest surface below it.
type DynamicMover struct {
	MaxStepHeight float64
	// ClimbSpeed caps how fast the body rises onto a step, in units per
	// second. Zero lifts it onto the step in a single tick.
	ClimbSpeed float64
	// DetectionDistance is how far ahead of the footprint, along the
	// horizontal velocity, steps start lifting the body.
	DetectionDistance float64
}

// KinematicMover writes position from velocity and ignores collisions.
type KinematicMover struct{}

func (m DynamicMover) Integrate(w *World, b *Body, dt float64) {
	if w == nil {
		KinematicMover{}.Integrate(w, b, dt)
		return
	}

	if dx := b.Velocity.X * dt; dx != 0 {
		if m.passable(w, b, b.Position.X+dx, b.Position.Z) {
			b.Position.X += dx
		} else {
			b.Velocity.X = 0
		}
	}
	if dz := b.Velocity.Z * dt; dz != 0 {
		if m.passable(w, b, b.Position.X, b.Position.Z+dz) {
			b.Position.Z += dz
		} else {
			b.Velocity.Z = 0
		}
	}

	y := b.Position.Y + b.Velocity.Y*dt
	if step := m.stepTarget(w, b); step > b.Position.Y {
		climb := step
		if m.ClimbSpeed > 0 {
			climb = math.Min(step, b.Position.Y+m.ClimbSpeed*dt)
		}
		if climb > y {
			y = climb
			if b.Velocity.Y < 0 {
				b.Velocity.Y = 0
			}
		}
	}
	if ground := w.GroundHeight(b); y <= ground {
		y = ground
		b.Velocity.Y = 0
	}
	b.Position.Y = y
	b.syncFootprint()
}

// passable reports whether the body may occupy (x, z): every solid it would
// overlap is either below its feet or a climbable step.
func (m DynamicMover) passable(w *World, b *Body, x, z float64) bool {
	feet := b.Position.Y
	for _, obj := range w.candidates(b, x, z) {
		if !overlaps(obj, x, z, b.Radius) {
			continue
		}
		if surfaceOf(obj).Top-feet > m.MaxStepHeight+surfaceEpsilon {
			return false
		}
	}
	return true
}

// stepTarget returns the highest climbable top under the footprint or within
// DetectionDistance ahead of it, or the feet height when there is none.
func (m DynamicMover) stepTarget(w *World, b *Body) float64 {
	feet := b.Position.Y
	target := feet

	scan := func(x, z float64) {
		for _, obj := range w.candidates(b, x, z) {
			if !overlaps(obj, x, z, b.Radius) {
				continue
			}
			top := surfaceOf(obj).Top
			if top > target && top-feet <= m.MaxStepHeight+surfaceEpsilon {
				target = top
			}
		}
	}

	scan(b.Position.X, b.Position.Z)
	if m.DetectionDistance > 0 {
		if speed := b.Velocity.HorizontalLength(); speed > 0 {
			ahead := m.DetectionDistance / speed
			scan(b.Position.X+b.Velocity.X*ahead, b.Position.Z+b.Velocity.Z*ahead)
		}
	}
	return target
}

func (KinematicMover) Integrate(_ *World, b *Body, dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.syncFootprint()
}
