package components

import (
	"github.com/automoto/elysium/physics"
	"github.com/yohamta/donburi"
)

// KinematicData is an actor's movement state. Velocity lives on the body;
// IsGrounded is only written by the grounding system.
type KinematicData struct {
	IsGrounded    bool
	Jumped        bool // a jump was applied this tick
	Acceleration  float64
	DampingFactor float64
	JumpImpulse   float64
	MaxSpeed      float64
	TurnRate      float64
	TickScale     float64

	Ground physics.CastResult // last downward cast
}

var Kinematic = donburi.NewComponentType[KinematicData]()

// BodyData couples an actor's body with the strategy that integrates it.
type BodyData struct {
	physics.Body
	Mover physics.Mover
}

var Body = donburi.NewComponentType[BodyData]()

// SpaceData holds the arena's physics adapter.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()
