package systems

import (
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/physics"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateMovement consumes this tick's movement intents. Must run after
// UpdateGrounding so jumps see the current grounded flag.
func UpdateMovement(ecs *ecs.ECS) {
	dt := cfg.C.DeltaSeconds()

	components.Intents.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Kinematic) || !e.HasComponent(components.Body) {
			return
		}
		intents := components.Intents.Get(e)
		kin := components.Kinematic.Get(e)
		body := &components.Body.Get(e).Body

		moved := false
		for _, intent := range intents.Movement {
			switch intent.Kind {
			case components.IntentMove:
				if ApplyMove(body, kin, intent.Direction, dt) {
					moved = true
				}
			case components.IntentJump:
				ApplyJump(body, kin)
			}
		}
		intents.Movement = intents.Movement[:0]

		if e.HasComponent(components.Player) {
			player := components.Player.Get(e)
			if moved {
				player.ForwardHoldTime += dt
			} else {
				player.ForwardHoldTime = 0
			}
		}
	})
}

// UpdateDamping applies friction and vertical handling to every kinematic actor.
func UpdateDamping(ecs *ecs.ECS) {
	dt := cfg.C.DeltaSeconds()

	components.Kinematic.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		ApplyDamping(&components.Body.Get(e).Body, components.Kinematic.Get(e), dt)
	})
}

// ApplyMove turns the body by the sideways input and sets its horizontal
// velocity from the new facing. A zero direction changes nothing.
func ApplyMove(body *physics.Body, kin *components.KinematicData, dir dmath.Vec2, dt float64) bool {
	if dir.X == 0 && dir.Y == 0 {
		return false
	}

	body.Yaw = gamemath.WrapAngle(body.Yaw - dir.X*kin.TurnRate*dt)
	forward := gamemath.Forward(body.Yaw)
	right := gamemath.Right(body.Yaw)

	scale := kin.Acceleration * dt * kin.TickScale
	vx := (forward.X*-dir.Y + right.X*dir.X) * scale
	vz := (forward.Z*-dir.Y + right.Z*dir.X) * scale
	vx, vz = gamemath.ClampHorizontalSpeed(vx, vz, kin.MaxSpeed)
	body.SetVelocity(gamemath.NewVec3(vx, body.Velocity.Y, vz))
	return true
}

// ApplyJump sets the vertical velocity to the jump impulse when grounded.
// Airborne jumps are dropped.
func ApplyJump(body *physics.Body, kin *components.KinematicData) bool {
	if !kin.IsGrounded {
		return false
	}
	body.Velocity.Y = kin.JumpImpulse
	kin.Jumped = true
	return true
}

// ApplyDamping scales horizontal velocity by the damping factor. Grounded
// actors get their vertical velocity replaced by the ground-stick bias unless
// they jumped this tick; airborne actors fall.
func ApplyDamping(body *physics.Body, kin *components.KinematicData, dt float64) {
	body.Velocity.X *= kin.DampingFactor
	body.Velocity.Z *= kin.DampingFactor
	body.Velocity.X, body.Velocity.Z = gamemath.ClampHorizontalSpeed(body.Velocity.X, body.Velocity.Z, kin.MaxSpeed)

	switch {
	case kin.Jumped:
		kin.Jumped = false
	case kin.IsGrounded:
		// Clamp both directions, then bias toward the ground.
		body.Velocity.Y = -cfg.Physics.GroundStickSpeed
	default:
		body.Velocity.Y -= cfg.Physics.Gravity * dt
	}
}
