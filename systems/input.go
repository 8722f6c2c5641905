package systems

import (
	"log"

	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateInput polls the devices into every player's InputData and turns it
// into this tick's intents. Must run first in the system order.
func UpdateInput(devices DeviceReader) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		state := devices.Read()

		components.Input.Each(ecs.World, func(e *donburi.Entry) {
			input := components.Input.Get(e)

			// Swap buffers: current becomes previous
			input.Previous = input.Current
			input.Current = state.Pressed
			input.Stick = state.Stick
			if state.Used {
				input.LastInputMethod = state.Method
			}

			if input.JustPressed(cfg.ActionToggleDebug) {
				cfg.Debug.Enabled = !cfg.Debug.Enabled
				log.Printf("[input] debug overlay %v", cfg.Debug.Enabled)
				SaveCurrentSettings()
			}

			if e.HasComponent(components.Intents) {
				NormalizeInput(input, components.Intents.Get(e))
			}
		})
	}
}

// NormalizeInput emits at most one Move and one Jump intent plus the
// rising-edge action triggers.
func NormalizeInput(input *components.InputData, intents *components.IntentsData) {
	if dir, ok := MoveDirection(input); ok {
		intents.Movement = append(intents.Movement, components.MovementIntent{
			Kind:      components.IntentMove,
			Direction: dir,
		})
	}
	if input.JustPressed(cfg.ActionJump) {
		intents.Movement = append(intents.Movement, components.MovementIntent{Kind: components.IntentJump})
	}

	intents.Shift = input.Current[cfg.ActionModifier]
	intents.AttackPrimary = input.JustPressed(cfg.ActionAttackPrimary)
	intents.AttackSecondary = input.JustPressed(cfg.ActionAttackSecondary)
	intents.Interact = input.JustPressed(cfg.ActionInteract)
}

// MoveDirection combines the direction keys and the stick additively and
// clamps the result to unit length. X is right, Y is back.
func MoveDirection(input *components.InputData) (dmath.Vec2, bool) {
	x := input.Stick.X
	y := input.Stick.Y
	if input.Current[cfg.ActionTurnRight] {
		x++
	}
	if input.Current[cfg.ActionTurnLeft] {
		x--
	}
	if input.Current[cfg.ActionMoveBack] {
		y++
	}
	if input.Current[cfg.ActionMoveForward] {
		y--
	}

	if x == 0 && y == 0 {
		return dmath.Vec2{}, false
	}
	x, y = gamemath.ClampLength2(x, y, 1)
	return dmath.NewVec2(x, y), true
}
