package systems

import (
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// DeviceState is one tick of raw device input.
type DeviceState struct {
	Pressed [cfg.ActionCount]bool
	Stick   math.Vec2 // left stick after the deadzone, Y down
	Method  components.InputMethod
	Used    bool
}

// DeviceReader polls the input devices.
type DeviceReader interface {
	Read() DeviceState
}

// EbitenDevices reads the keyboard and every standard-layout gamepad.
type EbitenDevices struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func (d *EbitenDevices) Read() DeviceState {
	var st DeviceState
	var keyboardUsed, gamepadUsed bool

	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				st.Pressed[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					st.Pressed[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal), cfg.Input.AnalogDeadzone)
		v := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical), cfg.Input.AnalogDeadzone)
		if h != 0 || v != 0 {
			st.Stick = math.NewVec2(h, v)
			gamepadUsed = true
			break
		}
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		st.Method = components.InputGamepad
	} else {
		st.Method = components.InputKeyboard
	}
	st.Used = keyboardUsed || gamepadUsed
	return st
}

// applyDeadzone zeroes axis values whose magnitude is within the deadzone.
func applyDeadzone(v, deadzone float64) float64 {
	if v > -deadzone && v < deadzone {
		return 0
	}
	return v
}
