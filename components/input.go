package components

import (
	cfg "github.com/automoto/elysium/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Stick           math.Vec2 // left stick after the deadzone, Y down
	LastInputMethod InputMethod
}

// JustPressed reports a rising edge for the action this frame.
func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()

// IntentKind discriminates movement intents.
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentJump
)

// MovementIntent is produced by the input normalizer and consumed once by
// the movement engine in the same tick.
type MovementIntent struct {
	Kind      IntentKind
	Direction math.Vec2 // IntentMove only; X right, Y back
}

// IntentsData carries this tick's intents for one actor.
type IntentsData struct {
	Movement []MovementIntent

	AttackPrimary   bool
	AttackSecondary bool
	Interact        bool
	Shift           bool
}

// Clear drops every intent after it has been consumed.
func (i *IntentsData) Clear() {
	i.Movement = i.Movement[:0]
	i.AttackPrimary = false
	i.AttackSecondary = false
	i.Interact = false
	i.Shift = false
}

var Intents = donburi.NewComponentType[IntentsData]()
