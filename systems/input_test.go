package systems

import (
	"math"
	"testing"

	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/automoto/elysium/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// newInputWorld creates a world holding a single player.
func newInputWorld(devices *fakeDevices) (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 64, 64, 2)
	return e, factory.CreatePlayer(e, gamemath.NewVec3(10, 0, 10))
}

func TestMoveDirection(t *testing.T) {
	tests := []struct {
		name    string
		pressed []cfg.ActionID
		stick   dmath.Vec2
		want    dmath.Vec2
		wantOK  bool
	}{
		{name: "nothing", wantOK: false},
		{name: "forward", pressed: []cfg.ActionID{cfg.ActionMoveForward}, want: dmath.NewVec2(0, -1), wantOK: true},
		{name: "back", pressed: []cfg.ActionID{cfg.ActionMoveBack}, want: dmath.NewVec2(0, 1), wantOK: true},
		{name: "turn right", pressed: []cfg.ActionID{cfg.ActionTurnRight}, want: dmath.NewVec2(1, 0), wantOK: true},
		{name: "opposite keys cancel", pressed: []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionMoveBack}, wantOK: false},
		{name: "stick only", stick: dmath.NewVec2(0.5, 0), want: dmath.NewVec2(0.5, 0), wantOK: true},
		{name: "stick cancels key", pressed: []cfg.ActionID{cfg.ActionTurnLeft}, stick: dmath.NewVec2(1, 0), wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{Stick: tt.stick}
			for _, a := range tt.pressed {
				input.Current[a] = true
			}

			got, ok := MoveDirection(input)

			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.want.X, got.X, 1e-9)
				assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			}
		})
	}
}

func TestMoveDirectionClampsDiagonal(t *testing.T) {
	input := &components.InputData{Stick: dmath.NewVec2(0.8, -0.8)}
	input.Current[cfg.ActionMoveForward] = true
	input.Current[cfg.ActionTurnRight] = true

	got, ok := MoveDirection(input)
	require.True(t, ok)
	assert.InDelta(t, 1, math.Hypot(got.X, got.Y), 1e-9)
	assert.InDelta(t, got.X, -got.Y, 1e-9, "clamping keeps the diagonal")
}

func TestNormalizeInputRisingEdges(t *testing.T) {
	input := &components.InputData{}
	intents := &components.IntentsData{}

	input.Current[cfg.ActionJump] = true
	input.Current[cfg.ActionAttackPrimary] = true
	input.Current[cfg.ActionModifier] = true
	NormalizeInput(input, intents)

	require.Len(t, intents.Movement, 1)
	assert.Equal(t, components.IntentJump, intents.Movement[0].Kind)
	assert.True(t, intents.AttackPrimary)
	assert.True(t, intents.Shift)

	// Held keys do not repeat.
	intents.Clear()
	input.Previous = input.Current
	NormalizeInput(input, intents)

	assert.Empty(t, intents.Movement, "held jump")
	assert.False(t, intents.AttackPrimary, "held attack re-triggered")
	assert.True(t, intents.Shift, "shift is level-triggered")
}

func TestNormalizeInputSingleMove(t *testing.T) {
	input := &components.InputData{Stick: dmath.NewVec2(0, -1)}
	input.Current[cfg.ActionMoveForward] = true
	intents := &components.IntentsData{}

	NormalizeInput(input, intents)

	require.Len(t, intents.Movement, 1)
	assert.Equal(t, components.IntentMove, intents.Movement[0].Kind)
}

func TestUpdateInputSwapsBuffers(t *testing.T) {
	devices := &fakeDevices{}
	e, player := newInputWorld(devices)
	system := UpdateInput(devices)

	devices.press(cfg.ActionInteract)
	system(e)
	input := components.Input.Get(player)
	require.True(t, input.JustPressed(cfg.ActionInteract))
	require.True(t, components.Intents.Get(player).Interact)

	system(e)
	assert.False(t, input.JustPressed(cfg.ActionInteract), "held interact re-triggered")
	assert.False(t, components.Intents.Get(player).Interact, "held interact re-triggered")
	assert.True(t, input.Previous[cfg.ActionInteract], "previous buffer updated")
	assert.Equal(t, 2, devices.reads, "devices read once per tick")
}

func TestApplyDeadzone(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.1, 0},
		{-0.19, 0},
		{0.5, 0.5},
		{-1, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, applyDeadzone(tt.in, 0.2), "applyDeadzone(%v)", tt.in)
	}
}
