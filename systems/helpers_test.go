package systems

import (
	"testing"

	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/physics"
)

const tick = 1.0 / 60.0

// fakeDevices replays a fixed device state every tick.
type fakeDevices struct {
	state DeviceState
	reads int
}

func (f *fakeDevices) Read() DeviceState {
	f.reads++
	return f.state
}

func (f *fakeDevices) press(actions ...cfg.ActionID) {
	f.state = DeviceState{Used: true}
	for _, a := range actions {
		f.state.Pressed[a] = true
	}
}

func newKinematic() *components.KinematicData {
	return &components.KinematicData{
		Acceleration:  cfg.Movement.Acceleration,
		DampingFactor: cfg.Movement.DampingFactor,
		JumpImpulse:   cfg.Movement.JumpImpulse,
		MaxSpeed:      cfg.Movement.MaxSpeed,
		TurnRate:      cfg.Movement.TurnRate,
		TickScale:     cfg.Movement.TickScale,
	}
}

func newBody() *physics.Body {
	return &physics.Body{Radius: cfg.Movement.CapsuleRadius, Height: 2}
}

// restoreConfig snapshots the globals a test may change.
func restoreConfig(t *testing.T) {
	t.Helper()
	combatCfg, enemyCfg, collectCfg, debugCfg := cfg.Combat, cfg.Enemy, cfg.Collectible, cfg.Debug
	t.Cleanup(func() {
		cfg.Combat, cfg.Enemy, cfg.Collectible, cfg.Debug = combatCfg, enemyCfg, collectCfg, debugCfg
	})
}
