package components

import (
	"github.com/automoto/elysium/config"
	"github.com/yohamta/donburi"
)

// AnimationData is a minimal animation player: one active clip per actor.
type AnimationData struct {
	Clips    map[int]config.ClipDef
	Desired  int // index requested by gameplay this tick
	Current  int
	Elapsed  float64
	Finished bool
}

// SetAnimation starts the clip at index. Requesting the clip that is already
// playing keeps its progress.
func (a *AnimationData) SetAnimation(index int) {
	if a.Current == index {
		return
	}
	a.Current = index
	a.Elapsed = 0
	a.Finished = false
}

// Advance moves the active clip forward. Non-looping clips stop at their end.
func (a *AnimationData) Advance(dt float64) {
	if a.Finished {
		return
	}
	a.Elapsed += dt
	clip, ok := a.Clips[a.Current]
	if !ok || clip.Loop || clip.Seconds <= 0 {
		return
	}
	if a.Elapsed >= clip.Seconds {
		a.Elapsed = clip.Seconds
		a.Finished = true
	}
}

// IsPlaying reports whether index is the active clip.
func (a *AnimationData) IsPlaying(index int) bool {
	return a.Current == index
}

// IsFinished reports whether every active clip has completed.
func (a *AnimationData) IsFinished() bool {
	return a.Finished
}

var Animation = donburi.NewComponentType[AnimationData]()
