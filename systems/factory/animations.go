package factory

import (
	"fmt"

	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "enemy") which maps to a clip table in config.
func GenerateAnimations(key string, initial int) *components.AnimationData {
	clips, ok := cfg.CharacterClips[key]
	if !ok {
		// Panic to catch configuration errors early.
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}
	return &components.AnimationData{
		Clips:   clips,
		Desired: initial,
		Current: initial,
	}
}
