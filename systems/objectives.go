package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/elysium/components"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/automoto/elysium/shared/leveldata"
	"github.com/automoto/elysium/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjectives advances the level's objectives from the player's
// pickups and position and marks the level complete once all are done.
// Layouts without objectives never complete.
func UpdateObjectives(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Complete || level.Layout == nil || len(level.Layout.Objectives) == 0 {
		return
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	if EvaluateObjectives(level, components.Player.Get(player), components.Body.Get(player).Position) {
		level.Complete = true
		log.Printf("[level] %s complete", level.Name)
	}
}

// EvaluateObjectives updates every unfinished objective and reports whether
// all of them are done. Finished objectives stay finished.
func EvaluateObjectives(level *components.LevelData, player *components.PlayerData, pos gamemath.Vec3) bool {
	objectives := level.Layout.Objectives
	if len(level.Progress) != len(objectives) {
		level.Progress = make([]components.ObjectiveProgress, len(objectives))
	}

	all := true
	for i, obj := range objectives {
		progress := &level.Progress[i]
		if !progress.Done {
			switch obj.Kind {
			case leveldata.ObjectiveCollect:
				if kind, ok := components.ParseItemKind(obj.Target); ok {
					progress.Current = player.CollectedOf(kind)
					progress.Done = progress.Current >= obj.Count
				}
			case leveldata.ObjectiveReach:
				if math.Hypot(pos.X-obj.Position.X, pos.Z-obj.Position.Z) <= obj.Radius {
					progress.Current = 1
					progress.Done = true
				}
			}
			if progress.Done {
				log.Printf("[level] objective %s complete", obj.ID)
			}
		}
		all = all && progress.Done
	}
	return all
}

// ObjectiveLines formats the objectives for the HUD.
func ObjectiveLines(level *components.LevelData) []string {
	if level == nil || level.Layout == nil {
		return nil
	}
	lines := make([]string, 0, len(level.Layout.Objectives))
	for i, obj := range level.Layout.Objectives {
		var progress components.ObjectiveProgress
		if i < len(level.Progress) {
			progress = level.Progress[i]
		}
		mark := "[ ]"
		if progress.Done {
			mark = "[x]"
		}
		line := mark + " " + obj.Title
		if obj.Kind == leveldata.ObjectiveCollect && obj.Count > 1 {
			line += fmt.Sprintf(" (%d/%d)", progress.Current, obj.Count)
		}
		lines = append(lines, line)
	}
	return lines
}
