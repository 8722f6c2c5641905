package systems

import (
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/automoto/elysium/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the follow rig behind and above the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, skip camera update
	}
	body := components.Body.Get(playerEntry)

	desired := CameraTarget(body.Position, body.Yaw, camera.Distance, camera.Height)
	camera.Position = camera.Position.Lerp(desired, gamemath.Rate(camera.FollowRate, cfg.C.DeltaSeconds()))
	camera.LookAt = body.Position
}

// CameraTarget is the rig position for a player at pos facing yaw.
func CameraTarget(pos gamemath.Vec3, yaw, distance, height float64) gamemath.Vec3 {
	back := gamemath.Forward(yaw).Scale(-distance)
	return pos.Add(back).Add(gamemath.NewVec3(0, height, 0))
}
