package factory

import (
	"github.com/automoto/elysium/archetypes"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, lookAt gamemath.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position:   lookAt.Add(gamemath.NewVec3(0, cfg.Camera.Height, cfg.Camera.Distance)),
		LookAt:     lookAt,
		Distance:   cfg.Camera.Distance,
		Height:     cfg.Camera.Height,
		FollowRate: cfg.Camera.FollowRate,
	})
	return camera
}
