package components

import (
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position   gamemath.Vec3
	LookAt     gamemath.Vec3
	Distance   float64
	Height     float64
	FollowRate float64
}

var Camera = donburi.NewComponentType[CameraData]()
