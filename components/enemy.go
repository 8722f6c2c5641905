package components

import (
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	AttackRange float64
	MoveSpeed   float64

	// IsMoving comes from displacement between ticks, not velocity.
	IsMoving        bool
	LastPosition    gamemath.Vec3
	HasLastPosition bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
