package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Attack-intent flags, true while the attack clip plays.
	FightMove1 bool
	FightMove2 bool

	ForwardHoldTime float64 // seconds of continuous movement input
	Collected       int
	CollectedByKind [ItemKindCount]int
}

// AddCollected counts one picked-up item.
func (p *PlayerData) AddCollected(kind ItemKind) {
	p.Collected++
	if kind >= 0 && kind < ItemKindCount {
		p.CollectedByKind[kind]++
	}
}

// CollectedOf reports how many items of kind the player has picked up.
func (p *PlayerData) CollectedOf(kind ItemKind) int {
	if kind < 0 || kind >= ItemKindCount {
		return 0
	}
	return p.CollectedByKind[kind]
}

// Attacking reports whether either attack flag is raised.
func (p *PlayerData) Attacking() bool {
	return p.FightMove1 || p.FightMove2
}

var Player = donburi.NewComponentType[PlayerData]()
