package components

import (
	"github.com/automoto/elysium/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ObjectiveProgress tracks one objective of the current layout.
type ObjectiveProgress struct {
	Current int
	Done    bool
}

type LevelData struct {
	Name   string
	Layout *leveldata.Layout

	// Progress is indexed like Layout.Objectives.
	Progress []ObjectiveProgress
	Complete bool
}

var Level = donburi.NewComponentType[LevelData]()
