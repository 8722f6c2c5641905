package systems

import (
	"testing"

	"github.com/automoto/elysium/components"
	"github.com/automoto/elysium/ledger"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/automoto/elysium/shared/leveldata"
	"github.com/automoto/elysium/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func collectCoins(count int) leveldata.Objective {
	return leveldata.Objective{ID: "coins", Title: "Collect coins", Kind: leveldata.ObjectiveCollect, Target: "coin", Count: count}
}

func reachCorner() leveldata.Objective {
	return leveldata.Objective{
		ID:       "corner",
		Title:    "Reach the corner",
		Kind:     leveldata.ObjectiveReach,
		Position: leveldata.Point{X: 40, Z: 40},
		Radius:   2,
	}
}

func levelWith(objectives ...leveldata.Objective) *components.LevelData {
	return &components.LevelData{Name: "test", Layout: &leveldata.Layout{Name: "test", Objectives: objectives}}
}

func TestEvaluateCollectObjective(t *testing.T) {
	level := levelWith(collectCoins(2))
	player := &components.PlayerData{}

	assert.False(t, EvaluateObjectives(level, player, gamemath.Vec3{}))
	require.Len(t, level.Progress, 1)

	player.AddCollected(components.ItemBook)
	player.AddCollected(components.ItemCoin)
	assert.False(t, EvaluateObjectives(level, player, gamemath.Vec3{}), "other kinds do not count")
	assert.Equal(t, 1, level.Progress[0].Current)

	player.AddCollected(components.ItemCoin)
	assert.True(t, EvaluateObjectives(level, player, gamemath.Vec3{}))
	assert.Equal(t, components.ObjectiveProgress{Current: 2, Done: true}, level.Progress[0])
}

func TestEvaluateReachObjective(t *testing.T) {
	tests := []struct {
		name string
		pos  gamemath.Vec3
		want bool
	}{
		{"outside radius", gamemath.NewVec3(40, 0, 43), false},
		{"on the edge", gamemath.NewVec3(42, 0, 40), true},
		{"inside", gamemath.NewVec3(41, 0, 41), true},
		{"height ignored", gamemath.NewVec3(40, 10, 40), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := levelWith(reachCorner())
			assert.Equal(t, tt.want, EvaluateObjectives(level, &components.PlayerData{}, tt.pos))
			assert.Equal(t, tt.want, level.Progress[0].Done)
		})
	}
}

func TestEvaluateObjectivesStayDone(t *testing.T) {
	level := levelWith(reachCorner(), collectCoins(1))
	player := &components.PlayerData{}

	assert.False(t, EvaluateObjectives(level, player, gamemath.NewVec3(40, 0, 40)))
	assert.True(t, level.Progress[0].Done)

	// Leaving the area keeps the reach objective finished.
	player.AddCollected(components.ItemCoin)
	assert.True(t, EvaluateObjectives(level, player, gamemath.NewVec3(0, 0, 0)))
}

func TestEvaluateUnknownTargetNeverCompletes(t *testing.T) {
	obj := collectCoins(1)
	obj.Target = "dragon_egg"
	level := levelWith(obj)
	player := &components.PlayerData{}
	for kind := components.ItemKind(0); kind < components.ItemKindCount; kind++ {
		player.AddCollected(kind)
	}

	assert.False(t, EvaluateObjectives(level, player, gamemath.Vec3{}))
	assert.False(t, level.Progress[0].Done)
}

func newObjectiveWorld(t *testing.T, layout *leveldata.Layout, playerPos gamemath.Vec3) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 64, 64, 2)
	level := factory.CreateLevel(e, layout, &ledger.Nop{})
	player := factory.CreatePlayer(e, playerPos)
	return e, level, player
}

func TestUpdateObjectivesCompletesLevel(t *testing.T) {
	layout := &leveldata.Layout{Name: "test", Objectives: []leveldata.Objective{reachCorner()}}
	e, levelEntry, player := newObjectiveWorld(t, layout, gamemath.NewVec3(10, 0, 10))
	level := components.Level.Get(levelEntry)

	UpdateObjectives(e)
	require.False(t, level.Complete)

	components.Body.Get(player).Position = gamemath.NewVec3(40, 0, 41)
	UpdateObjectives(e)
	assert.True(t, level.Complete)
}

func TestUpdateObjectivesWithoutObjectives(t *testing.T) {
	e, levelEntry, _ := newObjectiveWorld(t, &leveldata.Layout{Name: "sandbox"}, gamemath.NewVec3(10, 0, 10))

	UpdateObjectives(e)
	assert.False(t, components.Level.Get(levelEntry).Complete)
}

func TestObjectiveLines(t *testing.T) {
	level := levelWith(collectCoins(3), reachCorner(), collectCoins(1))
	level.Progress = []components.ObjectiveProgress{{Current: 2}, {Current: 1, Done: true}, {}}

	assert.Equal(t, []string{
		"[ ] Collect coins (2/3)",
		"[x] Reach the corner",
		"[ ] Collect coins",
	}, ObjectiveLines(level))

	assert.Nil(t, ObjectiveLines(nil))
	assert.Empty(t, ObjectiveLines(levelWith()))
}
