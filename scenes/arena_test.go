package scenes

import (
	"testing"

	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/ledger"
	"github.com/automoto/elysium/shared/leveldata"
	"github.com/automoto/elysium/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

type idleDevices struct{}

func (idleDevices) Read() systems.DeviceState { return systems.DeviceState{} }

func testLayout(name, next string, objectives ...leveldata.Objective) *leveldata.Layout {
	return &leveldata.Layout{
		Name:        name,
		Width:       64,
		Depth:       64,
		PlayerSpawn: leveldata.Point{X: 10, Z: 10},
		EnemySpawn:  leveldata.Point{X: 50, Z: 50},
		Objectives:  objectives,
		Next:        next,
	}
}

func reachSpawn() leveldata.Objective {
	return leveldata.Objective{
		ID:       "spawn",
		Title:    "Stand at the spawn",
		Kind:     leveldata.ObjectiveReach,
		Position: leveldata.Point{X: 10, Z: 10},
		Radius:   2,
	}
}

func newTestScene(t *testing.T, start string, layouts ...*leveldata.Layout) (*ArenaScene, *recordingChanger) {
	t.Helper()
	skip := cfg.Debug.SkipPersistence
	cfg.Debug.SkipPersistence = true
	t.Cleanup(func() { cfg.Debug.SkipPersistence = skip })

	campaign, err := leveldata.NewCampaign(layouts...)
	require.NoError(t, err)
	layout, ok := campaign.Get(start)
	require.True(t, ok)

	changer := &recordingChanger{}
	scene := NewArenaSceneWith(changer, idleDevices{}, campaign, layout, &ledger.Nop{})
	t.Cleanup(scene.Exit)
	return scene, changer
}

func TestArenaSceneAdvancesWhenObjectivesComplete(t *testing.T) {
	scene, changer := newTestScene(t, "first",
		testLayout("first", "second", reachSpawn()),
		testLayout("second", ""),
	)

	scene.Update()

	require.Len(t, changer.scenes, 1)
	next, ok := changer.scenes[0].(*ArenaScene)
	require.True(t, ok, "changed to %T", changer.scenes[0])
	assert.Equal(t, "second", next.Layout().Name)

	scene.Update()
	assert.Len(t, changer.scenes, 1, "a completed level advances once")
}

func TestArenaSceneStaysOnLastLevel(t *testing.T) {
	scene, changer := newTestScene(t, "only", testLayout("only", "", reachSpawn()))

	scene.Update()

	assert.Empty(t, changer.scenes)
	levelEntry, ok := components.Level.First(scene.ECS().World)
	require.True(t, ok)
	assert.True(t, components.Level.Get(levelEntry).Complete)
}

func TestArenaSceneWithoutObjectivesNeverCompletes(t *testing.T) {
	scene, changer := newTestScene(t, "first", testLayout("first", "second"), testLayout("second", ""))

	for i := 0; i < 30; i++ {
		scene.Update()
	}

	assert.Empty(t, changer.scenes)
	assert.Equal(t, "first", scene.Layout().Name)
}
