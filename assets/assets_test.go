package assets

import (
	"testing"

	"github.com/automoto/elysium/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCampaign(t *testing.T) {
	c, err := LoadCampaign()
	require.NoError(t, err)
	assert.Equal(t, []string{"arena", "grove"}, c.Names())

	arena, ok := c.Get("arena.tmx")
	require.True(t, ok)
	assert.NotEmpty(t, arena.Solids)
	require.Len(t, arena.Objectives, 2)
	assert.Equal(t, leveldata.ObjectiveCollect, arena.Objectives[0].Kind)
	assert.Equal(t, leveldata.ObjectiveReach, arena.Objectives[1].Kind)

	grove, ok := c.Next(arena)
	require.True(t, ok, "arena leads to the grove")
	assert.Equal(t, "grove", grove.Name)
	require.Len(t, grove.Objectives, 1)
	assert.Equal(t, 3, grove.Objectives[0].Count)

	_, ok = c.Next(grove)
	assert.False(t, ok, "grove is the last level")
}

func TestCampaignObjectivesAreReachable(t *testing.T) {
	c, err := LoadCampaign()
	require.NoError(t, err)

	for _, name := range c.Names() {
		layout, _ := c.Get(name)
		kinds := map[string]int{}
		for _, spawn := range layout.Collectibles {
			kinds[spawn.Kind]++
		}
		for _, obj := range layout.Objectives {
			if obj.Kind != leveldata.ObjectiveCollect {
				continue
			}
			assert.GreaterOrEqual(t, kinds[obj.Target], obj.Count,
				"%s: objective %s needs more %s than the level holds", name, obj.ID, obj.Target)
		}
	}
}
