package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/elysium/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadCampaign loads every embedded level and chains them by their
// next_level property.
func LoadCampaign() (*leveldata.Campaign, error) {
	c, err := leveldata.LoadCampaign(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	return c, nil
}
