package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in arena TMX files.
const (
	GroupSpawns       = "Spawns"
	GroupSolids       = "Solids"
	GroupSteps        = "Steps"
	GroupCollectibles = "Collectibles"
	GroupObjectives   = "Objectives"
)

// PropertyNextLevel is the map property naming the following layout.
const PropertyNextLevel = "next_level"

// Defaults applied when a block has no height property.
var (
	DefaultSolidHeight = 3.0
	DefaultStepHeight  = 0.3
)

// LoadLayout parses an arena TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / PixelsPerUnit,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / PixelsPerUnit,
	}
	if levelMap.Properties != nil {
		layout.Next = levelMap.Properties.GetString(PropertyNextLevel)
	}

	var havePlayer, haveEnemy bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSpawns:
			for _, o := range og.Objects {
				p := Point{
					X: o.X / PixelsPerUnit,
					Y: o.Properties.GetFloat("elevation"),
					Z: o.Y / PixelsPerUnit,
				}
				switch strings.ToLower(o.Name) {
				case "player":
					layout.PlayerSpawn, havePlayer = p, true
				case "enemy":
					layout.EnemySpawn, haveEnemy = p, true
				}
			}
		case GroupSolids:
			for _, o := range og.Objects {
				layout.Solids = append(layout.Solids, blockFrom(o, DefaultSolidHeight))
			}
		case GroupSteps:
			for _, o := range og.Objects {
				layout.Steps = append(layout.Steps, blockFrom(o, DefaultStepHeight))
			}
		case GroupCollectibles:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Properties.GetString("kind")
				}
				itemID := o.Properties.GetString("item_id")
				if itemID == "" {
					itemID = fmt.Sprintf("%s-%d", kind, o.ID)
				}
				layout.Collectibles = append(layout.Collectibles, CollectibleSpawn{
					Point: Point{
						X: o.X / PixelsPerUnit,
						Y: o.Properties.GetFloat("elevation"),
						Z: o.Y / PixelsPerUnit,
					},
					Kind:   kind,
					ItemID: itemID,
				})
			}
		case GroupObjectives:
			for _, o := range og.Objects {
				obj, err := objectiveFrom(o)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				layout.Objectives = append(layout.Objectives, obj)
			}
		}
	}

	if !havePlayer {
		return nil, fmt.Errorf("%s: no player spawn in %q group", tmxPath, GroupSpawns)
	}
	if !haveEnemy {
		return nil, fmt.Errorf("%s: no enemy spawn in %q group", tmxPath, GroupSpawns)
	}

	// Stable order keeps spawn order independent of editor object ids.
	sort.SliceStable(layout.Collectibles, func(i, j int) bool {
		return layout.Collectibles[i].ItemID < layout.Collectibles[j].ItemID
	})

	return layout, nil
}

func blockFrom(o *tiled.Object, defaultHeight float64) Block {
	top := o.Properties.GetFloat("height")
	if top <= 0 {
		top = defaultHeight
	}
	return Block{
		X:   o.X / PixelsPerUnit,
		Z:   o.Y / PixelsPerUnit,
		W:   o.Width / PixelsPerUnit,
		D:   o.Height / PixelsPerUnit,
		Top: top,
	}
}

func objectiveFrom(o *tiled.Object) (Objective, error) {
	kind := o.Class
	if kind == "" {
		kind = o.Properties.GetString("type")
	}
	obj := Objective{
		ID:     o.Name,
		Title:  o.Properties.GetString("title"),
		Kind:   ObjectiveKind(kind),
		Target: o.Properties.GetString("target"),
		Count:  o.Properties.GetInt("count"),
		Position: Point{
			X: o.X / PixelsPerUnit,
			Z: o.Y / PixelsPerUnit,
		},
		Radius: o.Properties.GetFloat("radius"),
	}
	if obj.ID == "" {
		obj.ID = fmt.Sprintf("objective-%d", o.ID)
	}
	if obj.Title == "" {
		obj.Title = obj.ID
	}
	if obj.Count <= 0 {
		obj.Count = DefaultObjectiveCount
	}
	if obj.Radius <= 0 {
		obj.Radius = DefaultObjectiveRadius
	}

	switch obj.Kind {
	case ObjectiveCollect:
		if obj.Target == "" {
			return Objective{}, fmt.Errorf("objective %s: collect without a target", obj.ID)
		}
	case ObjectiveReach:
	default:
		return Objective{}, fmt.Errorf("objective %s: unknown type %q", obj.ID, kind)
	}
	return obj, nil
}

// LoadAllLayouts loads every .tmx file in dir and returns them keyed by stem
// name plus a sorted list of names.
func LoadAllLayouts(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		layout, err := LoadLayout(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		layouts[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
