package leveldata

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and layer names read from TMX files.
const (
	groupPlatforms   = "Platforms"
	groupHazards     = "Hazards"
	groupAgentSpawns = "AgentSpawns"
	groupPlayerSpawn = "PlayerSpawn"
	layerSolids      = "Solids"
)

// Load parses a TMX file from fsys. Tiled is Y-down; every position is
// flipped into world space on the way in.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}
	flip := func(y, h float64) float64 { return lvl.Height - (y + h) }

	// Solid tiles become one platform each
	tileW, tileH := float64(m.TileWidth), float64(m.TileHeight)
	for _, layer := range m.Layers {
		if layer.Name != layerSolids {
			continue
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if layer.Tiles[y*m.Width+x].IsNil() {
					continue
				}
				lvl.Platforms = append(lvl.Platforms, Rect{
					X: float64(x) * tileW,
					Y: flip(float64(y)*tileH, tileH),
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	playerFound := false
	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case groupPlatforms:
				lvl.Platforms = append(lvl.Platforms, Rect{X: o.X, Y: flip(o.Y, o.Height), W: o.Width, H: o.Height})
			case groupHazards:
				lvl.Hazards = append(lvl.Hazards, Rect{X: o.X, Y: flip(o.Y, o.Height), W: o.Width, H: o.Height})
			case groupAgentSpawns:
				lvl.Agents = append(lvl.Agents, AgentSpawn{
					Point: Point{X: o.X, Y: flip(o.Y, 0)},
					Kind:  o.Properties.GetString("kind"),
				})
			case groupPlayerSpawn:
				if !playerFound {
					lvl.Player = Point{X: o.X, Y: flip(o.Y, 0)}
					playerFound = true
				}
			}
		}
	}
	if !playerFound {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Left-to-right spawn order keeps agent creation deterministic
	sort.SliceStable(lvl.Agents, func(i, j int) bool {
		return lvl.Agents[i].X < lvl.Agents[j].X
	})
	return lvl, nil
}

// LoadPath loads a TMX file from disk. An empty path returns DemoArena.
func LoadPath(p string) (*Level, error) {
	if p == "" {
		return DemoArena(), nil
	}
	return Load(os.DirFS(filepath.Dir(p)), filepath.Base(p))
}
