package arena

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/lafriks/go-tiled"
)

// FS holds the built-in arena maps.
//
//go:embed *.tmx
var FS embed.FS

// Spawn is a fighter's round start position.
type Spawn struct {
	Character cfg.CharacterID
	X, Y      float64
	Facing    cfg.Facing
}

// Arena is the battle field read from a Tiled map.
type Arena struct {
	Name       string
	Width      int
	Height     int
	Ground     float64
	LeftLimit  float64
	RightLimit float64
	Spawns     []Spawn // sorted left to right
}

// Default returns the arena described by the config package.
func Default() *Arena {
	a := &Arena{
		Name:       "default",
		Width:      cfg.C.Width,
		Height:     cfg.C.Height,
		Ground:     cfg.Arena.Ground,
		LeftLimit:  cfg.Arena.LeftLimit,
		RightLimit: cfg.Arena.RightLimit(),
	}
	for _, id := range []cfg.CharacterID{cfg.Naruto, cfg.Sasuke} {
		def := cfg.Characters[id]
		a.Spawns = append(a.Spawns, Spawn{
			Character: id,
			X:         def.SpawnX,
			Y:         cfg.Arena.Ground,
			Facing:    def.Facing,
		})
	}
	return a
}

// Load parses a Tiled map. The "Spawns" object group places fighters, the
// "Bounds" group holds the ground line and the horizontal limits. Anything
// the map leaves out falls back to Default.
func Load(fsys fs.FS, path string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	def := Default()
	a := &Arena{
		Name:       strings.TrimSuffix(path, ".tmx"),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		Ground:     def.Ground,
		LeftLimit:  def.LeftLimit,
		RightLimit: def.RightLimit,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Spawns":
			for _, o := range og.Objects {
				id, ok := parseCharacter(o.Properties.GetString("character"))
				if !ok {
					return nil, fmt.Errorf("spawn %q in %s: unknown character %q",
						o.Name, path, o.Properties.GetString("character"))
				}
				a.Spawns = append(a.Spawns, Spawn{
					Character: id,
					X:         o.X,
					Y:         o.Y,
					Facing:    parseFacing(o.Properties.GetString("facing"), cfg.Characters[id].Facing),
				})
			}
		case "Bounds":
			for _, o := range og.Objects {
				switch o.Name {
				case "ground":
					a.Ground = o.Y
				case "left":
					a.LeftLimit = o.X
				case "right":
					a.RightLimit = o.X
				}
			}
		}
	}

	if a.LeftLimit >= a.RightLimit {
		return nil, fmt.Errorf("arena %s: left limit %.0f is not left of right limit %.0f",
			path, a.LeftLimit, a.RightLimit)
	}

	if len(a.Spawns) == 0 {
		a.Spawns = def.Spawns
	}
	sort.Slice(a.Spawns, func(i, j int) bool {
		return a.Spawns[i].X < a.Spawns[j].X
	})

	return a, nil
}

// LoadOrDefault loads the map or, when that fails, logs and uses Default.
func LoadOrDefault(fsys fs.FS, path string) *Arena {
	a, err := Load(fsys, path)
	if err != nil {
		log.Printf("Warning: Could not load arena, using defaults: %v", err)
		return Default()
	}
	return a
}

// SpawnFor returns the spawn of a character.
func (a *Arena) SpawnFor(id cfg.CharacterID) (Spawn, bool) {
	for _, s := range a.Spawns {
		if s.Character == id {
			return s, true
		}
	}
	return Spawn{}, false
}

func parseCharacter(name string) (cfg.CharacterID, bool) {
	for id, def := range cfg.Characters {
		if strings.EqualFold(def.Name, name) {
			return id, true
		}
	}
	return 0, false
}

func parseFacing(s string, fallback cfg.Facing) cfg.Facing {
	switch strings.ToLower(s) {
	case "left":
		return cfg.FacingLeft
	case "right":
		return cfg.FacingRight
	}
	return fallback
}
