package config

import "image/color"

// CharacterID identifies a playable character's art and tuning.
type CharacterID int

const (
	Naruto CharacterID = iota
	Sasuke
)

// CharacterDef holds per-character presentation data.
type CharacterDef struct {
	Name     string
	AssetDir string // directory under images/ holding <state>/<frame>.png
	Tint     color.RGBA
	Facing   Facing // facing at round start
	SpawnX   float64
}

// Characters is the roster, indexed by CharacterID.
var Characters map[CharacterID]CharacterDef

func (c CharacterID) String() string {
	if def, ok := Characters[c]; ok {
		return def.Name
	}
	return "unknown"
}

func init() {
	Characters = map[CharacterID]CharacterDef{
		Naruto: {
			Name:     "naruto",
			AssetDir: "naruto",
			Tint:     Orange,
			Facing:   FacingRight,
			SpawnX:   10,
		},
		Sasuke: {
			Name:     "sasuke",
			AssetDir: "sasuke",
			Tint:     Blue,
			Facing:   FacingLeft,
			SpawnX:   890,
		},
	}
}
