package components

import "github.com/yohamta/donburi"

// ArenaData holds the battle field bounds (singleton component)
type ArenaData struct {
	Width, Height float64
	Ground        float64
	LeftLimit     float64
	RightLimit    float64
}

var Arena = donburi.NewComponentType[ArenaData]()
