package tags

import "github.com/yohamta/donburi"

var (
	Fighter  = donburi.NewTag().SetName("Fighter")
	Human    = donburi.NewTag().SetName("Human")
	AI       = donburi.NewTag().SetName("AI")
	Shuriken = donburi.NewTag().SetName("Shuriken")
)

// Resolv tags for collision
const (
	ResolvFighter  = "Fighter"
	ResolvShuriken = "Shuriken"
)
