package systems

import (
	"log"

	"github.com/automoto/shinobi-saga/arena"
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/systems/factory"
	"github.com/yohamta/donburi"
)

// spaceMargin extends the collision space past the arena's right and bottom
// edges, where shurikens and sinking fighters still travel.
const spaceMargin = 8

// SetupBattle populates a world with the arena, both fighters and a running
// round. The human plays Naruto from the keyboard; ai drives Sasuke.
func SetupBattle(w donburi.World, a *arena.Arena, ai components.Controller) *donburi.Entry {
	if a == nil {
		a = arena.Default()
	}

	cell := cfg.Arena.CellSize
	factory.CreateSpace(w, a.Width+cell*spaceMargin, a.Height+cell*spaceMargin, cell, cell)
	factory.CreateArena(w, a)

	human := factory.CreateFighter(w, spawnOf(a, cfg.Naruto), HumanInput{}, true)
	opponent := factory.CreateFighter(w, spawnOf(a, cfg.Sasuke), ai, false)

	GetOrCreateInput(w)
	PlayMusic(w, cfg.Sound.BattleMusic)

	return factory.CreateRound(w, NewRoundMachine(), human, opponent)
}

func spawnOf(a *arena.Arena, id cfg.CharacterID) arena.Spawn {
	if s, ok := a.SpawnFor(id); ok {
		return s
	}
	log.Printf("Warning: Could not find spawn for %s, using default", id)
	s, _ := arena.Default().SpawnFor(id)
	return s
}
