package components

import (
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// GuardPolicy selects how a fighter's block holds up under repeated hits.
type GuardPolicy int

const (
	// GuardSteady absorbs every hit taken while blocking.
	GuardSteady GuardPolicy = iota
	// GuardFatigue breaks on the hit after cfg.AI.MaxBlocks consecutive blocks.
	GuardFatigue
)

type FighterData struct {
	Character     cfg.CharacterID
	Facing        cfg.Facing
	Guard         GuardPolicy
	Jumping       bool
	Hit           bool // stunned by a recent hit
	ThrowTimer    int  // frames left in the current throw
	ThrowDuration int
	BlockCount    int // consecutive blocks since the last throw
	HitCount      int // hits taken since the last throw
	SpawnX        float64
	SpawnY        float64
	SpawnFacing   cfg.Facing

	// Shurikens holds this fighter's live projectiles in throw order.
	Shurikens []*donburi.Entry
}

// Throwing reports whether a throw is in progress.
func (f *FighterData) Throwing() bool {
	return f.ThrowTimer > 0
}

// LiveShurikens counts owned projectiles that are still in flight.
func (f *FighterData) LiveShurikens() int {
	n := 0
	for _, e := range f.Shurikens {
		if e.Valid() && Shuriken.Get(e).Active {
			n++
		}
	}
	return n
}

var Fighter = donburi.NewComponentType[FighterData]()
