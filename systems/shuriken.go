package systems

import (
	"math"

	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// UpdateShurikens moves every live projectile and discards the ones that
// left the arena.
func UpdateShurikens(w donburi.World) {
	for _, e := range Fighters(w) {
		fighter := components.Fighter.Get(e)
		for _, s := range fighter.Shurikens {
			AdvanceShuriken(s)
		}
		compactShurikens(w, fighter)
	}
}

// AdvanceShuriken moves a projectile by its speed and spins it. It turns
// inactive once x leaves the allowed band.
func AdvanceShuriken(s *donburi.Entry) {
	if !s.Valid() {
		return
	}
	shuriken := components.Shuriken.Get(s)
	if !shuriken.Active {
		return
	}

	shuriken.X += shuriken.Speed
	shuriken.Angle = math.Mod(shuriken.Angle+cfg.Shuriken.SpinStep, 360)

	if shuriken.X < cfg.Shuriken.MinX || shuriken.X > cfg.Shuriken.MaxX {
		shuriken.Active = false
	}

	obj := components.Object.Get(s)
	obj.X = shuriken.X
	obj.Y = shuriken.Y
	obj.Update()
}

// compactShurikens drops inactive projectiles from the owner's collection,
// keeping throw order, and destroys their entities.
func compactShurikens(w donburi.World, fighter *components.FighterData) {
	kept := fighter.Shurikens[:0]
	var dead []*donburi.Entry
	for _, s := range fighter.Shurikens {
		if s.Valid() && components.Shuriken.Get(s).Active {
			kept = append(kept, s)
			continue
		}
		dead = append(dead, s)
	}
	for i := len(kept); i < len(fighter.Shurikens); i++ {
		fighter.Shurikens[i] = nil
	}
	fighter.Shurikens = kept

	for _, s := range dead {
		destroyShuriken(w, s)
	}
}

// clearShurikens destroys every projectile a fighter owns.
func clearShurikens(w donburi.World, fighter *components.FighterData) {
	for _, s := range fighter.Shurikens {
		destroyShuriken(w, s)
	}
	fighter.Shurikens = nil
}

func destroyShuriken(w donburi.World, s *donburi.Entry) {
	if s == nil || !s.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		obj := components.Object.Get(s)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	w.Remove(s.Entity())
}
