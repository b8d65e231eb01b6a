package systems

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateCombat resolves shuriken hits for both attack directions, human on
// AI first. Resolution stops for the frame once a fighter is knocked out,
// and nothing is resolved after the round has left fighting.
func UpdateCombat(w donburi.World) {
	round, ok := roundOf(w)
	if !ok || !round.Running() {
		return
	}

	human := round.Fighters[components.SlotHuman]
	ai := round.Fighters[components.SlotAI]
	if human == nil || ai == nil {
		return
	}

	pairs := [2][2]*donburi.Entry{{human, ai}, {ai, human}}
	for _, pair := range pairs {
		attacker, defender := pair[0], pair[1]
		resolveHits(w, attacker, defender)
		if components.Health.Get(defender).Depleted() {
			return
		}
	}
}

// resolveHits consumes each of the attacker's shurikens touching the
// defender. Every contact plays the hit cue; a blocked one also plays the
// block cue.
func resolveHits(w donburi.World, attacker, defender *donburi.Entry) {
	fighter := components.Fighter.Get(attacker)
	health := components.Health.Get(defender)

	for _, s := range fighter.Shurikens {
		if health.Depleted() {
			break
		}
		if !s.Valid() {
			continue
		}
		shuriken := components.Shuriken.Get(s)
		if !shuriken.Active || !Touches(s, defender) {
			continue
		}

		shuriken.Active = false
		if ResolveBlock(defender) {
			PlaySFX(w, cfg.SoundBlock)
		} else {
			ApplyHit(defender, shuriken.Class)
		}
		PlaySFX(w, cfg.SoundHit)
	}

	compactShurikens(w, fighter)
}

// ResolveBlock decides whether a hit on the defender is absorbed and updates
// its guard counters.
//
// A fatigue guard absorbs cfg.AI.MaxBlocks consecutive hits and breaks on
// the next one; only the defender's own throw restores it. A steady guard
// always holds, and every hit it lets through is counted.
func ResolveBlock(defender *donburi.Entry) bool {
	fighter := components.Fighter.Get(defender)
	blocking := components.Animation.Get(defender).State == cfg.Block

	switch fighter.Guard {
	case components.GuardFatigue:
		fighter.HitCount++
		if !blocking {
			return false
		}
		fighter.BlockCount++
		return fighter.BlockCount <= cfg.AI.MaxBlocks

	case components.GuardSteady:
		if blocking {
			return true
		}
		fighter.HitCount++
		return false
	}
	return false
}

// ApplyHit plays the hit reaction and removes the class's damage from the
// defender's health. Defeated and Winner fighters take no damage.
func ApplyHit(defender *donburi.Entry, class cfg.DamageClass) {
	if components.Animation.Get(defender).State.IsTerminal() {
		return
	}
	OnHit(defender, class)
	components.Health.Get(defender).Apply(class.Damage())
}

// Touches reports whether a shuriken overlaps a fighter. The collision space
// narrows the candidates; the rectangles decide.
func Touches(shuriken, fighter *donburi.Entry) bool {
	sObj := components.Object.Get(shuriken)
	fObj := components.Object.Get(fighter)
	if sObj == nil || sObj.Object == nil || fObj == nil || fObj.Object == nil {
		return false
	}

	check := sObj.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvFighter) {
		entry, ok := o.Data.(*donburi.Entry)
		if ok && sameEntry(entry, fighter) {
			return overlaps(sObj.Object, o)
		}
	}
	return false
}

// overlaps is a strict axis-aligned rectangle test; shared edges do not
// count.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
