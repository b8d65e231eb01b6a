package systems

import (
	"math"

	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimation advances the fighter's frame counter at its state's rate
// and picks the frame to display.
func UpdateAnimation(w donburi.World, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)

	switch {
	case anim.State.IsDamage():
		// Hit reactions count whole frames and then release the stun.
		anim.Counter++
		anim.Frame = 0
		if anim.Counter > float64(cfg.Fighter.StunFrames) {
			fighter.Hit = false
			anim.SetState(cfg.Stand)
		}

	case anim.State.IsStatic():
		anim.Counter = 0
		anim.Frame = 0

	case anim.State == cfg.Defeated:
		def, _ := cfg.AnimationFor(fighter.Character, anim.State)
		last := def.Frames - 1
		anim.Counter += def.Rate
		anim.Frame = int(anim.Counter)
		if anim.Frame >= last {
			anim.Frame = last
			anim.Counter = float64(last)
			return
		}
		stepBack(w, e)

	default:
		def, _ := cfg.AnimationFor(fighter.Character, anim.State)
		anim.Counter = math.Mod(anim.Counter+def.Rate, float64(def.Frames))
		anim.Frame = int(anim.Counter) % def.Frames
	}
}

// stepBack drifts a collapsing fighter away from the way it faces. A step
// that would leave the arena limits is skipped.
func stepBack(w donburi.World, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	bounds := arenaOf(w)
	x := physics.X - fighter.Facing.Sign()*cfg.Fighter.DefeatStepBack
	if x < bounds.LeftLimit || x > bounds.RightLimit {
		return
	}
	physics.X = x
}
