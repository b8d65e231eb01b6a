package systems

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// ApplyPhysics integrates gravity for an airborne fighter and lands it on the
// ground line. A defeated fighter's floor is the sunken line below ground;
// one that is already standing sinks a pixel per frame until it gets there.
func ApplyPhysics(w donburi.World, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)

	floor := arenaOf(w).Ground
	defeated := anim.State == cfg.Defeated
	if defeated {
		floor += cfg.Arena.DefeatSink
	}

	if fighter.Jumping || !physics.OnGround {
		physics.SpeedY += physics.Gravity
		physics.Y += physics.SpeedY

		if physics.Y >= floor {
			physics.Y = floor
			physics.SpeedY = 0
			physics.OnGround = true
			fighter.Jumping = false
			if anim.State == cfg.Jump {
				anim.SetState(cfg.Stand)
			}
		}
		return
	}

	if defeated && physics.Y < floor {
		physics.Y++
		if physics.Y > floor {
			physics.Y = floor
		}
	}
}
