package systems

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateFighters steps every combatant one frame: lifecycle, the intent
// chosen by its controller, physics, animation and collision rectangle.
// Once the round is no longer running intents are ignored, but physics and
// animation keep playing so the defeat sequence finishes.
func UpdateFighters(w donburi.World) {
	running := true
	if round, ok := roundOf(w); ok {
		running = round.Running()
	}

	for _, e := range Fighters(w) {
		updateLifecycle(e)

		intent := components.Intent{}
		if running {
			intent = components.Control.Get(e).Intent
		}
		act(w, e, intent)

		ApplyPhysics(w, e)
		UpdateAnimation(w, e)
		syncFighterObject(e)
	}
}

// updateLifecycle moves a fighter with no health left into Defeated. The
// state is sticky until restart.
func updateLifecycle(e *donburi.Entry) {
	health := components.Health.Get(e)
	anim := components.Animation.Get(e)
	if !health.Depleted() || anim.State == cfg.Defeated {
		return
	}

	fighter := components.Fighter.Get(e)
	fighter.ThrowTimer = 0
	fighter.Hit = false
	anim.State = cfg.Defeated
	anim.Restart()
}

// act applies one frame of intent. Throw pre-empts everything, an active
// throw blocks all other actions, and block pre-empts movement. A stun only
// stops movement.
func act(w donburi.World, e *donburi.Entry, intent components.Intent) {
	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)
	physics := components.Physics.Get(e)

	if anim.State.IsTerminal() {
		return
	}

	// The stun ends with the reaction, also when an action cut it short.
	if fighter.Hit && !anim.State.IsDamage() {
		fighter.Hit = false
	}

	if fighter.Throwing() {
		fighter.ThrowTimer--
		if fighter.ThrowTimer == 0 && anim.State == cfg.Throw {
			if physics.OnGround {
				anim.SetState(cfg.Stand)
			} else {
				anim.SetState(cfg.Jump)
			}
		}
		return
	}

	if intent.Throw && Throw(w, e, intent.Class) {
		return
	}

	if intent.Guard && Block(e) {
		return
	}
	if anim.State == cfg.Block {
		anim.SetState(cfg.Stand)
	}

	if intent.Jump {
		Jump(w, e)
	}

	if !Advance(w, e, intent.Move) && physics.OnGround && anim.State == cfg.Run {
		anim.SetState(cfg.Stand)
	}
}

// Advance moves the fighter one step in dir, clamped to the arena limits.
// It reports whether the fighter moved.
func Advance(w donburi.World, e *donburi.Entry, dir cfg.Facing) bool {
	if dir == 0 {
		return false
	}

	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)
	physics := components.Physics.Get(e)

	switch anim.State {
	case cfg.Throw, cfg.Block, cfg.Defeated, cfg.Winner:
		return false
	}
	if fighter.Hit {
		return false
	}

	fighter.Facing = dir

	bounds := arenaOf(w)
	x := clamp(physics.X+dir.Sign()*cfg.Fighter.MoveSpeed, bounds.LeftLimit, bounds.RightLimit)
	if x == physics.X {
		return false
	}
	physics.X = x

	if physics.OnGround && !fighter.Jumping {
		anim.SetState(cfg.Run)
	}
	return true
}

// Jump launches a grounded fighter. A second call while airborne is a no-op.
func Jump(w donburi.World, e *donburi.Entry) bool {
	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)
	physics := components.Physics.Get(e)

	if !physics.OnGround || fighter.Jumping || fighter.Throwing() || anim.State.IsTerminal() {
		return false
	}

	physics.SpeedY = cfg.Fighter.JumpSpeed
	physics.OnGround = false
	fighter.Jumping = true
	anim.SetState(cfg.Jump)
	PlaySFX(w, cfg.SoundJump)
	return true
}

// Throw launches a shuriken of the given class. It is rejected while a throw
// is running and once the fighter has the maximum number of shurikens in
// flight. A throw resets the fighter's guard counters.
func Throw(w donburi.World, e *donburi.Entry, class cfg.DamageClass) bool {
	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)

	if fighter.Throwing() || anim.State.IsTerminal() {
		return false
	}
	if fighter.LiveShurikens() >= cfg.Fighter.MaxShurikens {
		return false
	}

	factory.CreateShuriken(w, e, class)

	fighter.ThrowTimer = fighter.ThrowDuration
	fighter.BlockCount = 0
	fighter.HitCount = 0
	anim.State = cfg.Throw
	anim.Restart()
	PlaySFX(w, cfg.SoundThrow)
	return true
}

// Block raises the guard. Only a grounded fighter that is not mid-throw can
// block.
func Block(e *donburi.Entry) bool {
	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)
	physics := components.Physics.Get(e)

	if !physics.OnGround || fighter.Jumping || fighter.Throwing() || anim.State.IsTerminal() {
		return false
	}
	anim.SetState(cfg.Block)
	return true
}

// OnHit plays the hit reaction for a damage class and stuns the fighter. A
// running throw timer keeps counting down.
func OnHit(e *donburi.Entry, class cfg.DamageClass) {
	fighter := components.Fighter.Get(e)
	anim := components.Animation.Get(e)
	if anim.State.IsTerminal() {
		return
	}

	anim.State = class.ReactionState()
	anim.Restart()
	fighter.Hit = true
}

func syncFighterObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil {
		return
	}
	physics := components.Physics.Get(e)
	obj.X = physics.X + cfg.Fighter.HitboxOffsetX
	obj.Y = physics.Y + cfg.Fighter.HitboxOffsetY
	obj.Update()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
