package systems

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// Rand is the randomness the AI draws from. *rand.Rand satisfies it; tests
// script it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// HumanInput turns the sampled input actions into an intent.
type HumanInput struct{}

func (HumanInput) Decide(w donburi.World, _ *donburi.Entry) components.Intent {
	input := GetOrCreateInput(w)

	var intent components.Intent
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed
	switch {
	case left && !right:
		intent.Move = cfg.FacingLeft
	case right && !left:
		intent.Move = cfg.FacingRight
	}

	intent.Jump = GetAction(input, cfg.ActionJump).Pressed
	intent.Throw = GetAction(input, cfg.ActionAttack).JustPressed
	if GetAction(input, cfg.ActionHeavy).Pressed {
		intent.Class = cfg.Heavy
	}
	intent.Guard = GetAction(input, cfg.ActionGuard).Pressed
	return intent
}

// AIController patrols the arena, jumping and throwing at random. After
// taking a hit it holds its guard until its next throw.
type AIController struct {
	Rand Rand
}

func NewAIController(r Rand) *AIController {
	return &AIController{Rand: r}
}

func (c *AIController) Decide(w donburi.World, self *donburi.Entry) components.Intent {
	fighter := components.Fighter.Get(self)
	anim := components.Animation.Get(self)
	physics := components.Physics.Get(self)

	if anim.State.IsTerminal() || fighter.Throwing() {
		return components.Intent{}
	}

	var intent components.Intent

	if cfg.AI.GuardAfterHit && fighter.HitCount > 0 &&
		physics.OnGround && !fighter.Jumping && !fighter.Hit {
		intent.Guard = true
	}

	// Patrol: keep walking the current way, turning around at the walls.
	bounds := arenaOf(w)
	dir := fighter.Facing
	switch {
	case dir == cfg.FacingLeft && physics.X <= bounds.LeftLimit:
		dir = cfg.FacingRight
	case dir == cfg.FacingRight && physics.X >= bounds.RightLimit:
		dir = cfg.FacingLeft
	}
	intent.Move = dir

	if c.Rand.Float64() < cfg.AI.JumpChance {
		intent.Jump = true
	}
	if c.Rand.Float64() < cfg.AI.ThrowChance {
		intent.Throw = true
		if c.Rand.Intn(cfg.AI.HeavyOdds) == 0 {
			intent.Class = cfg.Heavy
		}
	}
	return intent
}

// UpdateControllers asks every fighter's controller for this frame's intent.
// Nothing is decided while the round is not running.
func UpdateControllers(w donburi.World) {
	running := true
	if round, ok := roundOf(w); ok {
		running = round.Running()
	}

	for _, e := range Fighters(w) {
		control := components.Control.Get(e)
		if !running || control.Controller == nil {
			control.Intent = components.Intent{}
			continue
		}
		control.Intent = control.Controller.Decide(w, e)
	}
}
