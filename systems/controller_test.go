package systems

import (
	"testing"

	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanInputDecide(t *testing.T) {
	b := newBattle(t, nil)
	b.press(cfg.ActionMoveLeft, cfg.ActionAttack, cfg.ActionHeavy, cfg.ActionGuard, cfg.ActionJump)

	intent := HumanInput{}.Decide(b.w, b.human)
	assert.Equal(t, components.Intent{
		Move:  cfg.FacingLeft,
		Jump:  true,
		Throw: true,
		Class: cfg.Heavy,
		Guard: true,
	}, intent)

	b.press(cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionAttack)
	intent = HumanInput{}.Decide(b.w, b.human)
	assert.Equal(t, cfg.Facing(0), intent.Move)
	assert.False(t, intent.Throw)
	assert.Equal(t, cfg.Light, intent.Class)
}

func TestAIPatrolsAndTurns(t *testing.T) {
	b := newBattle(t, NewAIController(&scriptedRand{}))
	physics := components.Physics.Get(b.ai)
	fighter := components.Fighter.Get(b.ai)

	b.step()
	assert.Equal(t, 885.0, physics.X)
	assert.Equal(t, cfg.FacingLeft, fighter.Facing)
	assert.Equal(t, cfg.Run, state(b.ai))

	b.moveTo(b.ai, cfg.Arena.LeftLimit)
	b.step()
	assert.Equal(t, cfg.FacingRight, fighter.Facing)
	assert.Equal(t, cfg.Arena.LeftLimit+cfg.Fighter.MoveSpeed, physics.X)

	b.moveTo(b.ai, cfg.Arena.RightLimit())
	b.step()
	assert.Equal(t, cfg.FacingLeft, fighter.Facing)
}

func TestAIRandomActions(t *testing.T) {
	r := &scriptedRand{
		floats: []float64{0.01, 0.5},
	}
	b := newBattle(t, NewAIController(r))

	b.step()
	assert.True(t, components.Fighter.Get(b.ai).Jumping)
	assert.Equal(t, cfg.Jump, state(b.ai))

	b2 := newBattle(t, NewAIController(&scriptedRand{
		floats: []float64{0.5, 0.01},
		ints:   []int{0},
	}))
	b2.step()
	fighter := components.Fighter.Get(b2.ai)
	require.Len(t, fighter.Shurikens, 1)
	assert.Equal(t, cfg.Heavy, components.Shuriken.Get(fighter.Shurikens[0]).Class)
	assert.Equal(t, cfg.AI.ThrowDuration, fighter.ThrowTimer)
}

func TestAIIdleWhileThrowingOrDefeated(t *testing.T) {
	b := newBattle(t, nil)
	ai := NewAIController(&scriptedRand{floats: []float64{0, 0}})

	components.Fighter.Get(b.ai).ThrowTimer = 5
	assert.Equal(t, components.Intent{}, ai.Decide(b.w, b.ai))

	components.Fighter.Get(b.ai).ThrowTimer = 0
	components.Animation.Get(b.ai).State = cfg.Defeated
	assert.Equal(t, components.Intent{}, ai.Decide(b.w, b.ai))
}

func TestAIGuardsAfterHit(t *testing.T) {
	b := newBattle(t, NewAIController(&scriptedRand{}))
	b.shurikenOn(b.human, b.ai, cfg.Light)
	UpdateCombat(b.w)
	require.Equal(t, 1, components.Fighter.Get(b.ai).HitCount)

	// Still stunned.
	b.step()
	assert.Equal(t, cfg.SmallDamage, state(b.ai))

	for i := 0; i < cfg.Fighter.StunFrames+2; i++ {
		b.step()
	}
	assert.Equal(t, cfg.Block, state(b.ai))
}

func TestNoDecisionsOutsideFighting(t *testing.T) {
	b := newBattle(t, NewAIController(&scriptedRand{}))
	require.NoError(t, PauseRound(b.w))

	b.press(cfg.ActionMoveRight)
	UpdateControllers(b.w)
	assert.Equal(t, components.Intent{}, components.Control.Get(b.human).Intent)
	assert.Equal(t, components.Intent{}, components.Control.Get(b.ai).Intent)
}
