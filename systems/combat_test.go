package systems

import (
	"testing"

	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrowHitsDefender(t *testing.T) {
	b := newBattle(t, nil)
	require.Equal(t, 10.0, components.Physics.Get(b.human).X)

	require.True(t, Throw(b.w, b.human, cfg.Light))
	fighter := components.Fighter.Get(b.human)
	require.Len(t, fighter.Shurikens, 1)

	s := fighter.Shurikens[0]
	shuriken := components.Shuriken.Get(s)
	assert.Equal(t, 70.0, shuriken.X)

	for i := 0; i < 5; i++ {
		AdvanceShuriken(s)
	}
	assert.Equal(t, 120.0, shuriken.X)

	b.moveTo(b.ai, 100)
	UpdateCombat(b.w)

	assert.Equal(t, 190, health(b.ai))
	assert.Empty(t, fighter.Shurikens)
	assert.False(t, s.Valid())
	assert.Equal(t, cfg.SmallDamage, state(b.ai))
	assert.Equal(t, []cfg.SoundID{cfg.SoundThrow, cfg.SoundHit}, DrainSFX(b.w))
}

func TestHeavyShurikenDamage(t *testing.T) {
	b := newBattle(t, nil)
	b.shurikenOn(b.human, b.ai, cfg.Heavy)

	UpdateCombat(b.w)

	assert.Equal(t, 180, health(b.ai))
	assert.Equal(t, cfg.BigDamage, state(b.ai))
}

func TestMissDoesNothing(t *testing.T) {
	b := newBattle(t, nil)
	require.True(t, Throw(b.w, b.human, cfg.Light))

	UpdateCombat(b.w)

	assert.Equal(t, 200, health(b.ai))
	assert.Len(t, components.Fighter.Get(b.human).Shurikens, 1)
}

func TestAIGuardBreaksOnThirdHit(t *testing.T) {
	b := newBattle(t, nil)
	anim := components.Animation.Get(b.ai)
	anim.State = cfg.Block

	for i := 1; i <= 2; i++ {
		b.shurikenOn(b.human, b.ai, cfg.Light)
		UpdateCombat(b.w)
		assert.Equal(t, 200, health(b.ai), "hit %d should be blocked", i)
		assert.Equal(t, cfg.Block, state(b.ai))
	}
	assert.Equal(t, []cfg.SoundID{cfg.SoundBlock, cfg.SoundHit, cfg.SoundBlock, cfg.SoundHit}, DrainSFX(b.w))

	b.shurikenOn(b.human, b.ai, cfg.Light)
	UpdateCombat(b.w)
	assert.Equal(t, 190, health(b.ai))
	assert.Equal(t, cfg.SmallDamage, state(b.ai))
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit}, DrainSFX(b.w))
	assert.Empty(t, components.Fighter.Get(b.human).Shurikens)
}

func TestAIThrowRestoresGuard(t *testing.T) {
	b := newBattle(t, nil)
	fighter := components.Fighter.Get(b.ai)
	components.Animation.Get(b.ai).State = cfg.Block

	for i := 0; i < 2; i++ {
		b.shurikenOn(b.human, b.ai, cfg.Light)
		UpdateCombat(b.w)
	}
	require.Equal(t, 2, fighter.BlockCount)
	require.Equal(t, 2, fighter.HitCount)

	require.True(t, Throw(b.w, b.ai, cfg.Light))
	assert.Zero(t, fighter.BlockCount)
	assert.Zero(t, fighter.HitCount)

	fighter.ThrowTimer = 0
	components.Animation.Get(b.ai).State = cfg.Block
	b.shurikenOn(b.human, b.ai, cfg.Light)
	UpdateCombat(b.w)
	assert.Equal(t, 200, health(b.ai))
}

func TestHumanGuardNeverBreaks(t *testing.T) {
	b := newBattle(t, nil)
	components.Animation.Get(b.human).State = cfg.Block

	for i := 0; i < 5; i++ {
		b.shurikenOn(b.ai, b.human, cfg.Heavy)
		UpdateCombat(b.w)
	}
	assert.Equal(t, 200, health(b.human))
	assert.Zero(t, components.Fighter.Get(b.human).HitCount)
}

func TestHumanCountsUnblockedHits(t *testing.T) {
	b := newBattle(t, nil)
	fighter := components.Fighter.Get(b.human)

	b.shurikenOn(b.ai, b.human, cfg.Light)
	UpdateCombat(b.w)
	assert.Equal(t, 1, fighter.HitCount)
	assert.Equal(t, 190, health(b.human))

	b.shurikenOn(b.ai, b.human, cfg.Light)
	UpdateCombat(b.w)
	assert.Equal(t, 2, fighter.HitCount)
	assert.Equal(t, 180, health(b.human))
}

func TestCombatStopsAfterKnockout(t *testing.T) {
	b := newBattle(t, nil)
	components.Health.Get(b.ai).Current = 10
	b.shurikenOn(b.human, b.ai, cfg.Light)
	b.shurikenOn(b.ai, b.human, cfg.Light)

	UpdateCombat(b.w)

	assert.Equal(t, 0, health(b.ai))
	assert.Equal(t, 200, health(b.human))
	assert.Len(t, components.Fighter.Get(b.ai).Shurikens, 1)
}

func TestHealthStaysInRange(t *testing.T) {
	b := newBattle(t, nil)
	for i := 0; i < 30; i++ {
		b.shurikenOn(b.human, b.ai, cfg.Heavy)
		UpdateCombat(b.w)
		components.Fighter.Get(b.ai).Hit = false
		components.Animation.Get(b.ai).State = cfg.Stand

		h := health(b.ai)
		assert.GreaterOrEqual(t, h, 0)
		assert.LessOrEqual(t, h, cfg.Fighter.Health)
	}
	assert.Equal(t, 0, health(b.ai))
}

func TestOverlapsIsStrict(t *testing.T) {
	b := newBattle(t, nil)
	s := b.shurikenOn(b.human, b.ai, cfg.Light)
	assert.True(t, Touches(s, b.ai))

	// Touching edges only.
	fObj := components.Object.Get(b.ai)
	obj := components.Object.Get(s)
	obj.X = fObj.X + fObj.W
	obj.Update()
	assert.False(t, Touches(s, b.ai))
}

func TestNoHitsAfterRoundEnds(t *testing.T) {
	b := newBattle(t, nil)
	components.Health.Get(b.human).Current = 10
	b.shurikenOn(b.ai, b.human, cfg.Light)

	b.step()
	require.Equal(t, components.RoundOver, RoundState(b.w))
	require.Equal(t, 0, health(b.human))
	require.Equal(t, cfg.Winner, state(b.ai))

	// The loser's shuriken is still in flight on the winner.
	b.shurikenOn(b.human, b.ai, cfg.Heavy)
	b.step()
	b.step()

	assert.Equal(t, 200, health(b.ai))
	assert.Equal(t, cfg.Winner, state(b.ai))
	assert.Equal(t, cfg.Defeated, state(b.human))
	assert.True(t, sameEntry(b.round.Winner, b.ai))
}

func TestTerminalFightersTakeNoDamage(t *testing.T) {
	b := newBattle(t, nil)
	components.Animation.Get(b.ai).State = cfg.Winner

	ApplyHit(b.ai, cfg.Heavy)

	assert.Equal(t, 200, health(b.ai))
	assert.Equal(t, cfg.Winner, state(b.ai))
	assert.False(t, components.Fighter.Get(b.ai).Hit)
}
