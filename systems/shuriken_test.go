package systems

import (
	"testing"

	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShurikenSpawnOffsets(t *testing.T) {
	b := newBattle(t, nil)

	right := components.Shuriken.Get(factory.CreateShuriken(b.w, b.human, cfg.Light))
	assert.Equal(t, 10.0+cfg.Shuriken.OffsetRightX, right.X)
	assert.Equal(t, cfg.Arena.Ground+cfg.Shuriken.OffsetY, right.Y)
	assert.Equal(t, cfg.Shuriken.Speed, right.Speed)

	left := components.Shuriken.Get(factory.CreateShuriken(b.w, b.ai, cfg.Heavy))
	assert.Equal(t, 890.0+cfg.Shuriken.OffsetLeftX, left.X)
	assert.Equal(t, -cfg.Shuriken.Speed, left.Speed)
	assert.Equal(t, b.ai.Entity(), left.Owner.Entity())
}

func TestShurikenSpins(t *testing.T) {
	b := newBattle(t, nil)
	s := factory.CreateShuriken(b.w, b.human, cfg.Light)
	data := components.Shuriken.Get(s)
	data.Angle = 350

	AdvanceShuriken(s)
	assert.InDelta(t, 5.0, data.Angle, 1e-9)

	for i := 0; i < 100; i++ {
		AdvanceShuriken(s)
		assert.GreaterOrEqual(t, data.Angle, 0.0)
		assert.Less(t, data.Angle, 360.0)
	}
}

func TestShurikenLeavesArena(t *testing.T) {
	b := newBattle(t, nil)
	fighter := components.Fighter.Get(b.human)

	first := factory.CreateShuriken(b.w, b.human, cfg.Light)
	second := factory.CreateShuriken(b.w, b.human, cfg.Light)
	components.Shuriken.Get(first).X = cfg.Shuriken.MaxX - 5

	UpdateShurikens(b.w)

	assert.False(t, first.Valid())
	require.Len(t, fighter.Shurikens, 1)
	assert.Equal(t, second.Entity(), fighter.Shurikens[0].Entity())

	left := factory.CreateShuriken(b.w, b.ai, cfg.Light)
	components.Shuriken.Get(left).X = cfg.Shuriken.MinX + 5
	UpdateShurikens(b.w)
	assert.False(t, left.Valid())
	assert.Empty(t, components.Fighter.Get(b.ai).Shurikens)
}

func TestShurikenCrossesArena(t *testing.T) {
	b := newBattle(t, nil)
	s := factory.CreateShuriken(b.w, b.human, cfg.Light)

	frames := 0
	for s.Valid() && frames < 200 {
		UpdateShurikens(b.w)
		frames++
	}
	assert.False(t, s.Valid())
	// From x=70 it passes MaxX on the 99th step.
	assert.Equal(t, 99, frames)
}
