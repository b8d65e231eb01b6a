package systems

import (
	"testing"

	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthBarDrains(t *testing.T) {
	b := newBattle(t, nil)
	bar := components.HealthBar.Get(b.human)
	components.Health.Get(b.human).Apply(20)

	UpdateHealthBars(b.w)
	require.NotNil(t, bar.Tween)
	assert.Less(t, bar.Shown, 200.0)
	assert.Greater(t, bar.Shown, 180.0)

	for i := 0; i < cfg.C.TPS; i++ {
		UpdateHealthBars(b.w)
	}
	assert.Equal(t, 180.0, bar.Shown)
	assert.Nil(t, bar.Tween)
}

func TestHealthBarRetargets(t *testing.T) {
	b := newBattle(t, nil)
	bar := components.HealthBar.Get(b.ai)
	h := components.Health.Get(b.ai)

	h.Apply(20)
	for i := 0; i < 3; i++ {
		UpdateHealthBars(b.w)
	}
	mid := bar.Shown

	h.Apply(20)
	UpdateHealthBars(b.w)
	assert.Less(t, bar.Shown, mid)
	assert.Equal(t, 160, bar.Target)

	for i := 0; i < cfg.C.TPS; i++ {
		UpdateHealthBars(b.w)
	}
	assert.Equal(t, 160.0, bar.Shown)
	assert.Equal(t, 40, h.DamageOffset)
}

func TestBarFill(t *testing.T) {
	x, w := BarFill(components.SlotHuman, 150, 200)
	assert.Equal(t, 89.0, x)
	assert.Equal(t, 150.0, w)

	x, w = BarFill(components.SlotAI, 200, 200)
	assert.Equal(t, 710.0, x)
	assert.Equal(t, 200.0, w)

	// 30 damage shifts the AI fill right by 30.
	x, w = BarFill(components.SlotAI, 170, 200)
	assert.Equal(t, 740.0, x)
	assert.Equal(t, 170.0, w)

	_, w = BarFill(components.SlotHuman, -4, 200)
	assert.Zero(t, w)
}
