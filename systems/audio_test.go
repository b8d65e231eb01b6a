package systems

import (
	"testing"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestSFXQueue(t *testing.T) {
	w := donburi.NewWorld()
	assert.Nil(t, DrainSFX(w))

	PlaySFX(w, cfg.SoundJump)
	PlaySFX(w, cfg.SoundHit)
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundHit}, DrainSFX(w))
	assert.Nil(t, DrainSFX(w))

	PlayMusic(w, cfg.Sound.BattleMusic)
	assert.Equal(t, cfg.Sound.BattleMusic, GetOrCreateAudio(w).Music)
}

func TestGetActionEdges(t *testing.T) {
	w := donburi.NewWorld()
	var pressed [cfg.ActionCount]bool
	pressed[cfg.ActionJump] = true

	PushInput(w, pressed)
	input := GetOrCreateInput(w)
	assert.True(t, GetAction(input, cfg.ActionJump).JustPressed)

	PushInput(w, pressed)
	state := GetAction(input, cfg.ActionJump)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)

	PushInput(w, [cfg.ActionCount]bool{})
	assert.True(t, GetAction(input, cfg.ActionJump).JustReleased)
	assert.False(t, GetAction(input, cfg.ActionNone).Pressed)
}
