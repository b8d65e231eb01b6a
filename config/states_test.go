package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateNamesAreUnique(t *testing.T) {
	seen := map[string]StateID{}
	for s := StateID(0); s < StateCount; s++ {
		name := s.String()
		assert.NotEqual(t, "unknown", name, "state %d has no name", s)
		_, dup := seen[name]
		assert.False(t, dup, "duplicate state name %q", name)
		seen[name] = s
	}
	assert.Equal(t, "unknown", StateCount.String())
}

func TestStateClassification(t *testing.T) {
	assert.True(t, Defeated.IsTerminal())
	assert.True(t, Winner.IsTerminal())
	assert.False(t, Block.IsTerminal())

	assert.True(t, SmallDamage.IsDamage())
	assert.True(t, BigDamage.IsDamage())
	assert.False(t, Throw.IsDamage())

	assert.True(t, Block.IsStatic())
	assert.False(t, Run.IsStatic())
	assert.False(t, Defeated.IsStatic())
}

func TestDamageClass(t *testing.T) {
	assert.Equal(t, 10, Light.Damage())
	assert.Equal(t, 20, Heavy.Damage())
	assert.Equal(t, SmallDamage, Light.ReactionState())
	assert.Equal(t, BigDamage, Heavy.ReactionState())
	assert.Less(t, Light.Size(), Heavy.Size())
}

func TestAnimationFor(t *testing.T) {
	run, ok := AnimationFor(Naruto, Run)
	assert.True(t, ok)
	assert.Equal(t, 6, run.Frames)

	aiThrow, ok := AnimationFor(Sasuke, Throw)
	assert.True(t, ok)
	assert.Less(t, aiThrow.Rate, run.Rate)

	_, ok = AnimationFor(Naruto, Block)
	assert.False(t, ok)
}

func TestArenaRightLimit(t *testing.T) {
	assert.Equal(t, 920.0, Arena.RightLimit())
}
