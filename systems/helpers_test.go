package systems

import (
	"testing"

	"github.com/automoto/shinobi-saga/arena"
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// idleController never acts.
type idleController struct{}

func (idleController) Decide(donburi.World, *donburi.Entry) components.Intent {
	return components.Intent{}
}

// scriptedRand replays fixed draws; an exhausted script draws 1 (never fires).
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

type battle struct {
	w     donburi.World
	round *components.RoundData
	human *donburi.Entry
	ai    *donburi.Entry
}

func newBattle(t *testing.T, ai components.Controller) *battle {
	t.Helper()
	if ai == nil {
		ai = idleController{}
	}
	w := donburi.NewWorld()
	entry := SetupBattle(w, arena.Default(), ai)
	round := components.Round.Get(entry)
	require.NotNil(t, round.Fighters[components.SlotHuman])
	require.NotNil(t, round.Fighters[components.SlotAI])
	DrainSFX(w)
	return &battle{
		w:     w,
		round: round,
		human: round.Fighters[components.SlotHuman],
		ai:    round.Fighters[components.SlotAI],
	}
}

// step runs one frame in battle order.
func (b *battle) step() {
	UpdatePause(b.w)
	UpdateControllers(b.w)
	UpdateFighters(b.w)
	UpdateShurikens(b.w)
	WithGameplayChecks(UpdateCombat)(b.w)
	UpdateRound(b.w)
	UpdateHealthBars(b.w)
}

// press feeds one input frame holding the given actions.
func (b *battle) press(actions ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	PushInput(b.w, pressed)
}

// shurikenOn creates a shuriken owned by owner sitting on target's hitbox.
func (b *battle) shurikenOn(owner, target *donburi.Entry, class cfg.DamageClass) *donburi.Entry {
	s := factory.CreateShuriken(b.w, owner, class)
	physics := components.Physics.Get(target)
	data := components.Shuriken.Get(s)
	data.X = physics.X + cfg.Fighter.HitboxOffsetX + 20
	data.Y = physics.Y + cfg.Fighter.HitboxOffsetY + 20

	obj := components.Object.Get(s)
	obj.X = data.X
	obj.Y = data.Y
	obj.Update()
	return s
}

func (b *battle) moveTo(e *donburi.Entry, x float64) {
	components.Physics.Get(e).X = x
	syncFighterObject(e)
}

func health(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

func state(e *donburi.Entry) cfg.StateID {
	return components.Animation.Get(e).State
}
