package systems

import (
	"context"
	"errors"
	"fmt"

	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// NewRoundMachine builds the round lifecycle:
//
//	fighting <-> paused
//	fighting  -> over       (a fighter is knocked out)
//	any       -> fighting   (restart)
//	any       -> exited | home
func NewRoundMachine() *fsm.FSM {
	all := []string{
		components.RoundFighting,
		components.RoundPaused,
		components.RoundOver,
		components.RoundExited,
		components.RoundHome,
	}
	return fsm.NewFSM(
		components.RoundFighting,
		fsm.Events{
			{Name: components.EventPause, Src: []string{components.RoundFighting}, Dst: components.RoundPaused},
			{Name: components.EventResume, Src: []string{components.RoundPaused}, Dst: components.RoundFighting},
			{Name: components.EventFinish, Src: []string{components.RoundFighting}, Dst: components.RoundOver},
			{Name: components.EventRestart, Src: all, Dst: components.RoundFighting},
			{Name: components.EventExit, Src: all, Dst: components.RoundExited},
			{Name: components.EventHome, Src: all, Dst: components.RoundHome},
		},
		fsm.Callbacks{},
	)
}

// fireRound sends an event to the round machine. Re-entering the current
// state is not an error.
func fireRound(w donburi.World, event string) error {
	round, ok := roundOf(w)
	if !ok {
		return errors.New("no round in world")
	}

	err := round.Machine.Event(context.Background(), event)
	var same fsm.NoTransitionError
	if err == nil || errors.As(err, &same) {
		return nil
	}
	return fmt.Errorf("failed to %s round: %w", event, err)
}

// RoundState returns the current lifecycle state, or "" without a round.
func RoundState(w donburi.World) string {
	round, ok := roundOf(w)
	if !ok {
		return ""
	}
	return round.Machine.Current()
}

func PauseRound(w donburi.World) error {
	if err := fireRound(w, components.EventPause); err != nil {
		return err
	}
	GetOrCreateAudio(w).MusicPaused = true
	return nil
}

func ResumeRound(w donburi.World) error {
	if err := fireRound(w, components.EventResume); err != nil {
		return err
	}
	GetOrCreateAudio(w).MusicPaused = false
	return nil
}

// TogglePause pauses a running round or resumes a paused one. Other states
// ignore it.
func TogglePause(w donburi.World) error {
	switch RoundState(w) {
	case components.RoundFighting:
		return PauseRound(w)
	case components.RoundPaused:
		return ResumeRound(w)
	}
	return nil
}

// RestartRound puts both fighters back at their spawns with full health and
// no projectiles, then resumes fighting.
func RestartRound(w donburi.World) error {
	round, ok := roundOf(w)
	if !ok {
		return errors.New("no round in world")
	}

	for _, e := range round.Fighters {
		if e != nil && e.Valid() {
			resetFighter(w, e)
		}
	}
	round.Winner = nil
	round.Frame = 0
	GetOrCreateAudio(w).MusicPaused = false

	return fireRound(w, components.EventRestart)
}

func ExitRound(w donburi.World) error {
	return fireRound(w, components.EventExit)
}

func HomeRound(w donburi.World) error {
	return fireRound(w, components.EventHome)
}

func resetFighter(w donburi.World, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	clearShurikens(w, fighter)
	fighter.Facing = fighter.SpawnFacing
	fighter.Jumping = false
	fighter.Hit = false
	fighter.ThrowTimer = 0
	fighter.BlockCount = 0
	fighter.HitCount = 0

	health := components.Health.Get(e)
	health.Reset()

	bar := components.HealthBar.Get(e)
	bar.Shown = float64(health.Max)
	bar.Target = health.Max
	bar.Tween = nil

	physics := components.Physics.Get(e)
	physics.X = fighter.SpawnX
	physics.Y = fighter.SpawnY
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = true

	anim := components.Animation.Get(e)
	anim.State = cfg.Stand
	anim.Restart()

	components.Control.Get(e).Intent = components.Intent{}
	syncFighterObject(e)
}

// UpdateRound ends the round once a fighter is out of health: the loser is
// Defeated, the other fighter becomes the Winner.
func UpdateRound(w donburi.World) {
	round, ok := roundOf(w)
	if !ok || !round.Running() {
		return
	}
	round.Frame++

	human := round.Fighters[components.SlotHuman]
	ai := round.Fighters[components.SlotAI]
	if human == nil || ai == nil {
		return
	}

	var loser, winner *donburi.Entry
	switch {
	case components.Health.Get(human).Depleted():
		loser, winner = human, ai
	case components.Health.Get(ai).Depleted():
		loser, winner = ai, human
	default:
		return
	}

	updateLifecycle(loser)

	fighter := components.Fighter.Get(winner)
	fighter.Hit = false
	fighter.ThrowTimer = 0
	anim := components.Animation.Get(winner)
	anim.State = cfg.Winner
	anim.Restart()

	round.Winner = winner
	_ = fireRound(w, components.EventFinish)
}
