package systems

import (
	"log"

	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// UpdatePause toggles the pause gate on the pause action.
// This system should run AFTER input polling but BEFORE the fighter systems.
func UpdatePause(w donburi.World) {
	input := GetOrCreateInput(w)
	if !GetAction(input, cfg.ActionPause).JustPressed {
		return
	}
	if err := TogglePause(w); err != nil {
		log.Printf("Warning: Could not toggle pause: %v", err)
	}
}

// IsPaused reports whether the round is paused.
func IsPaused(w donburi.World) bool {
	return RoundState(w) == components.RoundPaused
}

// WithGameplayChecks wraps a system to run only while the round is fighting.
func WithGameplayChecks(system System) System {
	return func(w donburi.World) {
		if round, ok := roundOf(w); ok && !round.Running() {
			return
		}
		system(w)
	}
}

// WithPauseCheck wraps a system to skip execution while paused or after the
// player left the round. A finished round keeps running so the defeat
// sequence plays out.
func WithPauseCheck(system System) System {
	return func(w donburi.World) {
		switch RoundState(w) {
		case components.RoundPaused, components.RoundExited, components.RoundHome:
			return
		}
		system(w)
	}
}
