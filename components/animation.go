package components

import (
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	State   cfg.StateID
	Counter float64 // fractional frame counter
	Frame   int     // display frame index
}

// SetState switches state and restarts the frame counter. Setting the
// current state again keeps the animation running.
func (a *AnimationData) SetState(state cfg.StateID) {
	if a.State == state {
		return
	}
	a.State = state
	a.Restart()
}

// Restart rewinds the animation of the current state.
func (a *AnimationData) Restart() {
	a.Counter = 0
	a.Frame = 0
}

var Animation = donburi.NewComponentType[AnimationData]()
