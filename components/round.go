package components

import (
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// Round lifecycle states
const (
	RoundFighting = "fighting"
	RoundPaused   = "paused"
	RoundOver     = "over"
	RoundExited   = "exited"
	RoundHome     = "home"
)

// Round lifecycle events
const (
	EventPause   = "pause"
	EventResume  = "resume"
	EventFinish  = "finish"
	EventRestart = "restart"
	EventExit    = "exit"
	EventHome    = "home"
)

// Fighter slots in RoundData.Fighters
const (
	SlotHuman = 0
	SlotAI    = 1
)

type RoundData struct {
	Machine  *fsm.FSM
	Fighters [2]*donburi.Entry
	Winner   *donburi.Entry
	Frame    int // simulated frames since the round started
}

// Running reports whether the simulation should advance.
func (r *RoundData) Running() bool {
	return r.Machine.Is(RoundFighting)
}

var Round = donburi.NewComponentType[RoundData]()
