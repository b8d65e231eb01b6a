package systems

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// GetAction returns the temporal state of an action from the sampled input.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return components.ActionState{}
	}
	curr := input.Current[action]
	prev := input.Previous[action]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed.
func GetOrCreateInput(w donburi.World) *components.InputData {
	if _, ok := components.Input.First(w); !ok {
		ent := w.Entry(w.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{})
	}

	ent, _ := components.Input.First(w)
	return components.Input.Get(ent)
}

// PushInput records one frame of pressed actions, keeping the previous frame
// for edge detection. The input poller and tests feed frames through it.
func PushInput(w donburi.World, pressed [cfg.ActionCount]bool) {
	input := GetOrCreateInput(w)
	input.Previous = input.Current
	input.Current = pressed
}
