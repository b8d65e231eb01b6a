package factory

import (
	"github.com/automoto/shinobi-saga/archetypes"
	"github.com/automoto/shinobi-saga/components"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// CreateRound spawns the round singleton holding both fighters.
func CreateRound(w donburi.World, machine *fsm.FSM, human, ai *donburi.Entry) *donburi.Entry {
	round := archetypes.Round.Spawn(w)
	components.Round.SetValue(round, components.RoundData{
		Machine:  machine,
		Fighters: [2]*donburi.Entry{components.SlotHuman: human, components.SlotAI: ai},
	})
	return round
}
