package systems

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/tags"
	"github.com/yohamta/donburi"
)

// System is one simulation step over the world. Scenes adapt it to the ECS
// runner; tests call it directly.
type System func(w donburi.World)

// arenaOf returns the arena bounds, falling back to the configured defaults.
func arenaOf(w donburi.World) components.ArenaData {
	if e, ok := components.Arena.First(w); ok {
		return *components.Arena.Get(e)
	}
	return components.ArenaData{
		Width:      float64(cfg.C.Width),
		Height:     float64(cfg.C.Height),
		Ground:     cfg.Arena.Ground,
		LeftLimit:  cfg.Arena.LeftLimit,
		RightLimit: cfg.Arena.RightLimit(),
	}
}

func roundOf(w donburi.World) (*components.RoundData, bool) {
	e, ok := components.Round.First(w)
	if !ok {
		return nil, false
	}
	return components.Round.Get(e), true
}

// Fighters returns the combatants, human first when a round exists.
func Fighters(w donburi.World) []*donburi.Entry {
	if round, ok := roundOf(w); ok {
		out := make([]*donburi.Entry, 0, len(round.Fighters))
		for _, e := range round.Fighters {
			if e != nil && e.Valid() {
				out = append(out, e)
			}
		}
		return out
	}

	var out []*donburi.Entry
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func sameEntry(a, b *donburi.Entry) bool {
	return a != nil && b != nil && a.Entity() == b.Entity()
}
