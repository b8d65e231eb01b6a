package factory

import (
	"github.com/automoto/shinobi-saga/arena"
	"github.com/automoto/shinobi-saga/components"
	"github.com/yohamta/donburi"
)

// CreateArena stores the arena bounds as a singleton.
func CreateArena(w donburi.World, a *arena.Arena) *donburi.Entry {
	e := w.Entry(w.Create(components.Arena))
	components.Arena.SetValue(e, components.ArenaData{
		Width:      float64(a.Width),
		Height:     float64(a.Height),
		Ground:     a.Ground,
		LeftLimit:  a.LeftLimit,
		RightLimit: a.RightLimit,
	})
	return e
}
