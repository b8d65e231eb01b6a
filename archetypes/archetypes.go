package archetypes

import (
	"github.com/automoto/shinobi-saga/components"
	"github.com/automoto/shinobi-saga/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Physics,
		components.Animation,
		components.Health,
		components.HealthBar,
		components.Control,
		components.Object,
	)
	Shuriken = newArchetype(
		tags.Shuriken,
		components.Shuriken,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Round,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras,
// such as the Human or AI tag.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
