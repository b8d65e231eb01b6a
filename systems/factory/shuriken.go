package factory

import (
	"github.com/automoto/shinobi-saga/archetypes"
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateShuriken spawns a projectile at the owner's hand, flying the way the
// owner faces, and appends it to the owner's collection.
func CreateShuriken(w donburi.World, owner *donburi.Entry, class cfg.DamageClass) *donburi.Entry {
	fighter := components.Fighter.Get(owner)
	physics := components.Physics.Get(owner)

	x := physics.X + cfg.Shuriken.OffsetLeftX
	if fighter.Facing == cfg.FacingRight {
		x = physics.X + cfg.Shuriken.OffsetRightX
	}
	y := physics.Y + cfg.Shuriken.OffsetY

	s := archetypes.Shuriken.Spawn(w)
	components.Shuriken.SetValue(s, components.ShurikenData{
		Owner:  owner,
		X:      x,
		Y:      y,
		Speed:  cfg.Shuriken.Speed * fighter.Facing.Sign(),
		Class:  class,
		Active: true,
	})

	size := class.Size()
	obj := resolv.NewObject(x, y, size, size, tags.ResolvShuriken)
	obj.Data = s
	components.Object.SetValue(s, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	fighter.Shurikens = append(fighter.Shurikens, s)
	return s
}
