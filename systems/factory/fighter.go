package factory

import (
	"github.com/automoto/shinobi-saga/archetypes"
	"github.com/automoto/shinobi-saga/arena"
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFighter spawns a combatant at its arena spawn. The extra tag marks
// it Human or AI; the guard policy follows from it.
func CreateFighter(w donburi.World, spawn arena.Spawn, ctl components.Controller, human bool) *donburi.Entry {
	side := tags.AI
	guard := components.GuardFatigue
	throwDuration := cfg.AI.ThrowDuration
	if human {
		side = tags.Human
		guard = components.GuardSteady
		throwDuration = cfg.Fighter.ThrowDuration
	}

	fighter := archetypes.Fighter.Spawn(w, side)

	components.Fighter.SetValue(fighter, components.FighterData{
		Character:     spawn.Character,
		Facing:        spawn.Facing,
		Guard:         guard,
		ThrowDuration: throwDuration,
		SpawnX:        spawn.X,
		SpawnY:        spawn.Y,
		SpawnFacing:   spawn.Facing,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		X:        spawn.X,
		Y:        spawn.Y,
		Gravity:  cfg.Fighter.Gravity,
		OnGround: true,
	})
	components.Animation.SetValue(fighter, components.AnimationData{
		State: cfg.Stand,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.Health,
		Max:     cfg.Fighter.Health,
	})
	components.HealthBar.SetValue(fighter, components.HealthBarData{
		Shown:  float64(cfg.Fighter.Health),
		Target: cfg.Fighter.Health,
	})
	components.Control.SetValue(fighter, components.ControlData{
		Controller: ctl,
	})

	obj := resolv.NewObject(
		spawn.X+cfg.Fighter.HitboxOffsetX,
		spawn.Y+cfg.Fighter.HitboxOffsetY,
		cfg.Fighter.HitboxWidth,
		cfg.Fighter.HitboxHeight,
		tags.ResolvFighter,
	)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return fighter
}
