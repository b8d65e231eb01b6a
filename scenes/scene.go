// Package scenes switches between the title, help and battle screens.
package scenes

import (
	"github.com/automoto/shinobi-saga/assets"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerOverlay
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Shared is what every scene needs from the game: the way to switch scenes,
// the image registry and the player's settings.
type Shared struct {
	Changer  SceneChanger
	Assets   *assets.Registry
	Settings *systems.SavedSettings
}

// run adapts a world system to an ecs system.
func run(s systems.System) ecs.System {
	return func(e *ecs.ECS) {
		s(e.World)
	}
}
