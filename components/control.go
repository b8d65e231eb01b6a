package components

import (
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// Intent is one frame of decisions for a fighter.
type Intent struct {
	Move  cfg.Facing // 0 for no movement
	Jump  bool
	Throw bool
	Class cfg.DamageClass
	Guard bool
}

// Controller supplies a fighter's intent each frame.
type Controller interface {
	Decide(w donburi.World, self *donburi.Entry) Intent
}

type ControlData struct {
	Controller Controller
	Intent     Intent // last decision, consumed by the fighter systems
}

var Control = donburi.NewComponentType[ControlData]()
