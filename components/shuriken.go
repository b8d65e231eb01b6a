package components

import (
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

type ShurikenData struct {
	Owner  *donburi.Entry
	X, Y   float64
	Speed  float64 // signed, fixed at creation
	Angle  float64 // degrees in [0, 360)
	Class  cfg.DamageClass
	Active bool
}

var Shuriken = donburi.NewComponentType[ShurikenData]()
