package components

import "github.com/yohamta/donburi"

// PhysicsData is a fighter's position and motion. The resolv object is
// derived from it every frame.
type PhysicsData struct {
	X, Y     float64
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
