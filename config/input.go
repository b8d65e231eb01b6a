package config

// ActionID represents a logical game action. Key and gamepad bindings live
// in the input package so this package stays free of the window system.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionHeavy // held with Attack for a heavy shuriken
	ActionGuard
	ActionPause
	ActionCount // Must be last - used for array sizing
)
