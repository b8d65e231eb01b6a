// Package input samples the keyboard and gamepads into the world's actions.
package input

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Binding represents a single key or button binding for an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings
type Config struct {
	Bindings map[cfg.ActionID]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Bindings is the global input configuration
var Bindings Config

func init() {
	Bindings = Config{
		AnalogDeadzone: 0.25,
		Bindings: map[cfg.ActionID]Binding{
			cfg.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			cfg.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			cfg.ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			cfg.ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			cfg.ActionHeavy: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			cfg.ActionGuard: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			cfg.ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Update polls raw input into the world's input component.
// Must run BEFORE the controllers in the system order.
func Update(w donburi.World) {
	var pressed [cfg.ActionCount]bool
	var keyboardUsed, gamepadUsed bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	left, right := analogStick(gamepadIDs)
	if left {
		pressed[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if right {
		pressed[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}

	systems.PushInput(w, pressed)

	data := systems.GetOrCreateInput(w)
	if gamepadUsed {
		data.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		data.LastInputMethod = components.InputKeyboard
	}
}

// analogStick reads the left stick of every gamepad against the deadzone.
func analogStick(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := Bindings.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone {
			left = true
		}
		if h > deadzone {
			right = true
		}
	}
	return
}
