package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
	// DamageOffset is the total damage taken, used to shift the mirrored bar.
	DamageOffset int
}

// Apply removes up to amount health, never going below zero, and returns the
// amount actually removed.
func (h *HealthData) Apply(amount int) int {
	if amount <= 0 || h.Current <= 0 {
		return 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	h.DamageOffset += amount
	return amount
}

// Reset restores a fresh tracker.
func (h *HealthData) Reset() {
	h.Current = h.Max
	h.DamageOffset = 0
}

// Depleted reports whether the fighter has no health left.
func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

// HealthBarData is the displayed health, which drains toward the real value.
type HealthBarData struct {
	Shown  float64
	Target int
	Tween  *gween.Tween
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
