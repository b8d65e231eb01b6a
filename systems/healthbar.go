package systems

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateHealthBars drains each displayed bar toward the fighter's health.
// A new drain starts from wherever the bar currently shows.
func UpdateHealthBars(w donburi.World) {
	dt := float32(1) / float32(cfg.C.TPS)

	for _, e := range Fighters(w) {
		health := components.Health.Get(e)
		bar := components.HealthBar.Get(e)

		if bar.Target != health.Current {
			bar.Target = health.Current
			bar.Tween = gween.New(float32(bar.Shown), float32(health.Current), float32(cfg.HUD.DrainSeconds), ease.OutQuad)
		}
		if bar.Tween == nil {
			continue
		}

		shown, done := bar.Tween.Update(dt)
		bar.Shown = float64(shown)
		if done {
			bar.Shown = float64(bar.Target)
			bar.Tween = nil
		}
	}
}

// BarFill returns the horizontal extent of a fighter's green fill. The
// human bar empties toward its left edge; the AI bar is mirrored and empties
// toward its right edge.
func BarFill(slot int, shown float64, full int) (x, width float64) {
	width = clamp(shown, 0, float64(full))
	if slot == components.SlotAI {
		return cfg.HUD.AIBarX + float64(full) - width, width
	}
	return cfg.HUD.HumanBarX + cfg.HUD.FillInsetX, width
}
