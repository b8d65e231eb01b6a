// Package render draws the battle from the world state.
package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/automoto/shinobi-saga/assets"
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/fonts"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/automoto/shinobi-saga/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// flashStrength is how far a reeling fighter is pushed toward white.
const flashStrength = 0.6

// Renderer draws one battle. Its methods are ecs renderers.
type Renderer struct {
	assets *assets.Registry
	drawOp *ebiten.DrawImageOptions

	bannerTween *gween.Tween
	bannerY     float64
}

func New(reg *assets.Registry) *Renderer {
	return &Renderer{
		assets: reg,
		drawOp: &ebiten.DrawImageOptions{},
	}
}

func (r *Renderer) DrawBackground(_ *ecs.ECS, screen *ebiten.Image) {
	bg := r.assets.Background()
	if bg == nil {
		screen.Fill(cfg.DarkBlue)
		return
	}
	r.drawOp.GeoM.Reset()
	r.drawOp.ColorScale.Reset()
	screen.DrawImage(bg, r.drawOp)
}

// DrawTitle renders the background with the game logo over it.
func (r *Renderer) DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	r.DrawBackground(e, screen)
	logo := r.assets.Logo()
	if logo == nil {
		return
	}
	r.drawOp.GeoM.Reset()
	r.drawOp.ColorScale.Reset()
	r.drawOp.GeoM.Translate(cfg.Menu.LogoX, cfg.Menu.LogoY)
	screen.DrawImage(logo, r.drawOp)
}

// DrawFighters renders each fighter's current frame at its position. A
// fighter reeling from a hit is flashed.
func (r *Renderer) DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	for _, entry := range systems.Fighters(e.World) {
		fighter := components.Fighter.Get(entry)
		anim := components.Animation.Get(entry)
		physics := components.Physics.Get(entry)

		img := r.assets.Frame(fighter.Character, anim.State, anim.Frame, fighter.Facing)
		if img == nil {
			continue
		}

		if anim.State.IsDamage() && assets.FlashShader != nil {
			b := img.Bounds()
			op := &ebiten.DrawRectShaderOptions{}
			op.GeoM.Translate(physics.X, physics.Y)
			op.Images[0] = img
			op.Uniforms = map[string]any{"Flash": float32(flashStrength)}
			screen.DrawRectShader(b.Dx(), b.Dy(), assets.FlashShader, op)
			continue
		}

		r.drawOp.GeoM.Reset()
		r.drawOp.ColorScale.Reset()
		r.drawOp.GeoM.Translate(physics.X, physics.Y)
		screen.DrawImage(img, r.drawOp)
	}
}

// DrawShurikens renders every projectile spun around its centre.
func (r *Renderer) DrawShurikens(e *ecs.ECS, screen *ebiten.Image) {
	tags.Shuriken.Each(e.World, func(entry *donburi.Entry) {
		s := components.Shuriken.Get(entry)
		if !s.Active {
			return
		}
		img := r.assets.Shuriken(s.Class)
		if img == nil {
			return
		}

		half := s.Class.Size() / 2
		r.drawOp.GeoM.Reset()
		r.drawOp.ColorScale.Reset()
		r.drawOp.GeoM.Translate(-half, -half)
		r.drawOp.GeoM.Rotate(s.Angle * math.Pi / 180)
		r.drawOp.GeoM.Translate(s.X+half, s.Y+half)
		screen.DrawImage(img, r.drawOp)
	})
}

// DrawHUD renders both icons and health bars. The displayed health drains
// toward the real value.
func (r *Renderer) DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	fighters := systems.Fighters(e.World)
	for slot, entry := range fighters {
		fighter := components.Fighter.Get(entry)
		health := components.Health.Get(entry)
		bar := components.HealthBar.Get(entry)

		iconX, iconY := cfg.HUD.HumanIconX, cfg.HUD.HumanIconY
		barX := cfg.HUD.HumanBarX
		if slot == components.SlotAI {
			iconX, iconY = cfg.HUD.AIIconX, cfg.HUD.AIIconY
			barX = cfg.HUD.AIBarX
		}

		vector.FillRect(screen,
			float32(barX), float32(cfg.HUD.BarY),
			float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
			cfg.HUD.BackColor, false)

		fillX, fillW := systems.BarFill(slot, bar.Shown, health.Max)
		vector.FillRect(screen,
			float32(fillX), float32(cfg.HUD.BarY+cfg.HUD.FillInsetY),
			float32(fillW), float32(cfg.HUD.FillHeight),
			cfg.HUD.FillColor, false)

		if icon := r.assets.Icon(fighter.Character); icon != nil {
			r.drawOp.GeoM.Reset()
			r.drawOp.ColorScale.Reset()
			r.drawOp.GeoM.Translate(iconX, iconY)
			screen.DrawImage(icon, r.drawOp)
		}

		name := cfg.Characters[fighter.Character].Name
		text.Draw(screen, name, fonts.Small.Get(), int(barX), int(cfg.HUD.BarY+cfg.HUD.BarHeight+14), cfg.White)
	}
}

// DrawBanner slides the winner's banner in once the round is over.
func (r *Renderer) DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	round, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	data := components.Round.Get(round)
	if data.Winner == nil || systems.RoundState(e.World) != components.RoundOver {
		r.bannerTween = nil
		return
	}

	if r.bannerTween == nil {
		start := float32(-cfg.Banner.Height)
		r.bannerTween = gween.New(start, float32(cfg.Banner.Y), cfg.Banner.SlideSeconds, ease.OutBack)
		r.bannerY = float64(start)
	}
	y, _ := r.bannerTween.Update(1 / float32(ebiten.TPS()))
	r.bannerY = float64(y)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Banner.OverlayColor, false)

	winner := components.Fighter.Get(data.Winner)
	img := r.assets.Banner(winner.Character)
	if img == nil {
		return
	}
	r.drawOp.GeoM.Reset()
	r.drawOp.ColorScale.Reset()
	r.drawOp.GeoM.Translate(cfg.Banner.X, r.bannerY)
	screen.DrawImage(img, r.drawOp)
}

// DrawPause dims the battle while paused. The menu itself is ebitenui.
func (r *Renderer) DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsPaused(e.World) {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Pause.OverlayColor, false)

	title := "Paused"
	face := fonts.Title.Get()
	width := text.BoundString(face, title).Dx()
	text.Draw(screen, title, face, (w-width)/2, 120, cfg.White)
}

// DrawHitboxes outlines every collision object when debugging.
func (r *Renderer) DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvFighter) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvShuriken) {
			c = color.RGBA{255, 0, 0, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	for _, entry := range systems.Fighters(e.World) {
		anim := components.Animation.Get(entry)
		fighter := components.Fighter.Get(entry)
		physics := components.Physics.Get(entry)
		label := anim.State.String()
		if fighter.Guard == components.GuardFatigue {
			label += " b" + strconv.Itoa(fighter.BlockCount)
		}
		text.Draw(screen, label, fonts.Small.Get(), int(physics.X), int(physics.Y)-4, cfg.White)
	}
}
