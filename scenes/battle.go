package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/shinobi-saga/arena"
	"github.com/automoto/shinobi-saga/assets"
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/input"
	"github.com/automoto/shinobi-saga/render"
	"github.com/automoto/shinobi-saga/sound"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/automoto/shinobi-saga/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var shaderOnce sync.Once

// BattleScene is one round of Naruto against the AI's Sasuke.
type BattleScene struct {
	shared *Shared
	ecs    *ecs.ECS
	once   sync.Once

	pauseButton *ui.RoundMenuUI
	pauseMenu   *ui.RoundMenuUI
	overMenu    *ui.RoundMenuUI
}

func NewBattleScene(shared *Shared) *BattleScene {
	return &BattleScene{shared: shared}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)

	if menu := bs.activeMenu(); menu != nil {
		menu.Update()
	}
	bs.ecs.Update()

	switch systems.RoundState(bs.ecs.World) {
	case components.RoundExited:
		sound.StopMusic()
		bs.shared.Changer.Quit()
	case components.RoundHome:
		bs.shared.Changer.ChangeScene(NewMenuScene(bs.shared))
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
	if menu := bs.activeMenu(); menu != nil {
		menu.Draw(screen)
	}
}

// activeMenu picks the ebitenui layer for the round's current state.
func (bs *BattleScene) activeMenu() *ui.RoundMenuUI {
	switch systems.RoundState(bs.ecs.World) {
	case components.RoundFighting:
		return bs.pauseButton
	case components.RoundPaused:
		return bs.pauseMenu
	case components.RoundOver:
		return bs.overMenu
	}
	return nil
}

func (bs *BattleScene) configure() {
	sound.PreloadAllSFX()
	shaderOnce.Do(func() {
		if err := assets.LoadShaders(); err != nil {
			log.Printf("Warning: %v", err)
		}
	})

	world := donburi.NewWorld()
	bs.ecs = ecs.NewECS(world)

	a := arena.LoadOrDefault(arena.FS, cfg.Arena.MapPath)
	ai := systems.NewAIController(rand.New(rand.NewSource(aiSeed())))
	systems.SetupBattle(world, a, ai)

	bs.pauseButton = ui.NewPauseButtonUI(world)
	bs.pauseMenu = ui.NewPauseUI(world)
	bs.overMenu = ui.NewRoundOverUI(world)

	// Audio first, then raw input
	bs.ecs.AddSystem(run(sound.Update))
	bs.ecs.AddSystem(run(input.Update))
	bs.ecs.AddSystem(run(systems.UpdatePause))

	bs.ecs.AddSystem(run(systems.WithPauseCheck(systems.UpdateControllers)))
	bs.ecs.AddSystem(run(systems.WithPauseCheck(systems.UpdateFighters)))
	bs.ecs.AddSystem(run(systems.WithPauseCheck(systems.UpdateShurikens)))
	bs.ecs.AddSystem(run(systems.WithGameplayChecks(systems.UpdateCombat)))
	bs.ecs.AddSystem(run(systems.UpdateRound))
	bs.ecs.AddSystem(run(systems.WithPauseCheck(systems.UpdateHealthBars)))

	r := render.New(bs.shared.Assets)
	bs.ecs.AddRenderer(layerWorld, r.DrawBackground)
	bs.ecs.AddRenderer(layerWorld, r.DrawFighters)
	bs.ecs.AddRenderer(layerWorld, r.DrawShurikens)
	bs.ecs.AddRenderer(layerWorld, r.DrawHUD)
	bs.ecs.AddRenderer(layerWorld, r.DrawHitboxes)
	bs.ecs.AddRenderer(layerOverlay, r.DrawBanner)
	bs.ecs.AddRenderer(layerOverlay, r.DrawPause)
}

func aiSeed() int64 {
	if cfg.Debug.AISeed != 0 {
		return cfg.Debug.AISeed
	}
	return time.Now().UnixNano()
}
