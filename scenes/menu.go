package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/render"
	"github.com/automoto/shinobi-saga/sound"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/automoto/shinobi-saga/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	shared *Shared
	ecs    *ecs.ECS
	menu   *ui.MainMenuUI
	once   sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(shared *Shared) *MenuScene {
	return &MenuScene{shared: shared}
}

// Update runs the menu before the systems so a click queued this frame is
// played before a scene change takes effect.
func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menu.Update()
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menu.Draw(screen)
}

func (ms *MenuScene) configure() {
	world := donburi.NewWorld()
	ms.ecs = ecs.NewECS(world)

	ms.menu = ui.NewMainMenuUI(ms.shared.Settings, ui.MainMenuActions{
		Click: func() { systems.PlaySFX(world, cfg.SoundMenuClick) },
		Start: func() { ms.shared.Changer.ChangeScene(NewBattleScene(ms.shared)) },
		Help:  func() { ms.shared.Changer.ChangeScene(NewHelpScene(ms.shared)) },
		Exit:  ms.shared.Changer.Quit,
	})

	ms.ecs.AddSystem(run(sound.Update))
	ms.ecs.AddRenderer(layerWorld, render.New(ms.shared.Assets).DrawTitle)

	systems.PlayMusic(world, cfg.Sound.MenuMusic)
}
