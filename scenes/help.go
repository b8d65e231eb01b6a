package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/sound"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/automoto/shinobi-saga/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HelpScene lists the controls
type HelpScene struct {
	shared *Shared
	ecs    *ecs.ECS
	help   *ui.HelpUI
	once   sync.Once
}

func NewHelpScene(shared *Shared) *HelpScene {
	return &HelpScene{shared: shared}
}

func (hs *HelpScene) Update() {
	hs.once.Do(hs.configure)
	hs.help.Update()
	hs.ecs.Update()
}

func (hs *HelpScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if hs.help == nil {
		return
	}
	hs.help.Draw(screen)
}

func (hs *HelpScene) configure() {
	world := donburi.NewWorld()
	hs.ecs = ecs.NewECS(world)

	hs.help = ui.NewHelpUI(func() {
		systems.PlaySFX(world, cfg.SoundMenuClick)
		hs.shared.Changer.ChangeScene(NewMenuScene(hs.shared))
	})

	hs.ecs.AddSystem(run(sound.Update))
	systems.PlayMusic(world, cfg.Sound.MenuMusic)
}
