package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/shinobi-saga/assets"
	"github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/fonts"
	"github.com/automoto/shinobi-saga/scenes"
	"github.com/automoto/shinobi-saga/sound"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(shared *scenes.Shared) *Game {
	g := &Game{}
	shared.Changer = g

	if config.Debug.SkipMenu {
		g.scene = scenes.NewBattleScene(shared)
	} else {
		g.scene = scenes.NewMenuScene(shared)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "shinobi.toml", "path to the optional TOML config file")
	skipMenu := flag.Bool("skip-menu", false, "start directly in a battle")
	hitboxes := flag.Bool("hitboxes", false, "outline collision boxes")
	writeConfig := flag.Bool("write-config", false, "write a config template to the -config path and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.WriteDefault(*configPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	fc, err := config.LoadFile(*configPath)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	fc.Apply()
	config.Debug.SkipMenu = config.Debug.SkipMenu || *skipMenu
	config.Debug.DrawHitboxes = config.Debug.DrawHitboxes || *hitboxes

	// Initialize persistence and load saved settings
	_ = systems.InitPersistence()
	settings, err := systems.LoadSettings()
	if err != nil || settings == nil {
		defaults := systems.DefaultSettings()
		settings = &defaults
	}
	settings.Fullscreen = settings.Fullscreen || config.Window.Fullscreen

	fonts.LoadDefaults()
	assetFS := os.DirFS(config.Assets.Dir)
	sound.Init(assetFS)
	sound.Apply(settings)

	shared := &scenes.Shared{
		Assets:   assets.NewRegistry(assetFS),
		Settings: settings,
	}

	scale := config.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(int(float64(config.C.Width)*scale), int(float64(config.C.Height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(NewGame(shared)); err != nil {
		log.Fatal(err)
	}
}
