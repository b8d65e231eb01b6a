package ui

import (
	"fmt"
	"image/color"
	"log"
	"math"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/sound"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// MainMenuActions are the callbacks the title screen triggers. Click runs
// before every other callback.
type MainMenuActions struct {
	Click func()
	Start func()
	Help  func()
	Exit  func()
}

// MainMenuUI is the title screen: the configured menu options followed by
// the audio and display settings.
type MainMenuUI struct {
	UI *ebitenui.UI

	actions  MainMenuActions
	settings *systems.SavedSettings
	theme    *theme

	musicButton      *widget.Button
	sfxButton        *widget.Button
	fullscreenButton *widget.Button
}

// NewMainMenuUI builds the title screen. settings is edited in place and
// saved after every change.
func NewMainMenuUI(settings *systems.SavedSettings, actions MainMenuActions) *MainMenuUI {
	if settings == nil {
		defaults := systems.DefaultSettings()
		settings = &defaults
	}
	m := &MainMenuUI{
		actions:  actions,
		settings: settings,
		theme:    loadTheme(),
	}
	m.buildUI()
	return m
}

func (m *MainMenuUI) buildUI() {
	root := newRoot(nil)
	column := newColumn(widget.AnchorLayoutPositionEnd, 10)

	handlers := map[string]func(){
		"Start": m.actions.Start,
		"Help":  m.actions.Help,
		"Exit":  m.actions.Exit,
	}
	for _, option := range cfg.Menu.MenuOptions {
		handler, ok := handlers[option]
		if !ok {
			log.Printf("Warning: unknown menu option %q", option)
			continue
		}
		column.AddChild(m.theme.newButton(option, 260, 44, m.clicked(handler)))
	}

	m.musicButton = m.theme.newButton(m.musicLabel(), 260, 36, m.clicked(m.cycleMusic))
	m.sfxButton = m.theme.newButton(m.sfxLabel(), 260, 36, m.clicked(m.cycleSFX))
	m.fullscreenButton = m.theme.newButton(m.fullscreenLabel(), 260, 36, m.clicked(m.toggleFullscreen))
	column.AddChild(m.musicButton)
	column.AddChild(m.sfxButton)
	column.AddChild(m.fullscreenButton)

	column.AddChild(m.theme.newLabel("Naruto vs Sasuke", &m.theme.smallFace, color.RGBA{200, 200, 200, 255}))

	root.AddChild(column)
	m.UI = &ebitenui.UI{
		Container: root,
	}
}

func (m *MainMenuUI) clicked(handler func()) func() {
	return func() {
		if m.actions.Click != nil {
			m.actions.Click()
		}
		if handler != nil {
			handler()
		}
	}
}

func (m *MainMenuUI) cycleMusic() {
	m.settings.MusicVolume = systems.NextVolume(m.settings.MusicVolume)
	m.settings.Muted = false
	m.musicButton.Text().Label = m.musicLabel()
	m.commit()
}

func (m *MainMenuUI) cycleSFX() {
	m.settings.SFXVolume = systems.NextVolume(m.settings.SFXVolume)
	m.settings.Muted = false
	m.sfxButton.Text().Label = m.sfxLabel()
	m.commit()
}

func (m *MainMenuUI) toggleFullscreen() {
	m.settings.Fullscreen = !m.settings.Fullscreen
	ebiten.SetFullscreen(m.settings.Fullscreen)
	m.fullscreenButton.Text().Label = m.fullscreenLabel()
	m.commit()
}

func (m *MainMenuUI) commit() {
	sound.Apply(m.settings)
	if err := systems.SaveSettings(m.settings); err != nil {
		log.Printf("Warning: settings not saved: %v", err)
	}
}

func (m *MainMenuUI) musicLabel() string {
	return fmt.Sprintf("Music: %s", percent(m.settings.MusicVolume))
}

func (m *MainMenuUI) sfxLabel() string {
	return fmt.Sprintf("Effects: %s", percent(m.settings.SFXVolume))
}

func (m *MainMenuUI) fullscreenLabel() string {
	if m.settings.Fullscreen {
		return "Fullscreen: On"
	}
	return "Fullscreen: Off"
}

func percent(v float64) string {
	if v <= 0 {
		return "Off"
	}
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

func (m *MainMenuUI) Update() {
	m.UI.Update()
}

func (m *MainMenuUI) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
}
