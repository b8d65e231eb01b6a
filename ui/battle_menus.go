package ui

import (
	"log"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RoundMenuUI is a column of buttons that drive the round machine. The
// battle scene shows the pause menu while paused and the round-over menu
// once a winner is decided.
type RoundMenuUI struct {
	UI *ebitenui.UI
}

// NewPauseUI builds the Resume/Restart/Exit/Home menu.
func NewPauseUI(w donburi.World) *RoundMenuUI {
	return newRoundMenu(w, cfg.Pause.MenuOptions, widget.AnchorLayoutPositionCenter)
}

// NewRoundOverUI builds the Restart/Exit menu shown under the banner.
func NewRoundOverUI(w donburi.World) *RoundMenuUI {
	return newRoundMenu(w, cfg.Banner.MenuOptions, widget.AnchorLayoutPositionEnd)
}

// NewPauseButtonUI builds the small pause button shown while fighting.
func NewPauseButtonUI(w donburi.World) *RoundMenuUI {
	t := loadTheme()
	root := newRoot(nil)
	column := newColumn(widget.AnchorLayoutPositionStart, 0)
	column.AddChild(t.newButton("Pause", 100, 32, func() {
		systems.PlaySFX(w, cfg.SoundMenuClick)
		if err := systems.PauseRound(w); err != nil {
			log.Printf("Warning: pause: %v", err)
		}
	}))
	root.AddChild(column)
	return &RoundMenuUI{UI: &ebitenui.UI{Container: root}}
}

func newRoundMenu(w donburi.World, options []string, vertical widget.AnchorLayoutPosition) *RoundMenuUI {
	t := loadTheme()
	root := newRoot(nil)
	column := newColumn(vertical, cfg.Pause.ButtonGap)

	handlers := map[string]func(donburi.World) error{
		"Resume":  systems.ResumeRound,
		"Restart": systems.RestartRound,
		"Exit":    systems.ExitRound,
		"Home":    systems.HomeRound,
	}
	for _, option := range options {
		fire, ok := handlers[option]
		if !ok {
			log.Printf("Warning: unknown round option %q", option)
			continue
		}
		name := option
		column.AddChild(t.newButton(option, cfg.Pause.ButtonWidth, cfg.Pause.ButtonHeight, func() {
			systems.PlaySFX(w, cfg.SoundMenuClick)
			if err := fire(w); err != nil {
				log.Printf("Warning: %s: %v", name, err)
			}
		}))
	}

	root.AddChild(column)
	return &RoundMenuUI{UI: &ebitenui.UI{Container: root}}
}

func (r *RoundMenuUI) Update() {
	r.UI.Update()
}

func (r *RoundMenuUI) Draw(screen *ebiten.Image) {
	r.UI.Draw(screen)
}
