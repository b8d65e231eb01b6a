package ui

import (
	"image/color"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// HelpUI lists the controls and offers a way back.
type HelpUI struct {
	UI *ebitenui.UI
}

func NewHelpUI(onBack func()) *HelpUI {
	t := loadTheme()
	root := newRoot(image.NewNineSliceColor(cfg.Menu.BackgroundColor))
	column := newColumn(widget.AnchorLayoutPositionCenter, 8)

	column.AddChild(t.newLabel(cfg.Menu.HelpTitle, &t.titleFace, cfg.Menu.TitleColor))
	for _, line := range cfg.Menu.HelpLines {
		column.AddChild(t.newLabel(line, &t.smallFace, cfg.Menu.TextColor))
	}
	column.AddChild(t.newLabel(" ", &t.smallFace, color.Transparent))
	column.AddChild(t.newButton("Back", 200, 40, onBack))

	root.AddChild(column)
	return &HelpUI{UI: &ebitenui.UI{Container: root}}
}

func (h *HelpUI) Update() {
	h.UI.Update()
}

func (h *HelpUI) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
