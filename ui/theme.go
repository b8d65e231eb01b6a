// Package ui builds the ebitenui menus shown over the scenes.
package ui

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// theme holds the faces shared by every menu. Faces are stored as text.Face
// values because ebitenui takes pointers to the interface.
type theme struct {
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

var (
	shared    *theme
	themeOnce sync.Once
)

func loadTheme() *theme {
	themeOnce.Do(func() {
		regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			panic(err)
		}
		shared = &theme{
			titleFace:  &text.GoTextFace{Source: bold, Size: 40},
			normalFace: &text.GoTextFace{Source: regular, Size: 22},
			smallFace:  &text.GoTextFace{Source: regular, Size: 18},
		}
	})
	return shared
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 230})
	hover := image.NewNineSliceColor(color.RGBA{255, 140, 0, 255})
	pressed := image.NewNineSliceColor(color.RGBA{200, 100, 0, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

var buttonTextColor = &widget.ButtonTextColor{
	Idle:    color.RGBA{255, 255, 255, 255},
	Hover:   color.RGBA{20, 20, 30, 255},
	Pressed: color.RGBA{255, 255, 255, 255},
}

// newRoot returns a screen-filling container. A nil background leaves the
// scene visible underneath.
func newRoot(bg *image.NineSlice) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	}
	if bg != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(bg))
	}
	return widget.NewContainer(opts...)
}

// newColumn returns a vertical stack anchored in the root.
func newColumn(vertical widget.AnchorLayoutPosition, spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   vertical,
			}),
		),
	)
}

func (t *theme) newButton(label string, width, height int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, height),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &t.normalFace, buttonTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (t *theme) newLabel(label string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, face, &widget.LabelColor{
			Idle: c,
		}),
	)
}
