package imagefs

import (
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramePath(t *testing.T) {
	assert.Equal(t, "images/characters/naruto/run/run_1.png", FramePath(cfg.Naruto, cfg.Run, 0))
	assert.Equal(t, "images/characters/sasuke/guard/guard_1.png", FramePath(cfg.Sasuke, cfg.Block, 0))
	assert.Equal(t, "images/characters/sasuke/small_damage/small_damage_1.png", FramePath(cfg.Sasuke, cfg.SmallDamage, 0))
}

func TestCatalogFallsBack(t *testing.T) {
	c := NewCatalog(fstest.MapFS{})

	frames := c.Frames(cfg.Naruto, cfg.Run)
	require.Len(t, frames, 6)
	assert.Equal(t, image.Pt(cfg.Fighter.FrameWidth, cfg.Fighter.FrameHeight), frames[0].Bounds().Size())

	assert.Len(t, c.Frames(cfg.Sasuke, cfg.Stand), 1)

	icon := c.Icon(cfg.Sasuke)
	assert.Equal(t, image.Pt(cfg.HUD.IconSize, cfg.HUD.IconSize), icon.Bounds().Size())

	heavy := c.Shuriken(cfg.Heavy)
	assert.Equal(t, image.Pt(36, 36), heavy.Bounds().Size())

	assert.Equal(t, image.Pt(cfg.C.Width, cfg.C.Height), c.Background().Bounds().Size())

	missing := c.Missing()
	assert.Contains(t, missing, "images/characters/naruto/run/run_6.png")
	assert.Contains(t, missing, "images/weapons/shur.png")
	assert.Contains(t, missing, "images/background/bg.png")
}

func TestCatalogLoadsFiles(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			src.Set(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	data := encodePNG(t, src)
	c := NewCatalog(fstest.MapFS{
		"images/weapons/shur2.png":                   {Data: data},
		"images/characters/naruto/guard/guard_1.png": {Data: data},
	})

	light := c.Shuriken(cfg.Light)
	assert.Equal(t, image.Pt(24, 24), light.Bounds().Size())
	_, g, _, _ := light.At(12, 12).RGBA()
	assert.InDelta(t, 0xffff, float64(g), 0x200)

	guard := c.Frames(cfg.Naruto, cfg.Block)
	require.Len(t, guard, 1)
	assert.Equal(t, image.Pt(64, 64), guard[0].Bounds().Size())

	assert.Empty(t, c.Missing())
}
