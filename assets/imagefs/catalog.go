package imagefs

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"sort"

	cfg "github.com/automoto/shinobi-saga/config"
)

// Catalog resolves the game's sprite files under an asset directory. Missing
// or broken files are replaced by placeholders and remembered.
type Catalog struct {
	fsys    fs.FS
	missing map[string]error
}

func NewCatalog(fsys fs.FS) *Catalog {
	return &Catalog{
		fsys:    fsys,
		missing: make(map[string]error),
	}
}

// actionDir is the folder holding a state's frames.
func actionDir(s cfg.StateID) string {
	if s == cfg.Block {
		return "guard"
	}
	return s.String()
}

// FramePath returns the file of one frame, counting from zero.
func FramePath(c cfg.CharacterID, s cfg.StateID, index int) string {
	action := actionDir(s)
	return fmt.Sprintf("images/characters/%s/%s/%s_%d.png", cfg.Characters[c].AssetDir, action, action, index+1)
}

func (c *Catalog) load(path string, fallback func() image.Image) image.Image {
	img, err := Load(c.fsys, path)
	if err != nil {
		c.missing[path] = err
		return fallback()
	}
	return img
}

// Frames returns the right-facing frames of a character's state.
func (c *Catalog) Frames(ch cfg.CharacterID, s cfg.StateID) []image.Image {
	def, _ := cfg.AnimationFor(ch, s)
	tint := cfg.Characters[ch].Tint

	out := make([]image.Image, def.Frames)
	for i := range out {
		label := fmt.Sprintf("%s %d", s, i+1)
		out[i] = c.load(FramePath(ch, s, i), func() image.Image {
			return Placeholder(cfg.Fighter.FrameWidth, cfg.Fighter.FrameHeight, tint, label)
		})
	}
	return out
}

// Icon returns a character's HUD head, scaled to the icon size.
func (c *Catalog) Icon(ch cfg.CharacterID) image.Image {
	def := cfg.Characters[ch]
	size := cfg.HUD.IconSize
	img := c.load(fmt.Sprintf("images/ui/icons/%s_head.png", def.AssetDir), func() image.Image {
		return Placeholder(size, size, def.Tint, def.Name)
	})
	return Fit(img, size, size)
}

// Banner returns the win banner of a character.
func (c *Catalog) Banner(ch cfg.CharacterID) image.Image {
	def := cfg.Characters[ch]
	return c.load(fmt.Sprintf("images/ui/banners/%s_wins.png", def.AssetDir), func() image.Image {
		return Placeholder(cfg.Banner.Width, cfg.Banner.Height, def.Tint, def.Name+" wins")
	})
}

// Shuriken returns the projectile image of a damage class at its hit size.
func (c *Catalog) Shuriken(class cfg.DamageClass) image.Image {
	name := "shur2"
	if class == cfg.Heavy {
		name = "shur"
	}
	size := int(class.Size())
	img := c.load(fmt.Sprintf("images/weapons/%s.png", name), func() image.Image {
		return Disc(size, color.Gray{Y: 160})
	})
	return Fit(img, size, size)
}

func (c *Catalog) Background() image.Image {
	return c.load("images/background/bg.png", func() image.Image {
		return Placeholder(cfg.C.Width, cfg.C.Height, cfg.DarkBlue, "")
	})
}

func (c *Catalog) Logo() image.Image {
	return c.load("images/ui/main_menu/game_logo.png", func() image.Image {
		return Placeholder(740, 200, cfg.Orange, cfg.Window.Title)
	})
}

// Missing lists the files that were replaced by placeholders.
func (c *Catalog) Missing() []string {
	out := make([]string, 0, len(c.missing))
	for p := range c.missing {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Report logs a summary of the missing files.
func (c *Catalog) Report() {
	missing := c.Missing()
	if len(missing) == 0 {
		return
	}
	log.Printf("Warning: Could not load %d images, using placeholders (first: %s: %v)",
		len(missing), missing[0], c.missing[missing[0]])
}
