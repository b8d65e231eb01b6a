package assets

import (
	"image"
	"io/fs"

	"github.com/automoto/shinobi-saga/assets/imagefs"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/hajimehoshi/ebiten/v2"
)

type frameKey struct {
	character cfg.CharacterID
	state     cfg.StateID
	facing    cfg.Facing
}

// Registry holds every image the game draws. It is built once at startup
// and passed to the scenes; nothing is loaded lazily during play.
type Registry struct {
	frames     map[frameKey][]*ebiten.Image
	icons      map[cfg.CharacterID]*ebiten.Image
	banners    map[cfg.CharacterID]*ebiten.Image
	shurikens  map[cfg.DamageClass]*ebiten.Image
	background *ebiten.Image
	logo       *ebiten.Image
}

// NewRegistry loads all images from fsys. Files that are missing are
// replaced by placeholders and reported once.
func NewRegistry(fsys fs.FS) *Registry {
	catalog := imagefs.NewCatalog(fsys)
	r := &Registry{
		frames:    make(map[frameKey][]*ebiten.Image),
		icons:     make(map[cfg.CharacterID]*ebiten.Image),
		banners:   make(map[cfg.CharacterID]*ebiten.Image),
		shurikens: make(map[cfg.DamageClass]*ebiten.Image),
	}

	for id := range cfg.Characters {
		for s := cfg.StateID(0); s < cfg.StateCount; s++ {
			right := catalog.Frames(id, s)
			r.frames[frameKey{id, s, cfg.FacingRight}] = toEbiten(right, false)
			r.frames[frameKey{id, s, cfg.FacingLeft}] = toEbiten(right, true)
		}
		r.icons[id] = ebiten.NewImageFromImage(catalog.Icon(id))
		r.banners[id] = ebiten.NewImageFromImage(catalog.Banner(id))
	}
	for _, class := range []cfg.DamageClass{cfg.Light, cfg.Heavy} {
		r.shurikens[class] = ebiten.NewImageFromImage(catalog.Shuriken(class))
	}
	r.background = ebiten.NewImageFromImage(catalog.Background())
	r.logo = ebiten.NewImageFromImage(catalog.Logo())

	catalog.Report()
	return r
}

func toEbiten(imgs []image.Image, mirror bool) []*ebiten.Image {
	out := make([]*ebiten.Image, len(imgs))
	for i, img := range imgs {
		if mirror {
			img = imagefs.Mirror(img)
		}
		out[i] = ebiten.NewImageFromImage(img)
	}
	return out
}

// Frame returns a display frame. The index wraps around the state's frames.
func (r *Registry) Frame(c cfg.CharacterID, s cfg.StateID, index int, facing cfg.Facing) *ebiten.Image {
	frames := r.frames[frameKey{c, s, facing}]
	if len(frames) == 0 {
		frames = r.frames[frameKey{c, cfg.Stand, cfg.FacingRight}]
		if len(frames) == 0 {
			return nil
		}
	}
	if index < 0 {
		index = 0
	}
	return frames[index%len(frames)]
}

func (r *Registry) Icon(c cfg.CharacterID) *ebiten.Image {
	return r.icons[c]
}

func (r *Registry) Banner(c cfg.CharacterID) *ebiten.Image {
	return r.banners[c]
}

func (r *Registry) Shuriken(class cfg.DamageClass) *ebiten.Image {
	return r.shurikens[class]
}

func (r *Registry) Background() *ebiten.Image {
	return r.background
}

func (r *Registry) Logo() *ebiten.Image {
	return r.logo
}
