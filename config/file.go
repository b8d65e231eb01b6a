package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the optional on-disk configuration. Only presentation and
// debug settings are exposed; combat tuning is not configurable.
type FileConfig struct {
	Window struct {
		Scale      float64 `toml:"scale"`
		Fullscreen bool    `toml:"fullscreen"`
	} `toml:"window"`
	Audio struct {
		MusicVolume *float64 `toml:"music_volume"`
		SFXVolume   *float64 `toml:"sfx_volume"`
	} `toml:"audio"`
	Assets struct {
		Dir string `toml:"dir"`
	} `toml:"assets"`
	Debug struct {
		SkipMenu     bool  `toml:"skip_menu"`
		DrawHitboxes bool  `toml:"draw_hitboxes"`
		AISeed       int64 `toml:"ai_seed"`
	} `toml:"debug"`
}

// LoadFile decodes the config file at path. A missing file is not an error
// and yields nil.
func LoadFile(path string) (*FileConfig, error) {
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return &fc, nil
}

// Apply overlays the file's values onto the package globals. Zero values keep
// the defaults.
func (fc *FileConfig) Apply() {
	if fc == nil {
		return
	}
	if fc.Window.Scale > 0 {
		Window.Scale = fc.Window.Scale
	}
	Window.Fullscreen = Window.Fullscreen || fc.Window.Fullscreen
	if v := fc.Audio.MusicVolume; v != nil {
		Audio.DefaultMusicVol = clampUnit(*v)
	}
	if v := fc.Audio.SFXVolume; v != nil {
		Audio.DefaultSFXVol = clampUnit(*v)
	}
	if fc.Assets.Dir != "" {
		Assets.Dir = fc.Assets.Dir
	}
	Debug.SkipMenu = Debug.SkipMenu || fc.Debug.SkipMenu
	Debug.DrawHitboxes = Debug.DrawHitboxes || fc.Debug.DrawHitboxes
	if fc.Debug.AISeed != 0 {
		Debug.AISeed = fc.Debug.AISeed
	}
}

// WriteDefault writes the current settings as a config file template.
func WriteDefault(path string) error {
	var fc FileConfig
	fc.Window.Scale = Window.Scale
	fc.Window.Fullscreen = Window.Fullscreen
	music, sfx := Audio.DefaultMusicVol, Audio.DefaultSFXVol
	fc.Audio.MusicVolume = &music
	fc.Audio.SFXVolume = &sfx
	fc.Assets.Dir = Assets.Dir
	fc.Debug.SkipMenu = Debug.SkipMenu
	fc.Debug.DrawHitboxes = Debug.DrawHitboxes
	fc.Debug.AISeed = Debug.AISeed

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		return fmt.Errorf("failed to encode config %s: %w", path, err)
	}
	return nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
