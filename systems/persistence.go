package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// settingsStore is the subset of *gdata.Manager the settings code uses.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const settingsKey = "settings"

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shinobi-saga",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
		Fullscreen:  cfg.Window.Fullscreen,
	}
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	settings.MusicVolume = clamp(settings.MusicVolume, 0, 1)
	settings.SFXVolume = clamp(settings.SFXVolume, 0, 1)

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// NextVolume returns the volume step after v, wrapping to silence.
func NextVolume(v float64) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return v
	}
	for _, s := range steps {
		if s > v+1e-9 {
			return s
		}
	}
	return steps[0]
}
