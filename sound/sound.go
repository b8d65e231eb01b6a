// Package sound plays the cues and music the simulation requests.
package sound

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/shinobi-saga/assets"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/automoto/shinobi-saga/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicPaused  bool
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// Init creates the audio context and loader over fsys. Later calls are
// ignored.
func Init(fsys fs.FS) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
	})
}

func ready() bool {
	return globalAudioLoader != nil
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	if !ready() {
		return
	}
	for _, p := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(p); err != nil {
			log.Printf("Warning: Could not load sound %s: %v", p, err)
		}
	}
}

// Update plays queued cues and follows the world's music request.
func Update(w donburi.World) {
	if !ready() {
		systems.DrainSFX(w)
		return
	}

	updateFade()

	for _, id := range systems.DrainSFX(w) {
		playSFX(id)
	}

	audioData := systems.GetOrCreateAudio(w)
	if audioData.Music != globalMusicKey && globalFadeTimer == 0 {
		playMusic(audioData.Music)
	}
	if audioData.MusicPaused != globalMusicPaused {
		setMusicPaused(audioData.MusicPaused)
	}
}

func updateFade() {
	if globalFadeTimer <= 0 {
		return
	}
	globalFadeTimer--
	if globalFadeDuration > 0 && globalMusicPlayer != nil {
		progress := float64(globalFadeTimer) / float64(globalFadeDuration)
		globalMusicPlayer.SetVolume(globalFadeStart * progress)
	}
	if globalFadeTimer == 0 {
		StopMusic()
	}
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	p, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(p)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	if volume > 1 {
		volume = 1
	}

	player.SetVolume(volume)
	player.Play()
}

func playMusic(p string) {
	if globalMusicKey == p {
		return
	}
	StopMusic()
	globalMusicKey = p
	if p == "" {
		return
	}

	player, err := globalAudioLoader.LoadMusic(p)
	if err != nil {
		log.Printf("Warning: Could not load music %s: %v", p, err)
		return
	}

	player.SetVolume(globalMusicVolume)
	if !globalMusicPaused {
		player.Play()
	}
	globalMusicPlayer = player
}

func setMusicPaused(paused bool) {
	globalMusicPaused = paused
	if globalMusicPlayer == nil {
		return
	}
	if paused {
		globalMusicPlayer.Pause()
	} else {
		globalMusicPlayer.Play()
	}
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic() {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicKey = ""
	globalFadeTimer = 0
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

func MusicVolume() float64 { return globalMusicVolume }
func SFXVolume() float64   { return globalSFXVolume }

// Apply sets both volumes from saved settings.
func Apply(s *systems.SavedSettings) {
	if s == nil {
		return
	}
	if s.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
		return
	}
	SetMusicVolume(s.MusicVolume)
	SetSFXVolume(s.SFXVolume)
}
