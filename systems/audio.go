package systems

import (
	"github.com/automoto/shinobi-saga/components"
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// PlaySFX queues a sound effect to be played
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// PlayMusic requests a looping music track. An empty path stops the music.
func PlayMusic(w donburi.World, path string) {
	GetOrCreateAudio(w).Music = path
}

// DrainSFX returns the queued sound effects and empties the queue.
func DrainSFX(w donburi.World) []cfg.SoundID {
	audioData := GetOrCreateAudio(w)
	if len(audioData.PendingSFX) == 0 {
		return nil
	}
	out := make([]cfg.SoundID, len(audioData.PendingSFX))
	copy(out, audioData.PendingSFX)
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return out
}

// GetOrCreateAudio returns the singleton Audio component, creating it if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
