package components

import (
	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues for the playback layer (singleton component)
type AudioData struct {
	PendingSFX  []cfg.SoundID
	Music       string // requested music track, empty for silence
	MusicPaused bool
}

var Audio = donburi.NewComponentType[AudioData]()
