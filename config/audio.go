package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundThrow
	SoundHit
	SoundBlock
	SoundMenuClick
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths under the asset directory
type SoundConfig struct {
	MenuMusic         string
	BattleMusic       string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuMusic:   "sounds/bg_music.mp3",
		BattleMusic: "sounds/bg_music.mp3",
		SFXPaths: map[SoundID]string{
			SoundJump:      "sounds/jump.wav",
			SoundThrow:     "sounds/shuriken.wav",
			SoundHit:       "sounds/hit.wav",
			SoundBlock:     "sounds/block.wav",
			SoundMenuClick: "sounds/click.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.5,
		},
	}
}
