package config

// SettingsConfig contains the user-adjustable settings choices
type SettingsConfig struct {
	VolumeSteps []float64 // cycled by the menu's volume button
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
