package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	window, audio, assets, debug := Window, Audio, Assets, Debug
	t.Cleanup(func() {
		Window, Audio, Assets, Debug = window, audio, assets, debug
	})
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	fc, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, fc)
}

func TestLoadFileRejectsBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nscale = "), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestApplyOverlaysOnlySetValues(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "shinobi.toml")
	body := `
[window]
scale = 1.5

[audio]
music_volume = 0.0
sfx_volume = 3.0

[debug]
draw_hitboxes = true
ai_seed = 7
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, fc)

	fc.Apply()

	assert.Equal(t, 1.5, Window.Scale)
	assert.Equal(t, 0.0, Audio.DefaultMusicVol, "an explicit zero mutes music")
	assert.Equal(t, 1.0, Audio.DefaultSFXVol, "volume is clamped to 1")
	assert.Equal(t, "assets", Assets.Dir, "unset values keep defaults")
	assert.True(t, Debug.DrawHitboxes)
	assert.Equal(t, int64(7), Debug.AISeed)
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	restoreGlobals(t)
	Assets.Dir = "/opt/shinobi/assets"

	path := filepath.Join(t.TempDir(), "shinobi.toml")
	require.NoError(t, WriteDefault(path))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, fc)
	assert.Equal(t, "/opt/shinobi/assets", fc.Assets.Dir)
	require.NotNil(t, fc.Audio.MusicVolume)
	assert.Equal(t, Audio.DefaultMusicVol, *fc.Audio.MusicVolume)
}
