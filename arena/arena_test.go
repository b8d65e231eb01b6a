package arena

import (
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/shinobi-saga/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="b" x="500" y="250">
   <properties>
    <property name="character" value="Sasuke"/>
   </properties>
  </object>
  <object id="2" name="a" x="40" y="250">
   <properties>
    <property name="character" value="naruto"/>
    <property name="facing" value="right"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Bounds">
  <object id="3" name="ground" x="0" y="250" width="640" height="0"/>
  <object id="4" name="right" x="560" y="0"/>
 </objectgroup>
</map>
`

func TestLoadBuiltInArenaMatchesDefaults(t *testing.T) {
	a, err := Load(FS, cfg.Arena.MapPath)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Width, a.Width)
	assert.Equal(t, def.Height, a.Height)
	assert.Equal(t, def.Ground, a.Ground)
	assert.Equal(t, def.LeftLimit, a.LeftLimit)
	assert.Equal(t, def.RightLimit, a.RightLimit)
	assert.Equal(t, def.Spawns, a.Spawns)
}

func TestLoadCustomArena(t *testing.T) {
	fsys := fstest.MapFS{"maps/custom.tmx": {Data: []byte(customMap)}}

	a, err := Load(fsys, "maps/custom.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640, a.Width)
	assert.Equal(t, 320, a.Height)
	assert.Equal(t, 250.0, a.Ground)
	assert.Equal(t, cfg.Arena.LeftLimit, a.LeftLimit, "missing bounds keep defaults")
	assert.Equal(t, 560.0, a.RightLimit)

	require.Len(t, a.Spawns, 2)
	assert.Equal(t, cfg.Naruto, a.Spawns[0].Character, "spawns are sorted left to right")
	assert.Equal(t, cfg.FacingRight, a.Spawns[0].Facing)

	s, ok := a.SpawnFor(cfg.Sasuke)
	require.True(t, ok)
	assert.Equal(t, 500.0, s.X)
	assert.Equal(t, cfg.FacingLeft, s.Facing, "facing defaults to the character's")
}

func TestLoadRejectsUnknownCharacter(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="x" x="1" y="1">
   <properties><property name="character" value="kakashi"/></properties>
  </object>
 </objectgroup>
</map>
`
	_, err := Load(fstest.MapFS{"bad.tmx": {Data: []byte(bad)}}, "bad.tmx")
	assert.ErrorContains(t, err, "kakashi")
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	a := LoadOrDefault(fstest.MapFS{}, "missing.tmx")
	require.NotNil(t, a)
	assert.Equal(t, "default", a.Name)
	assert.Len(t, a.Spawns, 2)
}
