package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultsLoaded(t *testing.T) {
	for _, name := range []FontName{Body, Bold, Title, Small} {
		face := name.Get()
		assert.NotNil(t, face, name)
		assert.Positive(t, face.Metrics().Height.Ceil(), name)
	}
	assert.Greater(t, Title.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestBadFontIgnored(t *testing.T) {
	LoadFontWithSize("broken", []byte("not a font"), 12)
	assert.Panics(t, func() { FontName("broken").Get() })

	LoadFont("tiny", goregular.TTF)
	assert.NotPanics(t, func() { FontName("tiny").Get() })
}
