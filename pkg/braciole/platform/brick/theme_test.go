package brick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0x7f, G: 0x5a, B: 0xf0, A: 255}, HexToColor(0x7f5af0))
	assert.Equal(t, sdl.Color{R: 0, G: 0, B: 0, A: 255}, HexToColor(0x000000))
	assert.Equal(t, sdl.Color{R: 255, G: 255, B: 255, A: 255}, HexToColor(0xffffff))
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme("/tmp/font.ttf")

	assert.Equal(t, "/tmp/font.ttf", theme.FontPath)
	assert.NotZero(t, theme.TitleFontSize)
	assert.NotZero(t, theme.BodyFontSize)
	assert.NotZero(t, theme.ScrimColor.A)
}

func TestCannoliTheme(t *testing.T) {
	theme := CannoliTheme("/tmp/cannoli.ttf")

	assert.Equal(t, "/tmp/cannoli.ttf", theme.FontPath)
	assert.Equal(t, HexToColor(0xffffff), theme.BackgroundColor)
	assert.Equal(t, HexToColor(0x008080), theme.AccentColor)
}
