package brick

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the colors and type used by the presenter's chrome: screen
// backgrounds, title text, the back chevron, modal scrims, and failure
// banners. Screen bodies are drawn by the application and can ignore it.
type Theme struct {
	BackgroundColor sdl.Color // Screen background
	TextColor       sdl.Color // Title and banner text
	AccentColor     sdl.Color // Failure banner background
	ChromeColor     sdl.Color // Back and close icons
	ScrimColor      sdl.Color // Dimming layer painted behind modal overlays
	FontPath        string    // Path to the UI font
	TitleFontSize   int       // Point size for screen titles
	BodyFontSize    int       // Point size for banners and secondary text
}

// DefaultTheme returns the stock Brick look over the given font.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		BackgroundColor: HexToColor(0x16161a),
		TextColor:       HexToColor(0xfffffe),
		AccentColor:     HexToColor(0x7f5af0),
		ChromeColor:     HexToColor(0x94a1b2),
		ScrimColor:      sdl.Color{R: 0, G: 0, B: 0, A: 168},
		FontPath:        fontPath,
		TitleFontSize:   28,
		BodyFontSize:    18,
	}
}

// CannoliTheme returns a preset matching the Cannoli firmware's light
// look, for builds shipping on that CFW.
func CannoliTheme(fontPath string) Theme {
	return Theme{
		BackgroundColor: HexToColor(0xffffff),
		TextColor:       HexToColor(0x000000),
		AccentColor:     HexToColor(0x008080),
		ChromeColor:     HexToColor(0x4a4a4a),
		ScrimColor:      sdl.Color{R: 0, G: 0, B: 0, A: 120},
		FontPath:        fontPath,
		TitleFontSize:   28,
		BodyFontSize:    18,
	}
}

// HexToColor converts 0xRRGGBB into an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
