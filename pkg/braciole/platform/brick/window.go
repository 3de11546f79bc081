package brick

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	envEnvironment  = "ENVIRONMENT"
	envDevelopment  = "DEV"
	envWindowWidth  = "WINDOW_WIDTH"
	envWindowHeight = "WINDOW_HEIGHT"

	devDefaultWidth  = 1024
	devDefaultHeight = 768
)

// isDevMode reports whether we are running on a desk instead of a device
// (ENVIRONMENT=DEV). Dev mode gets a movable window sized from the
// WINDOW_WIDTH and WINDOW_HEIGHT environment variables.
func isDevMode() bool {
	return os.Getenv(envEnvironment) == envDevelopment
}

// Window wraps the SDL window and renderer the presenter draws into.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer

	hasVSync        bool
	lastPresentTime uint64
}

// newWindow creates the SDL window and renderer. Zero width or height
// selects the current display resolution; on a handheld that is the only
// sensible size. Dev mode overrides both from the environment.
func newWindow(title string, width, height int32, borderless bool) (*Window, error) {
	x, y := int32(0), int32(0)

	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return nil, fmt.Errorf("brick: query display mode: %w", err)
		}
		width, height = mode.W, mode.H
	}

	if isDevMode() {
		borderless = false
		x, y = 50, 50
		width = devDimension(envWindowWidth, devDefaultWidth)
		height = devDimension(envWindowHeight, devDefaultHeight)
	}

	var flags uint32 = sdl.WINDOW_SHOWN
	if borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	internal.GetInternalLogger().Debug("creating window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, flags)
	if err != nil {
		return nil, fmt.Errorf("brick: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("brick: create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		hasVSync: vsync,
	}, nil
}

func devDimension(envVar string, fallback int32) int32 {
	v := os.Getenv(envVar)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("invalid window dimension, using default", "var", envVar, "value", v)
		return fallback
	}
	return int32(n)
}

// Size returns the window dimensions.
func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

// Bounds returns the full-window rectangle.
func (w *Window) Bounds() sdl.Rect {
	width, height := w.Size()
	return sdl.Rect{X: 0, Y: 0, W: width, H: height}
}

// Present swaps the render buffer and enforces ~60fps frame timing when
// VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) destroy() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}
