package brick

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/*.svg
var iconFS embed.FS

// rasterizeIcon renders an embedded SVG chrome icon at size pixels square.
// Icons ship as vectors so one asset covers every display the firmware
// runs on.
func rasterizeIcon(name string, size int) (*image.RGBA, error) {
	data, err := iconFS.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("brick: unknown icon %q: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("brick: parse icon %q: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return rgba, nil
}

// uploadRGBA turns a rasterized image into a blendable SDL texture.
func uploadRGBA(renderer *sdl.Renderer, rgba *image.RGBA) (*sdl.Texture, error) {
	bounds := rgba.Bounds()
	w, h := int32(bounds.Dx()), int32(bounds.Dy())
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("brick: cannot upload empty image")
	}

	// Go's RGBA layout reads as ABGR in SDL's little-endian packed view.
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), w, h, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("brick: wrap image surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("brick: upload texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// loadIconTexture rasterizes and uploads one chrome icon, tinted to the
// theme's chrome color.
func loadIconTexture(renderer *sdl.Renderer, name string, size int, tint sdl.Color) (*sdl.Texture, error) {
	rgba, err := rasterizeIcon(name, size)
	if err != nil {
		return nil, err
	}
	texture, err := uploadRGBA(renderer, rgba)
	if err != nil {
		return nil, err
	}
	texture.SetColorMod(tint.R, tint.G, tint.B)
	return texture, nil
}
