package internal

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/super-effective/dropdown-input/pkg/dropdown/internal/svgicon"
)

// IconTexture rasterizes an SVG icon to a texture of the given height, keeping
// the icon's aspect ratio.
func IconTexture(renderer *sdl.Renderer, svg []byte, height int32) (*sdl.Texture, int32, int32, error) {
	vw, vh, err := svgicon.Size(svg)
	if err != nil {
		return nil, 0, 0, err
	}

	h := height
	w := height
	if vh > 0 {
		w = int32(vw) * height / int32(vh)
	}
	if w <= 0 {
		w = height
	}

	img, err := svgicon.Rasterize(svg, int(w), int(h))
	if err != nil {
		return nil, 0, 0, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		w, h, 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("icon texture: %w", err)
	}
	_ = texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, w, h, nil
}
