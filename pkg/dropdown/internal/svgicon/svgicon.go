// Package svgicon rasterizes small SVG icons into RGBA images.
package svgicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrEmpty is returned for an icon with no data.
var ErrEmpty = errors.New("svgicon: empty icon")

// Size returns the icon's natural size from its viewBox, rounded up.
func Size(data []byte) (w, h int, err error) {
	icon, err := parse(data)
	if err != nil {
		return 0, 0, err
	}
	return ceil(icon.ViewBox.W), ceil(icon.ViewBox.H), nil
}

// Rasterize draws the icon scaled to fit a w x h image. The icon keeps its
// aspect ratio and is centered.
func Rasterize(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svgicon: invalid size %dx%d", w, h)
	}

	icon, err := parse(data)
	if err != nil {
		return nil, err
	}

	tw, th := float64(w), float64(h)
	if vw, vh := icon.ViewBox.W, icon.ViewBox.H; vw > 0 && vh > 0 {
		scale := min(tw/vw, th/vh)
		tw, th = vw*scale, vh*scale
	}
	icon.SetTarget((float64(w)-tw)/2, (float64(h)-th)/2, tw, th)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func parse(data []byte) (*oksvg.SvgIcon, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("svgicon: parse: %w", err)
	}
	return icon, nil
}

func ceil(f float64) int {
	n := int(f)
	if float64(n) < f {
		n++
	}
	return n
}
