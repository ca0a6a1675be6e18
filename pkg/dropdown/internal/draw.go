package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

// cornerOffsets returns, for each of the first radius rows of a rounded
// rectangle, how far the edge is inset from the side.
func cornerOffsets(radius int32) []int32 {
	offs := make([]int32, radius)
	r := float64(radius)
	for dy := int32(0); dy < radius; dy++ {
		d := r - float64(dy) - 0.5
		offs[dy] = int32(math.Round(r - math.Sqrt(math.Max(r*r-d*d, 0))))
	}
	return offs
}

func clampRadius(rect *sdl.Rect, radius int32) int32 {
	limit := min(rect.W, rect.H) / 2
	return max(min(radius, limit), 0)
}

// FillRoundedRect fills rect with rounded corners.
func FillRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, c style.Color) {
	if rect.W <= 0 || rect.H <= 0 || c.A == 0 {
		return
	}
	SetDrawColor(renderer, c)

	radius = clampRadius(rect, radius)
	if radius == 0 {
		_ = renderer.FillRect(rect)
		return
	}

	offs := cornerOffsets(radius)
	for dy := int32(0); dy < radius; dy++ {
		x1, x2 := rect.X+offs[dy], rect.X+rect.W-1-offs[dy]
		_ = renderer.DrawLine(x1, rect.Y+dy, x2, rect.Y+dy)
		_ = renderer.DrawLine(x1, rect.Y+rect.H-1-dy, x2, rect.Y+rect.H-1-dy)
	}
	_ = renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})
}

// StrokeRoundedRect draws a one pixel outline with rounded corners.
func StrokeRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, c style.Color) {
	if rect.W <= 0 || rect.H <= 0 || c.A == 0 {
		return
	}
	SetDrawColor(renderer, c)

	radius = clampRadius(rect, radius)
	left, top := rect.X, rect.Y
	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1

	_ = renderer.DrawLine(left+radius, top, right-radius, top)
	_ = renderer.DrawLine(left+radius, bottom, right-radius, bottom)
	_ = renderer.DrawLine(left, top+radius, left, bottom-radius)
	_ = renderer.DrawLine(right, top+radius, right, bottom-radius)

	offs := cornerOffsets(radius)
	for dy := int32(0); dy < radius; dy++ {
		from := offs[dy]
		to := from
		if dy == 0 {
			to = radius - 1
		} else if prev := offs[dy-1] - 1; prev > from {
			to = prev
		}

		_ = renderer.DrawLine(left+from, top+dy, left+to, top+dy)
		_ = renderer.DrawLine(right-to, top+dy, right-from, top+dy)
		_ = renderer.DrawLine(left+from, bottom-dy, left+to, bottom-dy)
		_ = renderer.DrawLine(right-to, bottom-dy, right-from, bottom-dy)
	}
}

func inset(rect *sdl.Rect, n int32) *sdl.Rect {
	return &sdl.Rect{X: rect.X + n, Y: rect.Y + n, W: rect.W - 2*n, H: rect.H - 2*n}
}

// DrawBorder paints the border described by c around rect.
func DrawBorder(renderer *sdl.Renderer, rect *sdl.Rect, c style.Computed) {
	if !c.DrawsBorder() {
		return
	}

	width := min(c.BorderWidth, min(rect.W, rect.H)/2)

	switch c.BorderStyle {
	case style.BorderDashed:
		drawBrokenBorder(renderer, rect, width, 3*width, 2*width, c.BorderColor)
	case style.BorderDotted:
		drawBrokenBorder(renderer, rect, width, width, width, c.BorderColor)
	case style.BorderDouble:
		if width < 3 {
			drawRings(renderer, rect, 0, width, c.BorderRadius, c.BorderColor)
			return
		}
		ring := width / 3
		drawRings(renderer, rect, 0, ring, c.BorderRadius, c.BorderColor)
		drawRings(renderer, rect, width-ring, width, c.BorderRadius, c.BorderColor)
	default:
		drawRings(renderer, rect, 0, width, c.BorderRadius, c.BorderColor)
	}
}

func drawRings(renderer *sdl.Renderer, rect *sdl.Rect, from, to, radius int32, c style.Color) {
	for i := from; i < to; i++ {
		StrokeRoundedRect(renderer, inset(rect, i), max(radius-i, 0), c)
	}
}

// drawBrokenBorder draws square-cornered dashes of the given length and gap.
func drawBrokenBorder(renderer *sdl.Renderer, rect *sdl.Rect, width, dash, gap int32, c style.Color) {
	SetDrawColor(renderer, c)
	dash, gap = max(dash, 1), max(gap, 1)

	for x := rect.X; x < rect.X+rect.W; x += dash + gap {
		w := min(dash, rect.X+rect.W-x)
		_ = renderer.FillRect(&sdl.Rect{X: x, Y: rect.Y, W: w, H: width})
		_ = renderer.FillRect(&sdl.Rect{X: x, Y: rect.Y + rect.H - width, W: w, H: width})
	}
	for y := rect.Y; y < rect.Y+rect.H; y += dash + gap {
		h := min(dash, rect.Y+rect.H-y)
		_ = renderer.FillRect(&sdl.Rect{X: rect.X, Y: y, W: width, H: h})
		_ = renderer.FillRect(&sdl.Rect{X: rect.X + rect.W - width, Y: y, W: width, H: h})
	}
}
