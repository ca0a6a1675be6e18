package dropdown

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/super-effective/dropdown-input/pkg/dropdown/internal"
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

// Content is option or placeholder content that draws itself.
// Any other content is drawn as text: TextContent in its own color, strings
// as-is, fmt.Stringer through String, everything else through fmt.Sprint.
type Content interface {
	// Height returns the height the content needs.
	Height() int32
	// Draw paints the content inside bounds using the resolved text color.
	Draw(renderer *sdl.Renderer, bounds sdl.Rect, color style.Color)
}

func contentText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

func contentHeight(v any, lineHeight int32) int32 {
	if c, ok := v.(Content); ok {
		return max(c.Height(), 0)
	}
	return lineHeight
}

// drawContent paints v left-aligned and vertically centered in bounds,
// clipping text that does not fit.
func drawContent(renderer *sdl.Renderer, cache *internal.TextCache, v any, bounds sdl.Rect, color style.Color) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}

	if c, ok := v.(Content); ok {
		c.Draw(renderer, bounds, color)
		return
	}

	if t, ok := v.(TextContent); ok {
		color = t.Color
	}

	text, err := cache.Text(renderer, internal.Fonts.Regular, contentText(v), color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render text", "error", err)
		return
	}
	if text.Texture == nil {
		return
	}

	w := min(text.W, bounds.W)
	h := min(text.H, bounds.H)
	src := &sdl.Rect{X: 0, Y: 0, W: w, H: h}
	dst := &sdl.Rect{X: bounds.X, Y: bounds.Y + (bounds.H-h)/2, W: w, H: h}
	_ = renderer.Copy(text.Texture, src, dst)
}

// TextContent is text drawn in its own color instead of the style sheet's.
type TextContent struct {
	Text  string
	Color style.Color
}

func (t TextContent) String() string {
	return t.Text
}
