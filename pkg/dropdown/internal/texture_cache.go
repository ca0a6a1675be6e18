package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

const defaultMaxCacheSize = 64

// TextTexture is a rendered line of text.
type TextTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

type textKey struct {
	font  *ttf.Font
	text  string
	color style.Color
}

// TextCache keeps recently rendered text textures, evicting the least
// recently used entry once full.
type TextCache struct {
	entries map[textKey]TextTexture
	order   []textKey
	maxSize int
}

func NewTextCache() *TextCache {
	return NewTextCacheWithSize(defaultMaxCacheSize)
}

func NewTextCacheWithSize(maxSize int) *TextCache {
	return &TextCache{
		entries: make(map[textKey]TextTexture, maxSize),
		order:   make([]textKey, 0, maxSize),
		maxSize: maxSize,
	}
}

// Text returns a texture for text drawn in font and color, rendering it on a
// miss. Empty text yields a zero TextTexture.
func (c *TextCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color style.Color) (TextTexture, error) {
	if text == "" || font == nil {
		return TextTexture{}, nil
	}

	key := textKey{font: font, text: text, color: color}
	if entry, ok := c.entries[key]; ok {
		c.touch(key)
		return entry, nil
	}

	surface, err := font.RenderUTF8Blended(text, ToSDLColor(color))
	if err != nil {
		return TextTexture{}, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return TextTexture{}, err
	}

	entry := TextTexture{Texture: texture, W: surface.W, H: surface.H}
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = entry
	c.order = append(c.order, key)

	return entry, nil
}

func (c *TextCache) touch(key textKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if entry, ok := c.entries[oldest]; ok {
		entry.Texture.Destroy()
		delete(c.entries, oldest)
	}
}

// Len returns the number of cached textures.
func (c *TextCache) Len() int {
	return len(c.entries)
}

func (c *TextCache) Destroy() {
	for _, entry := range c.entries {
		entry.Texture.Destroy()
	}
	c.entries = make(map[textKey]TextTexture, c.maxSize)
	c.order = c.order[:0]
}
