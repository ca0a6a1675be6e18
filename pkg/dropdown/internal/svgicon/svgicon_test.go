package svgicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

func TestSize(t *testing.T) {
	w, h, err := Size([]byte(constants.DropdownIconSVG))
	require.NoError(t, err)
	assert.Equal(t, 12, w)
	assert.Equal(t, 8, h)
}

func TestRasterize_DrawsSomething(t *testing.T) {
	img, err := Rasterize([]byte(constants.HeartIconSVG), 32, 32)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	var opaque int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			opaque++
		}
	}
	assert.Greater(t, opaque, 0, "expected painted pixels")

	// Corners of the heart's bounding box stay clear.
	assert.Zero(t, img.RGBAAt(0, 31).A)
}

func TestRasterize_Errors(t *testing.T) {
	_, err := Rasterize(nil, 12, 12)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Rasterize([]byte(constants.DropdownIconSVG), 0, 12)
	assert.Error(t, err)

	_, err = Rasterize([]byte("<svg"), 12, 12)
	assert.Error(t, err)
}
