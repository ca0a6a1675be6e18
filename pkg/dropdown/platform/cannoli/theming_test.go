package cannoli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

func TestSheet(t *testing.T) {
	s := Sheet("")
	assert.Equal(t, DefaultFontPath, s.FontPath)

	selected := s.Resolve(style.ClassOption + " " + style.ClassSelected)
	assert.Equal(t, style.HexColor(0x008080), selected.Background)
	assert.Equal(t, style.HexColor(0xFFFFFF), selected.TextColor)

	base := s.Resolve("")
	assert.Equal(t, int32(2), base.BorderWidth)
	assert.Equal(t, style.BorderSolid, base.BorderStyle, "unset fields keep the defaults")

	assert.Equal(t, "/tmp/x.ttf", Sheet("/tmp/x.ttf").FontPath)
}
