package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/super-effective/dropdown-input/pkg/dropdown/classnames"
	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#cdcdcf", want: Color{R: 0xcd, G: 0xcd, B: 0xcf, A: 0xff}},
		{in: "cdcdcf", want: Color{R: 0xcd, G: 0xcd, B: 0xcf, A: 0xff}},
		{in: "#fff", want: Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#11223344", want: Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{in: " #000000 ", want: Color{A: 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, Color{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, HexColor(0x123456))
	assert.Equal(t, "#123456ff", HexColor(0x123456).String())
}

func TestDefault_MatchesConstants(t *testing.T) {
	c := Default().Resolve(ClassRoot)

	assert.Equal(t, MustParseColor(constants.DefaultBorderColor), c.BorderColor)
	assert.Equal(t, constants.DefaultBorderWidth, c.BorderWidth)
	assert.Equal(t, constants.DefaultBorderRadius, c.BorderRadius)
	assert.Equal(t, constants.DefaultBorderStyle, c.BorderStyle)
	assert.Equal(t, constants.DefaultHorizontalPadding, c.PaddingHorizontal)
	assert.Equal(t, constants.DefaultVerticalPadding, c.PaddingVertical)
	assert.True(t, c.DrawsBorder())
}

func TestResolve_ClassOrder(t *testing.T) {
	red := HexColor(0xFF0000)
	blue := HexColor(0x0000FF)

	s := Default().Merge(&Sheet{Classes: map[string]Rule{
		"a": {Background: &red, BorderWidth: Ptr(int32(3))},
		"b": {Background: &blue},
	}})

	ab := s.Resolve(classnames.Join("a", "b"))
	assert.Equal(t, blue, ab.Background, "later classes win")
	assert.Equal(t, int32(3), ab.BorderWidth, "earlier classes still contribute")

	ba := s.Resolve("b a")
	assert.Equal(t, red, ba.Background)

	unknown := s.Resolve("nope")
	assert.Equal(t, HexColor(0xFFFFFF), unknown.Background)
}

func TestDecode(t *testing.T) {
	doc := `
font_path = "/tmp/font.ttf"
font_size = 24
screen_color = "#101010"

[base]
border_color = "#ff0000"
border_style = "dashed"
max_height = 120

[class.selected]
text_color = "#ffffff"

[class.custom]
padding_horizontal = 2
`
	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/font.ttf", s.FontPath)
	assert.Equal(t, 24, s.FontSize)
	assert.Equal(t, HexColor(0x101010), s.Screen())

	base := s.Resolve("")
	assert.Equal(t, HexColor(0xFF0000), base.BorderColor)
	assert.Equal(t, BorderDashed, base.BorderStyle)
	assert.Equal(t, int32(120), base.MaxHeight)
	assert.Equal(t, constants.DefaultBorderRadius, base.BorderRadius, "unset keys keep defaults")

	selected := s.Resolve("option selected")
	assert.Equal(t, HexColor(0xFFFFFF), selected.TextColor)
	assert.Equal(t, HexColor(0xE6E6EA), selected.Background, "decoded class rules merge with defaults")

	custom := s.Resolve("custom")
	assert.Equal(t, int32(2), custom.PaddingHorizontal)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(`[base]
border_color = "not-a-color"`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`[base]
border_colour = "#fff"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base.border_colour")

	_, err = Decode(strings.NewReader(`font_size = `))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropdown.toml")
	require.NoError(t, os.WriteFile(path, []byte("font_size = 30\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, s.FontSize)
	assert.Equal(t, constants.DefaultFontPath, s.FontPath)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestPaddingOverrides(t *testing.T) {
	c := Default().Resolve("")

	tests := []struct {
		name string
		o    PaddingOverrides
		want Padding
	}{
		{
			name: "defaults",
			want: SymmetricPadding(constants.DefaultHorizontalPadding, constants.DefaultVerticalPadding),
		},
		{
			name: "padding sets both axes",
			o:    PaddingOverrides{Padding: Ptr(int32(5))},
			want: UniformPadding(5),
		},
		{
			name: "axis values win over padding",
			o: PaddingOverrides{
				Padding:           Ptr(int32(5)),
				PaddingHorizontal: Ptr(int32(20)),
			},
			want: SymmetricPadding(20, 5),
		},
		{
			name: "zero is a real value",
			o:    PaddingOverrides{PaddingVertical: Ptr(int32(0))},
			want: SymmetricPadding(constants.DefaultHorizontalPadding, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.o.Resolve(c))
		})
	}
}

func TestComputed_DrawsBorder(t *testing.T) {
	c := Computed{BorderWidth: 1, BorderStyle: BorderSolid}
	assert.True(t, c.DrawsBorder())

	c.BorderStyle = BorderNone
	assert.False(t, c.DrawsBorder())

	c.BorderStyle = BorderHidden
	assert.False(t, c.DrawsBorder())

	c = Computed{BorderWidth: 0, BorderStyle: BorderSolid}
	assert.False(t, c.DrawsBorder())
}

func TestLoadOnto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropdown.toml")
	require.NoError(t, os.WriteFile(path, []byte("[base]\nborder_width = 3\n"), 0o644))

	base := Default().Merge(&Sheet{Base: Rule{TextColor: Ptr(HexColor(0x123456))}})

	s, err := LoadOnto(base, path)
	require.NoError(t, err)

	c := s.Resolve("")
	assert.Equal(t, int32(3), c.BorderWidth)
	assert.Equal(t, HexColor(0x123456), c.TextColor, "base values survive")
}

func TestEncodedDefaultsDecodeToDefaults(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, toml.NewEncoder(&buf).Encode(Default()))

	s, err := Decode(strings.NewReader(buf.String()))
	require.NoError(t, err)

	for _, classes := range []string{"", ClassRoot, "option selected", ClassHeading} {
		assert.Equal(t, Default().Resolve(classes), s.Resolve(classes), classes)
	}
}
