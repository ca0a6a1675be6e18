// Package style holds the dropdown's visual configuration.
//
// A Sheet is a base Rule plus one Rule per class name. The renderer composes
// the class names that apply to an element (see package classnames) and asks
// the sheet to resolve them; rules are applied in class order, later classes
// winning. Sheets are read from TOML:
//
//	font_path = "/mnt/SDCARD/fonts/ui.ttf"
//	font_size = 20
//
//	[base]
//	border_color = "#cdcdcf"
//	border_radius = 4
//
//	[class.selected]
//	background = "#dcecff"
package style

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

// Border styles understood by the renderer.
const (
	BorderSolid  = "solid"
	BorderDashed = "dashed"
	BorderDotted = "dotted"
	BorderDouble = "double"
	BorderNone   = "none"
	BorderHidden = "hidden"
)

// Class names the renderer applies.
const (
	ClassRoot         = "drop_down_input"
	ClassActiveOption = "active_option"
	ClassIcon         = "dropdown_icon"
	ClassDropdown     = "dropdown"
	ClassOption       = "option"
	ClassSelected     = "selected"
	ClassExpanded     = "expanded"
	ClassFluid        = "fluid"
	ClassHeading      = "heading"
)

// Rule is a partial style. Nil fields leave the inherited value alone.
type Rule struct {
	Background        *Color  `toml:"background"`
	TextColor         *Color  `toml:"text_color"`
	BorderColor       *Color  `toml:"border_color"`
	BorderWidth       *int32  `toml:"border_width"`
	BorderRadius      *int32  `toml:"border_radius"`
	BorderStyle       *string `toml:"border_style"`
	PaddingHorizontal *int32  `toml:"padding_horizontal"`
	PaddingVertical   *int32  `toml:"padding_vertical"`
	Width             *int32  `toml:"width"`
	MaxHeight         *int32  `toml:"max_height"`
}

// Merge returns r with every field set in o copied over it.
func (r Rule) Merge(o Rule) Rule {
	if o.Background != nil {
		r.Background = o.Background
	}
	if o.TextColor != nil {
		r.TextColor = o.TextColor
	}
	if o.BorderColor != nil {
		r.BorderColor = o.BorderColor
	}
	if o.BorderWidth != nil {
		r.BorderWidth = o.BorderWidth
	}
	if o.BorderRadius != nil {
		r.BorderRadius = o.BorderRadius
	}
	if o.BorderStyle != nil {
		r.BorderStyle = o.BorderStyle
	}
	if o.PaddingHorizontal != nil {
		r.PaddingHorizontal = o.PaddingHorizontal
	}
	if o.PaddingVertical != nil {
		r.PaddingVertical = o.PaddingVertical
	}
	if o.Width != nil {
		r.Width = o.Width
	}
	if o.MaxHeight != nil {
		r.MaxHeight = o.MaxHeight
	}
	return r
}

// Computed is a fully resolved style.
type Computed struct {
	Background        Color
	TextColor         Color
	BorderColor       Color
	BorderWidth       int32
	BorderRadius      int32
	BorderStyle       string
	PaddingHorizontal int32
	PaddingVertical   int32
	Width             int32
	MaxHeight         int32
}

// Apply returns c with the fields set in r applied.
func (c Computed) Apply(r Rule) Computed {
	if r.Background != nil {
		c.Background = *r.Background
	}
	if r.TextColor != nil {
		c.TextColor = *r.TextColor
	}
	if r.BorderColor != nil {
		c.BorderColor = *r.BorderColor
	}
	if r.BorderWidth != nil {
		c.BorderWidth = *r.BorderWidth
	}
	if r.BorderRadius != nil {
		c.BorderRadius = *r.BorderRadius
	}
	if r.BorderStyle != nil {
		c.BorderStyle = *r.BorderStyle
	}
	if r.PaddingHorizontal != nil {
		c.PaddingHorizontal = *r.PaddingHorizontal
	}
	if r.PaddingVertical != nil {
		c.PaddingVertical = *r.PaddingVertical
	}
	if r.Width != nil {
		c.Width = *r.Width
	}
	if r.MaxHeight != nil {
		c.MaxHeight = *r.MaxHeight
	}
	return c
}

// DrawsBorder reports whether the border should be painted.
func (c Computed) DrawsBorder() bool {
	return c.BorderWidth > 0 && c.BorderStyle != BorderNone && c.BorderStyle != BorderHidden
}

// Sheet is a complete style configuration.
type Sheet struct {
	FontPath    string          `toml:"font_path"`
	FontSize    int             `toml:"font_size"`
	ScreenColor *Color          `toml:"screen_color"`
	Base        Rule            `toml:"base"`
	Classes     map[string]Rule `toml:"class"`
}

// Default returns the built-in sheet.
func Default() *Sheet {
	return &Sheet{
		FontPath:    constants.DefaultFontPath,
		FontSize:    constants.DefaultFontSize,
		ScreenColor: Ptr(HexColor(0xF4F4F6)),
		Base: Rule{
			Background:        Ptr(HexColor(0xFFFFFF)),
			TextColor:         Ptr(HexColor(0x2B2B30)),
			BorderColor:       Ptr(MustParseColor(constants.DefaultBorderColor)),
			BorderWidth:       Ptr(constants.DefaultBorderWidth),
			BorderRadius:      Ptr(constants.DefaultBorderRadius),
			BorderStyle:       Ptr(constants.DefaultBorderStyle),
			PaddingHorizontal: Ptr(constants.DefaultHorizontalPadding),
			PaddingVertical:   Ptr(constants.DefaultVerticalPadding),
			Width:             Ptr(int32(240)),
			MaxHeight:         Ptr(constants.DefaultListMaxHeight),
		},
		Classes: map[string]Rule{
			ClassSelected: {
				Background: Ptr(HexColor(0xE6E6EA)),
			},
			ClassExpanded: {
				BorderColor: Ptr(HexColor(0x8A8A90)),
			},
			ClassHeading: {
				TextColor: Ptr(HexColor(0x55555C)),
			},
		},
	}
}

// Merge returns a copy of s with o layered on top.
func (s *Sheet) Merge(o *Sheet) *Sheet {
	out := &Sheet{
		FontPath:    s.FontPath,
		FontSize:    s.FontSize,
		ScreenColor: s.ScreenColor,
		Base:        s.Base.Merge(o.Base),
		Classes:     make(map[string]Rule, len(s.Classes)+len(o.Classes)),
	}

	if o.FontPath != "" {
		out.FontPath = o.FontPath
	}
	if o.FontSize > 0 {
		out.FontSize = o.FontSize
	}
	if o.ScreenColor != nil {
		out.ScreenColor = o.ScreenColor
	}

	for name, rule := range s.Classes {
		out.Classes[name] = rule
	}
	for name, rule := range o.Classes {
		out.Classes[name] = out.Classes[name].Merge(rule)
	}

	return out
}

// Resolve computes the style for a space-separated list of class names.
// Unknown classes are ignored.
func (s *Sheet) Resolve(classNames string) Computed {
	c := Computed{}.Apply(s.Base)
	for _, name := range strings.Fields(classNames) {
		if rule, ok := s.Classes[name]; ok {
			c = c.Apply(rule)
		}
	}
	return c
}

// Screen returns the window clear color.
func (s *Sheet) Screen() Color {
	if s.ScreenColor == nil {
		return HexColor(0x000000)
	}
	return *s.ScreenColor
}

// Decode reads a TOML sheet from r and layers it over the defaults.
// Keys the sheet does not know are reported as an error.
func Decode(r io.Reader) (*Sheet, error) {
	var parsed Sheet
	md, err := toml.NewDecoder(r).Decode(&parsed)
	if err != nil {
		return nil, fmt.Errorf("style: decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return Default().Merge(&parsed), nil
}

// Load reads a TOML sheet from path and layers it over the defaults.
func Load(path string) (*Sheet, error) {
	return LoadOnto(Default(), path)
}

// LoadOnto reads a TOML sheet from path and layers it over base.
func LoadOnto(base *Sheet, path string) (*Sheet, error) {
	var parsed Sheet
	md, err := toml.DecodeFile(path, &parsed)
	if err != nil {
		return nil, fmt.Errorf("style: load %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("style: load %s: %w", path, err)
	}
	return base.Merge(&parsed), nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	return fmt.Errorf("style: unknown keys: %s", strings.Join(keys, ", "))
}

// Ptr returns a pointer to v. Handy for building Rules in code.
func Ptr[T any](v T) *T {
	return &v
}
