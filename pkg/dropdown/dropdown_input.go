package dropdown

import (
	"bytes"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/super-effective/dropdown-input/pkg/dropdown/classnames"
	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
	"github.com/super-effective/dropdown-input/pkg/dropdown/controller"
	"github.com/super-effective/dropdown-input/pkg/dropdown/interact"
	"github.com/super-effective/dropdown-input/pkg/dropdown/internal"
	"github.com/super-effective/dropdown-input/pkg/dropdown/layout"
	"github.com/super-effective/dropdown-input/pkg/dropdown/outside"
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

// Option is one selectable entry.
type Option = controller.Option

// Props are the inputs a host supplies for every frame. The embedded
// controller.Props carry the behavioral inputs; the rest are cosmetic and
// take precedence over the style sheet.
type Props struct {
	controller.Props

	BorderColor       *style.Color
	BorderWidth       *int32
	BorderRadius      *int32
	BorderStyle       string // one of the style.Border* names
	Padding           *int32 // both axes
	PaddingHorizontal *int32 // wins over Padding
	PaddingVertical   *int32 // wins over Padding
	Fluid             bool   // stretch to the available width

	// ToggleIcon is an SVG document drawn at the right of the control.
	// Nil uses constants.DropdownIconSVG.
	ToggleIcon []byte

	ClassName               string     // extra classes on the root
	DropDownClassName       string     // extra classes on the list
	SelectedOptionClassName string     // replaces "selected" on the selected option
	DropDownStyle           style.Rule // applied to the list after everything else
}

func (p Props) overrides() style.Rule {
	r := style.Rule{
		BorderColor:  p.BorderColor,
		BorderWidth:  p.BorderWidth,
		BorderRadius: p.BorderRadius,
	}
	if p.BorderStyle != "" {
		r.BorderStyle = style.Ptr(p.BorderStyle)
	}
	return r
}

func (p Props) paddingOverrides() style.PaddingOverrides {
	return style.PaddingOverrides{
		Padding:           p.Padding,
		PaddingHorizontal: p.PaddingHorizontal,
		PaddingVertical:   p.PaddingVertical,
	}
}

func (p Props) rootClassNames(expanded bool) string {
	return classnames.Join(style.ClassRoot, p.ClassName, classnames.Flags{
		{Name: style.ClassExpanded, On: expanded},
		{Name: style.ClassFluid, On: p.Fluid},
	})
}

func (p Props) listClassNames() string {
	return classnames.Join(style.ClassDropdown, p.DropDownClassName)
}

func (p Props) optionClassNames(selected bool) string {
	selectedClass := p.SelectedOptionClassName
	if selectedClass == "" {
		selectedClass = style.ClassSelected
	}
	return classnames.Join(style.ClassOption, classnames.Flag{Name: selectedClass, On: selected})
}

type frame struct {
	props   Props
	view    controller.View
	geo     layout.Dropdown
	control style.Computed
	list    style.Computed
	options []style.Computed
	padding style.Padding
}

type toggleIcon struct {
	src     []byte
	texture *sdl.Texture
	w, h    int32
	failed  bool
}

func (t *toggleIcon) destroy() {
	if t.texture != nil {
		t.texture.Destroy()
	}
	*t = toggleIcon{}
}

// DropdownInput draws one dropdown. Input handling and geometry live in an
// interact.Widget.
type DropdownInput struct {
	render func() Props
	widget *interact.Widget
	frame  frame
	icon   toggleIcon
	logger *slog.Logger
}

// NewDropdownInput creates an input whose props come from render, which is
// called at least once per frame. Call it after Init so it logs through the
// configured logger.
func NewDropdownInput(render func() Props) *DropdownInput {
	logger := internal.GetInternalLogger()
	return &DropdownInput{
		render: render,
		widget: interact.NewWidget(func() controller.Props { return render().Props }, logger),
		logger: logger,
	}
}

// Expanded reports whether the list is open.
func (in *DropdownInput) Expanded() bool {
	return in.widget.Expanded()
}

// Mount attaches the input's click-outside watcher to d. Inputs added to a
// Screen are mounted by Run.
func (in *DropdownInput) Mount(d *outside.Dispatcher) error {
	return in.widget.Mount(d)
}

// Unmount detaches the watcher and frees textures. It is safe to call more
// than once.
func (in *DropdownInput) Unmount() {
	in.widget.Unmount()
	in.icon.destroy()
}

// HandleKey routes a key press to whichever part of the input has focus.
func (in *DropdownInput) HandleKey(key string) controller.KeyResult {
	return in.widget.HandleKey(key)
}

func (in *DropdownInput) ensureIcon(renderer *sdl.Renderer, svg []byte) (int32, int32) {
	if len(svg) == 0 {
		svg = []byte(constants.DropdownIconSVG)
	}
	if bytes.Equal(in.icon.src, svg) && (in.icon.texture != nil || in.icon.failed) {
		return in.icon.w, in.icon.h
	}

	in.icon.destroy()
	in.icon.src = svg

	texture, w, h, err := internal.IconTexture(renderer, svg, constants.DefaultIconSize)
	if err != nil {
		in.logger.Error("Failed to rasterize toggle icon", "error", err)
		in.icon.failed = true
		return 0, 0
	}

	in.icon.texture, in.icon.w, in.icon.h = texture, w, h
	return w, h
}

// layout resolves styles and geometry for the next frame at (x, y).
// available is the width a fluid input stretches to.
func (in *DropdownInput) layout(renderer *sdl.Renderer, sheet *style.Sheet, x, y, available int32) {
	p := in.render()
	view := in.widget.View()
	overrides := p.overrides()

	control := sheet.Resolve(classnames.Join(p.rootClassNames(view.Expanded), style.ClassActiveOption)).Apply(overrides)
	list := sheet.Resolve(p.listClassNames()).Apply(overrides).Apply(p.DropDownStyle)
	padding := p.paddingOverrides().Resolve(control)

	width := control.Width
	if p.Fluid || width <= 0 || width > available {
		width = available
	}

	iconW, iconH := in.ensureIcon(renderer, p.ToggleIcon)

	var lineHeight int32
	if internal.Fonts.Regular != nil {
		lineHeight = int32(internal.Fonts.Regular.Height())
	}

	heights := make([]int32, len(view.Options))
	options := make([]style.Computed, len(view.Options))
	for i, o := range view.Options {
		heights[i] = contentHeight(o.Content, lineHeight)
		options[i] = sheet.Resolve(p.optionClassNames(o.Selected))
	}

	geo := in.widget.Layout(x, y, layout.Metrics{
		Width:         width,
		LineHeight:    max(lineHeight, contentHeight(view.Display, lineHeight)),
		IconW:         iconW,
		IconH:         iconH,
		Padding:       padding,
		BorderWidth:   control.BorderWidth,
		ListMaxHeight: list.MaxHeight,
		Fluid:         p.Fluid,
		OptionHeights: heights,
	})

	in.frame = frame{
		props:   p,
		view:    view,
		geo:     geo,
		control: control,
		list:    list,
		options: options,
		padding: padding,
	}
}

// height is the control's height as of the last layout.
func (in *DropdownInput) height() int32 {
	if in.frame.geo.Control == nil {
		return 0
	}
	return in.frame.geo.Control.Rect.H
}

func toSDLRect(r layout.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func (in *DropdownInput) drawControl(renderer *sdl.Renderer, cache *internal.TextCache, focused bool) {
	f := &in.frame
	c := f.control
	rect := toSDLRect(f.geo.Control.Rect)

	internal.FillRoundedRect(renderer, rect, c.BorderRadius, c.Background)
	internal.DrawBorder(renderer, rect, c)

	if f.view.Expanded && c.DrawsBorder() {
		// The list's top edge stands in for the control's bottom border.
		internal.SetDrawColor(renderer, c.Background)
		_ = renderer.FillRect(&sdl.Rect{
			X: rect.X + c.BorderWidth + c.BorderRadius,
			Y: rect.Y + rect.H - c.BorderWidth,
			W: rect.W - 2*(c.BorderWidth+c.BorderRadius),
			H: c.BorderWidth,
		})
	}

	if focused && !f.view.Expanded {
		ring := c.BorderColor
		ring.A /= 2
		internal.StrokeRoundedRect(renderer, &sdl.Rect{X: rect.X - 2, Y: rect.Y - 2, W: rect.W + 4, H: rect.H + 4}, c.BorderRadius+2, ring)
	}

	drawContent(renderer, cache, f.view.Display, *toSDLRect(f.geo.Value.Rect), c.TextColor)

	if in.icon.texture != nil {
		box := f.geo.Icon.Rect
		_ = renderer.Copy(in.icon.texture, nil, &sdl.Rect{
			X: box.X + (box.W-in.icon.w)/2,
			Y: box.Y + (box.H-in.icon.h)/2,
			W: in.icon.w,
			H: in.icon.h,
		})
	}
}

func (in *DropdownInput) drawList(renderer *sdl.Renderer, cache *internal.TextCache) {
	f := &in.frame
	if f.geo.List == nil {
		return
	}

	l := f.list
	rect := toSDLRect(f.geo.List.Rect)
	internal.FillRoundedRect(renderer, rect, l.BorderRadius, l.Background)

	clip := toSDLRect(f.geo.ListContent())
	_ = renderer.SetClipRect(clip)

	for i, el := range f.geo.Options {
		s := f.options[i]
		optRect := toSDLRect(el.Rect)
		if s.Background != l.Background {
			internal.SetDrawColor(renderer, s.Background)
			_ = renderer.FillRect(optRect)
		}

		content := el.Rect.Inset(f.padding.Top, f.padding.Right, f.padding.Bottom, f.padding.Left)
		drawContent(renderer, cache, f.view.Options[i].Content, *toSDLRect(content), s.TextColor)
	}

	if f.geo.Viewport.Scrollable() {
		drawScrollbar(renderer, clip, f.geo.Viewport, l.BorderColor)
	}

	_ = renderer.SetClipRect(nil)

	internal.DrawBorder(renderer, rect, l)
	if f.props.Fluid && l.DrawsBorder() {
		internal.SetDrawColor(renderer, l.Background)
		_ = renderer.FillRect(&sdl.Rect{X: rect.X + l.BorderWidth, Y: rect.Y, W: rect.W - 2*l.BorderWidth, H: l.BorderWidth})
	}
}

func drawScrollbar(renderer *sdl.Renderer, track *sdl.Rect, v controller.Viewport, color style.Color) {
	const thumbWidth = 4

	thumbH := max(track.H*v.ClientHeight/v.ScrollHeight, thumbWidth*2)
	thumbY := track.Y + (track.H-thumbH)*v.ScrollTop/max(v.MaxScrollTop(), 1)

	internal.FillRoundedRect(renderer, &sdl.Rect{
		X: track.X + track.W - thumbWidth - 2,
		Y: thumbY,
		W: thumbWidth,
		H: thumbH,
	}, thumbWidth/2, color)
}
