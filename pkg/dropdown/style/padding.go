package style

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// SymmetricPadding creates a Padding from horizontal and vertical values.
func SymmetricPadding(horizontal, vertical int32) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}

// PaddingOverrides are the caller's padding settings. Padding applies to both
// axes; the axis-specific values win over it.
type PaddingOverrides struct {
	Padding           *int32
	PaddingHorizontal *int32
	PaddingVertical   *int32
}

// Resolve applies the overrides to the computed style's padding.
func (o PaddingOverrides) Resolve(c Computed) Padding {
	horizontal, vertical := c.PaddingHorizontal, c.PaddingVertical

	if o.Padding != nil {
		horizontal = *o.Padding
		vertical = *o.Padding
	}
	if o.PaddingHorizontal != nil {
		horizontal = *o.PaddingHorizontal
	}
	if o.PaddingVertical != nil {
		vertical = *o.PaddingVertical
	}

	return SymmetricPadding(horizontal, vertical)
}
