package clickedit

// DisplaySurface is the pressable flat-text label a control shows while
// not being edited.
type DisplaySurface interface {
	// SetText replaces the displayed text.
	SetText(text string)

	// SetVisible shows or hides the surface.
	SetVisible(visible bool)

	// OnClick registers the activation callback.
	OnClick(fn func())
}

// InputSurface is the variant-specific editor a control reveals while
// being edited. One implementation exists per variant (stepper, text
// line, time entry, selector).
type InputSurface interface {
	// RawValue returns the input's current, possibly uncommitted value.
	RawValue() Value

	// SetRawValue seeds the input with a value.
	SetRawValue(v Value)

	// SetVisible shows or hides the surface.
	SetVisible(visible bool)

	// RequestFocus asks the host toolkit to give this surface input
	// focus.
	RequestFocus()

	// OnFocusLost registers the callback fired when the surface loses
	// input focus.
	OnFocusLost(fn func())

	// OnEdit registers the callback fired whenever the user changes
	// the in-progress value.
	OnEdit(fn func())
}

// Toolkit produces surfaces for a control. It is the control's only
// handle on the host UI; no toolkit state is reached through globals.
type Toolkit interface {
	// NewDisplaySurface creates the flat-text display surface.
	NewDisplaySurface() DisplaySurface

	// NewInputSurface creates the input surface matching the variant.
	NewInputSurface(variant Variant) (InputSurface, error)
}
