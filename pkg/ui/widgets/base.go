// Package widgets provides the terminal-backed surfaces for click-to-edit
// controls: a pressable flat-text label and one input widget per value
// variant, plus a column container for composing forms.
package widgets

import (
	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
)

// Base provides common widget state. Embed in widget structs to get
// default implementations. The zero value is visible and unfocused.
type Base struct {
	bounds  runtime.Rect
	focused bool
	hidden  bool
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	b.bounds = bounds
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// CanFocus returns false by default.
func (b *Base) CanFocus() bool {
	return false
}

// Focus marks the widget as focused.
func (b *Base) Focus() {
	b.focused = true
}

// Blur marks the widget as unfocused.
func (b *Base) Blur() {
	b.focused = false
}

// IsFocused returns whether the widget is focused.
func (b *Base) IsFocused() bool {
	return b.focused
}

// SetVisible shows or hides the widget.
func (b *Base) SetVisible(visible bool) {
	b.hidden = !visible
}

// Visible returns whether the widget is visible.
func (b *Base) Visible() bool {
	return !b.hidden
}

// inputBase extends Base for input-surface widgets: focus participation,
// the focus-lost and edit callbacks the control subscribes to, and the
// focus-request path back into the scope.
type inputBase struct {
	Base
	scope *runtime.FocusScope
	self  runtime.Focusable

	onFocusLost func()
	onEdit      func()
}

// attach wires the widget into its focus scope. Called once from each
// input widget constructor.
func (b *inputBase) attach(scope *runtime.FocusScope, self runtime.Focusable) {
	b.scope = scope
	b.self = self
	if scope != nil {
		scope.Register(self)
	}
}

// CanFocus allows focus only while visible; a hidden input surface can
// never hold focus.
func (b *inputBase) CanFocus() bool {
	return b.Visible()
}

// Blur delivers the focus-lost notification after clearing focus state.
func (b *inputBase) Blur() {
	wasFocused := b.focused
	b.Base.Blur()
	if wasFocused && b.onFocusLost != nil {
		b.onFocusLost()
	}
}

// RequestFocus asks the scope to focus this widget.
func (b *inputBase) RequestFocus() {
	if b.scope != nil && b.self != nil {
		b.scope.SetFocus(b.self)
	}
}

// OnFocusLost registers the focus-loss callback.
func (b *inputBase) OnFocusLost(fn func()) {
	b.onFocusLost = fn
}

// OnEdit registers the change callback.
func (b *inputBase) OnEdit(fn func()) {
	b.onEdit = fn
}

func (b *inputBase) notifyEdit() {
	if b.onEdit != nil {
		b.onEdit()
	}
}

// inputWidget is what every variant input surface satisfies: a runtime
// widget that is focusable and implements the control's surface
// contract.
type inputWidget interface {
	runtime.Focusable
	clickedit.InputSurface
}
