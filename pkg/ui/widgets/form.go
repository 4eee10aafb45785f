package widgets

import "github.com/odvcencio/clickedit/pkg/ui/runtime"

// Form stacks widgets vertically, one row per child.
type Form struct {
	Base

	children []runtime.Widget
	gap      int
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{}
}

// SetGap sets the number of blank rows between children.
func (f *Form) SetGap(gap int) {
	f.gap = gap
}

// Add appends a child widget.
func (f *Form) Add(w runtime.Widget) {
	f.children = append(f.children, w)
}

// Measure returns the widest child and the summed heights.
func (f *Form) Measure(constraints runtime.Constraints) runtime.Size {
	width, height := 0, 0
	for i, child := range f.children {
		s := child.Measure(runtime.Loose(constraints.MaxWidth, constraints.MaxHeight-height))
		width = max(width, s.Width)
		height += s.Height
		if i < len(f.children)-1 {
			height += f.gap
		}
	}
	return constraints.Constrain(runtime.Size{Width: width, Height: height})
}

// Layout assigns each child a row of its measured height.
func (f *Form) Layout(bounds runtime.Rect) {
	f.Base.Layout(bounds)
	y := bounds.Y
	for _, child := range f.children {
		s := child.Measure(runtime.Loose(bounds.Width, bounds.Y+bounds.Height-y))
		child.Layout(runtime.NewRect(bounds.X, y, bounds.Width, s.Height))
		y += s.Height + f.gap
	}
}

// Render draws all children.
func (f *Form) Render(ctx runtime.RenderContext) {
	if !f.Visible() {
		return
	}
	for _, child := range f.children {
		child.Render(ctx)
	}
}

// HandleMessage forwards to children until one consumes the message.
func (f *Form) HandleMessage(msg runtime.Message) runtime.HandleResult {
	for _, child := range f.children {
		if result := child.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return runtime.Unhandled()
}

var _ runtime.Widget = (*Form)(nil)
