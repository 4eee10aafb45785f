package widgets

import (
	"fmt"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
)

// ClickEdit hosts one click-to-edit control in a widget tree. It
// occupies a single row and shows whichever of the control's two
// surfaces is currently visible.
type ClickEdit struct {
	Base

	control *clickedit.Control
	display *Label
	input   inputWidget
}

// NewInteger creates an integer click-to-edit widget.
func NewInteger(scope *runtime.FocusScope, cfg clickedit.IntegerConfig) (*ClickEdit, error) {
	tk := &captureToolkit{scope: scope}
	ctl, err := clickedit.NewInteger(tk, cfg)
	if err != nil {
		return nil, err
	}
	return tk.host(ctl), nil
}

// NewText creates a free-text click-to-edit widget.
func NewText(scope *runtime.FocusScope, cfg clickedit.TextConfig) (*ClickEdit, error) {
	tk := &captureToolkit{scope: scope}
	ctl, err := clickedit.NewText(tk, cfg)
	if err != nil {
		return nil, err
	}
	return tk.host(ctl), nil
}

// NewTime creates a time-of-day click-to-edit widget.
func NewTime(scope *runtime.FocusScope, cfg clickedit.TimeConfig) (*ClickEdit, error) {
	tk := &captureToolkit{scope: scope}
	ctl, err := clickedit.NewTime(tk, cfg)
	if err != nil {
		return nil, err
	}
	return tk.host(ctl), nil
}

// NewChoice creates a choice click-to-edit widget.
func NewChoice(scope *runtime.FocusScope, cfg clickedit.ChoiceConfig) (*ClickEdit, error) {
	tk := &captureToolkit{scope: scope}
	ctl, err := clickedit.NewChoice(tk, cfg)
	if err != nil {
		return nil, err
	}
	return tk.host(ctl), nil
}

// Control returns the hosted control.
func (c *ClickEdit) Control() *clickedit.Control {
	return c.control
}

// Measure returns the larger footprint of the two surfaces so the row
// does not shift when they toggle.
func (c *ClickEdit) Measure(constraints runtime.Constraints) runtime.Size {
	d := c.display.Measure(constraints)
	i := c.input.Measure(constraints)
	return runtime.Size{
		Width:  max(d.Width, i.Width),
		Height: max(d.Height, i.Height),
	}
}

// Layout assigns the same bounds to both surfaces.
func (c *ClickEdit) Layout(bounds runtime.Rect) {
	c.Base.Layout(bounds)
	c.display.Layout(bounds)
	c.input.Layout(bounds)
}

// Render draws whichever surface is visible.
func (c *ClickEdit) Render(ctx runtime.RenderContext) {
	c.display.Render(ctx)
	c.input.Render(ctx)
}

// HandleMessage forwards to the surfaces. Normally the screen routes
// input straight to the surface widgets via the hit grid and focus
// scope; this path covers hosts that bubble messages through the tree.
func (c *ClickEdit) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if result := c.display.HandleMessage(msg); result.Handled {
		return result
	}
	return c.input.HandleMessage(msg)
}

// captureToolkit implements clickedit.Toolkit, keeping hold of the
// surfaces it makes so they can be wrapped into a ClickEdit widget.
type captureToolkit struct {
	scope   *runtime.FocusScope
	display *Label
	input   inputWidget
}

// NewDisplaySurface creates the flat-text label surface.
func (t *captureToolkit) NewDisplaySurface() clickedit.DisplaySurface {
	t.display = NewLabel("")
	return t.display
}

// NewInputSurface creates the widget matching the variant.
func (t *captureToolkit) NewInputSurface(variant clickedit.Variant) (clickedit.InputSurface, error) {
	switch v := variant.(type) {
	case *clickedit.IntegerVariant:
		t.input = NewStepper(t.scope, v)
	case *clickedit.TextVariant:
		t.input = NewTextLine(t.scope)
	case *clickedit.TimeVariant:
		t.input = NewTimeEntry(t.scope)
	case *clickedit.ChoiceVariant:
		t.input = NewSelector(t.scope, v)
	default:
		return nil, fmt.Errorf("no input surface for %s variant", variant.Kind())
	}
	return t.input, nil
}

func (t *captureToolkit) host(ctl *clickedit.Control) *ClickEdit {
	return &ClickEdit{control: ctl, display: t.display, input: t.input}
}

var _ clickedit.Toolkit = (*captureToolkit)(nil)
var _ runtime.Widget = (*ClickEdit)(nil)
