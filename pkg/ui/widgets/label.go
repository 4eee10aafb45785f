package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/backend"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

// Label is a pressable flat-text label. It is the display surface of a
// click-to-edit control: clicking it begins an edit.
type Label struct {
	Base

	text    string
	style   backend.Style
	onClick func()
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	return &Label{
		text:  text,
		style: backend.DefaultStyle(),
	}
}

// Text returns the current text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the displayed text.
func (l *Label) SetText(text string) {
	l.text = text
}

// SetStyle sets the render style.
func (l *Label) SetStyle(style backend.Style) {
	l.style = style
}

// OnClick registers the activation callback.
func (l *Label) OnClick(fn func()) {
	l.onClick = fn
}

// Measure returns the text width on a single line.
func (l *Label) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(l.text),
		Height: 1,
	})
}

// Render draws the text and registers the pressable area.
func (l *Label) Render(ctx runtime.RenderContext) {
	if !l.Visible() {
		return
	}
	bounds := l.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	ctx.Buffer.Fill(bounds, ' ', l.style)
	ctx.Buffer.SetString(bounds.X, bounds.Y, runewidth.Truncate(l.text, bounds.Width, "…"), l.style)
	ctx.Hits.Add(l, bounds)
}

// HandleMessage fires the click callback on a left-button press.
func (l *Label) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !l.Visible() {
		return runtime.Unhandled()
	}
	m, ok := msg.(runtime.MouseMsg)
	if !ok || m.Action != terminal.MousePress || m.Button != terminal.MouseLeft {
		return runtime.Unhandled()
	}
	if !l.Bounds().Contains(m.X, m.Y) {
		return runtime.Unhandled()
	}
	if l.onClick != nil {
		l.onClick()
	}
	return runtime.Handled()
}

// Ensure Label implements the display surface contract.
var _ clickedit.DisplaySurface = (*Label)(nil)
var _ runtime.Widget = (*Label)(nil)
