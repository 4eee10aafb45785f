package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/backend"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

// Selector is the choice input surface: it cycles through the
// variant's option set. It reads options through the shared variant so
// options added or removed on the control are picked up immediately.
type Selector struct {
	inputBase

	variant *clickedit.ChoiceVariant
	index   int
	style   backend.Style
	focus   backend.Style
}

// NewSelector creates a selector for a choice variant.
func NewSelector(scope *runtime.FocusScope, variant *clickedit.ChoiceVariant) *Selector {
	s := &Selector{
		variant: variant,
		style:   backend.DefaultStyle().Underline(true),
		focus:   backend.DefaultStyle().Underline(true).Reverse(true),
	}
	s.attach(scope, s)
	return s
}

// RawValue returns the currently selected option.
func (s *Selector) RawValue() clickedit.Value {
	opts := s.variant.Options
	if len(opts) == 0 {
		return clickedit.ChoiceValue("")
	}
	return clickedit.ChoiceValue(opts[s.clampedIndex()])
}

// SetRawValue moves the selection to the given option. An option no
// longer in the set leaves the selection where it was.
func (s *Selector) SetRawValue(v clickedit.Value) {
	if idx := s.variant.IndexOf(v.Choice()); idx >= 0 {
		s.index = idx
	}
}

// Measure returns a single line wide enough for the longest option and
// the cycle arrows.
func (s *Selector) Measure(constraints runtime.Constraints) runtime.Size {
	widest := 0
	for _, opt := range s.variant.Options {
		widest = max(widest, runewidth.StringWidth(opt))
	}
	return constraints.Constrain(runtime.Size{Width: widest + 4, Height: 1})
}

// Render draws the selection between cycle arrows.
func (s *Selector) Render(ctx runtime.RenderContext) {
	if !s.Visible() {
		return
	}
	bounds := s.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	style := s.style
	if s.IsFocused() {
		style = s.focus
	}
	ctx.Buffer.Fill(bounds, ' ', style)
	text := "◂ " + s.RawValue().Choice() + " ▸"
	ctx.Buffer.SetString(bounds.X, bounds.Y, runewidth.Truncate(text, bounds.Width, ""), style)
	ctx.Hits.Add(s, bounds)
}

// HandleMessage processes option cycling.
func (s *Selector) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !s.IsFocused() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}

	switch key.Key {
	case terminal.KeyRight, terminal.KeyDown:
		s.cycle(1)
		return runtime.Handled()

	case terminal.KeyLeft, terminal.KeyUp:
		s.cycle(-1)
		return runtime.Handled()

	case terminal.KeyEnter, terminal.KeyEscape:
		return runtime.WithCommand(runtime.ReleaseFocus{})
	}

	return runtime.Unhandled()
}

func (s *Selector) cycle(dir int) {
	n := len(s.variant.Options)
	if n == 0 {
		return
	}
	s.index = ((s.clampedIndex()+dir)%n + n) % n
	s.notifyEdit()
}

// clampedIndex guards against the option set shrinking under us.
func (s *Selector) clampedIndex() int {
	if s.index >= len(s.variant.Options) {
		return 0
	}
	return s.index
}

var _ inputWidget = (*Selector)(nil)
