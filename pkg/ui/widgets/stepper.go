package widgets

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/backend"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

// Stepper is the integer input surface. Arrow keys step the value by
// the variant's increment, clamped to its bounds; typed digits replace
// the value freely and are validated at commit time, not here.
type Stepper struct {
	inputBase

	variant *clickedit.IntegerVariant
	text    []rune
	style   backend.Style
	focus   backend.Style
}

// NewStepper creates a stepper for an integer variant.
func NewStepper(scope *runtime.FocusScope, variant *clickedit.IntegerVariant) *Stepper {
	s := &Stepper{
		variant: variant,
		text:    []rune{'0'},
		style:   backend.DefaultStyle().Underline(true),
		focus:   backend.DefaultStyle().Underline(true).Reverse(true),
	}
	s.attach(scope, s)
	return s
}

// RawValue returns the current numeric value. An empty digit buffer
// reads as zero.
func (s *Stepper) RawValue() clickedit.Value {
	n, err := strconv.Atoi(string(s.text))
	if err != nil {
		n = 0
	}
	return clickedit.IntValue(n)
}

// SetRawValue seeds the digit buffer.
func (s *Stepper) SetRawValue(v clickedit.Value) {
	s.text = []rune(strconv.Itoa(v.Int()))
}

// Measure returns a single line wide enough for the digits and the
// step indicator.
func (s *Stepper) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  len(s.text) + 2,
		Height: 1,
	})
}

// Render draws the digits and the step indicator.
func (s *Stepper) Render(ctx runtime.RenderContext) {
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
	ctx.Buffer.SetString(bounds.X, bounds.Y, runewidth.Truncate(string(s.text)+" ↕", bounds.Width, ""), style)
	ctx.Hits.Add(s, bounds)
}

// HandleMessage processes stepping and digit entry.
func (s *Stepper) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !s.IsFocused() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}

	switch key.Key {
	case terminal.KeyUp:
		s.step(s.variant.StepOrDefault())
		return runtime.Handled()

	case terminal.KeyDown:
		s.step(-s.variant.StepOrDefault())
		return runtime.Handled()

	case terminal.KeyBackspace:
		if len(s.text) > 0 {
			s.text = s.text[:len(s.text)-1]
			s.notifyEdit()
		}
		return runtime.Handled()

	case terminal.KeyRune:
		switch {
		case key.Rune >= '0' && key.Rune <= '9':
			s.text = append(s.text, key.Rune)
			s.notifyEdit()
		case key.Rune == '+' || key.Rune == '=':
			s.step(s.variant.StepOrDefault())
		case key.Rune == '-':
			s.step(-s.variant.StepOrDefault())
		}
		return runtime.Handled()

	case terminal.KeyEnter, terminal.KeyEscape:
		return runtime.WithCommand(runtime.ReleaseFocus{})
	}

	return runtime.Unhandled()
}

// step adjusts the value by delta, clamped to the variant's bounds.
func (s *Stepper) step(delta int) {
	n := s.RawValue().Int() + delta
	if s.variant.Min != nil && n < *s.variant.Min {
		n = *s.variant.Min
	}
	if s.variant.Max != nil && n > *s.variant.Max {
		n = *s.variant.Max
	}
	s.text = []rune(strconv.Itoa(n))
	s.notifyEdit()
}

var _ inputWidget = (*Stepper)(nil)
