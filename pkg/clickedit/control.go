package clickedit

import (
	"fmt"
	"log/slog"
	"slices"
)

// State is the control's visibility state. Exactly one of the two
// surfaces is visible in either state.
type State int

const (
	// StateDisplay shows the flat-text label.
	StateDisplay State = iota
	// StateEditing shows the variant's input surface.
	StateEditing
)

// String returns the state name.
func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "display"
}

// Options carries optional construction settings shared by all
// variants.
type Options struct {
	// Logger receives debug records for commits and silent reverts.
	// Nil disables logging.
	Logger *slog.Logger
}

// Control is a click-to-edit control. It owns one display surface and
// one input surface, keeps the committed value between toggles, and
// runs the Display/Editing state machine.
//
// A control is bound to the host UI's event-dispatch goroutine; its
// methods are not safe for concurrent use.
type Control struct {
	variant Variant
	value   Value
	label   string
	unit    string
	state   State

	display DisplaySurface
	input   InputSurface
	logger  *slog.Logger

	onChanged  []func(Value)
	onRejected []func(raw Value, err error)
}

// New creates a control for an explicit variant and initial value.
// Most callers use the typed constructors NewInteger, NewText, NewTime,
// and NewChoice instead.
//
// Construction fails if the initial value does not satisfy the variant;
// a control never exists in an invalid state.
func New(tk Toolkit, variant Variant, initial Value, label string, opts Options) (*Control, error) {
	if tk == nil {
		return nil, fmt.Errorf("clickedit: toolkit is required")
	}
	if variant == nil {
		return nil, fmt.Errorf("clickedit: variant is required")
	}
	if err := variant.Validate(initial); err != nil {
		return nil, fmt.Errorf("initial value: %w", err)
	}

	input, err := tk.NewInputSurface(variant)
	if err != nil {
		return nil, fmt.Errorf("create input surface: %w", err)
	}

	c := &Control{
		variant: variant,
		value:   initial,
		label:   label,
		state:   StateDisplay,
		display: tk.NewDisplaySurface(),
		input:   input,
		logger:  opts.Logger,
	}

	c.display.OnClick(c.beginEdit)
	c.input.OnFocusLost(c.commit)
	c.input.OnEdit(c.previewEdit)

	c.input.SetRawValue(c.value)
	c.input.SetVisible(false)
	c.display.SetVisible(true)
	c.refreshDisplay()
	return c, nil
}

// SetUnit sets the suffix appended to the formatted value.
func (c *Control) SetUnit(unit string) {
	c.unit = unit
	c.refreshDisplay()
}

// Value returns the committed value. An in-progress, unvalidated edit
// is never observable here.
func (c *Control) Value() Value {
	return c.value
}

// SetValue validates v against the control's variant and commits it.
// On failure the control is left untouched and the error wraps
// ErrTypeMismatch, ErrValueOutOfRange, or ErrInvalidChoice. While
// editing, the input surface is resynced so both surfaces agree.
func (c *Control) SetValue(v Value) error {
	if err := c.variant.Validate(v); err != nil {
		return err
	}
	c.value = v
	c.refreshDisplay()
	if c.state == StateEditing {
		c.input.SetRawValue(v)
	}
	c.fireChanged(v)
	return nil
}

// Label returns the static prefix shown before the formatted value.
func (c *Control) Label() string {
	return c.label
}

// Unit returns the suffix shown after the formatted value.
func (c *Control) Unit() string {
	return c.unit
}

// Variant returns the control's fixed variant.
func (c *Control) Variant() Variant {
	return c.variant
}

// Kind returns the control's fixed value kind.
func (c *Control) Kind() Kind {
	return c.variant.Kind()
}

// State returns the current visibility state.
func (c *Control) State() State {
	return c.state
}

// OnValueChanged registers a listener fired exactly once per successful
// commit, via SetValue or a focus-loss commit, with the new value.
func (c *Control) OnValueChanged(fn func(Value)) {
	c.onChanged = append(c.onChanged, fn)
}

// OnCommitRejected registers a diagnostic listener fired when a
// focus-loss commit is silently reverted, with the rejected raw value
// and the validation error. Rejections never surface as errors to the
// host application.
func (c *Control) OnCommitRejected(fn func(raw Value, err error)) {
	c.onRejected = append(c.onRejected, fn)
}

// AddOption appends an option to a Choice control's option set.
func (c *Control) AddOption(option string) error {
	cv, err := c.choiceVariant()
	if err != nil {
		return err
	}
	if !slices.Contains(cv.Options, option) {
		cv.Options = append(cv.Options, option)
	}
	return nil
}

// RemoveOption removes an option from a Choice control's option set.
// The committed selection cannot be removed; the control would be left
// holding an invalid value.
func (c *Control) RemoveOption(option string) error {
	cv, err := c.choiceVariant()
	if err != nil {
		return err
	}
	idx := cv.IndexOf(option)
	if idx < 0 {
		return fmt.Errorf("%w: %q is not among the configured options", ErrInvalidChoice, option)
	}
	if option == c.value.Choice() {
		return fmt.Errorf("%w: %q is the committed selection", ErrInvalidChoice, option)
	}
	cv.Options = slices.Delete(cv.Options, idx, idx+1)
	return nil
}

// OptionIndex returns the committed selection's position in the option
// set, or -1 if the control is not a Choice control.
func (c *Control) OptionIndex() int {
	cv, err := c.choiceVariant()
	if err != nil {
		return -1
	}
	return cv.IndexOf(c.value.Choice())
}

// SetOptionIndex commits the option at the given position.
func (c *Control) SetOptionIndex(i int) error {
	cv, err := c.choiceVariant()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(cv.Options) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidChoice, i)
	}
	return c.SetValue(ChoiceValue(cv.Options[i]))
}

// SetTimeLayout changes a Time control's display layout and reformats
// the display text. The committed value is unchanged.
func (c *Control) SetTimeLayout(layout string) error {
	tv, ok := c.variant.(*TimeVariant)
	if !ok {
		return fmt.Errorf("%w: %s control has no time layout", ErrTypeMismatch, c.Kind())
	}
	tv.Layout = layout
	c.refreshDisplay()
	return nil
}

// beginEdit runs the Display -> Editing transition.
func (c *Control) beginEdit() {
	if c.state == StateEditing {
		return
	}
	c.input.SetRawValue(c.value)
	c.input.SetVisible(true)
	c.display.SetVisible(false)
	c.state = StateEditing
	c.input.RequestFocus()
}

// commit runs the Editing -> Display transition. The edit is read,
// validated, and either committed or silently discarded; the control
// always ends up back in Display with consistent surfaces.
func (c *Control) commit() {
	if c.state != StateEditing {
		return
	}

	raw := c.input.RawValue()
	if err := c.variant.Validate(raw); err != nil {
		// Discard the edit, keep the prior value.
		c.input.SetRawValue(c.value)
		c.refreshDisplay()
		if c.logger != nil {
			c.logger.Debug("edit reverted",
				slog.String("label", c.label),
				slog.String("raw", raw.String()),
				slog.String("reason", err.Error()))
		}
		for _, fn := range c.onRejected {
			fn(raw, err)
		}
	} else {
		c.value = raw
		c.refreshDisplay()
		c.fireChanged(raw)
	}

	c.input.SetVisible(false)
	c.display.SetVisible(true)
	c.state = StateDisplay
}

// previewEdit refreshes the display text from the in-progress edit so
// the label is current the instant the surfaces toggle back. The
// committed value does not change here.
func (c *Control) previewEdit() {
	if c.state != StateEditing {
		return
	}
	raw := c.input.RawValue()
	if c.variant.Validate(raw) == nil {
		c.display.SetText(c.displayText(raw))
	}
}

func (c *Control) refreshDisplay() {
	c.display.SetText(c.displayText(c.value))
}

func (c *Control) displayText(v Value) string {
	return c.label + c.variant.Format(v) + c.unit
}

func (c *Control) fireChanged(v Value) {
	if c.logger != nil {
		c.logger.Debug("value committed",
			slog.String("label", c.label),
			slog.String("value", v.String()))
	}
	for _, fn := range c.onChanged {
		fn(v)
	}
}

func (c *Control) choiceVariant() (*ChoiceVariant, error) {
	cv, ok := c.variant.(*ChoiceVariant)
	if !ok {
		return nil, fmt.Errorf("%w: %s control has no option set", ErrTypeMismatch, c.Kind())
	}
	return cv, nil
}
