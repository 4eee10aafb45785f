package clickedit

import (
	"fmt"
	"slices"
	"strconv"
)

// DefaultTimeLayout shows hour, minutes, seconds and an AM/PM marker.
const DefaultTimeLayout = "3:04:05 PM"

// Variant defines how a control represents, validates, and formats its
// value. The set of variants is closed: Integer, Text, Time, Choice.
type Variant interface {
	// Kind returns the value kind this variant accepts.
	Kind() Kind

	// Format renders a value of this variant as display text.
	// Total and deterministic; never fails.
	Format(v Value) string

	// Validate checks a candidate against this variant's rules.
	// Returns nil, or an error matching ErrTypeMismatch,
	// ErrValueOutOfRange, or ErrInvalidChoice.
	Validate(v Value) error

	isVariant()
}

// IntegerVariant accepts integers, optionally bounded.
type IntegerVariant struct {
	Min, Max *int
	Step     int // stepper increment, defaults to 1
}

func (*IntegerVariant) isVariant() {}

// Kind returns KindInteger.
func (*IntegerVariant) Kind() Kind { return KindInteger }

// Format renders the value as decimal digits.
func (iv *IntegerVariant) Format(v Value) string {
	return strconv.Itoa(v.Int())
}

// Validate checks kind and bounds.
func (iv *IntegerVariant) Validate(v Value) error {
	if v.Kind() != KindInteger {
		return fmt.Errorf("%w: got %s, want integer", ErrTypeMismatch, v.Kind())
	}
	n := v.Int()
	if iv.Min != nil && n < *iv.Min {
		return fmt.Errorf("%w: %d below minimum %d", ErrValueOutOfRange, n, *iv.Min)
	}
	if iv.Max != nil && n > *iv.Max {
		return fmt.Errorf("%w: %d above maximum %d", ErrValueOutOfRange, n, *iv.Max)
	}
	return nil
}

// StepOrDefault returns the configured step, or 1.
func (iv *IntegerVariant) StepOrDefault() int {
	if iv.Step > 0 {
		return iv.Step
	}
	return 1
}

// TextVariant accepts any string.
type TextVariant struct{}

func (*TextVariant) isVariant() {}

// Kind returns KindText.
func (*TextVariant) Kind() Kind { return KindText }

// Format returns the string unchanged.
func (*TextVariant) Format(v Value) string {
	return v.Text()
}

// Validate checks kind only; every string is valid text.
func (*TextVariant) Validate(v Value) error {
	if v.Kind() != KindText {
		return fmt.Errorf("%w: got %s, want text", ErrTypeMismatch, v.Kind())
	}
	return nil
}

// TimeVariant accepts a time of day, formatted with a configurable
// time package layout.
type TimeVariant struct {
	Layout string // empty means DefaultTimeLayout
}

func (*TimeVariant) isVariant() {}

// Kind returns KindTime.
func (*TimeVariant) Kind() Kind { return KindTime }

// Format renders the time using the configured layout.
func (tv *TimeVariant) Format(v Value) string {
	return v.Time().Format(tv.LayoutOrDefault())
}

// Validate checks kind and that the fields form a real wall-clock time.
func (tv *TimeVariant) Validate(v Value) error {
	if v.Kind() != KindTime {
		return fmt.Errorf("%w: got %s, want time", ErrTypeMismatch, v.Kind())
	}
	if !v.Time().Valid() {
		return fmt.Errorf("%w: %s is not a valid time of day", ErrValueOutOfRange, v.Time())
	}
	return nil
}

// LayoutOrDefault returns the configured layout, or DefaultTimeLayout.
func (tv *TimeVariant) LayoutOrDefault() string {
	if tv.Layout == "" {
		return DefaultTimeLayout
	}
	return tv.Layout
}

// ChoiceVariant accepts one selection from an ordered option set.
type ChoiceVariant struct {
	Options []string
}

func (*ChoiceVariant) isVariant() {}

// Kind returns KindChoice.
func (*ChoiceVariant) Kind() Kind { return KindChoice }

// Format returns the selected option.
func (*ChoiceVariant) Format(v Value) string {
	return v.Choice()
}

// Validate checks kind and membership in the option set. An empty
// option set rejects every candidate.
func (cv *ChoiceVariant) Validate(v Value) error {
	if v.Kind() != KindChoice {
		return fmt.Errorf("%w: got %s, want choice", ErrTypeMismatch, v.Kind())
	}
	if !slices.Contains(cv.Options, v.Choice()) {
		return fmt.Errorf("%w: %q is not among the configured options", ErrInvalidChoice, v.Choice())
	}
	return nil
}

// IndexOf returns the position of an option, or -1.
func (cv *ChoiceVariant) IndexOf(option string) int {
	return slices.Index(cv.Options, option)
}
