// Package clickedit implements a click-to-edit control: a value shown
// as flat text that swaps to a type-appropriate input widget when
// clicked and commits the edit when the input loses focus.
//
// The package is toolkit-agnostic. A control talks to its display and
// input surfaces only through the DisplaySurface and InputSurface
// interfaces, produced by an injected Toolkit; pkg/ui/widgets supplies
// the terminal implementation and tests run against fakes.
package clickedit

import (
	"fmt"
	"time"
)

// Kind identifies the value category a control is fixed to at
// construction.
type Kind int

const (
	KindInteger Kind = iota
	KindText
	KindTime
	KindChoice
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	case KindTime:
		return "time"
	case KindChoice:
		return "choice"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour, Minute, Second int
}

// TimeOfDayFrom extracts the time of day from a time.Time.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Valid reports whether the fields form a real wall-clock time.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 &&
		t.Minute >= 0 && t.Minute <= 59 &&
		t.Second >= 0 && t.Second <= 59
}

// Format renders the time using a standard time package layout.
func (t TimeOfDay) Format(layout string) string {
	return time.Date(0, time.January, 1, t.Hour, t.Minute, t.Second, 0, time.UTC).Format(layout)
}

// String renders the time in 24-hour HH:MM:SS form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Value is a tagged union over the supported value kinds. The zero
// value is the Integer value 0.
type Value struct {
	kind Kind
	n    int
	s    string
	t    TimeOfDay
}

// IntValue wraps an integer.
func IntValue(n int) Value {
	return Value{kind: KindInteger, n: n}
}

// TextValue wraps a string.
func TextValue(s string) Value {
	return Value{kind: KindText, s: s}
}

// TimeValue wraps a time of day.
func TimeValue(t TimeOfDay) Value {
	return Value{kind: KindTime, t: t}
}

// ChoiceValue wraps a selected option.
func ChoiceValue(option string) Value {
	return Value{kind: KindChoice, s: option}
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer payload. Zero for other kinds.
func (v Value) Int() int {
	return v.n
}

// Text returns the text payload. Empty for other kinds.
func (v Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.s
}

// Time returns the time payload. Zero for other kinds.
func (v Value) Time() TimeOfDay {
	return v.t
}

// Choice returns the selected option. Empty for other kinds.
func (v Value) Choice() string {
	if v.kind != KindChoice {
		return ""
	}
	return v.s
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	return v == o
}

// String renders the value for logs and errors.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.n)
	case KindTime:
		return v.t.String()
	default:
		return v.s
	}
}
