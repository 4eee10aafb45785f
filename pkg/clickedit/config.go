package clickedit

import (
	"fmt"
	"log/slog"
)

// IntegerConfig configures an Integer control.
type IntegerConfig struct {
	Initial  int
	Label    string
	Unit     string
	Min, Max *int // nil means unbounded
	Step     int  // stepper increment, defaults to 1
	Logger   *slog.Logger
}

// NewInteger creates a control backed by a numeric stepper.
func NewInteger(tk Toolkit, cfg IntegerConfig) (*Control, error) {
	if cfg.Min != nil && cfg.Max != nil && *cfg.Min > *cfg.Max {
		return nil, fmt.Errorf("%w: minimum %d above maximum %d", ErrValueOutOfRange, *cfg.Min, *cfg.Max)
	}
	variant := &IntegerVariant{Min: cfg.Min, Max: cfg.Max, Step: cfg.Step}
	c, err := New(tk, variant, IntValue(cfg.Initial), cfg.Label, Options{Logger: cfg.Logger})
	if err != nil {
		return nil, err
	}
	c.SetUnit(cfg.Unit)
	return c, nil
}

// TextConfig configures a Text control.
type TextConfig struct {
	Initial string
	Label   string
	Unit    string
	Logger  *slog.Logger
}

// NewText creates a control backed by a single text line.
func NewText(tk Toolkit, cfg TextConfig) (*Control, error) {
	c, err := New(tk, &TextVariant{}, TextValue(cfg.Initial), cfg.Label, Options{Logger: cfg.Logger})
	if err != nil {
		return nil, err
	}
	c.SetUnit(cfg.Unit)
	return c, nil
}

// TimeConfig configures a Time control.
type TimeConfig struct {
	Initial TimeOfDay
	Label   string
	Layout  string // display layout, defaults to DefaultTimeLayout
	Logger  *slog.Logger
}

// NewTime creates a control backed by a time-of-day entry.
func NewTime(tk Toolkit, cfg TimeConfig) (*Control, error) {
	variant := &TimeVariant{Layout: cfg.Layout}
	return New(tk, variant, TimeValue(cfg.Initial), cfg.Label, Options{Logger: cfg.Logger})
}

// ChoiceConfig configures a Choice control.
type ChoiceConfig struct {
	Options []string // ordered, must be non-empty
	Initial string   // must be a member of Options
	Label   string
	Logger  *slog.Logger
}

// NewChoice creates a control backed by an option selector.
// Fails with ErrInvalidChoice if Options is empty or Initial is not a
// member.
func NewChoice(tk Toolkit, cfg ChoiceConfig) (*Control, error) {
	variant := &ChoiceVariant{Options: cfg.Options}
	return New(tk, variant, ChoiceValue(cfg.Initial), cfg.Label, Options{Logger: cfg.Logger})
}
