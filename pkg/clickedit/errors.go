package clickedit

import "errors"

var (
	// ErrTypeMismatch reports a value whose kind does not match the
	// control's variant.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrValueOutOfRange reports an integer outside the configured
	// min/max bounds.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidChoice reports a choice that is not a member of the
	// configured option set.
	ErrInvalidChoice = errors.New("invalid choice")
)
