// Package backend defines the terminal abstraction the widget runtime
// draws against. Implementations exist for tcell (real terminals) and a
// simulation screen (tests), so nothing above this layer needs a TTY.
package backend

import "github.com/odvcencio/clickedit/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init initializes the backend (enters alt screen, raw mode, etc).
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets the cell at (x, y) to the given rune and style.
	// The comb parameter carries combining characters and may be nil.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show synchronizes the internal buffer to the terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// SetCursorPos moves the cursor to (x, y) and makes it visible.
	SetCursorPos(x, y int)

	// PollEvent blocks until an event is available.
	// Returns nil when the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the queue.
	PostEvent(ev terminal.Event) error
}
