package runtime

// Command represents an action/intent emitted by widgets.
// Commands bubble up from widgets through the screen to the app.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a full screen redraw.
type Refresh struct{}

func (Refresh) isCommand() {}

// FocusNext requests focus move to the next focusable widget.
type FocusNext struct{}

func (FocusNext) isCommand() {}

// FocusPrev requests focus move to the previous focusable widget.
type FocusPrev struct{}

func (FocusPrev) isCommand() {}

// ReleaseFocus requests that the currently focused widget be blurred.
// Input surfaces emit this on Enter/Escape so the blur path, and with
// it the commit, is the same as clicking elsewhere.
type ReleaseFocus struct{}

func (ReleaseFocus) isCommand() {}
