package widgets

import (
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

// Shared test helpers for driving widgets with synthetic input.

func keyMsg(k terminal.Key) runtime.KeyMsg {
	return runtime.KeyMsg{Key: k}
}

func runeMsg(r rune) runtime.KeyMsg {
	return runtime.KeyMsg{Key: terminal.KeyRune, Rune: r}
}

func pressMsg(x, y int) runtime.MouseMsg {
	return runtime.MouseMsg{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress}
}

// messageHandler covers both widgets and the screen.
type messageHandler interface {
	HandleMessage(msg runtime.Message) runtime.HandleResult
}

func typeString(h messageHandler, s string) {
	for _, r := range s {
		h.HandleMessage(runeMsg(r))
	}
}

// releasesFocus reports whether a handle result carries the
// focus-release command input widgets emit on Enter and Escape.
func releasesFocus(result runtime.HandleResult) bool {
	for _, cmd := range result.Commands {
		if _, ok := cmd.(runtime.ReleaseFocus); ok {
			return true
		}
	}
	return false
}
