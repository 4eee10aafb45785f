package widgets

import (
	"testing"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

func newTestTextLine(s string) *TextLine {
	tl := NewTextLine(runtime.NewFocusScope())
	tl.SetRawValue(clickedit.TextValue(s))
	tl.Focus()
	return tl
}

func TestTextLineTyping(t *testing.T) {
	tl := newTestTextLine("")
	typeString(tl, "Blorka")

	if got := tl.RawValue().Text(); got != "Blorka" {
		t.Errorf("RawValue = %q, want %q", got, "Blorka")
	}
	if got := tl.CursorPos(); got != 6 {
		t.Errorf("CursorPos = %d, want 6", got)
	}
}

func TestTextLineSetRawValuePlacesCursorAtEnd(t *testing.T) {
	tl := newTestTextLine("hello")
	if got := tl.CursorPos(); got != 5 {
		t.Errorf("CursorPos = %d, want 5", got)
	}
}

func TestTextLineInsertInMiddle(t *testing.T) {
	tl := newTestTextLine("hllo")
	tl.HandleMessage(keyMsg(terminal.KeyHome))
	tl.HandleMessage(keyMsg(terminal.KeyRight))
	typeString(tl, "e")

	if got := tl.RawValue().Text(); got != "hello" {
		t.Errorf("RawValue = %q, want %q", got, "hello")
	}
}

func TestTextLineBackspaceAndDelete(t *testing.T) {
	tl := newTestTextLine("abc")

	tl.HandleMessage(keyMsg(terminal.KeyBackspace))
	if got := tl.RawValue().Text(); got != "ab" {
		t.Errorf("after backspace: RawValue = %q, want %q", got, "ab")
	}

	tl.HandleMessage(keyMsg(terminal.KeyHome))
	tl.HandleMessage(keyMsg(terminal.KeyDelete))
	if got := tl.RawValue().Text(); got != "b" {
		t.Errorf("after delete at start: RawValue = %q, want %q", got, "b")
	}

	// Backspace at the start is a no-op.
	tl.HandleMessage(keyMsg(terminal.KeyBackspace))
	if got := tl.RawValue().Text(); got != "b" {
		t.Errorf("after backspace at start: RawValue = %q, want %q", got, "b")
	}
}

func TestTextLineCursorMovement(t *testing.T) {
	tl := newTestTextLine("abc")

	tl.HandleMessage(keyMsg(terminal.KeyLeft))
	if got := tl.CursorPos(); got != 2 {
		t.Errorf("after left: CursorPos = %d, want 2", got)
	}
	tl.HandleMessage(keyMsg(terminal.KeyHome))
	if got := tl.CursorPos(); got != 0 {
		t.Errorf("after home: CursorPos = %d, want 0", got)
	}
	tl.HandleMessage(keyMsg(terminal.KeyLeft))
	if got := tl.CursorPos(); got != 0 {
		t.Errorf("left at start: CursorPos = %d, want 0", got)
	}
	tl.HandleMessage(keyMsg(terminal.KeyEnd))
	if got := tl.CursorPos(); got != 3 {
		t.Errorf("after end: CursorPos = %d, want 3", got)
	}
	tl.HandleMessage(keyMsg(terminal.KeyRight))
	if got := tl.CursorPos(); got != 3 {
		t.Errorf("right at end: CursorPos = %d, want 3", got)
	}
}

func TestTextLinePreservesWhitespace(t *testing.T) {
	tl := newTestTextLine("")
	typeString(tl, "  two  words  ")

	if got := tl.RawValue().Text(); got != "  two  words  " {
		t.Errorf("RawValue = %q, want whitespace intact", got)
	}
}

func TestTextLineEnterReleasesFocus(t *testing.T) {
	tl := newTestTextLine("x")
	if !releasesFocus(tl.HandleMessage(keyMsg(terminal.KeyEnter))) {
		t.Error("Enter did not request focus release")
	}
}

func TestTextLineEditNotification(t *testing.T) {
	tl := newTestTextLine("")
	var edits int
	tl.OnEdit(func() { edits++ })

	typeString(tl, "ab")
	tl.HandleMessage(keyMsg(terminal.KeyBackspace))
	tl.HandleMessage(keyMsg(terminal.KeyLeft)) // movement is not an edit

	if edits != 3 {
		t.Errorf("edits = %d, want 3", edits)
	}
}
