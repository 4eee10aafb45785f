package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/backend"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

// TextLine is the free-text input surface: a single editable line with
// cursor movement.
type TextLine struct {
	inputBase

	text      []rune
	cursorPos int
	style     backend.Style
	focus     backend.Style
}

// NewTextLine creates an empty text line.
func NewTextLine(scope *runtime.FocusScope) *TextLine {
	t := &TextLine{
		style: backend.DefaultStyle().Underline(true),
		focus: backend.DefaultStyle().Underline(true).Bold(true),
	}
	t.attach(scope, t)
	return t
}

// RawValue returns the current text.
func (t *TextLine) RawValue() clickedit.Value {
	return clickedit.TextValue(string(t.text))
}

// SetRawValue replaces the text and moves the cursor to the end.
func (t *TextLine) SetRawValue(v clickedit.Value) {
	t.text = []rune(v.Text())
	t.cursorPos = len(t.text)
}

// CursorPos returns the cursor position in runes.
func (t *TextLine) CursorPos() int {
	return t.cursorPos
}

// Measure returns a single line sized to the text plus the cursor cell.
func (t *TextLine) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(string(t.text)) + 1,
		Height: 1,
	})
}

// Render draws the visible portion of the text, scrolled so the cursor
// stays in view, and the cursor cell when focused.
func (t *TextLine) Render(ctx runtime.RenderContext) {
	if !t.Visible() {
		return
	}
	bounds := t.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	style := t.style
	if t.IsFocused() {
		style = t.focus
	}
	ctx.Buffer.Fill(bounds, ' ', style)

	visibleStart := 0
	if t.cursorPos >= bounds.Width {
		visibleStart = t.cursorPos - bounds.Width + 1
	}
	visibleEnd := min(visibleStart+bounds.Width, len(t.text))
	if visibleStart < len(t.text) {
		ctx.Buffer.SetString(bounds.X, bounds.Y, string(t.text[visibleStart:visibleEnd]), style)
	}

	if t.IsFocused() {
		cursorX := bounds.X + t.cursorPos - visibleStart
		if cursorX >= bounds.X && cursorX < bounds.X+bounds.Width {
			ch := ' '
			if t.cursorPos < len(t.text) {
				ch = t.text[t.cursorPos]
			}
			ctx.Buffer.Set(cursorX, bounds.Y, ch, style.Reverse(true))
		}
	}

	ctx.Hits.Add(t, bounds)
}

// HandleMessage processes text editing keys.
func (t *TextLine) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !t.IsFocused() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}

	switch key.Key {
	case terminal.KeyRune:
		t.text = append(t.text[:t.cursorPos], append([]rune{key.Rune}, t.text[t.cursorPos:]...)...)
		t.cursorPos++
		t.notifyEdit()
		return runtime.Handled()

	case terminal.KeyBackspace:
		if t.cursorPos > 0 {
			t.text = append(t.text[:t.cursorPos-1], t.text[t.cursorPos:]...)
			t.cursorPos--
			t.notifyEdit()
		}
		return runtime.Handled()

	case terminal.KeyDelete:
		if t.cursorPos < len(t.text) {
			t.text = append(t.text[:t.cursorPos], t.text[t.cursorPos+1:]...)
			t.notifyEdit()
		}
		return runtime.Handled()

	case terminal.KeyLeft:
		if t.cursorPos > 0 {
			t.cursorPos--
		}
		return runtime.Handled()

	case terminal.KeyRight:
		if t.cursorPos < len(t.text) {
			t.cursorPos++
		}
		return runtime.Handled()

	case terminal.KeyHome:
		t.cursorPos = 0
		return runtime.Handled()

	case terminal.KeyEnd:
		t.cursorPos = len(t.text)
		return runtime.Handled()

	case terminal.KeyEnter, terminal.KeyEscape:
		return runtime.WithCommand(runtime.ReleaseFocus{})
	}

	return runtime.Unhandled()
}

var _ inputWidget = (*TextLine)(nil)
