package runtime

import (
	"testing"

	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

// hitStub is a stub widget that claims its layout bounds in the hit
// grid, like real widgets do during Render.
type hitStub struct {
	stubWidget
	bounds Rect
}

func (w *hitStub) Layout(bounds Rect) { w.bounds = bounds }

func (w *hitStub) Render(ctx RenderContext) {
	ctx.Hits.Add(w, w.bounds)
}

func press(x, y int) MouseMsg {
	return MouseMsg{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress}
}

func TestScreenPressFocusesTarget(t *testing.T) {
	s := NewScreen(20, 5)
	a := &hitStub{stubWidget: stubWidget{name: "a", focusable: true}}
	a.Layout(Rect{X: 0, Y: 0, Width: 10, Height: 1})
	s.FocusScope().Register(a)
	s.SetRoot(a)
	s.Render()

	s.HandleMessage(press(3, 0))

	if !a.IsFocused() {
		t.Error("widget not focused after press on its cells")
	}
}

func TestScreenPressElsewhereClearsFocus(t *testing.T) {
	s := NewScreen(20, 5)
	a := &hitStub{stubWidget: stubWidget{name: "a", focusable: true}}
	a.Layout(Rect{X: 0, Y: 0, Width: 10, Height: 1})
	s.FocusScope().Register(a)
	s.SetRoot(a)
	s.Render()

	s.HandleMessage(press(3, 0))
	s.HandleMessage(press(15, 4))

	if a.IsFocused() {
		t.Error("widget still focused after press on empty cells")
	}
}

func TestScreenPressBlursBeforeDelivery(t *testing.T) {
	// The outgoing widget's Blur must run before the press reaches its
	// target, so an in-progress edit commits before the click acts.
	var log []string
	s := NewScreen(20, 5)

	a := &hitStub{stubWidget: stubWidget{name: "a", focusable: true, log: &log}}
	a.Layout(Rect{X: 0, Y: 0, Width: 5, Height: 1})
	b := &hitStub{stubWidget: stubWidget{name: "b", focusable: true, log: &log}}
	b.handle = func(Message) HandleResult {
		log = append(log, "deliver b")
		return Handled()
	}
	b.Layout(Rect{X: 10, Y: 0, Width: 5, Height: 1})

	s.FocusScope().Register(a)
	s.FocusScope().Register(b)
	root := &hitStub{}
	root.handle = func(Message) HandleResult { return Unhandled() }
	s.SetRoot(root)
	s.Render()
	a.Render(RenderContext{Hits: s.hits})
	b.Render(RenderContext{Hits: s.hits})

	s.HandleMessage(press(1, 0))
	log = log[:0]
	s.HandleMessage(press(11, 0))

	want := []string{"blur a", "focus b", "deliver b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestScreenKeyGoesToFocusedWidget(t *testing.T) {
	s := NewScreen(20, 5)
	var got []Message
	a := &hitStub{stubWidget: stubWidget{name: "a", focusable: true}}
	a.handle = func(msg Message) HandleResult {
		got = append(got, msg)
		return Handled()
	}
	a.Layout(Rect{X: 0, Y: 0, Width: 5, Height: 1})
	s.FocusScope().Register(a)
	s.SetRoot(a)
	s.Render()

	s.HandleMessage(press(0, 0))
	got = got[:0]
	s.HandleMessage(KeyMsg{Key: terminal.KeyRune, Rune: 'x'})

	if len(got) != 1 {
		t.Fatalf("focused widget saw %d key messages, want 1", len(got))
	}
}

func TestScreenTabCyclesFocus(t *testing.T) {
	s := NewScreen(20, 5)
	a := &hitStub{stubWidget: stubWidget{name: "a", focusable: true}}
	b := &hitStub{stubWidget: stubWidget{name: "b", focusable: true}}
	s.FocusScope().Register(a)
	s.FocusScope().Register(b)
	s.SetRoot(a)

	s.HandleMessage(KeyMsg{Key: terminal.KeyTab})
	if s.FocusScope().Current() != Focusable(a) {
		t.Fatalf("after Tab: focused %v, want a", s.FocusScope().Current())
	}
	s.HandleMessage(KeyMsg{Key: terminal.KeyTab})
	if s.FocusScope().Current() != Focusable(b) {
		t.Fatalf("after second Tab: focused %v, want b", s.FocusScope().Current())
	}
	s.HandleMessage(KeyMsg{Key: terminal.KeyTab, Shift: true})
	if s.FocusScope().Current() != Focusable(a) {
		t.Fatalf("after Shift+Tab: focused %v, want a", s.FocusScope().Current())
	}
}

func TestScreenWindowBlurClearsFocus(t *testing.T) {
	s := NewScreen(20, 5)
	a := &hitStub{stubWidget: stubWidget{name: "a", focusable: true}}
	a.Layout(Rect{X: 0, Y: 0, Width: 5, Height: 1})
	s.FocusScope().Register(a)
	s.SetRoot(a)
	s.Render()
	s.HandleMessage(press(0, 0))

	s.HandleMessage(WindowFocusMsg{Focused: false})
	if a.IsFocused() {
		t.Error("widget still focused after window blur")
	}

	// Regaining window focus does not restore widget focus.
	s.HandleMessage(WindowFocusMsg{Focused: true})
	if got := s.FocusScope().Current(); got != nil {
		t.Errorf("Current() = %v, want nil after window refocus", got)
	}
}

func TestScreenReleaseFocusCommand(t *testing.T) {
	s := NewScreen(20, 5)
	a := &hitStub{stubWidget: stubWidget{name: "a", focusable: true}}
	a.handle = func(msg Message) HandleResult {
		if key, ok := msg.(KeyMsg); ok && key.Key == terminal.KeyEnter {
			return WithCommand(ReleaseFocus{})
		}
		return Unhandled()
	}
	a.Layout(Rect{X: 0, Y: 0, Width: 5, Height: 1})
	s.FocusScope().Register(a)
	s.SetRoot(a)
	s.Render()
	s.HandleMessage(press(0, 0))

	result := s.HandleMessage(KeyMsg{Key: terminal.KeyEnter})

	if a.IsFocused() {
		t.Error("widget still focused after ReleaseFocus command")
	}
	if len(result.Commands) != 0 {
		t.Errorf("ReleaseFocus leaked to caller: %v", result.Commands)
	}
}

func TestScreenResizeRelaysOut(t *testing.T) {
	s := NewScreen(20, 5)
	a := &hitStub{stubWidget: stubWidget{name: "a"}}
	s.SetRoot(a)

	s.Resize(40, 10)

	if a.bounds.Width != 40 || a.bounds.Height != 10 {
		t.Errorf("root bounds = %dx%d, want 40x10", a.bounds.Width, a.bounds.Height)
	}
	w, h := s.Size()
	if w != 40 || h != 10 {
		t.Errorf("Size() = %dx%d, want 40x10", w, h)
	}
}
