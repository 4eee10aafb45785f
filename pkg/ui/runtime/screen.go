package runtime

import "github.com/odvcencio/clickedit/pkg/ui/terminal"

// Screen manages the widget tree, focus, and message routing.
//
// Mouse presses drive the focus model: a press on a focusable widget
// moves focus there, a press anywhere else clears focus. The outgoing
// widget's Blur runs before the press is delivered to its target, so a
// control being edited commits before the click lands elsewhere.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	focus         *FocusScope
	hits          *HitGrid
}

// NewScreen creates a screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
		focus:  NewFocusScope(),
		hits:   NewHitGrid(w, h),
	}
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays-out the tree.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	s.hits.Resize(w, h)
	if s.root != nil {
		s.root.Layout(Rect{0, 0, w, h})
	}
}

// SetRoot sets the root widget and lays it out.
func (s *Screen) SetRoot(root Widget) {
	s.root = root
	if root != nil {
		root.Layout(Rect{0, 0, s.width, s.height})
	}
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// FocusScope returns the screen's focus scope.
func (s *Screen) FocusScope() *FocusScope {
	return s.focus
}

// UseFocusScope replaces the screen's focus scope. Widgets built before
// the screen existed register in a caller-owned scope; handing that
// scope to the screen makes them reachable by focus routing.
func (s *Screen) UseFocusScope(scope *FocusScope) {
	if scope != nil {
		s.focus = scope
	}
}

// Render draws the widget tree to the buffer and rebuilds the hit grid.
func (s *Screen) Render() {
	s.buffer.Clear()
	s.hits.Clear()
	if s.root == nil {
		return
	}
	s.root.Render(RenderContext{
		Buffer: s.buffer,
		Hits:   s.hits,
		Bounds: Rect{0, 0, s.width, s.height},
	})
}

// HandleMessage routes a message to the appropriate widget and applies
// any focus commands. Remaining commands are returned to the caller.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	var result HandleResult

	switch m := msg.(type) {
	case MouseMsg:
		target := s.hits.WidgetAt(m.X, m.Y)
		if m.Action == terminal.MousePress {
			s.routeFocus(target)
		}
		if target != nil {
			result = target.HandleMessage(msg)
		}

	case KeyMsg:
		if cur := s.focus.Current(); cur != nil {
			result = cur.HandleMessage(msg)
		}
		if !result.Handled {
			if m.Key == terminal.KeyTab {
				if m.Shift {
					s.focus.FocusPrev()
				} else {
					s.focus.FocusNext()
				}
				result.Handled = true
			} else if s.root != nil {
				fallback := s.root.HandleMessage(msg)
				fallback.Commands = append(result.Commands, fallback.Commands...)
				result = fallback
			}
		}

	case WindowFocusMsg:
		// Host window blur behaves like clicking outside every widget.
		if !m.Focused {
			s.focus.ClearFocus()
		}
		result = Handled()

	default:
		if s.root != nil {
			result = s.root.HandleMessage(msg)
		}
	}

	result.Commands = s.applyCommands(result.Commands)
	return result
}

// routeFocus implements the press-to-focus policy.
func (s *Screen) routeFocus(target Widget) {
	if f, ok := target.(Focusable); ok && f.CanFocus() {
		s.focus.SetFocus(f)
		return
	}
	s.focus.ClearFocus()
}

// applyCommands consumes focus-related commands and returns the rest.
func (s *Screen) applyCommands(cmds []Command) []Command {
	var rest []Command
	for _, cmd := range cmds {
		switch cmd.(type) {
		case FocusNext:
			s.focus.FocusNext()
		case FocusPrev:
			s.focus.FocusPrev()
		case ReleaseFocus:
			s.focus.ClearFocus()
		default:
			rest = append(rest, cmd)
		}
	}
	return rest
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer *Buffer
	Hits   *HitGrid
	Bounds Rect // widget's allocated bounds
}

// Sub creates a context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{Buffer: ctx.Buffer, Hits: ctx.Hits, Bounds: bounds}
}
