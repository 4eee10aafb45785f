package runtime

// FocusScope tracks which focusable widget currently holds keyboard
// focus. Blur is always delivered to the outgoing widget before Focus
// is delivered to the incoming one; click-to-edit commits ride on that
// ordering.
type FocusScope struct {
	widgets []Focusable
	current int // index of focused widget, -1 if none
}

// NewFocusScope creates an empty focus scope. Nothing is focused until
// a widget is clicked or focus is moved explicitly.
func NewFocusScope() *FocusScope {
	return &FocusScope{current: -1}
}

// Register adds a focusable widget to the scope.
func (f *FocusScope) Register(w Focusable) {
	for _, existing := range f.widgets {
		if existing == w {
			return
		}
	}
	f.widgets = append(f.widgets, w)
}

// Unregister removes a widget from the scope, blurring it if focused.
func (f *FocusScope) Unregister(w Focusable) {
	for i, existing := range f.widgets {
		if existing != w {
			continue
		}
		if f.current == i {
			w.Blur()
			f.current = -1
		} else if f.current > i {
			f.current--
		}
		f.widgets = append(f.widgets[:i], f.widgets[i+1:]...)
		return
	}
}

// Current returns the currently focused widget, or nil.
func (f *FocusScope) Current() Focusable {
	if f.current >= 0 && f.current < len(f.widgets) {
		return f.widgets[f.current]
	}
	return nil
}

// SetFocus focuses a specific registered widget.
// Returns true if focus changed.
func (f *FocusScope) SetFocus(w Focusable) bool {
	for i, existing := range f.widgets {
		if existing == w && w.CanFocus() {
			return f.focusIndex(i)
		}
	}
	return false
}

// FocusNext moves focus to the next focusable widget, wrapping around.
// Returns true if focus changed.
func (f *FocusScope) FocusNext() bool {
	return f.advance(1)
}

// FocusPrev moves focus to the previous focusable widget, wrapping
// around. Returns true if focus changed.
func (f *FocusScope) FocusPrev() bool {
	return f.advance(-1)
}

// ClearFocus removes focus from the current widget, blurring it.
func (f *FocusScope) ClearFocus() {
	if f.current >= 0 && f.current < len(f.widgets) {
		f.widgets[f.current].Blur()
	}
	f.current = -1
}

// Count returns the number of registered widgets.
func (f *FocusScope) Count() int {
	return len(f.widgets)
}

func (f *FocusScope) advance(dir int) bool {
	n := len(f.widgets)
	if n == 0 {
		return false
	}
	start := f.current
	if start < 0 && dir < 0 {
		start = n
	}
	for i := 1; i <= n; i++ {
		idx := ((start+dir*i)%n + n) % n
		if f.widgets[idx].CanFocus() {
			return f.focusIndex(idx)
		}
	}
	return false
}

func (f *FocusScope) focusIndex(i int) bool {
	if i == f.current {
		return false
	}
	if f.current >= 0 && f.current < len(f.widgets) {
		f.widgets[f.current].Blur()
	}
	f.current = i
	f.widgets[i].Focus()
	return true
}
