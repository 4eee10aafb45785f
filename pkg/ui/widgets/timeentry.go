package widgets

import (
	"fmt"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/backend"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

// timeSegment indexes the hour, minute, and second fields of a
// TimeEntry.
type timeSegment int

const (
	segHour timeSegment = iota
	segMinute
	segSecond
)

// limit returns the wrap-around bound for arrow stepping.
func (s timeSegment) limit() int {
	if s == segHour {
		return 24
	}
	return 60
}

// TimeEntry is the time-of-day input surface: an HH:MM:SS field edited
// one segment at a time. Arrows step and wrap within the active
// segment; typed digits shift in and are validated at commit time.
type TimeEntry struct {
	inputBase

	fields [3]int
	active timeSegment
	style  backend.Style
	focus  backend.Style
}

// NewTimeEntry creates a time entry at 00:00:00.
func NewTimeEntry(scope *runtime.FocusScope) *TimeEntry {
	t := &TimeEntry{
		style: backend.DefaultStyle().Underline(true),
		focus: backend.DefaultStyle().Underline(true).Bold(true),
	}
	t.attach(scope, t)
	return t
}

// RawValue returns the current time of day.
func (t *TimeEntry) RawValue() clickedit.Value {
	return clickedit.TimeValue(clickedit.TimeOfDay{
		Hour:   t.fields[segHour],
		Minute: t.fields[segMinute],
		Second: t.fields[segSecond],
	})
}

// SetRawValue seeds the fields and resets the active segment.
func (t *TimeEntry) SetRawValue(v clickedit.Value) {
	tod := v.Time()
	t.fields = [3]int{tod.Hour, tod.Minute, tod.Second}
	t.active = segHour
}

// Measure returns the fixed HH:MM:SS footprint.
func (t *TimeEntry) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: 8, Height: 1})
}

// Render draws the segments, highlighting the active one when focused.
func (t *TimeEntry) Render(ctx runtime.RenderContext) {
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

	x := bounds.X
	for seg := segHour; seg <= segSecond; seg++ {
		segStyle := style
		if t.IsFocused() && seg == t.active {
			segStyle = style.Reverse(true)
		}
		ctx.Buffer.SetString(x, bounds.Y, fmt.Sprintf("%02d", t.fields[seg]), segStyle)
		x += 2
		if seg != segSecond {
			ctx.Buffer.Set(x, bounds.Y, ':', style)
			x++
		}
	}

	ctx.Hits.Add(t, bounds)
}

// HandleMessage processes segment navigation and editing.
func (t *TimeEntry) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !t.IsFocused() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}

	switch key.Key {
	case terminal.KeyLeft:
		if t.active > segHour {
			t.active--
		}
		return runtime.Handled()

	case terminal.KeyRight:
		if t.active < segSecond {
			t.active++
		}
		return runtime.Handled()

	case terminal.KeyUp:
		limit := t.active.limit()
		t.fields[t.active] = (t.fields[t.active] + 1) % limit
		t.notifyEdit()
		return runtime.Handled()

	case terminal.KeyDown:
		limit := t.active.limit()
		t.fields[t.active] = (t.fields[t.active] + limit - 1) % limit
		t.notifyEdit()
		return runtime.Handled()

	case terminal.KeyRune:
		if key.Rune >= '0' && key.Rune <= '9' {
			t.fields[t.active] = (t.fields[t.active]*10 + int(key.Rune-'0')) % 100
			t.notifyEdit()
		}
		return runtime.Handled()

	case terminal.KeyBackspace:
		t.fields[t.active] /= 10
		t.notifyEdit()
		return runtime.Handled()

	case terminal.KeyEnter, terminal.KeyEscape:
		return runtime.WithCommand(runtime.ReleaseFocus{})
	}

	return runtime.Unhandled()
}

var _ inputWidget = (*TimeEntry)(nil)
