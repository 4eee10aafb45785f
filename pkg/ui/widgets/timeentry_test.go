package widgets

import (
	"testing"

	"github.com/odvcencio/clickedit/pkg/clickedit"
	"github.com/odvcencio/clickedit/pkg/ui/runtime"
	"github.com/odvcencio/clickedit/pkg/ui/terminal"
)

func newTestTimeEntry(tod clickedit.TimeOfDay) *TimeEntry {
	te := NewTimeEntry(runtime.NewFocusScope())
	te.SetRawValue(clickedit.TimeValue(tod))
	te.Focus()
	return te
}

func TestTimeEntryArrowsStepActiveSegment(t *testing.T) {
	te := newTestTimeEntry(clickedit.TimeOfDay{Hour: 1})

	te.HandleMessage(keyMsg(terminal.KeyUp))
	if got := te.RawValue().Time(); got.Hour != 2 {
		t.Errorf("after up: hour = %d, want 2", got.Hour)
	}

	te.HandleMessage(keyMsg(terminal.KeyRight))
	te.HandleMessage(keyMsg(terminal.KeyUp))
	if got := te.RawValue().Time(); got.Minute != 1 {
		t.Errorf("after right, up: minute = %d, want 1", got.Minute)
	}
	if got := te.RawValue().Time(); got.Hour != 2 {
		t.Errorf("stepping minutes changed hour to %d", got.Hour)
	}
}

func TestTimeEntryStepWraps(t *testing.T) {
	te := newTestTimeEntry(clickedit.TimeOfDay{Hour: 23})
	te.HandleMessage(keyMsg(terminal.KeyUp))
	if got := te.RawValue().Time(); got.Hour != 0 {
		t.Errorf("hour after wrap up: %d, want 0", got.Hour)
	}
	te.HandleMessage(keyMsg(terminal.KeyDown))
	if got := te.RawValue().Time(); got.Hour != 23 {
		t.Errorf("hour after wrap down: %d, want 23", got.Hour)
	}

	te.HandleMessage(keyMsg(terminal.KeyRight))
	te.HandleMessage(keyMsg(terminal.KeyDown))
	if got := te.RawValue().Time(); got.Minute != 59 {
		t.Errorf("minute after wrap down: %d, want 59", got.Minute)
	}
}

func TestTimeEntrySegmentNavigationStopsAtEnds(t *testing.T) {
	te := newTestTimeEntry(clickedit.TimeOfDay{})

	te.HandleMessage(keyMsg(terminal.KeyLeft)) // already on hours
	te.HandleMessage(keyMsg(terminal.KeyUp))
	if got := te.RawValue().Time(); got.Hour != 1 {
		t.Errorf("hour = %d, want 1; left at the first segment must not move", got.Hour)
	}

	te.HandleMessage(keyMsg(terminal.KeyRight))
	te.HandleMessage(keyMsg(terminal.KeyRight))
	te.HandleMessage(keyMsg(terminal.KeyRight)) // already on seconds
	te.HandleMessage(keyMsg(terminal.KeyUp))
	if got := te.RawValue().Time(); got.Second != 1 {
		t.Errorf("second = %d, want 1; right at the last segment must not move", got.Second)
	}
}

func TestTimeEntryDigitsShiftIn(t *testing.T) {
	te := newTestTimeEntry(clickedit.TimeOfDay{})

	typeString(te, "14")
	if got := te.RawValue().Time(); got.Hour != 14 {
		t.Errorf("hour = %d, want 14", got.Hour)
	}

	// A third digit shifts the oldest one out.
	typeString(te, "2")
	if got := te.RawValue().Time(); got.Hour != 42 {
		t.Errorf("hour = %d, want 42; typed digits are validated at commit, not here", got.Hour)
	}

	te.HandleMessage(keyMsg(terminal.KeyBackspace))
	if got := te.RawValue().Time(); got.Hour != 4 {
		t.Errorf("hour after backspace = %d, want 4", got.Hour)
	}
}

func TestTimeEntrySetRawValueResetsToHours(t *testing.T) {
	te := newTestTimeEntry(clickedit.TimeOfDay{})
	te.HandleMessage(keyMsg(terminal.KeyRight))
	te.SetRawValue(clickedit.TimeValue(clickedit.TimeOfDay{Hour: 5}))

	te.HandleMessage(keyMsg(terminal.KeyUp))
	if got := te.RawValue().Time(); got.Hour != 6 {
		t.Errorf("hour = %d, want 6; SetRawValue should reset the active segment", got.Hour)
	}
}

func TestTimeEntryEnterReleasesFocus(t *testing.T) {
	te := newTestTimeEntry(clickedit.TimeOfDay{})
	if !releasesFocus(te.HandleMessage(keyMsg(terminal.KeyEnter))) {
		t.Error("Enter did not request focus release")
	}
}
