package runtime

import (
	"testing"

	"github.com/odvcencio/clickedit/pkg/ui/backend"
)

func TestBufferSetString(t *testing.T) {
	b := NewBuffer(10, 2)
	b.SetString(2, 0, "hi", backend.DefaultStyle())

	if got := b.Get(2, 0).Rune; got != 'h' {
		t.Errorf("Get(2,0) = %q, want 'h'", got)
	}
	if got := b.Get(3, 0).Rune; got != 'i' {
		t.Errorf("Get(3,0) = %q, want 'i'", got)
	}
	if got := b.Get(4, 0).Rune; got != 0 {
		t.Errorf("Get(4,0) = %q, want untouched zero cell", got)
	}
}

func TestBufferSetStringClipsAtEdge(t *testing.T) {
	b := NewBuffer(5, 1)
	b.SetString(3, 0, "abc", backend.DefaultStyle())

	if got := b.Get(3, 0).Rune; got != 'a' {
		t.Errorf("Get(3,0) = %q, want 'a'", got)
	}
	if got := b.Get(4, 0).Rune; got != 'b' {
		t.Errorf("Get(4,0) = %q, want 'b'", got)
	}
	// 'c' has no room; out-of-bounds reads come back blank.
	if got := b.Get(5, 0).Rune; got != ' ' {
		t.Errorf("Get(5,0) = %q, want blank", got)
	}

	b.SetString(0, 5, "off screen", backend.DefaultStyle())
}

func TestBufferWideRunes(t *testing.T) {
	b := NewBuffer(10, 1)
	b.SetString(0, 0, "日x", backend.DefaultStyle())

	if got := b.Get(0, 0).Rune; got != '日' {
		t.Errorf("Get(0,0) = %q, want wide rune", got)
	}
	if got := b.Get(1, 0).Rune; got != 0 {
		t.Errorf("Get(1,0) = %q, want continuation cell (rune 0)", got)
	}
	if got := b.Get(2, 0).Rune; got != 'x' {
		t.Errorf("Get(2,0) = %q, want 'x' after the wide rune", got)
	}
}

func TestBufferWideRuneDoesNotSplitAtEdge(t *testing.T) {
	b := NewBuffer(3, 1)
	b.SetString(2, 0, "日", backend.DefaultStyle())

	if got := b.Get(2, 0).Rune; got != 0 {
		t.Errorf("Get(2,0) = %q, want no half-drawn wide rune at the edge", got)
	}
}

func TestBufferDirtyTracking(t *testing.T) {
	b := NewBuffer(4, 1)
	if b.IsDirty() {
		t.Fatal("new buffer reports dirty")
	}

	b.Set(0, 0, 'a', backend.DefaultStyle())
	if !b.IsDirty() {
		t.Fatal("buffer not dirty after Set")
	}

	var cells int
	b.ForEachDirtyCell(func(x, y int, cell Cell) {
		cells++
		if x != 0 || y != 0 || cell.Rune != 'a' {
			t.Errorf("dirty cell (%d,%d)=%q, want (0,0)='a'", x, y, cell.Rune)
		}
	})
	if cells != 1 {
		t.Errorf("dirty cells = %d, want 1", cells)
	}

	b.ClearDirty()
	if b.IsDirty() {
		t.Error("buffer still dirty after ClearDirty")
	}

	// Rewriting the same content must not re-dirty the cell.
	b.Set(0, 0, 'a', backend.DefaultStyle())
	if b.IsDirty() {
		t.Error("writing an unchanged cell marked the buffer dirty")
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Set(0, 0, 'a', backend.DefaultStyle())
	b.ClearDirty()

	b.Resize(6, 3)
	w, h := b.Size()
	if w != 6 || h != 3 {
		t.Errorf("Size() = %dx%d, want 6x3", w, h)
	}
	if !b.IsDirty() {
		t.Error("resize did not mark the buffer dirty")
	}
	if got := b.Get(0, 0).Rune; got != 0 {
		t.Errorf("Get(0,0) = %q, want cleared cell after resize", got)
	}

	// Resizing to the same dimensions keeps content.
	b.Set(1, 1, 'z', backend.DefaultStyle())
	b.Resize(6, 3)
	if got := b.Get(1, 1).Rune; got != 'z' {
		t.Errorf("Get(1,1) = %q, want 'z' after no-op resize", got)
	}
}
