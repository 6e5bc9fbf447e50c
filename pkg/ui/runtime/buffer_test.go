package runtime

import (
	"testing"

	"github.com/odvcencio/tilemux/pkg/ui/backend"
)

func TestBuffer_NewIsBlankAndClean(t *testing.T) {
	b := NewBuffer(3, 2)
	if got := b.String(); got != "   \n   " {
		t.Errorf("String() = %q", got)
	}
	if b.IsDirty() {
		t.Error("new buffer should not be dirty")
	}
}

func TestBuffer_SetMarksDirtyOnlyOnChange(t *testing.T) {
	b := NewBuffer(4, 4)
	s := backend.DefaultStyle()

	b.Set(1, 1, 'x', s)
	if b.DirtyCount() != 1 {
		t.Fatalf("DirtyCount = %d, want 1", b.DirtyCount())
	}
	b.ClearDirty()
	b.Set(1, 1, 'x', s)
	if b.IsDirty() {
		t.Error("rewriting the same cell should not mark it dirty")
	}
	b.Set(9, 9, 'x', s)
	if b.IsDirty() {
		t.Error("out of bounds writes should be ignored")
	}
}

func TestBuffer_SetStringClips(t *testing.T) {
	b := NewBuffer(10, 1)
	n := b.SetString(2, 0, "abcdef", backend.DefaultStyle(), NewRect(2, 0, 3, 1))
	if n != 3 {
		t.Errorf("wrote %d columns, want 3", n)
	}
	if got := b.String(); got != "  abc     " {
		t.Errorf("String() = %q", got)
	}
}

func TestBuffer_SetStringWideRunes(t *testing.T) {
	b := NewBuffer(5, 1)
	n := b.SetString(0, 0, "日本語", backend.DefaultStyle(), b.Bounds())
	if n != 4 {
		t.Errorf("wrote %d columns, want 4", n)
	}
	if got := b.String(); got != "日本 " {
		t.Errorf("String() = %q", got)
	}
	if !b.Get(1, 0).Continuation() {
		t.Error("right half of a wide rune should be a continuation cell")
	}
}

func TestBuffer_Lines(t *testing.T) {
	b := NewBuffer(3, 3)
	s := backend.DefaultStyle()
	b.DrawVLine(1, 0, 3, s)
	b.DrawHLine(0, 1, 3, s)
	if got := b.String(); got != " │ \n───\n │ " {
		t.Errorf("String() =\n%s", got)
	}
}

func TestBuffer_ResizePreservesContent(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(0, 0, 'a', backend.DefaultStyle())
	b.Set(1, 1, 'b', backend.DefaultStyle())
	b.Resize(3, 1)
	if got := b.String(); got != "a  " {
		t.Errorf("String() = %q", got)
	}
	if b.DirtyCount() != 3 {
		t.Errorf("resize should mark everything dirty, got %d", b.DirtyCount())
	}
}

func TestBuffer_ForEachDirtyCell(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Set(3, 0, 'a', backend.DefaultStyle())
	b.Set(0, 1, 'b', backend.DefaultStyle())

	var got []rune
	b.ForEachDirtyCell(func(x, y int, c Cell) { got = append(got, c.Rune) })
	if string(got) != "ab" {
		t.Errorf("visited %q, want row-major order", string(got))
	}
}
