package cursor

import (
	"testing"

	"github.com/dshills/stride/internal/engine/buffer"
)

func TestNewSelectionSetEmpty(t *testing.T) {
	cs := NewSelectionSet()

	if cs.Count() != 1 {
		t.Errorf("expected 1 selection, got %d", cs.Count())
	}
	if cs.Primary() != (Selection{}) {
		t.Errorf("expected caret at start, got %s", cs.Primary())
	}
}

func TestSelectionSetKeepsOrder(t *testing.T) {
	a := NewCaret(pos(3, 0))
	b := NewCaret(pos(1, 0))
	cs := NewSelectionSet(a, b)

	if cs.Primary() != a {
		t.Errorf("primary should be the first selection, got %s", cs.Primary())
	}
	if all := cs.All(); len(all) != 2 || all[1] != b {
		t.Errorf("order should be preserved, got %v", all)
	}
}

func TestSelectionSetAllIsCopy(t *testing.T) {
	cs := NewSelectionSet(NewCaret(pos(0, 1)))

	all := cs.All()
	all[0] = NewCaret(pos(9, 9))

	if cs.Primary() != NewCaret(pos(0, 1)) {
		t.Error("modifying All() result should not affect the set")
	}
}

func TestSelectionSetSetAll(t *testing.T) {
	cs := NewSelectionSet(NewCaret(pos(0, 0)))

	input := []Selection{sel(1, 0, 1, 2), NewCaret(pos(2, 2))}
	cs.SetAll(input)
	input[0] = NewCaret(pos(5, 5))
	if cs.Count() != 2 || cs.Primary() != sel(1, 0, 1, 2) {
		t.Errorf("SetAll should copy its input, got %v", cs.All())
	}

	cs.SetAll(nil)
	if cs.Count() != 1 || cs.Primary() != (Selection{}) {
		t.Error("SetAll(nil) should reset to a caret at the start")
	}
}

func TestSelectionSetClamp(t *testing.T) {
	doc := buffer.NewBufferFromString("abc\nde")
	cs := NewSelectionSet(sel(0, 9, 7, 1), NewCaret(pos(1, 1)))

	cs.Clamp(doc)

	want := []Selection{sel(0, 3, 1, 2), NewCaret(pos(1, 1))}
	if !EqualSelections(cs.All(), want) {
		t.Errorf("got %v, want %v", cs.All(), want)
	}
}

func TestSelectionSetEquals(t *testing.T) {
	a := NewSelectionSet(NewCaret(pos(0, 1)), NewCaret(pos(1, 1)))
	b := NewSelectionSet(a.All()...)

	if !a.Equals(b) {
		t.Error("copies should be equal")
	}

	b.SetAll(append(b.All(), NewCaret(pos(2, 0))))
	if a.Equals(b) {
		t.Error("sets with different counts should differ")
	}
	if a.Equals(nil) {
		t.Error("nil set should not be equal")
	}
	if EqualSelections([]Selection{NewCaret(pos(0, 1))}, []Selection{NewCaret(pos(0, 2))}) {
		t.Error("pairwise different selections should differ")
	}
}
