package cursor

import "github.com/dshills/stride/internal/engine/buffer"

// SelectionSet holds the selections of one editor.
// Order is preserved as given: the preferred-column cache is indexed by
// position in the set. The first selection is the "primary" selection.
// A set is never empty.
type SelectionSet struct {
	selections []Selection
}

// NewSelectionSet creates a selection set from the given selections.
// An empty input yields a single caret at the document start.
func NewSelectionSet(sels ...Selection) *SelectionSet {
	cs := &SelectionSet{}
	cs.SetAll(sels)
	return cs
}

// Primary returns the primary (first) selection.
func (cs *SelectionSet) Primary() Selection {
	return cs.selections[0]
}

// All returns a copy of all selections.
// The returned slice is safe to modify without affecting the set.
func (cs *SelectionSet) All() []Selection {
	result := make([]Selection, len(cs.selections))
	copy(result, cs.selections)
	return result
}

// Count returns the number of selections.
func (cs *SelectionSet) Count() int {
	return len(cs.selections)
}

// SetAll replaces all selections.
func (cs *SelectionSet) SetAll(sels []Selection) {
	if len(sels) == 0 {
		cs.selections = []Selection{{}}
		return
	}
	cs.selections = make([]Selection, len(sels))
	copy(cs.selections, sels)
}

// Clamp moves every selection inside doc.
func (cs *SelectionSet) Clamp(doc buffer.Document) {
	for i, sel := range cs.selections {
		cs.selections[i] = sel.Clamp(doc)
	}
}

// Equals returns true if two sets hold pairwise equal selections.
func (cs *SelectionSet) Equals(other *SelectionSet) bool {
	if other == nil {
		return false
	}
	return EqualSelections(cs.selections, other.selections)
}

// EqualSelections returns true if a and b have the same length and are
// pairwise equal.
func EqualSelections(a, b []Selection) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
