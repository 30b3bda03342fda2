package cursor

import (
	"fmt"

	"github.com/dshills/stride/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Selection represents a range of selected text.
// Anchor is where the selection started; Active is the cursor end.
// When Anchor == Active, this represents a caret with no extent.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position // Fixed end
	Active Position // Cursor end
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Position) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// NewCaret creates a selection representing a caret at p.
func NewCaret(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// IsReversed returns true if the active end comes before the anchor.
func (s Selection) IsReversed() bool {
	return s.Active.Before(s.Anchor)
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	return buffer.MinPosition(s.Anchor, s.Active)
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	return buffer.MaxPosition(s.Anchor, s.Active)
}

// ActiveAtStart returns true if the active end is the lower bound.
// This holds for reversed and for empty selections.
func (s Selection) ActiveAtStart() bool {
	return s.Active == s.Start()
}

// IsSingleLine returns true if both ends are on the same line.
func (s Selection) IsSingleLine() bool {
	return s.Anchor.Line == s.Active.Line
}

// Flip returns a selection with anchor and active swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Active, Active: s.Anchor}
}

// Contains returns true if p is within [Start, End).
func (s Selection) Contains(p Position) bool {
	return !p.Before(s.Start()) && p.Before(s.End())
}

// IsEntireLines returns true if the selection covers whole lines of doc:
// it starts at a line start and ends at a later line start, or at the end
// of a non-empty last line.
func (s Selection) IsEntireLines(doc buffer.Document) bool {
	start, end := s.Start(), s.End()
	if start.Character != 0 || s.IsEmpty() {
		return false
	}
	if end.Character == 0 {
		return end.Line > start.Line
	}
	return end == buffer.End(doc)
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret%s", s.Active)
	}
	dir := "→"
	if s.IsReversed() {
		dir = "←"
	}
	return fmt.Sprintf("Selection%s%s%s", s.Anchor, dir, s.Active)
}

// Equals returns true if two selections have the same anchor and active.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Active == other.Active
}

// SameRange returns true if two selections cover the same range,
// regardless of direction.
func (s Selection) SameRange(other Selection) bool {
	return s.Start() == other.Start() && s.End() == other.End()
}

// Clamp returns a selection with both ends clamped to doc.
func (s Selection) Clamp(doc buffer.Document) Selection {
	return Selection{Anchor: buffer.Clamp(doc, s.Anchor), Active: buffer.Clamp(doc, s.Active)}
}
