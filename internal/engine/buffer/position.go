package buffer

import (
	"fmt"
	"sync/atomic"
)

// Position represents a line and character position.
// Both Line and Character are 0-indexed. Character counts runes from
// the start of the line.
type Position struct {
	Line      int
	Character int
}

// NewPosition creates a position, clamping negative values to 0.
func NewPosition(line, character int) Position {
	if line < 0 {
		line = 0
	}
	if character < 0 {
		character = 0
	}
	return Position{Line: line, Character: character}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Character < other.Character {
		return -1
	}
	if p.Character > other.Character {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Character == 0
}

// MinPosition returns the earlier of two positions.
func MinPosition(a, b Position) Position {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxPosition returns the later of two positions.
func MaxPosition(a, b Position) Position {
	if b.After(a) {
		return b
	}
	return a
}

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
