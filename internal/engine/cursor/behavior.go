package cursor

import (
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/column"
)

// Behavior is a selection representation model. It decides where the
// cursor of a selection is and how a selection is rebuilt around a new
// cursor position.
//
// Two behaviors exist. With Caret, an empty selection is a cursor between
// two characters. With Character, a cursor always covers one character
// (a line break counts as a character), so a single cursor is a one-unit
// wide range whose active edge marks the covered character.
type Behavior interface {
	// Name returns "caret" or "character".
	Name() string

	// Cursor returns the position the cursor of sel occupies.
	Cursor(doc buffer.Document, sel Selection) Position

	// DesiredColumn returns the visual column a vertical motion should
	// try to keep for sel.
	DesiredColumn(doc buffer.Document, cols column.Model, sel Selection) int

	// Locate returns the cursor position for a desired column on line.
	// A column past the end of the line clamps to the line's visual end.
	// For Character, unless avoidEOL is set, it lands on the line break
	// when the line is not the last one.
	Locate(doc buffer.Document, cols column.Model, line, col int, avoidEOL bool) Position

	// LineEndCursor returns the cursor position at the end of line.
	LineEndCursor(doc buffer.Document, line int) Position

	// Limit returns the last position a cursor can occupy in doc.
	Limit(doc buffer.Document) Position

	// Place rebuilds sel so that its cursor sits on p, following policy.
	Place(doc buffer.Document, sel Selection, p Position, policy ShiftPolicy) Selection
}

var (
	// Caret is the zero-width cursor model.
	Caret Behavior = caretBehavior{}

	// Character is the one-unit-wide cursor model.
	Character Behavior = characterBehavior{}
)

// ParseBehavior returns the behavior with the given name.
func ParseBehavior(name string) (Behavior, error) {
	switch name {
	case "caret", "":
		return Caret, nil
	case "character":
		return Character, nil
	}
	return Caret, &UnknownNameError{Kind: "selection behavior", Name: name}
}

// IsCharacter returns true if b is the Character behavior.
func IsCharacter(b Behavior) bool {
	_, ok := b.(characterBehavior)
	return ok
}

type caretBehavior struct{}

func (caretBehavior) Name() string { return "caret" }

func (caretBehavior) Cursor(_ buffer.Document, sel Selection) Position {
	return sel.Active
}

func (caretBehavior) DesiredColumn(doc buffer.Document, cols column.Model, sel Selection) int {
	return cols.ToColumn(doc.LineText(sel.Active.Line), sel.Active.Character)
}

func (caretBehavior) Locate(doc buffer.Document, cols column.Model, line, col int, _ bool) Position {
	text := doc.LineText(line)
	if col >= cols.LineWidth(text) {
		return buffer.LineEnd(doc, line)
	}
	return Position{Line: line, Character: cols.ToCharacter(text, col)}
}

func (caretBehavior) LineEndCursor(doc buffer.Document, line int) Position {
	return buffer.LineEnd(doc, line)
}

func (caretBehavior) Limit(doc buffer.Document) Position {
	return buffer.End(doc)
}

func (caretBehavior) Place(_ buffer.Document, sel Selection, p Position, policy ShiftPolicy) Selection {
	return Shift(sel, p, policy)
}

type characterBehavior struct{}

func (characterBehavior) Name() string { return "character" }

// Cursor returns the covered character: the one before the active edge
// when the selection is forward, the one at the active edge otherwise.
func (characterBehavior) Cursor(doc buffer.Document, sel Selection) Position {
	if !sel.IsEmpty() && !sel.IsReversed() {
		return buffer.PrevOrSelf(doc, sel.Active)
	}
	return sel.Active
}

// anchorCharacter returns the character the anchor edge covers.
func (characterBehavior) anchorCharacter(doc buffer.Document, sel Selection) Position {
	if sel.IsReversed() {
		return buffer.PrevOrSelf(doc, sel.Anchor)
	}
	return sel.Anchor
}

// DesiredColumn measures the column right after the covered character.
func (characterBehavior) DesiredColumn(doc buffer.Document, cols column.Model, sel Selection) int {
	start, end := sel.Start(), sel.End()

	// Anchored at a line end: the selection spans the line break above.
	if !sel.IsEmpty() && !sel.IsReversed() && end.Character == 0 && end.Line > start.Line {
		return cols.LineWidth(doc.LineText(end.Line - 1))
	}

	text := doc.LineText(sel.Active.Line)
	if !sel.ActiveAtStart() {
		return cols.ToColumn(text, sel.Active.Character)
	}
	if sel.Active.Character >= buffer.LineLen(doc, sel.Active.Line) {
		return cols.LineWidth(text) + 1
	}
	return cols.ToColumn(text, sel.Active.Character+1)
}

func (characterBehavior) Locate(doc buffer.Document, cols column.Model, line, col int, avoidEOL bool) Position {
	text := doc.LineText(line)
	width := cols.LineWidth(text)
	n := buffer.LineLen(doc, line)

	if width == 0 {
		return Position{Line: line}
	}
	if col > width {
		if !avoidEOL && line < buffer.LastLine(doc) {
			return Position{Line: line, Character: n}
		}
		return Position{Line: line, Character: n - 1}
	}

	ch := cols.ToCharacter(text, col) - 1
	if ch < 0 {
		ch = 0
	}
	return Position{Line: line, Character: ch}
}

func (characterBehavior) LineEndCursor(doc buffer.Document, line int) Position {
	end := buffer.LineEnd(doc, line)
	if end.Character > 0 {
		end.Character--
	}
	return end
}

func (characterBehavior) Limit(doc buffer.Document) Position {
	return buffer.LastCharacter(doc)
}

// Place keeps the covered character of the fixed edge inside the result.
// When the cursor crosses the fixed character, the fixed edge moves one
// character forward and the active edge one character back so that both
// characters stay covered.
func (b characterBehavior) Place(doc buffer.Document, sel Selection, p Position, policy ShiftPolicy) Selection {
	if limit := b.Limit(doc); p.After(limit) {
		p = limit
	}

	if policy == Jump {
		s := Shift(sel, buffer.NextOrSelf(doc, p), Jump)
		s.Anchor = p
		return s
	}

	fixed := b.Cursor(doc, sel)
	if policy == Extend {
		fixed = b.anchorCharacter(doc, sel)
	}

	edge, target := fixed, buffer.NextOrSelf(doc, p)
	if p.Before(fixed) {
		edge, target = buffer.NextOrSelf(doc, fixed), p
	}

	prepared := sel
	if policy == Extend {
		prepared.Anchor = edge
	} else {
		prepared.Active = edge
	}
	return Shift(prepared, target, policy)
}
