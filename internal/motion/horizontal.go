package motion

import (
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
)

// Horizontally moves every selection opts.Repetitions characters left or
// right. Line breaks count as one character and the result is clamped to
// the document.
//
// With AvoidEOL set, a cursor never rests past the last character of a
// non-empty line: it is pushed one more character in the direction of
// travel, or back when the document ends there.
func Horizontally(env Env, selections []cursor.Selection, opts Options) []cursor.Selection {
	b := env.behavior()
	doc := env.Doc
	delta := opts.repetitions() * opts.Direction.Sign()
	limit := b.Limit(doc)

	out := make([]cursor.Selection, len(selections))
	for i, sel := range selections {
		p := buffer.Offset(doc, b.Cursor(doc, sel), delta)
		if p.After(limit) {
			p = limit
		}
		if opts.AvoidEOL {
			p = avoidLineEnd(doc, p, opts.Direction, limit)
		}
		out[i] = b.Place(doc, sel, p, opts.Shift)
	}
	return out
}

// avoidLineEnd moves p off the end of a non-empty line. Empty lines are
// left alone since their end is their only position.
func avoidLineEnd(doc buffer.Document, p buffer.Position, dir Direction, limit buffer.Position) buffer.Position {
	n := buffer.LineLen(doc, p.Line)
	if n == 0 || p.Character != n {
		return p
	}

	if dir == Forward {
		if next, ok := buffer.Next(doc, p); ok && !next.After(limit) {
			return next
		}
	}
	return buffer.Position{Line: p.Line, Character: n - 1}
}
