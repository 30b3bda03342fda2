package buffer

import (
	"unicode"
	"unicode/utf8"
)

// Document is the read-only line geometry the motion engine consumes.
// Line indices passed to LineText are always within [0, LineCount()).
// A document always has at least one (possibly empty) line.
type Document interface {
	LineCount() int
	LineText(line int) string
}

// LineLen returns the number of runes in the given line.
// Out of range lines have length 0.
func LineLen(doc Document, line int) int {
	if line < 0 || line >= doc.LineCount() {
		return 0
	}
	return utf8.RuneCountInString(doc.LineText(line))
}

// LastLine returns the index of the last line of the document.
func LastLine(doc Document) int {
	n := doc.LineCount()
	if n <= 0 {
		return 0
	}
	return n - 1
}

// ClampLine clamps a line index to [0, LastLine(doc)].
func ClampLine(doc Document, line int) int {
	if line < 0 {
		return 0
	}
	if last := LastLine(doc); line > last {
		return last
	}
	return line
}

// Start returns the first position of the document.
func Start() Position {
	return Position{}
}

// End returns the position past the last character of the document.
func End(doc Document) Position {
	last := LastLine(doc)
	return Position{Line: last, Character: LineLen(doc, last)}
}

// LineEnd returns the position past the last character of a line,
// before its line break.
func LineEnd(doc Document, line int) Position {
	line = ClampLine(doc, line)
	return Position{Line: line, Character: LineLen(doc, line)}
}

// LineEndIncludingBreak returns the start of the line following line, or
// the end of the document when line is the last line.
func LineEndIncludingBreak(doc Document, line int) Position {
	line = ClampLine(doc, line)
	if line < LastLine(doc) {
		return Position{Line: line + 1}
	}
	return End(doc)
}

// Clamp returns the nearest valid position of the document.
func Clamp(doc Document, p Position) Position {
	if p.Line < 0 {
		return Start()
	}
	if p.Line > LastLine(doc) {
		return End(doc)
	}
	if p.Character < 0 {
		p.Character = 0
	}
	if n := LineLen(doc, p.Line); p.Character > n {
		p.Character = n
	}
	return p
}

// Next returns the position one character after p. The line break of a
// line counts as one character. The second result is false when p is
// already at the end of the document.
func Next(doc Document, p Position) (Position, bool) {
	p = Clamp(doc, p)
	if p.Character < LineLen(doc, p.Line) {
		return Position{Line: p.Line, Character: p.Character + 1}, true
	}
	if p.Line < LastLine(doc) {
		return Position{Line: p.Line + 1}, true
	}
	return p, false
}

// Prev returns the position one character before p. The second result is
// false when p is already at the start of the document.
func Prev(doc Document, p Position) (Position, bool) {
	p = Clamp(doc, p)
	if p.Character > 0 {
		return Position{Line: p.Line, Character: p.Character - 1}, true
	}
	if p.Line > 0 {
		return LineEnd(doc, p.Line-1), true
	}
	return p, false
}

// NextOrSelf is Next without the boundary flag.
func NextOrSelf(doc Document, p Position) Position {
	n, _ := Next(doc, p)
	return n
}

// PrevOrSelf is Prev without the boundary flag.
func PrevOrSelf(doc Document, p Position) Position {
	n, _ := Prev(doc, p)
	return n
}

// Offset moves p by delta characters, counting each line break as one
// character. The result is clamped to the document.
func Offset(doc Document, p Position, delta int) Position {
	p = Clamp(doc, p)
	last := LastLine(doc)

	for delta > 0 {
		remaining := LineLen(doc, p.Line) - p.Character
		if delta <= remaining {
			p.Character += delta
			return p
		}
		if p.Line == last {
			p.Character += remaining
			return p
		}
		delta -= remaining + 1
		p = Position{Line: p.Line + 1}
	}

	for delta < 0 {
		if -delta <= p.Character {
			p.Character += delta
			return p
		}
		if p.Line == 0 {
			p.Character = 0
			return p
		}
		delta += p.Character + 1
		p = LineEnd(doc, p.Line-1)
	}

	return p
}

// LastCharacter returns the position of the last character of the
// document, line breaks included. For an empty document it returns the
// start position.
func LastCharacter(doc Document) Position {
	return PrevOrSelf(doc, End(doc))
}

// FirstNonBlank returns the character offset of the first non-whitespace
// rune of the line, or the line length when the line is blank.
func FirstNonBlank(doc Document, line int) int {
	i := 0
	for _, r := range doc.LineText(ClampLine(doc, line)) {
		if !unicode.IsSpace(r) {
			return i
		}
		i++
	}
	return i
}

// IsEmptyLine returns true if the line has no characters.
func IsEmptyLine(doc Document, line int) bool {
	return LineLen(doc, line) == 0
}
