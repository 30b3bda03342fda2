package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrRangeInvalid       = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is an in-memory, line-indexed text buffer implementing Document.
// Line breaks are stored implicitly between lines; a trailing line break
// yields an empty last line. All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	revisionID RevisionID
	lineEnding LineEnding
	lastEdit   Position
	edited     bool
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = splitLines(s)
	return b
}

// NewBufferFromLines creates a buffer from already split lines.
func NewBufferFromLines(lines []string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	if len(lines) > 0 {
		b.lines = append([]string(nil), lines...)
	}
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read everything first so CRLF pairs are never split across reads.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := string(data)
	opts = append([]Option{WithLineEnding(DetectLineEnding(text))}, opts...)
	return NewBufferFromString(text, opts...), nil
}

// splitLines normalizes every line ending style and splits on it.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// Text returns the full buffer content joined with the buffer's line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, b.lineEnding.Sequence())
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a line without its line break.
// Out of range lines return the empty string.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.lines...)
}

// Insert inserts text at pos and returns the position right after the
// inserted text.
func (b *Buffer) Insert(pos Position, text string) (Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.validLocked(pos) {
		return pos, ErrPositionOutOfRange
	}

	line := b.lines[pos.Line]
	cut := byteIndex(line, pos.Character)
	inserted := splitLines(text)

	head, tail := line[:cut], line[cut:]
	end := Position{Line: pos.Line + len(inserted) - 1}
	if len(inserted) == 1 {
		end.Character = pos.Character + utf8.RuneCountInString(inserted[0])
	} else {
		end.Character = utf8.RuneCountInString(inserted[len(inserted)-1])
	}

	inserted[0] = head + inserted[0]
	inserted[len(inserted)-1] += tail

	lines := make([]string, 0, len(b.lines)+len(inserted)-1)
	lines = append(lines, b.lines[:pos.Line]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[pos.Line+1:]...)
	b.lines = lines

	b.recordEditLocked(end)
	return end, nil
}

// Delete removes the text between start (inclusive) and end (exclusive).
func (b *Buffer) Delete(start, end Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.validLocked(start) || !b.validLocked(end) {
		return ErrPositionOutOfRange
	}
	if end.Before(start) {
		return ErrRangeInvalid
	}

	first := b.lines[start.Line]
	last := b.lines[end.Line]
	joined := first[:byteIndex(first, start.Character)] + last[byteIndex(last, end.Character):]

	lines := make([]string, 0, len(b.lines)-(end.Line-start.Line))
	lines = append(lines, b.lines[:start.Line]...)
	lines = append(lines, joined)
	lines = append(lines, b.lines[end.Line+1:]...)
	b.lines = lines

	b.recordEditLocked(start)
	return nil
}

// LastEdit returns the position of the most recent modification.
// The second result is false if the buffer was never modified.
func (b *Buffer) LastEdit() (Position, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastEdit, b.edited
}

// RevisionID returns the current revision identifier.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

func (b *Buffer) validLocked(p Position) bool {
	if p.Line < 0 || p.Line >= len(b.lines) || p.Character < 0 {
		return false
	}
	return p.Character <= utf8.RuneCountInString(b.lines[p.Line])
}

func (b *Buffer) recordEditLocked(at Position) {
	b.revisionID = NewRevisionID()
	b.lastEdit = at
	b.edited = true
}

// byteIndex converts a rune offset within s to a byte index.
func byteIndex(s string, character int) int {
	i := 0
	for idx := range s {
		if i == character {
			return idx
		}
		i++
	}
	return len(s)
}
