// Package column converts between character offsets and visual columns.
//
// A tab advances to the next multiple of the tab size. Every other rune is
// one column wide, unless wide rune support is enabled, in which case East
// Asian wide runes take two columns. Inputs outside a line are clamped.
package column

import "github.com/mattn/go-runewidth"

// DefaultTabSize is the tab size used when none is configured.
const DefaultTabSize = 4

// Model holds the rendering parameters that affect visual columns.
// The zero value uses DefaultTabSize and narrow runes.
type Model struct {
	// TabSize is the distance between tab stops.
	TabSize int

	// WideRunes enables East Asian width for non-tab runes.
	WideRunes bool
}

// New creates a column model with the given tab size.
func New(tabSize int) Model {
	return Model{TabSize: tabSize}
}

func (m Model) tabSize() int {
	if m.TabSize <= 0 {
		return DefaultTabSize
	}
	return m.TabSize
}

// Advance returns the column reached after rendering r at col.
func (m Model) Advance(col int, r rune) int {
	if r == '\t' {
		ts := m.tabSize()
		return col + ts - col%ts
	}
	if m.WideRunes {
		if w := runewidth.RuneWidth(r); w > 1 {
			return col + w
		}
	}
	return col + 1
}

// LineWidth returns the visual width of line.
func (m Model) LineWidth(line string) int {
	col := 0
	for _, r := range line {
		col = m.Advance(col, r)
	}
	return col
}

// ToColumn returns the visual column of the given character offset.
// Offsets past the end of the line resolve to the line width.
func (m Model) ToColumn(line string, character int) int {
	col, i := 0, 0
	for _, r := range line {
		if i >= character {
			break
		}
		col = m.Advance(col, r)
		i++
	}
	return col
}

// ToCharacter returns the character offset at the given visual column.
// A column inside a multi-column rune resolves to that rune. Columns past
// the end of the line resolve to the line length.
func (m Model) ToCharacter(line string, column int) int {
	if column <= 0 {
		return 0
	}
	col, i := 0, 0
	for _, r := range line {
		next := m.Advance(col, r)
		if next > column {
			return i
		}
		col = next
		i++
	}
	return i
}
