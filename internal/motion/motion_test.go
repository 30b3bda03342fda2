package motion

import (
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/column"
	"github.com/dshills/stride/internal/engine/cursor"
)

type fakeView struct {
	start, end int
}

func (v fakeView) VisibleLineRange() (int, int) { return v.start, v.end }

type fakeMenu struct {
	opened int
}

func (m *fakeMenu) OpenGoto() { m.opened++ }

func newEnv(text string, b cursor.Behavior) Env {
	return Env{
		Doc:      buffer.NewBufferFromString(text),
		Behavior: b,
		Columns:  column.New(4),
	}
}

func pos(line, character int) buffer.Position {
	return buffer.Position{Line: line, Character: character}
}

func caret(line, character int) cursor.Selection {
	return cursor.NewCaret(pos(line, character))
}

func sel(al, ac, bl, bc int) cursor.Selection {
	return cursor.NewSelection(pos(al, ac), pos(bl, bc))
}

func one(s cursor.Selection) []cursor.Selection {
	return []cursor.Selection{s}
}
