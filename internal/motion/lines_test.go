package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
)

const fiveLines = "l0\nl1\nl2\nl3\nl4"

func TestWholeBuffer(t *testing.T) {
	env := newEnv("abc\ndef", cursor.Caret)

	got := WholeBuffer(env, []cursor.Selection{caret(0, 1), caret(1, 1)}, Options{})
	assert.Equal(t, one(sel(0, 0, 1, 3)), got)
}

func TestLineBelow(t *testing.T) {
	tests := []struct {
		name  string
		sel   cursor.Selection
		count int
		want  cursor.Selection
	}{
		{"caret selects its line", caret(1, 1), 0, sel(1, 0, 2, 0)},
		{"count spans further lines", caret(1, 1), 3, sel(1, 0, 4, 0)},
		{"whole line moves to next", sel(1, 0, 2, 0), 1, sel(2, 0, 3, 0)},
		{"reversed whole line reselects", sel(2, 0, 1, 0), 1, sel(1, 0, 2, 0)},
		{"clamps at last line", caret(3, 0), 5, sel(3, 0, 4, 2)},
		{"last line whole stays", sel(4, 0, 4, 2), 1, sel(4, 0, 4, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(fiveLines, cursor.Caret)
			got := LineBelow(env, one(tt.sel), Options{Count: tt.count})
			assert.Equal(t, one(tt.want), got)
		})
	}
}

func TestLineBelowCharacter(t *testing.T) {
	env := newEnv(fiveLines, cursor.Character)

	got := LineBelow(env, one(sel(1, 1, 1, 2)), Options{Count: 3})
	assert.Equal(t, one(sel(1, 0, 4, 0)), got)

	got = LineBelow(env, got, Options{})
	assert.Equal(t, one(sel(4, 0, 4, 2)), got)
}

func TestLineAbove(t *testing.T) {
	tests := []struct {
		name  string
		sel   cursor.Selection
		count int
		want  cursor.Selection
	}{
		{"caret selects its line", caret(2, 1), 0, sel(3, 0, 2, 0)},
		{"count spans further lines", caret(3, 1), 2, sel(4, 0, 2, 0)},
		{"whole line moves to previous", sel(3, 0, 2, 0), 1, sel(2, 0, 1, 0)},
		{"clamps at first line", caret(1, 0), 5, sel(2, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(fiveLines, cursor.Caret)
			got := LineAbove(env, one(tt.sel), Options{Count: tt.count})
			assert.Equal(t, one(tt.want), got)
		})
	}
}

func TestLineBelowExtendGrows(t *testing.T) {
	env := newEnv(fiveLines, cursor.Caret)

	got := LineBelowExtend(env, one(caret(1, 2)), Options{})
	assert.Equal(t, one(sel(1, 0, 2, 0)), got)

	got = LineBelowExtend(env, got, Options{})
	assert.Equal(t, one(sel(1, 0, 3, 0)), got)

	got = LineBelowExtend(env, got, Options{Count: 5})
	assert.Equal(t, one(sel(1, 0, 4, 2)), got)

	got = LineAboveExtend(env, got, Options{})
	assert.Equal(t, one(sel(1, 0, 4, 0)), got, "the fixed end stays at line 1")
}

func TestLineAboveExtendGrows(t *testing.T) {
	env := newEnv(fiveLines, cursor.Caret)

	got := LineAboveExtend(env, one(caret(2, 1)), Options{})
	assert.Equal(t, one(sel(3, 0, 2, 0)), got)

	got = LineAboveExtend(env, got, Options{})
	assert.Equal(t, one(sel(3, 0, 1, 0)), got)

	got = LineAboveExtend(env, got, Options{Count: 9})
	assert.Equal(t, one(sel(3, 0, 0, 0)), got)
}

func TestLineExtendFromPartialSelection(t *testing.T) {
	env := newEnv(fiveLines, cursor.Caret)

	got := LineBelowExtend(env, one(sel(1, 1, 2, 1)), Options{})
	assert.Equal(t, one(sel(1, 0, 3, 0)), got)

	got = LineAboveExtend(env, one(sel(3, 1, 2, 1)), Options{Count: 2})
	assert.Equal(t, one(sel(4, 0, 1, 0)), got)
}

func TestLineStartPrimaryOnly(t *testing.T) {
	env := newEnv(fiveLines, cursor.Caret)
	sels := []cursor.Selection{caret(3, 1), caret(4, 2), caret(0, 1)}

	got := LineStart(env, sels, Options{Count: 2})
	assert.Equal(t, []cursor.Selection{caret(1, 0), caret(4, 2), caret(0, 1)}, got)
	assert.Equal(t, caret(3, 1), sels[0], "input is not modified")

	got = LineStart(env, sels, Options{Count: 99})
	assert.Equal(t, caret(4, 0), got[0])
}

func TestLineStartAllSelections(t *testing.T) {
	env := newEnv("  ab\n\tcd\n   ", cursor.Caret)
	sels := []cursor.Selection{caret(0, 3), caret(1, 2), caret(2, 1)}

	got := LineStart(env, sels, Options{})
	assert.Equal(t, []cursor.Selection{caret(0, 0), caret(1, 0), caret(2, 0)}, got)

	got = LineStart(env, sels, Options{SkipBlank: true})
	assert.Equal(t, []cursor.Selection{caret(0, 2), caret(1, 1), caret(2, 3)}, got)
}

func TestLineEnd(t *testing.T) {
	sels := []cursor.Selection{caret(0, 0), caret(2, 0)}

	env := newEnv("abc\n\nxy", cursor.Caret)
	assert.Equal(t, []cursor.Selection{caret(0, 3), caret(2, 2)}, LineEnd(env, sels, Options{}))

	env = newEnv("abc\n\nxy", cursor.Character)
	got := LineEnd(env, []cursor.Selection{sel(0, 0, 0, 1), sel(1, 0, 2, 0)}, Options{})
	assert.Equal(t, []cursor.Selection{sel(0, 2, 0, 3), sel(1, 0, 2, 0)}, got)
}

func TestLineEndExtend(t *testing.T) {
	env := newEnv("abc\ndef", cursor.Character)

	got := LineEnd(env, one(sel(1, 0, 1, 1)), Options{Shift: cursor.Extend, Count: 1})
	assert.Equal(t, one(sel(1, 1, 0, 2)), got)
}

func TestTo(t *testing.T) {
	env := newEnv(fiveLines, cursor.Caret)
	menu := &fakeMenu{}
	env.Menu = menu

	sels := one(caret(2, 1))
	got := To(env, sels, Options{})
	assert.Equal(t, sels, got)
	assert.Equal(t, 1, menu.opened)

	got = To(env, sels, Options{Count: 4})
	assert.Equal(t, one(caret(3, 0)), got)

	env.Menu = nil
	assert.Equal(t, sels, To(env, sels, Options{}))
}

func TestFirstAndLastLine(t *testing.T) {
	env := newEnv("a\nb\n", cursor.Caret)
	sels := []cursor.Selection{caret(0, 1), caret(1, 0)}

	got := LastLine(env, sels, Options{})
	assert.Equal(t, []cursor.Selection{caret(1, 0), caret(1, 0)}, got)

	got = FirstLine(env, one(caret(1, 1)), Options{Shift: cursor.Extend})
	assert.Equal(t, one(sel(1, 1, 0, 0)), got)

	single := newEnv("", cursor.Caret)
	assert.Equal(t, one(caret(0, 0)), LastLine(single, one(caret(0, 0)), Options{}))
}

func TestVisibleLines(t *testing.T) {
	env := newEnv(fiveLines+"\nl5\nl6\nl7", cursor.Caret)
	sels := []cursor.Selection{caret(0, 1), caret(7, 1)}

	assert.Equal(t, sels, FirstVisibleLine(env, sels, Options{}), "no view leaves selections alone")

	env.View = fakeView{start: 2, end: 6}
	assert.Equal(t, caret(2, 0), FirstVisibleLine(env, sels, Options{})[0])
	assert.Equal(t, caret(4, 0), MiddleVisibleLine(env, sels, Options{})[0])
	assert.Equal(t, caret(6, 0), LastVisibleLine(env, sels, Options{})[0])
	assert.Equal(t, caret(7, 1), LastVisibleLine(env, sels, Options{})[1])

	env.View = fakeView{start: 5, end: 40}
	assert.Equal(t, caret(7, 0), LastVisibleLine(env, sels, Options{})[0])
}

func TestLastModification(t *testing.T) {
	env := newEnv(fiveLines, cursor.Caret)
	sels := one(caret(0, 0))

	assert.Equal(t, sels, LastModification(env, sels, Options{}))

	env.LastEdit = func() (buffer.Position, bool) { return buffer.Position{}, false }
	assert.Equal(t, sels, LastModification(env, sels, Options{}))

	env.LastEdit = func() (buffer.Position, bool) { return pos(3, 1), true }
	assert.Equal(t, one(caret(3, 1)), LastModification(env, sels, Options{}))

	env.LastEdit = func() (buffer.Position, bool) { return pos(30, 1), true }
	assert.Equal(t, one(caret(4, 2)), LastModification(env, sels, Options{}))
}
