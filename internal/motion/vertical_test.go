package motion

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/column"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/engine/tracking"
	"github.com/dshills/stride/internal/event"
	"github.com/dshills/stride/internal/event/events"
)

var down = Options{Direction: Forward, Shift: cursor.Jump}
var up = Options{Direction: Backward, Shift: cursor.Jump}

func TestVerticallyThroughEmptyLine(t *testing.T) {
	env := newEnv("abcde\n\nxy", cursor.Caret)
	env.Tracker = tracking.New("ed", nil)

	got := Vertically(env, one(caret(0, 4)), down)
	assert.Equal(t, one(caret(1, 0)), got)

	got = Vertically(env, got, down)
	assert.Equal(t, one(caret(2, 2)), got)
}

func TestVerticallyStickyColumn(t *testing.T) {
	long := strings.Repeat("x", 20)
	text := long + "\nabc\n" + long

	t.Run("caret", func(t *testing.T) {
		env := newEnv(text, cursor.Caret)
		env.Tracker = tracking.New("ed", nil)

		got := Vertically(env, one(caret(0, 10)), down)
		assert.Equal(t, one(caret(1, 3)), got)

		got = Vertically(env, got, down)
		assert.Equal(t, one(caret(2, 10)), got)
	})

	t.Run("character", func(t *testing.T) {
		env := newEnv(text, cursor.Character)
		env.Tracker = tracking.New("ed", nil)

		// Covering the character that ends at column 10.
		got := Vertically(env, one(sel(0, 9, 0, 10)), down)
		assert.Equal(t, one(sel(1, 3, 2, 0)), got, "overflow lands on the line break")

		got = Vertically(env, got, down)
		assert.Equal(t, one(sel(2, 9, 2, 10)), got)
	})

	t.Run("without tracker", func(t *testing.T) {
		env := newEnv(text, cursor.Caret)

		got := Vertically(env, one(caret(0, 10)), down)
		got = Vertically(env, got, down)
		assert.Equal(t, one(caret(2, 3)), got)
	})
}

func TestVerticallyAvoidEOLCharacter(t *testing.T) {
	env := newEnv("abcdef\nab\nabcdef", cursor.Character)

	opts := down
	opts.AvoidEOL = true
	got := Vertically(env, one(sel(0, 4, 0, 5)), opts)
	assert.Equal(t, one(sel(1, 1, 1, 2)), got)
}

func TestVerticallyCharacterExtendUp(t *testing.T) {
	env := newEnv("abc\nabc", cursor.Character)

	opts := Options{Direction: Backward, Shift: cursor.Extend}
	got := Vertically(env, one(sel(1, 1, 1, 2)), opts)
	assert.Equal(t, one(sel(1, 2, 0, 1)), got, "the anchor grows to keep the original character")
}

func TestVerticallySelect(t *testing.T) {
	selectDown := Options{Direction: Forward, Shift: cursor.Select}
	selectUp := Options{Direction: Backward, Shift: cursor.Select}

	t.Run("caret", func(t *testing.T) {
		env := newEnv("abc\ndef", cursor.Caret)

		got := Vertically(env, one(caret(0, 1)), selectDown)
		assert.Equal(t, one(sel(0, 1, 1, 1)), got)
	})

	t.Run("character", func(t *testing.T) {
		env := newEnv("abc\ndef", cursor.Character)

		got := Vertically(env, one(sel(0, 1, 0, 2)), selectDown)
		assert.Equal(t, one(sel(0, 1, 1, 2)), got, "both covered characters stay inside")

		got = Vertically(env, one(sel(1, 1, 1, 2)), selectUp)
		assert.Equal(t, one(sel(1, 2, 0, 1)), got, "the fixed edge moves past its character")
	})
}

func TestVerticallyClampsAtDocumentEdges(t *testing.T) {
	env := newEnv("abc\ndef", cursor.Caret)

	assert.Equal(t, one(caret(0, 1)), Vertically(env, one(caret(0, 1)), up))

	opts := down
	opts.Repetitions = 10
	assert.Equal(t, one(caret(1, 1)), Vertically(env, one(caret(0, 1)), opts))
}

func TestVerticallyByPage(t *testing.T) {
	env := newEnv(strings.Repeat("x\n", 30), cursor.Caret)
	env.View = fakeView{start: 0, end: 9}

	// Ten visible lines.
	tests := []struct {
		by   By
		want cursor.Selection
	}{
		{ByNone, caret(1, 0)},
		{ByPage, caret(10, 0)},
		{ByHalfPage, caret(5, 0)},
	}

	for _, tt := range tests {
		opts := down
		opts.By = tt.by
		assert.Equal(t, one(tt.want), Vertically(env, one(caret(0, 0)), opts))
	}
}

func TestVerticallyMultipleSelections(t *testing.T) {
	env := newEnv("abcdef\nab\nabcdef", cursor.Caret)
	env.Tracker = tracking.New("ed", nil)

	sels := []cursor.Selection{caret(0, 5), caret(0, 1)}
	got := Vertically(env, sels, down)
	assert.Equal(t, []cursor.Selection{caret(1, 2), caret(1, 1)}, got)

	// A selection added after seeding falls back to its own column.
	got = append(got, caret(0, 3))
	env.Tracker.RecordExpected(got)
	got = Vertically(env, got, down)
	assert.Equal(t, []cursor.Selection{caret(2, 5), caret(2, 1), caret(1, 2)}, got)
}

func TestVerticallyExternalChangeReseeds(t *testing.T) {
	long := strings.Repeat("x", 20)
	text := long + "\nabc\n" + long

	t.Run("event", func(t *testing.T) {
		bus := event.NewBus()
		env := newEnv(text, cursor.Caret)
		env.Tracker = tracking.New("ed", bus)

		got := Vertically(env, one(caret(0, 10)), down)
		require.Equal(t, one(caret(1, 3)), got)

		moved := one(caret(1, 1))
		require.NoError(t, bus.Publish(context.Background(), event.NewEvent(events.TopicSelectionsChanged,
			events.SelectionsChanged{EditorID: "ed", Selections: moved}, events.SourceExternal)))
		assert.False(t, env.Tracker.Active())

		got = Vertically(env, moved, down)
		assert.Equal(t, one(caret(2, 1)), got)
	})

	t.Run("direct write", func(t *testing.T) {
		env := newEnv(text, cursor.Caret)
		env.Tracker = tracking.New("ed", nil)

		Vertically(env, one(caret(0, 10)), down)
		got := Vertically(env, one(caret(1, 2)), down)
		assert.Equal(t, one(caret(2, 2)), got)
	})
}

func TestVerticallyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z\t ]{0,12}`), 1, 11).Draw(t, "lines")
		// An empty final line holds no character to cover.
		lines = append(lines, rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "last"))
		doc := buffer.NewBufferFromLines(lines)
		last := len(lines) - 1

		n := rapid.IntRange(1, last).Draw(t, "n")
		line := rapid.IntRange(0, last-n).Draw(t, "line")
		character := rapid.IntRange(0, buffer.LineLen(doc, line)).Draw(t, "character")
		behavior := rapid.SampledFrom([]cursor.Behavior{cursor.Caret, cursor.Character}).Draw(t, "behavior")

		env := Env{Doc: doc, Behavior: behavior, Columns: column.New(4), Tracker: tracking.New("ed", nil)}
		start := behavior.Place(doc, caret(line, 0), pos(line, character), cursor.Jump)

		sels := one(start)
		for i := 0; i < n; i++ {
			sels = Vertically(env, sels, down)
		}
		for i := 0; i < n; i++ {
			sels = Vertically(env, sels, up)
		}

		if got := behavior.Cursor(doc, sels[0]).Line; got != line {
			t.Fatalf("returned to line %d, started on %d", got, line)
		}
	})
}
