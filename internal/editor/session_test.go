package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stride/internal/config"
	"github.com/dshills/stride/internal/dispatcher/handler"
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/column"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/event"
	"github.com/dshills/stride/internal/event/events"
	"github.com/dshills/stride/internal/input"
	"github.com/dshills/stride/internal/motion"
)

func pos(line, char int) buffer.Position {
	return buffer.Position{Line: line, Character: char}
}

func caret(line, char int) cursor.Selection {
	return cursor.NewCaret(pos(line, char))
}

// recorder captures selection events published on a bus.
type recorder struct {
	sources []string
	sels    [][]cursor.Selection
}

func record(t *testing.T, bus event.Bus) *recorder {
	t.Helper()
	r := &recorder{}
	_, err := bus.SubscribeFunc(events.TopicSelectionsChanged, func(_ context.Context, ev any) error {
		e := ev.(event.Event[events.SelectionsChanged])
		r.sources = append(r.sources, e.Metadata.Source)
		r.sels = append(r.sels, e.Payload.Selections)
		return nil
	})
	require.NoError(t, err)
	return r
}

func TestNewDefaults(t *testing.T) {
	s := New(buffer.NewBufferFromString("abc\ndef"))
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, []cursor.Selection{caret(0, 0)}, s.Selections())
	assert.Equal(t, cursor.Caret, s.Behavior())
	assert.NotNil(t, s.Bus())

	c := New(buffer.NewBufferFromString("abc"), WithBehavior(cursor.Character))
	assert.Equal(t, []cursor.Selection{cursor.NewSelection(pos(0, 0), pos(0, 1))}, c.Selections())
	assert.Equal(t, []buffer.Position{pos(0, 0)}, c.Cursors())
}

func TestNewClampsSelections(t *testing.T) {
	s := New(buffer.NewBufferFromString("ab"), WithSelections(caret(5, 9)))
	assert.Equal(t, []cursor.Selection{caret(0, 2)}, s.Selections())
}

func TestDispatchPublishesWithSessionSource(t *testing.T) {
	bus := event.NewBus()
	r := record(t, bus)
	s := New(buffer.NewBufferFromString("abc\ndef"), WithBus(bus), WithID("ed-1"))

	res := s.Dispatch(input.NewAction("select.down"))
	require.True(t, res.IsOK(), res.Error)

	assert.Equal(t, []cursor.Selection{caret(1, 0)}, s.Selections())
	require.Len(t, r.sources, 1)
	assert.Equal(t, "ed-1", r.sources[0])
	assert.Equal(t, s.Selections(), r.sels[0])
}

func TestDispatchUnknownAction(t *testing.T) {
	s := New(buffer.NewBufferFromString("abc"))
	res := s.Dispatch(input.NewAction("select.sideways"))
	assert.Equal(t, handler.StatusError, res.Status)
}

func TestStickyColumnAcrossDispatches(t *testing.T) {
	s := New(buffer.NewBufferFromString("abcdef\nab\nabcdef"), WithSelections(caret(0, 4)))

	s.Dispatch(input.NewAction("select.down"))
	assert.Equal(t, []cursor.Selection{caret(1, 2)}, s.Selections())
	assert.True(t, s.Tracker().Active())

	s.Dispatch(input.NewAction("select.down"))
	assert.Equal(t, []cursor.Selection{caret(2, 4)}, s.Selections())
}

func TestHorizontalMotionDropsStickyColumn(t *testing.T) {
	s := New(buffer.NewBufferFromString("abcdef\nab\nabcdef"), WithSelections(caret(0, 4)))

	s.Dispatch(input.NewAction("select.down"))
	s.Dispatch(input.NewAction("select.left"))
	assert.False(t, s.Tracker().Active())

	s.Dispatch(input.NewAction("select.down"))
	assert.Equal(t, []cursor.Selection{caret(2, 1)}, s.Selections())
}

func TestSetSelectionsIsExternal(t *testing.T) {
	bus := event.NewBus()
	r := record(t, bus)
	s := New(buffer.NewBufferFromString("abcdef\nab\nabcdef"), WithBus(bus), WithSelections(caret(0, 4)))

	s.Dispatch(input.NewAction("select.down"))
	require.True(t, s.Tracker().Active())

	require.NoError(t, s.SetSelections([]cursor.Selection{caret(1, 1)}))
	assert.False(t, s.Tracker().Active())
	assert.Equal(t, events.SourceExternal, r.sources[len(r.sources)-1])

	s.Dispatch(input.NewAction("select.down"))
	assert.Equal(t, []cursor.Selection{caret(2, 1)}, s.Selections())
}

func TestSetBehaviorInvalidatesTracker(t *testing.T) {
	s := New(buffer.NewBufferFromString("abcdef\nab\nabcdef"), WithSelections(caret(0, 4)))
	s.Dispatch(input.NewAction("select.down"))
	require.True(t, s.Tracker().Active())

	s.SetBehavior(cursor.Character)
	assert.Equal(t, cursor.Character, s.Behavior())
	assert.False(t, s.Tracker().Active())
}

func TestSetColumnsInvalidatesTracker(t *testing.T) {
	s := New(buffer.NewBufferFromString("abcdef\nab\nabcdef"), WithSelections(caret(0, 4)))
	s.Dispatch(input.NewAction("select.down"))
	require.True(t, s.Tracker().Active())

	s.SetColumns(column.New(column.DefaultTabSize))
	assert.True(t, s.Tracker().Active(), "same model keeps the cache")

	s.SetColumns(column.New(8))
	assert.False(t, s.Tracker().Active())
}

func TestApplyConfig(t *testing.T) {
	s := New(buffer.NewBufferFromString("abc\nxy"), WithView(NewViewport(10, 0)))

	cfg := config.Default()
	cfg.Editor.SelectionBehavior = "character"
	cfg.Motion.AvoidEOL = true
	cfg.Motion.ScrollOff = 2
	s.ApplyConfig(cfg)

	assert.Equal(t, cursor.Character, s.Behavior())
	assert.True(t, s.Dispatcher().Config().AvoidEOL)
	assert.Equal(t, 2, s.View().(*Viewport).ScrollOff)
}

func TestMoveWithFunc(t *testing.T) {
	s := New(buffer.NewBufferFromString("abc"))
	out := s.Move(motion.WholeBuffer, motion.Options{})
	assert.Equal(t, []cursor.Selection{cursor.NewSelection(pos(0, 0), pos(0, 3))}, out)
	assert.Equal(t, out, s.Selections())
}

func TestLastModification(t *testing.T) {
	doc := buffer.NewBufferFromString("one\ntwo\nthree")
	s := New(doc)

	_, err := doc.Insert(pos(2, 1), "xx")
	require.NoError(t, err)

	s.Dispatch(input.NewAction("select.lastModification"))
	assert.Equal(t, []cursor.Selection{caret(2, 3)}, s.Selections())
}

func TestInsertMovesLastModification(t *testing.T) {
	s := New(buffer.NewBufferFromString("one\ntwo\nthree"))

	end, err := s.Insert(pos(2, 1), "xx")
	require.NoError(t, err)
	assert.Equal(t, pos(2, 3), end)
	assert.Equal(t, "txxhree", s.Document().LineText(2))

	s.Dispatch(input.NewAction("select.lastModification"))
	assert.Equal(t, []cursor.Selection{caret(2, 3)}, s.Selections())
}

func TestDeleteClampsSelections(t *testing.T) {
	bus := event.NewBus()
	s := New(buffer.NewBufferFromString("one\ntwo\nthree"), WithBus(bus))
	require.NoError(t, s.SetSelections([]cursor.Selection{caret(2, 4)}))
	r := record(t, bus)

	require.NoError(t, s.Delete(pos(1, 0), pos(2, 3)))
	assert.Equal(t, "ee", s.Document().LineText(1))
	assert.Equal(t, []cursor.Selection{caret(1, 2)}, s.Selections())
	require.Len(t, r.sources, 1)
	assert.Equal(t, events.SourceExternal, r.sources[0])
	assert.Equal(t, s.Selections(), r.sels[0])

	s.Dispatch(input.NewAction("select.lastModification"))
	assert.Equal(t, []cursor.Selection{caret(1, 0)}, s.Selections())
}

func TestEditRejectsBadPositions(t *testing.T) {
	s := New(buffer.NewBufferFromString("abc"))

	_, err := s.Insert(pos(3, 0), "x")
	assert.ErrorIs(t, err, buffer.ErrPositionOutOfRange)
	assert.ErrorIs(t, s.Delete(pos(0, 2), pos(0, 1)), buffer.ErrRangeInvalid)

	_, edited := s.Document().LastEdit()
	assert.False(t, edited)

	require.NoError(t, s.Close())
	_, err = s.Insert(pos(0, 0), "x")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestDispatchScrollsViewport(t *testing.T) {
	doc := buffer.NewBufferFromString("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	vp := NewViewport(3, 0)
	s := New(doc, WithView(vp))

	s.Dispatch(input.NewAction("select.to").WithCount(7))
	assert.Equal(t, []cursor.Selection{caret(6, 0)}, s.Selections())

	start, end := vp.VisibleLineRange()
	assert.Equal(t, 4, start)
	assert.Equal(t, 6, end)
}

func TestClose(t *testing.T) {
	s := New(buffer.NewBufferFromString("abc\ndef"))
	s.Dispatch(input.NewAction("select.down"))

	require.NoError(t, s.Close())
	assert.False(t, s.Tracker().Active())
	assert.ErrorIs(t, s.Close(), ErrClosed)
	assert.ErrorIs(t, s.SetSelections(nil), ErrClosed)

	res := s.Dispatch(input.NewAction("select.up"))
	assert.ErrorIs(t, res.Error, ErrClosed)
}
